package service

import (
	"context"
	"testing"
	"time"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/callbridgehq/callbridge/internal/callbridge/store"
	"github.com/stretchr/testify/require"
)

func newCallService(t *testing.T) (*CallService, domain.Account, domain.Account) {
	t.Helper()

	st := newTestStore(t)
	requester := seedRequester(t, st, "req@example.com", 2, 10)
	responder := seedResponder(t, st, "resp@example.com")
	return &CallService{Store: st}, requester, responder
}

func credits(t *testing.T, svc *CallService, accountID string) int {
	t.Helper()

	a, err := svc.Store.Accounts().GetAccountByID(context.Background(), accountID)
	require.NoError(t, err)
	return a.CallCredits
}

func TestScheduleCall(t *testing.T) {
	ctx := context.Background()
	slot := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)

	t.Run("books the call and debits one credit", func(t *testing.T) {
		svc, req, resp := newCallService(t)

		call, err := svc.Schedule(ctx, req.ID, ScheduleParams{
			ResponderID: resp.ID,
			ScheduledAt: slot,
			Notes:       "intro call",
		})
		require.NoError(t, err)
		require.Equal(t, domain.CallScheduled, call.Status)
		require.Equal(t, domain.DefaultCallDuration, call.Duration)
		require.Equal(t, 1, credits(t, svc, req.ID))
	})

	t.Run("rejects a slot either party already has booked", func(t *testing.T) {
		svc, req, resp := newCallService(t)

		_, err := svc.Schedule(ctx, req.ID, ScheduleParams{ResponderID: resp.ID, ScheduledAt: slot})
		require.NoError(t, err)

		// Same responder, different requester, same instant.
		other := seedRequester(t, svc.Store, "other@example.com", 2, 10)
		_, err = svc.Schedule(ctx, other.ID, ScheduleParams{ResponderID: resp.ID, ScheduledAt: slot})
		require.ErrorIs(t, err, ErrConflict)

		// No credit was burned on the failed attempt.
		require.Equal(t, 2, credits(t, svc, other.ID))
	})

	t.Run("a different instant is no conflict", func(t *testing.T) {
		svc, req, resp := newCallService(t)

		_, err := svc.Schedule(ctx, req.ID, ScheduleParams{ResponderID: resp.ID, ScheduledAt: slot})
		require.NoError(t, err)

		_, err = svc.Schedule(ctx, req.ID, ScheduleParams{ResponderID: resp.ID, ScheduledAt: slot.Add(time.Minute)})
		require.NoError(t, err)
	})

	t.Run("fails without credits", func(t *testing.T) {
		svc, _, resp := newCallService(t)
		broke := seedRequester(t, svc.Store, "broke@example.com", 0, 10)

		_, err := svc.Schedule(ctx, broke.ID, ScheduleParams{ResponderID: resp.ID, ScheduledAt: slot})
		require.ErrorIs(t, err, ErrQuotaExceeded)
	})

	t.Run("rejects past and present times", func(t *testing.T) {
		svc, req, resp := newCallService(t)

		_, err := svc.Schedule(ctx, req.ID, ScheduleParams{
			ResponderID: resp.ID,
			ScheduledAt: time.Now().UTC().Add(-time.Hour),
		})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects wrong roles", func(t *testing.T) {
		svc, req, resp := newCallService(t)

		// Responder trying to schedule.
		_, err := svc.Schedule(ctx, resp.ID, ScheduleParams{ResponderID: req.ID, ScheduledAt: slot})
		require.ErrorIs(t, err, ErrValidation)

		// Scheduling against another requester.
		other := seedRequester(t, svc.Store, "other@example.com", 2, 10)
		_, err = svc.Schedule(ctx, req.ID, ScheduleParams{ResponderID: other.ID, ScheduledAt: slot})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestUpdateCallStatus(t *testing.T) {
	ctx := context.Background()
	slot := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)

	t.Run("walks scheduled through in_progress to completed", func(t *testing.T) {
		svc, req, resp := newCallService(t)
		call := seedScheduledCall(t, svc.Store, req.ID, resp.ID, slot)

		start := time.Now().UTC().Truncate(time.Second)
		quality := domain.QualityGood

		got, err := svc.UpdateStatus(ctx, call.ID, req.ID, domain.CallInProgress, ProgressParams{
			ActualStartTime: &start,
		})
		require.NoError(t, err)
		require.Equal(t, domain.CallInProgress, got.Status)
		require.NotNil(t, got.ActualStartTime)

		end := start.Add(25 * time.Minute)
		got, err = svc.UpdateStatus(ctx, call.ID, resp.ID, domain.CallCompleted, ProgressParams{
			ActualEndTime:     &end,
			ConnectionQuality: &quality,
		})
		require.NoError(t, err)
		require.Equal(t, domain.CallCompleted, got.Status)
		require.NotNil(t, got.ActualEndTime)
		require.NotNil(t, got.ConnectionQuality)
		require.Equal(t, quality, *got.ConnectionQuality)
	})

	t.Run("rejects transitions outside the table", func(t *testing.T) {
		svc, req, resp := newCallService(t)
		call := seedScheduledCall(t, svc.Store, req.ID, resp.ID, slot)

		// scheduled -> completed skips in_progress.
		_, err := svc.UpdateStatus(ctx, call.ID, req.ID, domain.CallCompleted, ProgressParams{})
		require.ErrorIs(t, err, ErrConflict)

		// Terminal statuses accept nothing.
		_, err = svc.UpdateStatus(ctx, call.ID, req.ID, domain.CallNoShow, ProgressParams{})
		require.NoError(t, err)
		_, err = svc.UpdateStatus(ctx, call.ID, req.ID, domain.CallScheduled, ProgressParams{})
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("non-participants see not found", func(t *testing.T) {
		svc, req, resp := newCallService(t)
		call := seedScheduledCall(t, svc.Store, req.ID, resp.ID, slot)
		stranger := seedRequester(t, svc.Store, "stranger@example.com", 0, 0)

		_, err := svc.UpdateStatus(ctx, call.ID, stranger.ID, domain.CallInProgress, ProgressParams{})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects unknown statuses and qualities", func(t *testing.T) {
		svc, req, resp := newCallService(t)
		call := seedScheduledCall(t, svc.Store, req.ID, resp.ID, slot)

		_, err := svc.UpdateStatus(ctx, call.ID, req.ID, "paused", ProgressParams{})
		require.ErrorIs(t, err, ErrValidation)

		bad := domain.ConnectionQuality("terrible")
		_, err = svc.UpdateStatus(ctx, call.ID, req.ID, domain.CallInProgress, ProgressParams{ConnectionQuality: &bad})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestCancelCall(t *testing.T) {
	ctx := context.Background()

	t.Run("early cancellation refunds the credit", func(t *testing.T) {
		svc, req, resp := newCallService(t)
		slot := time.Now().UTC().Add(72 * time.Hour)

		call, err := svc.Schedule(ctx, req.ID, ScheduleParams{ResponderID: resp.ID, ScheduledAt: slot})
		require.NoError(t, err)
		require.Equal(t, 1, credits(t, svc, req.ID))

		refunded, err := svc.Cancel(ctx, call.ID, resp.ID)
		require.NoError(t, err)
		require.True(t, refunded)
		require.Equal(t, 2, credits(t, svc, req.ID))

		got, err := svc.Store.Calls().GetCallByID(ctx, call.ID)
		require.NoError(t, err)
		require.Equal(t, domain.CallCancelled, got.Status)
	})

	t.Run("late cancellation keeps the credit", func(t *testing.T) {
		svc, req, resp := newCallService(t)
		slot := time.Now().UTC().Add(2 * time.Hour)

		call, err := svc.Schedule(ctx, req.ID, ScheduleParams{ResponderID: resp.ID, ScheduledAt: slot})
		require.NoError(t, err)

		refunded, err := svc.Cancel(ctx, call.ID, req.ID)
		require.NoError(t, err)
		require.False(t, refunded)
		require.Equal(t, 1, credits(t, svc, req.ID))
	})

	t.Run("only scheduled calls cancel", func(t *testing.T) {
		svc, req, resp := newCallService(t)
		slot := time.Now().UTC().Add(72 * time.Hour)
		call := seedScheduledCall(t, svc.Store, req.ID, resp.ID, slot)

		_, err := svc.UpdateStatus(ctx, call.ID, req.ID, domain.CallInProgress, ProgressParams{})
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, call.ID, req.ID)
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("non-participants see not found", func(t *testing.T) {
		svc, req, resp := newCallService(t)
		call := seedScheduledCall(t, svc.Store, req.ID, resp.ID, time.Now().UTC().Add(72*time.Hour))
		stranger := seedRequester(t, svc.Store, "stranger@example.com", 0, 0)

		_, err := svc.Cancel(ctx, call.ID, stranger.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListCalls(t *testing.T) {
	ctx := context.Background()

	svc, req, resp := newCallService(t)
	base := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)

	for i := range 5 {
		seedScheduledCall(t, svc.Store, req.ID, resp.ID, base.Add(time.Duration(i)*time.Hour))
	}

	t.Run("paginates newest first", func(t *testing.T) {
		calls, total, err := svc.List(ctx, req.ID, store.CallListFilter{Page: 1, Limit: 2})
		require.NoError(t, err)
		require.Equal(t, 5, total)
		require.Len(t, calls, 2)
		require.True(t, calls[0].ScheduledAt.After(calls[1].ScheduledAt))

		calls, _, err = svc.List(ctx, req.ID, store.CallListFilter{Page: 3, Limit: 2})
		require.NoError(t, err)
		require.Len(t, calls, 1)
	})

	t.Run("filters upcoming", func(t *testing.T) {
		// Cancel one so it drops out of upcoming.
		calls, _, err := svc.List(ctx, req.ID, store.CallListFilter{Page: 1, Limit: 1})
		require.NoError(t, err)
		_, err = svc.Cancel(ctx, calls[0].ID, req.ID)
		require.NoError(t, err)

		upcoming, total, err := svc.List(ctx, req.ID, store.CallListFilter{Upcoming: true})
		require.NoError(t, err)
		require.Equal(t, 4, total)
		for _, c := range upcoming {
			require.Equal(t, domain.CallScheduled, c.Status)
		}
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		_, _, err := svc.List(ctx, req.ID, store.CallListFilter{Status: "bogus"})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestCallStats(t *testing.T) {
	ctx := context.Background()

	svc, req, resp := newCallService(t)
	base := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)

	complete := func(call domain.Call, rating int) {
		t.Helper()
		_, err := svc.UpdateStatus(ctx, call.ID, req.ID, domain.CallInProgress, ProgressParams{})
		require.NoError(t, err)
		_, err = svc.UpdateStatus(ctx, call.ID, req.ID, domain.CallCompleted, ProgressParams{})
		require.NoError(t, err)
		require.NoError(t, svc.Store.Calls().UpdateResponderFeedback(ctx, call.ID, store.ResponderFeedbackUpdate{
			Rating: &rating,
		}))
	}

	c1 := seedScheduledCall(t, svc.Store, req.ID, resp.ID, base)
	c2 := seedScheduledCall(t, svc.Store, req.ID, resp.ID, base.Add(time.Hour))
	c3 := seedScheduledCall(t, svc.Store, req.ID, resp.ID, base.Add(2*time.Hour))
	seedScheduledCall(t, svc.Store, req.ID, resp.ID, base.Add(3*time.Hour))

	complete(c1, 5)
	complete(c2, 4)
	_, err := svc.UpdateStatus(ctx, c3.ID, req.ID, domain.CallNoShow, ProgressParams{})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, req.ID)
	require.NoError(t, err)
	require.Equal(t, 4, stats.Total)
	require.Equal(t, 2, stats.Completed)
	require.Equal(t, 1, stats.NoShow)
	require.Equal(t, 1, stats.Upcoming)
	require.InDelta(t, 4.5, stats.AverageRating, 0.01)
	require.InDelta(t, 50.0, stats.CompletionRate, 0.01)
}
