package service

import (
	"context"
	"testing"
	"time"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/stretchr/testify/require"
)

func newStatsFixture(t *testing.T) (*StatsService, domain.Account, domain.Account) {
	t.Helper()

	st := newTestStore(t)
	req := seedRequester(t, st, "req@example.com", 5, 10)
	resp := seedResponder(t, st, "resp@example.com")

	inv := &InvitationService{Store: st, Signer: newTestSigner(t)}
	calls := &CallService{Store: st}
	return &StatsService{Store: st, Invitations: inv, Calls: calls}, req, resp
}

func TestUserStats(t *testing.T) {
	ctx := context.Background()

	t.Run("requesters get invitation and call rollups", func(t *testing.T) {
		svc, req, resp := newStatsFixture(t)

		_, _, err := svc.Invitations.Create(ctx, req.ID, CreateInvitationParams{
			ResponderEmail: "new@example.com",
			ResponderName:  "Newbie",
		})
		require.NoError(t, err)

		seedScheduledCall(t, svc.Store, req.ID, resp.ID, time.Now().UTC().Add(48*time.Hour))

		stats, err := svc.UserStats(ctx, req.ID)
		require.NoError(t, err)
		require.Equal(t, req.ID, stats.AccountID)
		require.Equal(t, domain.RoleRequester, stats.Role)
		require.NotNil(t, stats.Invitations)
		require.Equal(t, 1, stats.Invitations.Total)
		require.Equal(t, 1, stats.Calls.Total)
		require.Equal(t, 1, stats.Calls.Upcoming)
	})

	t.Run("responders get no invitation section", func(t *testing.T) {
		svc, req, resp := newStatsFixture(t)
		seedScheduledCall(t, svc.Store, req.ID, resp.ID, time.Now().UTC().Add(48*time.Hour))

		stats, err := svc.UserStats(ctx, resp.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleResponder, stats.Role)
		require.Nil(t, stats.Invitations)
		require.Equal(t, 1, stats.Calls.Total)
	})

	t.Run("unknown account is not found", func(t *testing.T) {
		svc, _, _ := newStatsFixture(t)

		_, err := svc.UserStats(ctx, "nope")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPlatformStats(t *testing.T) {
	ctx := context.Background()

	svc, req, resp := newStatsFixture(t)

	_, token, err := svc.Invitations.Create(ctx, req.ID, CreateInvitationParams{
		ResponderEmail: "new@example.com",
		ResponderName:  "Newbie",
	})
	require.NoError(t, err)
	_, _, err = svc.Invitations.Accept(ctx, token, Registration{Password: "hunter2hunter2"})
	require.NoError(t, err)

	call := seedScheduledCall(t, svc.Store, req.ID, resp.ID, time.Now().UTC().Add(48*time.Hour))
	_, err = svc.Calls.UpdateStatus(ctx, call.ID, req.ID, domain.CallInProgress, ProgressParams{})
	require.NoError(t, err)
	_, err = svc.Calls.UpdateStatus(ctx, call.ID, req.ID, domain.CallCompleted, ProgressParams{})
	require.NoError(t, err)

	feedback := &FeedbackService{Store: svc.Store}
	_, err = feedback.Submit(ctx, call.ID, req.ID, FeedbackParams{Rating: intPtr(5)})
	require.NoError(t, err)

	stats, err := svc.PlatformStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.AccountsByRole[domain.RoleRequester])
	require.Equal(t, 2, stats.AccountsByRole[domain.RoleResponder]) // seeded + accepted
	require.Equal(t, 1, stats.InvitationsByStatus[domain.InvitationAccepted])
	require.Equal(t, 1, stats.CallsByStatus[domain.CallCompleted])
	require.Equal(t, 1, stats.RatingsSubmitted)
}
