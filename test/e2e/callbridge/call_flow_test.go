package callbridge_test

import (
	"testing"
	"time"

	"github.com/callbridgehq/callbridge/pkg/callsdk"
	"github.com/stretchr/testify/require"
)

func TestCallLifecycle(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := callsdk.NewSDKClient(baseURL)
	requester, _ := onboardRequester(t, client)
	responder, responderAccount := inviteResponder(t, client, requester)

	// Schedule two days out.
	scheduledAt := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
	call, err := requester.ScheduleCall(ctx, callsdk.ScheduleCallRequest{
		ResponderID:     responderAccount.ID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: 45,
		Notes:           "Demo of the new integration",
	})
	require.NoError(t, err)
	require.Equal(t, "scheduled", call.Status)
	require.Equal(t, 45, call.DurationMinutes)

	// Both participants can see the call.
	fromResponder, err := responder.GetCall(ctx, call.ID)
	require.NoError(t, err)
	require.Equal(t, call.ID, fromResponder.ID)

	list, err := responder.ListCalls(ctx, callsdk.CallListOptions{Upcoming: true})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)

	// Walk the call to completion.
	start := time.Now().UTC().Truncate(time.Second)
	_, err = responder.UpdateCallStatus(ctx, call.ID, callsdk.UpdateCallStatusRequest{
		Status:          "in_progress",
		ActualStartTime: &start,
	})
	require.NoError(t, err)

	end := start.Add(40 * time.Minute)
	quality := "good"
	completed, err := responder.UpdateCallStatus(ctx, call.ID, callsdk.UpdateCallStatusRequest{
		Status:            "completed",
		ActualEndTime:     &end,
		ConnectionQuality: &quality,
	})
	require.NoError(t, err)
	require.Equal(t, "completed", completed.Status)
	require.NotNil(t, completed.ConnectionQuality)

	// Completed is terminal.
	_, err = responder.UpdateCallStatus(ctx, call.ID, callsdk.UpdateCallStatusRequest{Status: "cancelled"})
	requireAPIError(t, err, callsdk.ErrorCodeInvalidRequest)

	// Requester records the full outcome.
	rating := 5
	feedback := "Great conversation, clear next steps."
	outcome := "follow_up"
	followUp := scheduledAt.Add(7 * 24 * time.Hour)
	afterRequester, err := requester.SubmitFeedback(ctx, call.ID, callsdk.FeedbackRequest{
		Rating:       &rating,
		Feedback:     &feedback,
		Outcome:      &outcome,
		FollowUpDate: &followUp,
	})
	require.NoError(t, err)
	require.Equal(t, rating, *afterRequester.RequesterRating)
	require.Equal(t, outcome, afterRequester.Outcome)

	// Responder may only rate and comment.
	respRating := 4
	dealValue := 5000.0
	_, err = responder.SubmitFeedback(ctx, call.ID, callsdk.FeedbackRequest{
		Rating:    &respRating,
		DealValue: &dealValue,
	})
	requireAPIError(t, err, callsdk.ErrorCodeInvalidRequest)

	respFeedback := "Well prepared, good questions."
	final, err := responder.SubmitFeedback(ctx, call.ID, callsdk.FeedbackRequest{
		Rating:   &respRating,
		Feedback: &respFeedback,
	})
	require.NoError(t, err)
	require.Equal(t, respRating, *final.ResponderRating)
	require.Equal(t, rating, *final.RequesterRating, "Requester feedback must survive responder submission")

	// Rollups: the requester's average rating is what responders gave them.
	userStats, err := requester.UserStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, userStats.Calls.Total)
	require.Equal(t, 1, userStats.Calls.Completed)
	require.InDelta(t, float64(respRating), userStats.Calls.AverageRating, 0.01)
	require.InDelta(t, 100.0, userStats.Calls.CompletionRate, 0.01)

	platform, err := responder.PlatformStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, platform.AccountsByRole["requester"])
	require.Equal(t, 1, platform.AccountsByRole["responder"])
	require.Equal(t, 1, platform.CallsByStatus["completed"])
	require.Equal(t, 2, platform.RatingsSubmitted)
}

func TestCallCancellationAndConflicts(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := callsdk.NewSDKClient(baseURL)
	requester, _ := onboardRequester(t, client)
	_, responderAccount := inviteResponder(t, client, requester)

	scheduledAt := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second)
	call, err := requester.ScheduleCall(ctx, callsdk.ScheduleCallRequest{
		ResponderID: responderAccount.ID,
		ScheduledAt: scheduledAt,
	})
	require.NoError(t, err)

	// Double-booking the responder at the same instant is rejected.
	_, err = requester.ScheduleCall(ctx, callsdk.ScheduleCallRequest{
		ResponderID: responderAccount.ID,
		ScheduledAt: scheduledAt,
	})
	requireAPIError(t, err, callsdk.ErrorCodeConflict)

	// Cancelling three days ahead refunds the credit.
	cancelled, err := requester.CancelCall(ctx, call.ID)
	require.NoError(t, err)
	require.True(t, cancelled.Refunded)
	require.Equal(t, "cancelled", cancelled.Call.Status)

	// The slot is free again once the original call is cancelled.
	rebooked, err := requester.ScheduleCall(ctx, callsdk.ScheduleCallRequest{
		ResponderID: responderAccount.ID,
		ScheduledAt: scheduledAt,
	})
	require.NoError(t, err)
	require.Equal(t, "scheduled", rebooked.Status)

	// Scheduling in the past is rejected outright.
	_, err = requester.ScheduleCall(ctx, callsdk.ScheduleCallRequest{
		ResponderID: responderAccount.ID,
		ScheduledAt: time.Now().UTC().Add(-time.Hour),
	})
	requireAPIError(t, err, callsdk.ErrorCodeInvalidRequest)

	stats, err := requester.UserStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Calls.Total)
	require.Equal(t, 1, stats.Calls.Cancelled)
	require.Equal(t, 1, stats.Calls.Upcoming)
}
