package callbridge_test

import (
	"testing"

	"github.com/callbridgehq/callbridge/pkg/callsdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := callsdk.NewSDKClient(baseURL)

	live, err := client.Livez(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.NotEmpty(t, live.Version)

	ready, err := client.Readyz(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestInvitationLifecycle(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := callsdk.NewSDKClient(baseURL)
	requester, _ := onboardRequester(t, client)

	// Issue an invitation and look it up before accepting.
	created, err := requester.CreateInvitation(ctx, callsdk.CreateInvitationRequest{
		ResponderEmail: responderEmail,
		ResponderName:  responderName,
		Message:        "Interested in a quick chat?",
	})
	require.NoError(t, err)
	require.Equal(t, "pending", created.Invitation.Status)
	require.NotEmpty(t, created.Token)
	require.True(t, created.Invitation.ExpiresAt.After(created.Invitation.IssuedAt))

	looked, err := client.LookupInvitation(ctx, created.Token)
	require.NoError(t, err)
	require.Equal(t, created.Invitation.ID, looked.ID)
	require.Equal(t, responderName, looked.ResponderName)

	// A duplicate pending invitation for the same email is rejected.
	_, err = requester.CreateInvitation(ctx, callsdk.CreateInvitationRequest{
		ResponderEmail: responderEmail,
		ResponderName:  responderName,
	})
	requireAPIError(t, err, callsdk.ErrorCodeConflict)

	// Accept: creates the responder account and returns a working session.
	responder, account, err := client.AcceptInvitation(ctx, callsdk.AcceptInvitationRequest{
		Token:    created.Token,
		Password: responderPassword,
	})
	require.NoError(t, err)
	require.Equal(t, "responder", account.Account.Role)

	stats, err := responder.UserStats(ctx)
	require.NoError(t, err)
	require.Equal(t, "responder", stats.Role)
	require.Nil(t, stats.Invitations, "Responders have no invitation stats")

	// The token is single use.
	_, _, err = client.AcceptInvitation(ctx, callsdk.AcceptInvitationRequest{
		Token:    created.Token,
		Password: responderPassword,
	})
	requireAPIError(t, err, callsdk.ErrorCodeNotFound)

	// Requester-side listing and rollup reflect the acceptance.
	list, err := requester.ListInvitations(ctx, "")
	require.NoError(t, err)
	require.Len(t, list.Invitations, 1)
	require.Equal(t, "accepted", list.Invitations[0].Status)

	invStats, err := requester.InvitationStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, invStats.Total)
	require.Equal(t, 1, invStats.ByStatus["accepted"])
	require.InDelta(t, 100.0, invStats.AcceptanceRate, 0.01)
}

func TestInvitationRejectAndCancel(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := callsdk.NewSDKClient(baseURL)
	requester, _ := onboardRequester(t, client)

	// Reject flow.
	created, err := requester.CreateInvitation(ctx, callsdk.CreateInvitationRequest{
		ResponderEmail: "declined@example.com",
		ResponderName:  "Declining Dana",
	})
	require.NoError(t, err)

	require.NoError(t, client.RejectInvitation(ctx, created.Token))

	// Terminal: rejecting twice fails, accepting fails too.
	requireAPIError(t, client.RejectInvitation(ctx, created.Token), callsdk.ErrorCodeNotFound)

	// Cancel flow.
	cancelMe, err := requester.CreateInvitation(ctx, callsdk.CreateInvitationRequest{
		ResponderEmail: "withdrawn@example.com",
		ResponderName:  "Withdrawn Wes",
	})
	require.NoError(t, err)

	require.NoError(t, requester.CancelInvitation(ctx, cancelMe.Invitation.ID))

	_, _, err = client.AcceptInvitation(ctx, callsdk.AcceptInvitationRequest{
		Token:    cancelMe.Token,
		Password: responderPassword,
	})
	requireAPIError(t, err, callsdk.ErrorCodeNotFound)

	// Rollup: one rejected, one cancelled, none pending.
	stats, err := requester.InvitationStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Total)
	require.Equal(t, 1, stats.ByStatus["rejected"])
	require.Equal(t, 1, stats.ByStatus["cancelled"])
	require.Zero(t, stats.ByStatus["pending"])
}

func TestOnboardingRequiresBootstrapToken(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := callsdk.NewSDKClient(baseURL)

	_, _, err := client.Onboard(t.Context(), callsdk.OnboardRequest{
		BootstrapToken: "wrong-token",
		Email:          requesterEmail,
		Name:           requesterName,
		Password:       requesterPassword,
	})
	requireAPIError(t, err, callsdk.ErrorCodeNotFound)
}
