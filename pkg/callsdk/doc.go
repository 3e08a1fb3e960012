/*
Package callsdk provides a client SDK for interacting with the CallBridge scheduling service.

# Overview

The callsdk package implements a typed HTTP client for the CallBridge service. It
provides both unauthenticated operations (via SDKClient) and authenticated operations
(via Session). The same request and response types are used by the service's HTTP
handlers, so the SDK is always wire-compatible with the server it ships with.

# SDKClient vs Session

The package is organized around two main types:

  - SDKClient: Provides unauthenticated operations (onboarding, invitation
    acceptance, health checks) and creates authenticated sessions
  - Session: Provides authenticated operations scoped to one account's session token

Create an SDKClient to interact with public endpoints:

	client := callsdk.NewSDKClient("https://callbridge.example.com")

	// Check service health
	health, err := client.Livez(ctx)

	// Create the first requester account (deploy-time bootstrap token)
	session, resp, err := client.Onboard(ctx, callsdk.OnboardRequest{
		BootstrapToken: token,
		Email:          "buyer@example.com",
		Name:           "Bob Buyer",
		Password:       "secret",
	})

Use a Session for authenticated operations:

	// Issue an invitation (requester only)
	created, err := session.CreateInvitation(ctx, callsdk.CreateInvitationRequest{
		ResponderEmail: "seller@example.com",
		ResponderName:  "Sally Seller",
	})

	// Schedule a call (requester only, consumes a credit)
	call, err := session.ScheduleCall(ctx, callsdk.ScheduleCallRequest{
		ResponderID: responderID,
		ScheduledAt: when,
	})

# Invitation Flow

Responder accounts are created exclusively through invitations. The requester
creates an invitation and receives a raw single-use token exactly once; the
responder redeems it:

	created, err := requesterSession.CreateInvitation(ctx, req)
	// hand created.Token to the responder out of band

	responderSession, resp, err := client.AcceptInvitation(ctx, callsdk.AcceptInvitationRequest{
		Token:    created.Token,
		Password: "secret",
	})

A responder who is not interested declines instead:

	err := client.RejectInvitation(ctx, token)

Tokens expire after the server-configured TTL (default seven days) and are
consumed by acceptance, rejection or cancellation. A consumed or unknown token
yields a not_found APIError; an expired one yields expired on first touch and
not_found thereafter.

# Sessions

Session tokens are short-lived signed JWTs. They are not refreshable: when one
expires, authenticated calls fail with an unauthorized APIError and the caller
must obtain a new session. Use NewSession to rebuild a Session from a persisted
token:

	session := client.NewSession(savedToken)

# Error Handling

All non-2xx responses are returned as *APIError carrying the HTTP status, the
machine-readable code and a human-readable description:

	_, err := session.ScheduleCall(ctx, req)
	var apiErr *callsdk.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case callsdk.ErrorCodeConflict:
			// responder already booked at that instant
		case callsdk.ErrorCodeQuotaExceeded:
			// out of call credits
		}
	}

# Thread Safety

SDKClient and Session hold no mutable state beyond the token set at creation.
Both are safe for concurrent use by multiple goroutines.
*/
package callsdk
