package callsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Session is an authenticated client scoped to one account's session token.
// Tokens are short-lived and not refreshable; when one expires, create a new
// session through the auth flow.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the raw session token, e.g. for persisting across restarts.
func (s *Session) Token() string { return s.token }

// ============================================================================
// Invitations (requester side)
// ============================================================================

// CreateInvitation issues an invitation. The response carries the raw token
// exactly once; hand it to the responder out of band.
func (s *Session) CreateInvitation(ctx context.Context, req CreateInvitationRequest) (*CreateInvitationResponse, error) {
	var out CreateInvitationResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/invitations", s.token, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvitations returns the caller's invitations, optionally filtered by
// status (empty = all).
func (s *Session) ListInvitations(ctx context.Context, status string) (*InvitationListResponse, error) {
	path := "/v1/invitations"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var out InvitationListResponse
	if err := s.client.doJSON(ctx, http.MethodGet, path, s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelInvitation withdraws a pending invitation the caller issued.
func (s *Session) CancelInvitation(ctx context.Context, invitationID string) error {
	path := "/v1/invitations/" + invitationID
	resp, err := s.client.HTTPClient.Do(s.authRequest(ctx, http.MethodDelete, path))
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	return checkStatusNoContent(resp)
}

// InvitationStats returns the caller's invitation rollup.
func (s *Session) InvitationStats(ctx context.Context) (*InvitationStatsResponse, error) {
	var out InvitationStatsResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/invitations/stats", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Calls
// ============================================================================

// ScheduleCall books a call with a responder, consuming one credit.
func (s *Session) ScheduleCall(ctx context.Context, req ScheduleCallRequest) (*CallResponse, error) {
	var out CallResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/calls", s.token, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCall returns one of the caller's calls.
func (s *Session) GetCall(ctx context.Context, callID string) (*CallResponse, error) {
	var out CallResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/calls/"+callID, s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CallListOptions narrows and pages ListCalls.
type CallListOptions struct {
	Status   string
	Upcoming bool
	Page     int
	Limit    int
}

// ListCalls returns the caller's calls, newest first.
func (s *Session) ListCalls(ctx context.Context, opts CallListOptions) (*CallListResponse, error) {
	q := url.Values{}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.Upcoming {
		q.Set("upcoming", "true")
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	path := "/v1/calls"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out CallListResponse
	if err := s.client.doJSON(ctx, http.MethodGet, path, s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCallStatus moves a call through its state machine.
func (s *Session) UpdateCallStatus(ctx context.Context, callID string, req UpdateCallStatusRequest) (*CallResponse, error) {
	var out CallResponse
	if err := s.client.doJSON(ctx, http.MethodPatch, "/v1/calls/"+callID+"/status", s.token, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelCall cancels a scheduled call and reports whether the requester's
// credit was refunded.
func (s *Session) CancelCall(ctx context.Context, callID string) (*CancelCallResponse, error) {
	var out CancelCallResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/calls/"+callID+"/cancel", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitFeedback records post-call feedback on a completed call.
func (s *Session) SubmitFeedback(ctx context.Context, callID string, req FeedbackRequest) (*CallResponse, error) {
	var out CallResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/calls/"+callID+"/feedback", s.token, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Stats
// ============================================================================

// UserStats returns the caller's combined rollup.
func (s *Session) UserStats(ctx context.Context) (*UserStatsResponse, error) {
	var out UserStatsResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/stats/me", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlatformStats returns the platform-wide rollup.
func (s *Session) PlatformStats(ctx context.Context) (*PlatformStatsResponse, error) {
	var out PlatformStatsResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/stats/platform", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) authRequest(ctx context.Context, method, path string) *http.Request {
	req, _ := http.NewRequestWithContext(ctx, method, s.client.url(path), nil)
	req.Header.Set("Authorization", "Bearer "+s.token)
	return req
}
