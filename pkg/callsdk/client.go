package callsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SDKClient is a client for the CallBridge scheduling service. It provides
// the unauthenticated operations (invitation lookup/accept/reject,
// onboarding, health) and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new client for the given base URL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSession wraps an existing session token (from onboarding or invitation
// acceptance) in an authenticated Session.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doJSON performs a request with an optional JSON body and decodes the JSON
// response. A non-expected status comes back as *APIError.
func (c *SDKClient) doJSON(
	ctx context.Context,
	method, path, token string,
	body, target any,
	expectedStatus int,
) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	return decodeJSON(resp, target, expectedStatus)
}

// decodeJSON decodes a JSON response into the target. Returns a typed
// *APIError when the status is unexpected.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ============================================================================
// Unauthenticated operations
// ============================================================================

// Onboard creates a requester account using the deploy-time bootstrap token
// and returns an authenticated Session alongside the account.
func (c *SDKClient) Onboard(ctx context.Context, req OnboardRequest) (*Session, *SessionResponse, error) {
	var out SessionResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/onboard", "", req, &out, http.StatusCreated); err != nil {
		return nil, nil, err
	}
	return c.NewSession(out.SessionToken), &out, nil
}

// LookupInvitation resolves a raw invitation token to its details.
func (c *SDKClient) LookupInvitation(ctx context.Context, token string) (*InvitationResponse, error) {
	var out InvitationResponse
	path := "/v1/invitations/lookup?token=" + url.QueryEscape(token)
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvitation consumes an invitation token, registering the responder
// account, and returns an authenticated Session for it.
func (c *SDKClient) AcceptInvitation(ctx context.Context, req AcceptInvitationRequest) (*Session, *SessionResponse, error) {
	var out SessionResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/invitations/accept", "", req, &out, http.StatusCreated); err != nil {
		return nil, nil, err
	}
	return c.NewSession(out.SessionToken), &out, nil
}

// RejectInvitation declines an invitation token.
func (c *SDKClient) RejectInvitation(ctx context.Context, token string) error {
	resp, err := c.HTTPClient.Do(mustRequest(ctx, http.MethodPost, c.url("/v1/invitations/reject"), RejectInvitationRequest{Token: token}))
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	return checkStatusNoContent(resp)
}

// Livez checks the liveness endpoint.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Readyz checks the readiness endpoint (includes a database ping).
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func mustRequest(ctx context.Context, method, url string, body any) *http.Request {
	buf, _ := json.Marshal(body)
	req, _ := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// checkStatusNoContent returns a typed error if the response status is not
// 204 No Content.
func checkStatusNoContent(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}
	return nil
}
