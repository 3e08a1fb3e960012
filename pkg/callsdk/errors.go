package callsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/callbridgehq/callbridge/pkg/httpx"
)

// Wire error codes. These are stable strings the frontend keys off.
const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeNotFound       = "not_found"
	ErrorCodeConflict       = "conflict"
	ErrorCodeQuotaExceeded  = "quota_exceeded"
	ErrorCodeExpired        = "expired"
	ErrorCodeUnauthorized   = "unauthorized"
	ErrorCodeServerError    = "server_error"
)

// APIError is the wire error shape {error, error_description}. It implements
// the error interface and is shared by the server handlers (to write
// responses) and the SDK (to represent non-2xx responses).
type APIError struct {
	// StatusCode is the HTTP status carried alongside the body.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Description is a human-readable description of the error.
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, e.StatusCode, map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// ErrorResponse is the JSON error body, kept as a named type for the
// Swagger annotations.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// parseErrorResponse converts a non-2xx response body into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var e ErrorResponse
	if err := json.Unmarshal(body, &e); err != nil || e.Error == "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        e.Error,
		Description: e.ErrorDescription,
	}
}
