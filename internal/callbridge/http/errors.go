package http

import (
	"errors"
	"net/http"

	"github.com/callbridgehq/callbridge/internal/callbridge/service"
	"github.com/callbridgehq/callbridge/pkg/callsdk"
	"github.com/callbridgehq/callbridge/pkg/slogx"
)

// writeServiceError maps the service error kinds onto HTTP statuses:
// validation 400, not found 404, conflict 409, quota 429, expired 410.
// Anything unrecognized is a 500 and gets logged; the kinds themselves are
// expected outcomes and are not.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *callsdk.APIError

	switch {
	case errors.Is(err, service.ErrValidation):
		apiErr = &callsdk.APIError{
			StatusCode:  http.StatusBadRequest,
			Code:        callsdk.ErrorCodeInvalidRequest,
			Description: err.Error(),
		}
	case errors.Is(err, service.ErrNotFound):
		apiErr = &callsdk.APIError{
			StatusCode:  http.StatusNotFound,
			Code:        callsdk.ErrorCodeNotFound,
			Description: err.Error(),
		}
	case errors.Is(err, service.ErrConflict):
		apiErr = &callsdk.APIError{
			StatusCode:  http.StatusConflict,
			Code:        callsdk.ErrorCodeConflict,
			Description: err.Error(),
		}
	case errors.Is(err, service.ErrQuotaExceeded):
		apiErr = &callsdk.APIError{
			StatusCode:  http.StatusTooManyRequests,
			Code:        callsdk.ErrorCodeQuotaExceeded,
			Description: err.Error(),
		}
	case errors.Is(err, service.ErrExpired):
		apiErr = &callsdk.APIError{
			StatusCode:  http.StatusGone,
			Code:        callsdk.ErrorCodeExpired,
			Description: err.Error(),
		}
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		apiErr = &callsdk.APIError{
			StatusCode:  http.StatusInternalServerError,
			Code:        callsdk.ErrorCodeServerError,
			Description: "internal server error",
		}
	}

	apiErr.WriteError(w)
}

// writeBadRequest reports a malformed request body or parameter.
func writeBadRequest(w http.ResponseWriter, desc string) {
	(&callsdk.APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        callsdk.ErrorCodeInvalidRequest,
		Description: desc,
	}).WriteError(w)
}
