package http

import (
	"encoding/json"
	"net/http"

	"github.com/callbridgehq/callbridge/internal/callbridge/service"
	"github.com/callbridgehq/callbridge/pkg/callsdk"
)

type InvitationRejectHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Reject Invitation Endpoint
//	@Description	Decline an invitation token without creating an account. Single use; a rejected token cannot be accepted later.
//	@Tags			Invitations
//	@Accept			json
//	@Param			request	body	callsdk.RejectInvitationRequest	true	"Reject request"
//	@Success		204		"invitation rejected"
//	@Failure		400		{object}	callsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	callsdk.ErrorResponse	"error, error_description"
//	@Failure		410		{object}	callsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/invitations/reject [post].
func (h *InvitationRejectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req callsdk.RejectInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Token == "" {
		writeBadRequest(w, "token is required")
		return
	}

	if err := h.InvitationService.Reject(r.Context(), req.Token); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
