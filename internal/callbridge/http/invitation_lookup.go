package http

import (
	"net/http"

	"github.com/callbridgehq/callbridge/internal/callbridge/service"
	"github.com/callbridgehq/callbridge/pkg/httpx"
)

type InvitationLookupHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Invitation Lookup Endpoint
//	@Description	Resolve a raw invitation token to its details so the responder can see who invited them before deciding.
//	@Description	Read-only: expiry is enforced when the token is accepted or rejected, not here.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	query		string						true	"Raw invitation token"
//	@Success		200		{object}	callsdk.InvitationResponse	"invitation details"
//	@Failure		400		{object}	callsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	callsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/invitations/lookup [get].
func (h *InvitationLookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeBadRequest(w, "token is required")
		return
	}

	inv, err := h.InvitationService.GetByToken(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invitationResponse(inv))
}
