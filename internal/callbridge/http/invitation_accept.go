package http

import (
	"encoding/json"
	"net/http"

	"github.com/callbridgehq/callbridge/internal/callbridge/service"
	"github.com/callbridgehq/callbridge/pkg/callsdk"
	"github.com/callbridgehq/callbridge/pkg/httpx"
)

type InvitationAcceptHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Accept Invitation Endpoint
//	@Description	Consume an invitation token: register the responder account and return a session for it. Single use; an expired
//	@Description	token is permanently marked expired by this call even though the acceptance fails.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		callsdk.AcceptInvitationRequest	true	"Accept request"
//	@Success		201		{object}	callsdk.SessionResponse			"account, session_token"
//	@Failure		400		{object}	callsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	callsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	callsdk.ErrorResponse			"error, error_description"
//	@Failure		410		{object}	callsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/invitations/accept [post].
func (h *InvitationAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req callsdk.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Token == "" {
		writeBadRequest(w, "token is required")
		return
	}

	account, session, err := h.InvitationService.Accept(r.Context(), req.Token, service.Registration{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, callsdk.SessionResponse{
		Account:      accountResponse(account),
		SessionToken: session,
	})
}
