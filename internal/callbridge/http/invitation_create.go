package http

import (
	"encoding/json"
	"net/http"

	"github.com/callbridgehq/callbridge/internal/callbridge/service"
	"github.com/callbridgehq/callbridge/pkg/callsdk"
	"github.com/callbridgehq/callbridge/pkg/httpx"
)

type InvitationCreateHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Create Invitation Endpoint
//	@Description	Issue an invitation token to a responder email. The raw token appears only in this response; store only the fingerprint server-side.
//	@Description	Subject to the caller's monthly invitation quota.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		callsdk.CreateInvitationRequest		true	"Invitation request"
//	@Success		201		{object}	callsdk.CreateInvitationResponse	"invitation, token"
//	@Failure		400		{object}	callsdk.ErrorResponse				"error, error_description"
//	@Failure		409		{object}	callsdk.ErrorResponse				"error, error_description"
//	@Failure		429		{object}	callsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req callsdk.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	inv, token, err := h.InvitationService.Create(ctx, httpx.AccountIDFromCtx(ctx), service.CreateInvitationParams{
		ResponderEmail: req.ResponderEmail,
		ResponderName:  req.ResponderName,
		Message:        req.Message,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, callsdk.CreateInvitationResponse{
		Invitation: invitationResponse(inv),
		Token:      token,
	})
}
