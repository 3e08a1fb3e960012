package http

import (
	"encoding/json"
	"net/http"

	"github.com/callbridgehq/callbridge/internal/callbridge/service"
	"github.com/callbridgehq/callbridge/pkg/callsdk"
	"github.com/callbridgehq/callbridge/pkg/httpx"
)

type OnboardHandler struct {
	OnboardingService *service.OnboardingService
}

// ServeHTTP godoc
//
//	@Summary		Requester Onboarding Endpoint
//	@Description	Create a requester account. Guarded by the deploy-time bootstrap token; responders join via invitation acceptance instead.
//	@Tags			Onboarding
//	@Accept			json
//	@Produce		json
//	@Param			request	body		callsdk.OnboardRequest	true	"Onboard request"
//	@Success		201		{object}	callsdk.SessionResponse	"account, session_token"
//	@Failure		400		{object}	callsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	callsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	callsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/onboard [post].
func (h *OnboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req callsdk.OnboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	account, session, err := h.OnboardingService.CreateRequester(r.Context(), service.OnboardParams{
		BootstrapToken: req.BootstrapToken,
		Email:          req.Email,
		Name:           req.Name,
		Password:       req.Password,
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
