package http

import (
	"encoding/json"
	"net/http"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/callbridgehq/callbridge/internal/callbridge/service"
	"github.com/callbridgehq/callbridge/pkg/callsdk"
	"github.com/callbridgehq/callbridge/pkg/httpx"
)

type FeedbackHandler struct {
	FeedbackService *service.FeedbackService
}

// ServeHTTP godoc
//
//	@Summary		Submit Feedback Endpoint
//	@Description	Record post-call feedback on a completed call. Requesters may set rating, feedback, outcome, follow-up date and
//	@Description	deal value; responders only rating and feedback. Partial updates: omitted fields keep their stored values.
//	@Tags			Feedback
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Call ID"
//	@Param			request	body		callsdk.FeedbackRequest	true	"Feedback"
//	@Success		200		{object}	callsdk.CallResponse	"updated call"
//	@Failure		400		{object}	callsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	callsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/calls/{id}/feedback [post].
func (h *FeedbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req callsdk.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	params := service.FeedbackParams{
		Rating:       req.Rating,
		Feedback:     req.Feedback,
		FollowUpDate: req.FollowUpDate,
		DealValue:    req.DealValue,
	}
	if req.Outcome != nil {
		o := domain.CallOutcome(*req.Outcome)
		params.Outcome = &o
	}

	call, err := h.FeedbackService.Submit(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, callResponse(call))
}
