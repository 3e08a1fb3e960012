package http

import (
	"net/http"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/callbridgehq/callbridge/internal/callbridge/service"
	"github.com/callbridgehq/callbridge/pkg/callsdk"
	"github.com/callbridgehq/callbridge/pkg/httpx"
)

// InvitationManageHandler covers the requester-side management endpoints:
// listing, cancelling and rollups of their own invitations.
type InvitationManageHandler struct {
	InvitationService *service.InvitationService
}

// HandleList godoc
//
//	@Summary		List Invitations Endpoint
//	@Description	List the caller's invitations, newest first, optionally filtered by status.
//	@Tags			Invitations
//	@Produce		json
//	@Param			status	query		string							false	"Filter by status (pending, accepted, rejected, expired, cancelled)"
//	@Success		200		{object}	callsdk.InvitationListResponse	"invitations"
//	@Failure		400		{object}	callsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [get].
func (h *InvitationManageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := domain.InvitationStatus(r.URL.Query().Get("status"))
	invitations, err := h.InvitationService.List(ctx, httpx.AccountIDFromCtx(ctx), status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := callsdk.InvitationListResponse{
		Invitations: make([]callsdk.InvitationResponse, 0, len(invitations)),
	}
	for _, inv := range invitations {
		out.Invitations = append(out.Invitations, invitationResponse(inv))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCancel godoc
//
//	@Summary		Cancel Invitation Endpoint
//	@Description	Withdraw a pending invitation the caller issued. The token becomes permanently unusable.
//	@Tags			Invitations
//	@Param			id	path	string	true	"Invitation ID"
//	@Success		204	"invitation cancelled"
//	@Failure		404	{object}	callsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id} [delete].
func (h *InvitationManageHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.InvitationService.Cancel(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleStats godoc
//
//	@Summary		Invitation Stats Endpoint
//	@Description	Return the caller's invitation rollup: totals per status, this month's usage and acceptance rate.
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{object}	callsdk.InvitationStatsResponse	"total, by_status, issued_this_month, acceptance_rate"
//	@Security		BearerAuth
//	@Router			/v1/invitations/stats [get].
func (h *InvitationManageHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.InvitationService.Stats(ctx, httpx.AccountIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invitationStatsResponse(stats))
}
