package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/callbridgehq/callbridge/internal/callbridge/service"
	"github.com/callbridgehq/callbridge/internal/callbridge/store"
	"github.com/callbridgehq/callbridge/pkg/callsdk"
	"github.com/callbridgehq/callbridge/pkg/httpx"
)

// CallsHandler covers scheduling, reading and driving the lifecycle of calls.
type CallsHandler struct {
	CallService *service.CallService
}

// HandleSchedule godoc
//
//	@Summary		Schedule Call Endpoint
//	@Description	Book a call with a responder at an exact instant, consuming one call credit. The debit and the booking are atomic;
//	@Description	a scheduling conflict or missing credit leaves both untouched.
//	@Tags			Calls
//	@Accept			json
//	@Produce		json
//	@Param			request	body		callsdk.ScheduleCallRequest	true	"Schedule request"
//	@Success		201		{object}	callsdk.CallResponse		"scheduled call"
//	@Failure		400		{object}	callsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	callsdk.ErrorResponse		"error, error_description"
//	@Failure		429		{object}	callsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/calls [post].
func (h *CallsHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req callsdk.ScheduleCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	call, err := h.CallService.Schedule(ctx, httpx.AccountIDFromCtx(ctx), service.ScheduleParams{
		ResponderID: req.ResponderID,
		ScheduledAt: req.ScheduledAt,
		Duration:    req.DurationMinutes,
		Notes:       req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, callResponse(call))
}

// HandleGet godoc
//
//	@Summary		Get Call Endpoint
//	@Description	Return one of the caller's calls. Non-participants see 404.
//	@Tags			Calls
//	@Produce		json
//	@Param			id	path		string					true	"Call ID"
//	@Success		200	{object}	callsdk.CallResponse	"call"
//	@Failure		404	{object}	callsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/calls/{id} [get].
func (h *CallsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	call, err := h.CallService.Get(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, callResponse(call))
}

// HandleList godoc
//
//	@Summary		List Calls Endpoint
//	@Description	List the caller's calls, newest first, with optional status/upcoming filters and pagination.
//	@Tags			Calls
//	@Produce		json
//	@Param			status		query		string						false	"Filter by status"
//	@Param			upcoming	query		bool						false	"Only future scheduled calls"
//	@Param			page		query		int							false	"Page number (1-based)"
//	@Param			limit		query		int							false	"Page size"
//	@Success		200			{object}	callsdk.CallListResponse	"calls, total, page, limit"
//	@Failure		400			{object}	callsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/calls [get].
func (h *CallsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := store.CallListFilter{
		Status:   domain.CallStatus(q.Get("status")),
		Upcoming: q.Get("upcoming") == "true",
		Page:     page,
		Limit:    limit,
	}

	calls, total, err := h.CallService.List(ctx, httpx.AccountIDFromCtx(ctx), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := callsdk.CallListResponse{
		Calls: make([]callsdk.CallResponse, 0, len(calls)),
		Total: total,
		Page:  max(page, 1),
		Limit: limit,
	}
	for _, c := range calls {
		out.Calls = append(out.Calls, callResponse(c))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleStatus godoc
//
//	@Summary		Update Call Status Endpoint
//	@Description	Move a call through its lifecycle: scheduled to in_progress, cancelled or no_show; in_progress to completed.
//	@Description	Transitions outside the table are rejected with 409. Completed, cancelled and no_show are terminal.
//	@Tags			Calls
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Call ID"
//	@Param			request	body		callsdk.UpdateCallStatusRequest	true	"Status update"
//	@Success		200		{object}	callsdk.CallResponse			"updated call"
//	@Failure		400		{object}	callsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	callsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	callsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/calls/{id}/status [patch].
func (h *CallsHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req callsdk.UpdateCallStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Status == "" {
		writeBadRequest(w, "status is required")
		return
	}

	params := service.ProgressParams{
		ActualStartTime: req.ActualStartTime,
		ActualEndTime:   req.ActualEndTime,
	}
	if req.ConnectionQuality != nil {
		q := domain.ConnectionQuality(*req.ConnectionQuality)
		params.ConnectionQuality = &q
	}

	call, err := h.CallService.UpdateStatus(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx),
		domain.CallStatus(req.Status), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, callResponse(call))
}

// HandleCancel godoc
//
//	@Summary		Cancel Call Endpoint
//	@Description	Cancel a scheduled call. The requester's credit is refunded only when the cancellation comes at least 24 hours
//	@Description	before the slot; the response reports whether it was.
//	@Tags			Calls
//	@Produce		json
//	@Param			id	path		string						true	"Call ID"
//	@Success		200	{object}	callsdk.CancelCallResponse	"call, refunded"
//	@Failure		404	{object}	callsdk.ErrorResponse		"error, error_description"
//	@Failure		409	{object}	callsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/calls/{id}/cancel [post].
func (h *CallsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callID := r.PathValue("id")
	accountID := httpx.AccountIDFromCtx(ctx)

	refunded, err := h.CallService.Cancel(ctx, callID, accountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	call, err := h.CallService.Get(ctx, callID, accountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, callsdk.CancelCallResponse{
		Call:     callResponse(call),
		Refunded: refunded,
	})
}
