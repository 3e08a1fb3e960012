package http

import (
	"net/http"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/callbridgehq/callbridge/internal/callbridge/service"
	"github.com/callbridgehq/callbridge/pkg/callsdk"
	"github.com/callbridgehq/callbridge/pkg/httpx"
)

type StatsHandler struct {
	StatsService *service.StatsService
}

// HandleUser godoc
//
//	@Summary		User Stats Endpoint
//	@Description	Return the caller's combined rollup. Invitation stats appear only for requesters.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	callsdk.UserStatsResponse	"account_id, role, invitations, calls"
//	@Failure		404	{object}	callsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/stats/me [get].
func (h *StatsHandler) HandleUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.StatsService.UserStats(ctx, httpx.AccountIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := callsdk.UserStatsResponse{
		AccountID: stats.AccountID,
		Role:      string(stats.Role),
		Calls:     callStatsResponse(stats.Calls),
	}
	if stats.Invitations != nil {
		inv := invitationStatsResponse(*stats.Invitations)
		out.Invitations = &inv
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandlePlatform godoc
//
//	@Summary		Platform Stats Endpoint
//	@Description	Return platform-wide totals across accounts, invitations, calls and ratings.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	callsdk.PlatformStatsResponse	"accounts_by_role, invitations_by_status, calls_by_status, ratings_submitted"
//	@Security		BearerAuth
//	@Router			/v1/stats/platform [get].
func (h *StatsHandler) HandlePlatform(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.PlatformStats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, callsdk.PlatformStatsResponse{
		AccountsByRole:      roleMap(stats.AccountsByRole),
		InvitationsByStatus: invitationStatusMap(stats.InvitationsByStatus),
		CallsByStatus:       callStatusMap(stats.CallsByStatus),
		RatingsSubmitted:    stats.RatingsSubmitted,
	})
}

func roleMap(in map[domain.AccountRole]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

func invitationStatusMap(in map[domain.InvitationStatus]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

func callStatusMap(in map[domain.CallStatus]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}
