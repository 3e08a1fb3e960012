package http

import (
	"net/http"
	"time"

	"github.com/callbridgehq/callbridge/internal/callbridge/store"
	"github.com/callbridgehq/callbridge/pkg/callsdk"
	"github.com/callbridgehq/callbridge/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Endpoint
//	@Description	Readiness probe checking critical dependencies. Returns 503 with a degraded status when the database is unreachable.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	callsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	callsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &callsdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, callsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
