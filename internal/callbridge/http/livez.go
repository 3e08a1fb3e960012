package http

import (
	"net/http"
	"time"

	"github.com/callbridgehq/callbridge/pkg/callsdk"
	"github.com/callbridgehq/callbridge/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Liveness Endpoint
//	@Description	Liveness probe returning basic service health, uptime and version. Always 200 while the process is up.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	callsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, callsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
