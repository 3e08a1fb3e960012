package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/callbridgehq/callbridge/internal/callbridge/service"
	"github.com/callbridgehq/callbridge/internal/callbridge/store"
	"github.com/callbridgehq/callbridge/pkg/httpx"
	"github.com/callbridgehq/callbridge/pkg/jwtx"
	"github.com/callbridgehq/callbridge/pkg/slogx"

	_ "github.com/callbridgehq/callbridge/api/callbridge" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	OnboardingService *service.OnboardingService
	InvitationService *service.InvitationService
	CallService       *service.CallService
	FeedbackService   *service.FeedbackService
	StatsService      *service.StatsService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerOnboarding()
	r.registerInvitations()
	r.registerCalls()
	r.registerStats()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			CallBridge Scheduling Service API
//	@version		0.1.0
//	@description	Invitation-gated call scheduling between requesters and responders: single-use invitation tokens with a monthly
//	@description	quota, credit-backed call booking with a strict status lifecycle, role-gated post-call feedback and read-only stats.
//	@description
//	@description				Session tokens are EdDSA-signed JWTs minted when an account is created.
//
//	@contact.name				CallBridge Team
//	@contact.url				https://github.com/callbridgehq/callbridge
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerOnboarding() {
	// POST /onboard - strict rate limit by IP (bootstrap-guarded signup)
	h := &OnboardHandler{OnboardingService: r.OnboardingService}
	r.Mux.Handle("POST /v1/onboard",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	createHandler := &InvitationCreateHandler{InvitationService: r.InvitationService}
	lookupHandler := &InvitationLookupHandler{InvitationService: r.InvitationService}
	acceptHandler := &InvitationAcceptHandler{InvitationService: r.InvitationService}
	rejectHandler := &InvitationRejectHandler{InvitationService: r.InvitationService}
	manageHandler := &InvitationManageHandler{InvitationService: r.InvitationService}

	// POST /invitations - requester-only, moderate rate limit by account
	r.Mux.Handle("POST /v1/invitations",
		httpx.Chain(createHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("requester"),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)

	// GET /invitations and /invitations/stats - requester-only reads
	r.Mux.Handle("GET /v1/invitations",
		httpx.Chain(http.HandlerFunc(manageHandler.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("requester"),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/invitations/stats",
		httpx.Chain(http.HandlerFunc(manageHandler.HandleStats),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("requester"),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)

	// DELETE /invitations/{id} - moderate rate limit by account
	r.Mux.Handle("DELETE /v1/invitations/{id}",
		httpx.Chain(http.HandlerFunc(manageHandler.HandleCancel),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("requester"),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)

	// Public token endpoints - strict rate limits by IP (abuse prevention)
	r.Mux.Handle("GET /v1/invitations/lookup",
		httpx.Chain(lookupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/invitations/accept",
		httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/invitations/reject",
		httpx.Chain(rejectHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerCalls() {
	h := &CallsHandler{CallService: r.CallService}
	feedbackHandler := &FeedbackHandler{FeedbackService: r.FeedbackService}

	// POST /calls - requester-only, moderate rate limit by account
	r.Mux.Handle("POST /v1/calls",
		httpx.Chain(http.HandlerFunc(h.HandleSchedule),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("requester"),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)

	// Reads - lenient rate limit by account
	r.Mux.Handle("GET /v1/calls",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/calls/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)

	// Lifecycle mutations - moderate rate limit by account
	r.Mux.Handle("PATCH /v1/calls/{id}/status",
		httpx.Chain(http.HandlerFunc(h.HandleStatus),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/calls/{id}/cancel",
		httpx.Chain(http.HandlerFunc(h.HandleCancel),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/calls/{id}/feedback",
		httpx.Chain(feedbackHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerStats() {
	h := &StatsHandler{StatsService: r.StatsService}

	r.Mux.Handle("GET /v1/stats/me",
		httpx.Chain(http.HandlerFunc(h.HandleUser),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/stats/platform",
		httpx.Chain(http.HandlerFunc(h.HandlePlatform),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
