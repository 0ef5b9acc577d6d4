package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"hackhub/internal/delivery/http/controllers"
	"hackhub/internal/delivery/http/helpers"
	"hackhub/internal/delivery/http/middleware"
	"hackhub/internal/domain"
	"hackhub/internal/metrics"
)

// RouterDeps holds everything NewRouter wires into routes.
type RouterDeps struct {
	Logger                *slog.Logger
	Verifier              domain.TokenVerifier
	Idempotency           *middleware.IdempotencyStore
	RateLimiter           *middleware.RateLimiter
	CORSAllowedOrigins    []string
	EventController       *controllers.EventController
	ApplicationController *controllers.ApplicationController
	TeamController        *controllers.TeamController
	ProjectController     *controllers.ProjectController
}

// NewRouter initializes the HTTP router with all application routes and wraps it with the
// shared middleware chain.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(d.Verifier, d.Logger)
	idempotent := middleware.Idempotency(d.Idempotency)

	// Events
	mux.HandleFunc("POST /api/events", auth(idempotent(d.EventController.CreateEvent)))
	mux.HandleFunc("GET /api/events", d.EventController.ListEvents)
	mux.HandleFunc("GET /api/events/{eventID}", d.EventController.GetEvent)

	// Applications
	mux.HandleFunc("POST /api/events/{eventID}/join", auth(idempotent(d.ApplicationController.Apply)))
	mux.HandleFunc("GET /api/events/{eventID}/application", auth(d.ApplicationController.GetMyApplication))

	// Teams
	mux.HandleFunc("POST /api/events/{eventID}/teams", auth(idempotent(d.TeamController.CreateTeam)))
	mux.HandleFunc("POST /api/teams/{teamID}/members", auth(d.TeamController.JoinTeam))
	mux.HandleFunc("GET /api/teams/{teamID}/members", auth(d.TeamController.ListMembers))

	// Projects
	mux.HandleFunc("POST /api/projects", auth(idempotent(d.ProjectController.SubmitProject)))
	mux.HandleFunc("GET /api/events/{eventID}/projects", d.ProjectController.ListEventProjects)

	// Operational
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.RateLimit(d.RateLimiter, handler)
	handler = middleware.CORS(d.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(d.Logger, handler)
	return handler
}
