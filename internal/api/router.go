package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "modelarena/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"

	"modelarena/internal/config"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(chatHandler *ChatHandler, modelHandler *ModelHandler, accountHandler *AccountHandler, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	// These are applied to every request.
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request with useful info.
	r.Use(jsonRecoverer)        // Recovers from panics and returns a JSON 500 error.

	// Unmatched routes get the standard JSON error shape instead of chi's
	// plain-text default.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondWithJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   "Not found",
			Message: "The requested route does not exist.",
			Path:    req.URL.Path,
		})
	})

	// --- Public Routes ---

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Liveness/info payload for game clients and load balancers.
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		respondWithJSON(w, http.StatusOK, InfoResponse{
			Name:   "model-arena",
			Status: "ok",
			Endpoints: []string{
				"GET /api/models",
				"POST /api/chat",
				"POST /api/compare",
				"POST /api/accounts",
			},
		})
	})

	// A simple health check endpoint for container orchestration probes.
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Routes ---
	// Everything under /api shares a per-client-address request quota over a
	// rolling window.
	r.Route("/api", func(r chi.Router) {
		r.Use(httprate.LimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow()))

		// The request timeout must outlast the per-call upstream timeout, or
		// a slow upstream would be reported as a server timeout instead of a
		// classified gateway timeout.
		r.Use(middleware.Timeout(cfg.UpstreamTimeout() + 10*time.Second))

		// --- Chat Proxy ---
		r.Post("/chat", chatHandler.HandleChat)
		r.Post("/compare", chatHandler.HandleCompare)

		// --- Models ---
		r.Get("/models", modelHandler.HandleListModels)

		// --- Accounts ---
		r.Post("/accounts", accountHandler.HandleCreateAccount)
		r.Get("/accounts/{username}", accountHandler.HandleGetAccount)
		r.Delete("/accounts/{username}", accountHandler.HandleDeleteAccount)
	})

	return r
}

// jsonRecoverer recovers from handler panics and answers with the standard
// JSON error shape, so an unhandled failure never takes the process down or
// leaks a stack trace to the client.
func jsonRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil && rec != http.ErrAbortHandler {
				middleware.PrintPrettyStack(rec)
				respondWithJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error:   "Internal server error",
					Message: "An unexpected internal server error occurred.",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
