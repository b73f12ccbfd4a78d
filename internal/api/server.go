package api

import (
	"net/http"
	"time"

	"github.com/futig/shortlist-web/internal/api/docs"
	"github.com/futig/shortlist-web/internal/api/middleware"
	submitapi "github.com/futig/shortlist-web/internal/api/submit"
	"github.com/futig/shortlist-web/internal/config"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	submitHandler *submitapi.Handler,
	stateCfg config.StateConfig,
	requestTimeout time.Duration,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)   // Recover from panics
	r.Use(chimiddleware.RequestID)   // Add request ID
	r.Use(middleware.Logger(logger)) // Log requests

	// Bounded routes
	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.Timeout(requestTimeout))

		// Health check endpoint
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"healthy"}`))
		})

		// Swagger documentation endpoints
		docs.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(stateCfg))
			submitapi.RegisterRoutes(r, submitHandler)
		})
	})

	// Uploads run as long as the client keeps sending
	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(stateCfg))
		submitapi.RegisterUploadRoutes(r, submitHandler)
	})

	return r
}
