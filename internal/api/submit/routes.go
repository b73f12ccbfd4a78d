package submit

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the page and state routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.Page)
	r.Get("/api/state", h.GetState)
}

// RegisterUploadRoutes registers the form upload route. It must not sit behind
// a request deadline: files are buffered on the request context.
func RegisterUploadRoutes(r chi.Router, h *Handler) {
	r.Post("/submit", h.Submit)
}
