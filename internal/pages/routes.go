package pages

import (
	"net/http"

	"github.com/MercerDigital/MD-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// SetupRoutes mounts the public page routes and the admin generation endpoint.
// Path correction runs before route matching so under-specified requests are
// redirected instead of 404ing.
func SetupRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(PathCorrection(h.Catalog))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Throttle(50, 100))
		r.Get("/{service}/{state}/{county}/{location}", h.GetArtifact)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminKeyMiddleware)
		r.Post("/admin/generate", h.Generate)
	})

	return r
}
