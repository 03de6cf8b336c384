package projectsapi

import (
	"net/http"

	"github.com/dalemusser/folioserve/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the projects content endpoints.
func Routes(h *Handler, tm *auth.TokenManager) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)

	r.Route("/admin", func(ar chi.Router) {
		ar.Use(tm.RequireAdmin)
		ar.Get("/", h.Get)
		ar.Put("/", h.Upsert)
	})

	return r
}
