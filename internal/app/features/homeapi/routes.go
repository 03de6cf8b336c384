package homeapi

import (
	"net/http"

	"github.com/dalemusser/folioserve/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the home content endpoints.
//
// When mounted at /api/home:
//   - GET /api/home        - public fetch
//   - GET /api/home/admin  - admin fetch
//   - PUT /api/home/admin  - admin replace
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
