package authapi

import (
	"net/http"

	"github.com/dalemusser/folioserve/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the admin account endpoints.
func Routes(h *Handler, tm *auth.TokenManager) http.Handler {
	r := chi.NewRouter()

	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)

	r.Route("/profile", func(pr chi.Router) {
		pr.Use(tm.RequireAdmin)
		pr.Get("/", h.Profile)
		pr.Put("/", h.UpdateProfile)
	})

	return r
}
