package contactsapi

import (
	"net/http"

	"github.com/dalemusser/folioserve/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the contact message endpoints.
//
// When mounted at /api/contacts:
//   - POST   /api/contacts        - public form submission
//   - GET    /api/contacts        - admin inbox listing (paginated)
//   - GET    /api/contacts/stats  - admin per-status counts
//   - GET    /api/contacts/{id}   - admin single message
//   - PATCH  /api/contacts/{id}   - admin status/notes update
//   - DELETE /api/contacts/{id}   - admin delete
func Routes(h *Handler, tm *auth.TokenManager) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)

	r.Group(func(ar chi.Router) {
		ar.Use(tm.RequireAdmin)
		ar.Get("/", h.List)
		ar.Get("/stats", h.Stats)
		ar.Get("/{id}", h.Get)
		ar.Patch("/{id}", h.UpdateStatus)
		ar.Delete("/{id}", h.Delete)
	})

	return r
}
