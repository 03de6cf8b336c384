// Package apicors provides CORS middleware for the JSON API.
//
// The frontend SPA and the admin dashboard run on a fixed set of origins and
// send credentials, so the middleware echoes only allow-listed origins and
// sets Access-Control-Allow-Credentials. A wildcard origin is not possible
// here: browsers reject "*" when credentials are enabled.
package apicors

import (
	"net/http"
	"strings"
)

// Middleware returns CORS middleware that allows the given origins with
// credentials enabled. Preflight OPTIONS requests are answered directly.
func Middleware(allowedOrigins ...string) func(http.Handler) http.Handler {
	originSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originSet[strings.TrimRight(o, "/")] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" {
				if _, allowed := originSet[strings.TrimRight(origin, "/")]; allowed {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Set("Vary", "Origin")
				}
				// Unknown origins get no CORS headers; the browser blocks them.
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept")
			w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// DefaultDevOrigins is the allow-list used when no origins are configured:
// the local development hosts the React frontend and dashboard run on.
func DefaultDevOrigins() []string {
	return []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
}
