// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	aboutapifeature "github.com/dalemusser/folioserve/internal/app/features/aboutapi"
	authapifeature "github.com/dalemusser/folioserve/internal/app/features/authapi"
	contactpageapifeature "github.com/dalemusser/folioserve/internal/app/features/contactpageapi"
	contactsapifeature "github.com/dalemusser/folioserve/internal/app/features/contactsapi"
	healthfeature "github.com/dalemusser/folioserve/internal/app/features/health"
	homeapifeature "github.com/dalemusser/folioserve/internal/app/features/homeapi"
	projectsapifeature "github.com/dalemusser/folioserve/internal/app/features/projectsapi"
	uploadapifeature "github.com/dalemusser/folioserve/internal/app/features/uploadapi"
	aboutstore "github.com/dalemusser/folioserve/internal/app/store/about"
	adminstore "github.com/dalemusser/folioserve/internal/app/store/admin"
	contactstore "github.com/dalemusser/folioserve/internal/app/store/contact"
	contactpagestore "github.com/dalemusser/folioserve/internal/app/store/contactpage"
	homestore "github.com/dalemusser/folioserve/internal/app/store/home"
	projectsstore "github.com/dalemusser/folioserve/internal/app/store/projects"
	"github.com/dalemusser/folioserve/internal/app/system/apicors"
	"github.com/dalemusser/folioserve/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// maxJSONBody caps JSON request bodies. Uploads have their own multipart
// limit in uploadapi.
const maxJSONBody = 10 << 20 // 10 MB

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. Every endpoint is JSON; the admin side is gated
// by bearer tokens issued at login.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens, err := auth.NewTokenManager(appCfg.TokenSecret, appCfg.TokenTTL, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	// Stores share the one connected database handle.
	db := deps.MongoDatabase
	homeStore := homestore.New(db)
	aboutStore := aboutstore.New(db)
	contactPageStore := contactpagestore.New(db)
	projectsStore := projectsstore.New(db)
	contactStore := contactstore.New(db)
	adminStore := adminstore.New(db)

	homeHandler := homeapifeature.NewHandler(homeStore, logger)
	aboutHandler := aboutapifeature.NewHandler(aboutStore, logger)
	contactPageHandler := contactpageapifeature.NewHandler(contactPageStore, logger)
	projectsHandler := projectsapifeature.NewHandler(projectsStore, logger)
	contactsHandler := contactsapifeature.NewHandler(contactStore, deps.Mailer, appCfg.ContactNotifyEmail, logger)
	authHandler := authapifeature.NewHandler(adminStore, tokens, logger)
	uploadHandler := uploadapifeature.NewHandler(deps.FileStorage, logger)
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)

	r := chi.NewRouter()

	// Global middleware. CORS must run early so preflight requests get
	// answered before anything else.
	r.Use(chimw.RealIP)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(apicors.Middleware(corsOrigins(appCfg)...))

	r.Route("/api", func(api chi.Router) {
		api.Group(func(jr chi.Router) {
			jr.Use(limitBody(maxJSONBody))
			jr.Mount("/home", homeapifeature.Routes(homeHandler, tokens))
			jr.Mount("/about", aboutapifeature.Routes(aboutHandler, tokens))
			jr.Mount("/contact-page", contactpageapifeature.Routes(contactPageHandler, tokens))
			jr.Mount("/projects", projectsapifeature.Routes(projectsHandler, tokens))
			jr.Mount("/contacts", contactsapifeature.Routes(contactsHandler, tokens))
			jr.Mount("/auth", authapifeature.Routes(authHandler, tokens))
		})

		// Uploads are multipart, outside the JSON body limit.
		api.Mount("/upload", uploadapifeature.Routes(uploadHandler, tokens))

		api.Mount("/health", healthfeature.Routes(healthHandler))
	})

	// Root-level probes for orchestrators that expect the bare paths.
	healthfeature.MountRootEndpoints(r, healthHandler)

	logger.Info("routes configured")
	return r, nil
}

// corsOrigins returns the configured allowed origins, or the local dev
// origins when none are configured.
func corsOrigins(appCfg AppConfig) []string {
	if strings.TrimSpace(appCfg.CORSOrigins) == "" {
		return apicors.DefaultDevOrigins()
	}
	parts := strings.Split(appCfg.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// limitBody bounds request body size so a hostile client cannot stream an
// arbitrarily large JSON document.
func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
