// Package projectsapi provides the projects page content endpoints.
//
// At most one project may be flagged featured. Rather than rejecting a
// payload with several featured projects, the first keeps the flag and the
// rest are demoted before the document is persisted.
package projectsapi

import (
	"net/http"
	"strings"

	projectsstore "github.com/dalemusser/folioserve/internal/app/store/projects"
	"github.com/dalemusser/folioserve/internal/app/system/htmlsanitize"
	"github.com/dalemusser/folioserve/internal/app/system/jsonutil"
	"github.com/dalemusser/folioserve/internal/app/system/timeouts"
	"github.com/dalemusser/folioserve/internal/domain/models"
	"go.uber.org/zap"
)

// Handler handles projects content API requests.
type Handler struct {
	store  *projectsstore.Store
	logger *zap.Logger
}

// NewHandler creates a new projectsapi handler.
func NewHandler(store *projectsstore.Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Get handles GET / (public) and GET /admin.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "projects content fetch")
	defer cancel()

	content, err := h.store.Get(ctx)
	if err != nil {
		h.logger.Error("failed to fetch projects content", zap.Error(err))
		jsonutil.StoreError(w, "Failed to fetch projects content", err)
		return
	}
	jsonutil.OK(w, content)
}

type upsertInput struct {
	Settings models.ProjectsSettings `json:"settings"`
	Projects []models.Project        `json:"projects"`
	Details  []models.ProjectDetail  `json:"details"`
}

// demoteExtraFeatured clears the featured flag on every project after the
// first featured one.
func demoteExtraFeatured(projects []models.Project) {
	seen := false
	for i := range projects {
		if !projects[i].Featured {
			continue
		}
		if seen {
			projects[i].Featured = false
		}
		seen = true
	}
}

// Upsert handles PUT /admin.
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var in upsertInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	if strings.TrimSpace(in.Settings.Title) == "" {
		jsonutil.BadRequest(w, "Page title is required.")
		return
	}
	seen := make(map[string]bool, len(in.Projects))
	for _, p := range in.Projects {
		if strings.TrimSpace(p.ProjectID) == "" {
			jsonutil.BadRequest(w, "Each project needs a project_id.")
			return
		}
		if strings.TrimSpace(p.Title) == "" {
			jsonutil.BadRequest(w, "Project "+p.ProjectID+" needs a title.")
			return
		}
		if seen[p.ProjectID] {
			jsonutil.BadRequest(w, "Duplicate project_id: "+p.ProjectID+".")
			return
		}
		seen[p.ProjectID] = true
	}
	for _, d := range in.Details {
		if strings.TrimSpace(d.ProjectID) == "" {
			jsonutil.BadRequest(w, "Each project detail needs a project_id.")
			return
		}
	}

	demoteExtraFeatured(in.Projects)
	for i := range in.Details {
		in.Details[i].Description = htmlsanitize.Sanitize(in.Details[i].Description)
	}

	content := models.ProjectsContent{
		Settings: in.Settings,
		Projects: in.Projects,
		Details:  in.Details,
	}
	if content.Projects == nil {
		content.Projects = []models.Project{}
	}
	if content.Details == nil {
		content.Details = []models.ProjectDetail{}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "projects content upsert")
	defer cancel()

	saved, err := h.store.Upsert(ctx, content)
	if err != nil {
		h.logger.Error("failed to save projects content", zap.Error(err))
		jsonutil.StoreError(w, "Failed to save projects content", err)
		return
	}

	h.logger.Info("projects content updated", zap.Int("projects", len(saved.Projects)))
	jsonutil.OKMessage(w, saved, "Projects content updated")
}
