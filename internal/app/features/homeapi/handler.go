// Package homeapi provides the home page content endpoints.
//
// Endpoints:
//   - GET /api/home          - public content fetch
//   - GET /api/home/admin    - admin content fetch (token required)
//   - PUT /api/home/admin    - validated full replace (token required)
//
// The content lives in a single document; the store creates a
// default-populated one on first read.
package homeapi

import (
	"net/http"

	homestore "github.com/dalemusser/folioserve/internal/app/store/home"
	"github.com/dalemusser/folioserve/internal/app/system/inputval"
	"github.com/dalemusser/folioserve/internal/app/system/jsonutil"
	"github.com/dalemusser/folioserve/internal/app/system/timeouts"
	"github.com/dalemusser/folioserve/internal/domain/models"
	"go.uber.org/zap"
)

// Handler handles home content API requests.
type Handler struct {
	store  *homestore.Store
	logger *zap.Logger
}

// NewHandler creates a new homeapi handler.
func NewHandler(store *homestore.Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Get handles GET / (public) and GET /admin. Both return the full document;
// the admin dashboard and the public site render the same content.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "home content fetch")
	defer cancel()

	content, err := h.store.Get(ctx)
	if err != nil {
		h.logger.Error("failed to fetch home content", zap.Error(err))
		jsonutil.StoreError(w, "Failed to fetch home content", err)
		return
	}
	jsonutil.OK(w, content)
}

// upsertInput is the PUT payload. The hero name and title must be present;
// everything else may be empty.
type upsertInput struct {
	Hero        models.Hero        `json:"hero"`
	Quotes      []string           `json:"quotes"`
	Stats       []models.Stat      `json:"stats"`
	Skills      models.SkillsBlock `json:"skills"`
	GitUsername string             `json:"git_username"`
	Published   *bool              `json:"published"`
}

// Upsert handles PUT /admin. It validates the payload, then replaces the
// editable fields of the document in one atomic write.
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var in upsertInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	if in.Hero.Name == "" {
		jsonutil.BadRequest(w, "Hero name is required.")
		return
	}
	if in.Hero.Title == "" {
		jsonutil.BadRequest(w, "Hero title is required.")
		return
	}
	for _, st := range in.Stats {
		if st.Label == "" {
			jsonutil.BadRequest(w, "Each stat needs a label.")
			return
		}
		if st.Value < 0 {
			jsonutil.BadRequest(w, "Stat value for "+st.Label+" must not be negative.")
			return
		}
	}
	if msg := inputval.ValidateSkills(in.Skills); msg != "" {
		jsonutil.BadRequest(w, msg)
		return
	}

	content := models.HomeContent{
		Hero:        in.Hero,
		Quotes:      in.Quotes,
		Stats:       in.Stats,
		Skills:      in.Skills,
		GitUsername: in.GitUsername,
		Published:   true,
	}
	if in.Published != nil {
		content.Published = *in.Published
	}
	if content.Quotes == nil {
		content.Quotes = []string{}
	}
	if content.Stats == nil {
		content.Stats = []models.Stat{}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "home content upsert")
	defer cancel()

	saved, err := h.store.Upsert(ctx, content)
	if err != nil {
		h.logger.Error("failed to save home content", zap.Error(err))
		jsonutil.StoreError(w, "Failed to save home content", err)
		return
	}

	h.logger.Info("home content updated")
	jsonutil.OKMessage(w, saved, "Home content updated")
}
