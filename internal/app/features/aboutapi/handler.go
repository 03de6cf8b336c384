// Package aboutapi provides the about page content endpoints.
//
// The intro description and experience/education descriptions accept rich
// text from the dashboard editor; they are sanitized before persisting.
package aboutapi

import (
	"net/http"
	"strings"

	aboutstore "github.com/dalemusser/folioserve/internal/app/store/about"
	"github.com/dalemusser/folioserve/internal/app/system/htmlsanitize"
	"github.com/dalemusser/folioserve/internal/app/system/inputval"
	"github.com/dalemusser/folioserve/internal/app/system/jsonutil"
	"github.com/dalemusser/folioserve/internal/app/system/timeouts"
	"github.com/dalemusser/folioserve/internal/domain/models"
	"go.uber.org/zap"
)

// Handler handles about content API requests.
type Handler struct {
	store  *aboutstore.Store
	logger *zap.Logger
}

// NewHandler creates a new aboutapi handler.
func NewHandler(store *aboutstore.Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Get handles GET / (public) and GET /admin.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "about content fetch")
	defer cancel()

	content, err := h.store.Get(ctx)
	if err != nil {
		h.logger.Error("failed to fetch about content", zap.Error(err))
		jsonutil.StoreError(w, "Failed to fetch about content", err)
		return
	}
	jsonutil.OK(w, content)
}

type upsertInput struct {
	Intro      models.AboutIntro   `json:"intro"`
	Experience []models.Experience `json:"experience"`
	Education  []models.Education  `json:"education"`
	Skills     models.SkillsBlock  `json:"skills"`
}

// Upsert handles PUT /admin.
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var in upsertInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	if strings.TrimSpace(in.Intro.Name) == "" {
		jsonutil.BadRequest(w, "Intro name is required.")
		return
	}
	if strings.TrimSpace(in.Intro.Title) == "" {
		jsonutil.BadRequest(w, "Intro title is required.")
		return
	}
	if strings.TrimSpace(in.Intro.Description) == "" {
		jsonutil.BadRequest(w, "Intro description is required.")
		return
	}
	if strings.TrimSpace(in.Intro.ProfileImageURL) == "" {
		jsonutil.BadRequest(w, "Intro profile image is required.")
		return
	}
	if !nonBlankList(in.Intro.Tags) {
		jsonutil.BadRequest(w, "At least one intro tag is required.")
		return
	}
	if !nonBlankList(in.Intro.ScrollingSkills) {
		jsonutil.BadRequest(w, "At least one scrolling skill is required.")
		return
	}
	for _, exp := range in.Experience {
		if strings.TrimSpace(exp.Title) == "" || strings.TrimSpace(exp.Company) == "" || strings.TrimSpace(exp.Period) == "" {
			jsonutil.BadRequest(w, "Each experience entry needs a title, company, and period.")
			return
		}
	}
	for _, edu := range in.Education {
		if strings.TrimSpace(edu.Degree) == "" || strings.TrimSpace(edu.University) == "" || strings.TrimSpace(edu.Year) == "" {
			jsonutil.BadRequest(w, "Each education entry needs a degree, university, and year.")
			return
		}
	}
	if msg := inputval.ValidateSkills(in.Skills); msg != "" {
		jsonutil.BadRequest(w, msg)
		return
	}

	in.Intro.Description = htmlsanitize.Sanitize(in.Intro.Description)
	for i := range in.Experience {
		in.Experience[i].Description = htmlsanitize.Sanitize(in.Experience[i].Description)
	}
	for i := range in.Education {
		in.Education[i].Description = htmlsanitize.Sanitize(in.Education[i].Description)
	}

	content := models.AboutContent{
		Intro:      in.Intro,
		Experience: in.Experience,
		Education:  in.Education,
		Skills:     in.Skills,
	}
	if content.Experience == nil {
		content.Experience = []models.Experience{}
	}
	if content.Education == nil {
		content.Education = []models.Education{}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "about content upsert")
	defer cancel()

	saved, err := h.store.Upsert(ctx, content)
	if err != nil {
		h.logger.Error("failed to save about content", zap.Error(err))
		jsonutil.StoreError(w, "Failed to save about content", err)
		return
	}

	h.logger.Info("about content updated")
	jsonutil.OKMessage(w, saved, "About content updated")
}

// nonBlankList reports whether items has at least one entry and no blank
// entries.
func nonBlankList(items []string) bool {
	if len(items) == 0 {
		return false
	}
	for _, s := range items {
		if strings.TrimSpace(s) == "" {
			return false
		}
	}
	return true
}
