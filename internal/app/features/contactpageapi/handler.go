// Package contactpageapi provides the contact page content endpoints: the
// heading, map location, and the form field descriptors the frontend renders
// the contact form from.
package contactpageapi

import (
	"net/http"
	"strings"

	contactpagestore "github.com/dalemusser/folioserve/internal/app/store/contactpage"
	"github.com/dalemusser/folioserve/internal/app/system/inputval"
	"github.com/dalemusser/folioserve/internal/app/system/jsonutil"
	"github.com/dalemusser/folioserve/internal/app/system/timeouts"
	"github.com/dalemusser/folioserve/internal/domain/models"
	"go.uber.org/zap"
)

// Handler handles contact page content API requests.
type Handler struct {
	store  *contactpagestore.Store
	logger *zap.Logger
}

// NewHandler creates a new contactpageapi handler.
func NewHandler(store *contactpagestore.Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Get handles GET / (public) and GET /admin.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "contact page fetch")
	defer cancel()

	content, err := h.store.Get(ctx)
	if err != nil {
		h.logger.Error("failed to fetch contact page content", zap.Error(err))
		jsonutil.StoreError(w, "Failed to fetch contact page content", err)
		return
	}
	jsonutil.OK(w, content)
}

type upsertInput struct {
	Settings   models.ContactPageSettings `json:"settings"`
	FormFields []models.FormField         `json:"form_fields"`
}

// Upsert handles PUT /admin. Form field types are a closed set and field
// names must be unique within the document.
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
	if msg := inputval.ValidateMapLocation(in.Settings.MapLocation); msg != "" {
		jsonutil.BadRequest(w, msg)
		return
	}
	for _, f := range in.FormFields {
		if strings.TrimSpace(f.Name) == "" {
			jsonutil.BadRequest(w, "Each form field needs a name.")
			return
		}
		if strings.TrimSpace(f.Label) == "" {
			jsonutil.BadRequest(w, "Form field "+f.Name+" needs a label.")
			return
		}
		if !models.IsValidFormFieldType(f.Type) {
			jsonutil.BadRequest(w, "Form field "+f.Name+" has an invalid type; must be one of: "+strings.Join(models.FormFieldTypes(), ", ")+".")
			return
		}
	}
	if dup := inputval.UniqueFieldNames(in.FormFields); dup != "" {
		jsonutil.BadRequest(w, "Duplicate form field name: "+dup+".")
		return
	}

	content := models.ContactPageContent{
		Settings:   in.Settings,
		FormFields: in.FormFields,
	}
	if content.FormFields == nil {
		content.FormFields = []models.FormField{}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "contact page upsert")
	defer cancel()

	saved, err := h.store.Upsert(ctx, content)
	if err != nil {
		h.logger.Error("failed to save contact page content", zap.Error(err))
		jsonutil.StoreError(w, "Failed to save contact page content", err)
		return
	}

	h.logger.Info("contact page content updated")
	jsonutil.OKMessage(w, saved, "Contact page content updated")
}
