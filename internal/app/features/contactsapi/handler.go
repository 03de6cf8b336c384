// Package contactsapi provides the contact message inbox endpoints.
//
// The public contact form POSTs here; everything else is the admin side of
// the inbox: paginated listing, per-status counts, moderation, and deletion.
package contactsapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	contactstore "github.com/dalemusser/folioserve/internal/app/store/contact"
	"github.com/dalemusser/folioserve/internal/app/system/inputval"
	"github.com/dalemusser/folioserve/internal/app/system/jsonutil"
	"github.com/dalemusser/folioserve/internal/app/system/mailer"
	"github.com/dalemusser/folioserve/internal/app/system/network"
	"github.com/dalemusser/folioserve/internal/app/system/normalize"
	"github.com/dalemusser/folioserve/internal/app/system/timeouts"
	"github.com/dalemusser/folioserve/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)


// Handler handles contact message API requests.
type Handler struct {
	store      *contactstore.Store
	mail       *mailer.Mailer
	notifyAddr string // admin email for new-message notifications, empty disables
	logger     *zap.Logger
}

// NewHandler creates a new contactsapi handler. mail may be nil when
// notifications are not configured.
func NewHandler(store *contactstore.Store, mail *mailer.Mailer, notifyAddr string, logger *zap.Logger) *Handler {
	return &Handler{
		store:      store,
		mail:       mail,
		notifyAddr: notifyAddr,
		logger:     logger,
	}
}

// createInput is the public submission payload.
type createInput struct {
	Name    string `json:"name" validate:"required" label:"Name"`
	Email   string `json:"email" validate:"required,email" label:"Email"`
	Mobile  string `json:"mobile" validate:"required,mobile" label:"Mobile number"`
	Message string `json:"message" validate:"required,max=5000" label:"Message"`
}

// Create handles POST / from the public contact form.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	in.Name = normalize.Name(in.Name)
	in.Email = normalize.Email(in.Email)
	in.Mobile = normalize.Mobile(in.Mobile)
	in.Message = strings.TrimSpace(in.Message)

	if result := inputval.Validate(in); result.HasErrors() {
		jsonutil.BadRequest(w, result.First())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "contact message create")
	defer cancel()

	msg, err := h.store.Create(ctx, models.ContactMessage{
		Name:     in.Name,
		Email:    in.Email,
		Mobile:   in.Mobile,
		Message:  in.Message,
		SourceIP: network.ClientIP(r),
	})
	if err != nil {
		h.logger.Error("failed to store contact message", zap.Error(err))
		jsonutil.StoreError(w, "Failed to submit message", err)
		return
	}

	h.logger.Info("contact message received",
		zap.String("id", msg.ID.Hex()),
		zap.String("ip", msg.SourceIP),
	)

	if h.mail != nil && h.mail.Enabled() && h.notifyAddr != "" {
		// Best effort; a mail failure must not fail the submission.
		go func(m models.ContactMessage) {
			if err := h.mail.NotifyContactMessage(h.notifyAddr, m); err != nil {
				h.logger.Warn("contact notification mail failed", zap.Error(err))
			}
		}(*msg)
	}

	jsonutil.Created(w, msg, "Message submitted")
}

// List handles GET / for the admin inbox. Query params: status, page, limit,
// sort (newest or oldest).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	lo := contactstore.ListOptions{}

	if status := normalize.Status(r.URL.Query().Get("status")); status != "" {
		if !models.IsValidContactStatus(status) {
			jsonutil.BadRequest(w, "Status must be one of: "+strings.Join(models.ContactStatuses(), ", ")+".")
			return
		}
		lo.Status = status
	}
	if p := r.URL.Query().Get("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			jsonutil.BadRequest(w, "Page must be a positive integer.")
			return
		}
		lo.Page = n
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			jsonutil.BadRequest(w, "Limit must be a positive integer.")
			return
		}
		lo.Limit = n
	}
	if sort := strings.ToLower(normalize.QueryParam(r.URL.Query().Get("sort"))); sort != "" {
		if sort != contactstore.SortNewest && sort != contactstore.SortOldest {
			jsonutil.BadRequest(w, "Sort must be newest or oldest.")
			return
		}
		lo.Sort = sort
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.logger, "contact message list")
	defer cancel()

	page, err := h.store.List(ctx, lo)
	if err != nil {
		h.logger.Error("failed to list contact messages", zap.Error(err))
		jsonutil.StoreError(w, "Failed to fetch messages", err)
		return
	}
	jsonutil.OK(w, page)
}

// Stats handles GET /stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.logger, "contact message stats")
	defer cancel()

	stats, err := h.store.GetStats(ctx)
	if err != nil {
		h.logger.Error("failed to aggregate contact stats", zap.Error(err))
		jsonutil.StoreError(w, "Failed to fetch stats", err)
		return
	}
	jsonutil.OK(w, stats)
}

// Get handles GET /{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "contact message fetch")
	defer cancel()

	msg, err := h.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonutil.NotFound(w, "Message not found")
			return
		}
		h.logger.Error("failed to fetch contact message", zap.Error(err))
		jsonutil.StoreError(w, "Failed to fetch message", err)
		return
	}
	jsonutil.OK(w, msg)
}

// updateInput is the moderation payload. Absent fields stay untouched.
type updateInput struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// UpdateStatus handles PATCH /{id}.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var in updateInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	if in.Status == nil && in.Notes == nil {
		jsonutil.BadRequest(w, "Nothing to update.")
		return
	}

	upd := contactstore.StatusUpdate{Notes: in.Notes}
	if in.Status != nil {
		status := normalize.Status(*in.Status)
		if !models.IsValidContactStatus(status) {
			jsonutil.BadRequest(w, "Status must be one of: "+strings.Join(models.ContactStatuses(), ", ")+".")
			return
		}
		upd.Status = &status
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "contact message update")
	defer cancel()

	msg, err := h.store.UpdateStatus(ctx, id, upd)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonutil.NotFound(w, "Message not found")
			return
		}
		h.logger.Error("failed to update contact message", zap.Error(err))
		jsonutil.StoreError(w, "Failed to update message", err)
		return
	}

	h.logger.Info("contact message updated",
		zap.String("id", msg.ID.Hex()),
		zap.String("status", msg.Status),
	)
	jsonutil.OKMessage(w, msg, "Message updated")
}

// Delete handles DELETE /{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "contact message delete")
	defer cancel()

	if err := h.store.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonutil.NotFound(w, "Message not found")
			return
		}
		h.logger.Error("failed to delete contact message", zap.Error(err))
		jsonutil.StoreError(w, "Failed to delete message", err)
		return
	}

	h.logger.Info("contact message deleted", zap.String("id", id.Hex()))
	jsonutil.OKMessage(w, nil, "Message deleted")
}

// pathID parses the {id} URL parameter; on failure it writes a 400 and
// returns ok=false.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		jsonutil.BadRequest(w, "Invalid message id")
		return primitive.NilObjectID, false
	}
	return id, true
}
