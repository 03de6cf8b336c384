// Package uploadapi provides the media upload endpoints. Files are relayed
// straight to the configured storage backend (local disk or S3); only the
// resulting public URL is returned, nothing is tracked in the database.
package uploadapi

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dalemusser/folioserve/internal/app/system/auth"
	"github.com/dalemusser/folioserve/internal/app/system/jsonutil"
	"github.com/dalemusser/folioserve/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxUploadSize is the per-request multipart form limit.
const MaxUploadSize = 32 << 20 // 32 MB

// MaxFilesPerRequest caps a multiple-file upload.
const MaxFilesPerRequest = 10

// allowedExtensions is the closed set of accepted media file extensions.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".avif": true,
	".svg":  true,
	".mp4":  true,
	".webm": true,
	".pdf":  true,
}

// Handler handles media upload API requests.
type Handler struct {
	fileStorage storage.Store
	logger      *zap.Logger
}

// NewHandler creates a new uploadapi handler.
func NewHandler(fileStorage storage.Store, logger *zap.Logger) *Handler {
	return &Handler{fileStorage: fileStorage, logger: logger}
}

// UploadedFile is the record returned for each stored file.
type UploadedFile struct {
	OriginalName string `json:"original_name"`
	Path         string `json:"path"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type"`
}

// Single handles POST /single: one file under the "file" form field.
func (h *Handler) Single(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		jsonutil.BadRequest(w, "File too large (max 32MB)")
		return
	}
	defer h.cleanupForm(r)

	f, header, err := r.FormFile("file")
	if err != nil {
		jsonutil.BadRequest(w, "A file is required under the \"file\" field.")
		return
	}
	defer f.Close()

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.logger, "file upload")
	defer cancel()

	uploaded, err := h.storeOne(ctx, f, header)
	if err != nil {
		if ve, ok := err.(*validationError); ok {
			jsonutil.BadRequest(w, ve.msg)
			return
		}
		h.logger.Error("failed to store uploaded file",
			zap.String("name", header.Filename),
			zap.Error(err),
		)
		jsonutil.StoreError(w, "Failed to store file", err)
		return
	}

	h.logger.Info("file uploaded",
		zap.String("path", uploaded.Path),
		zap.Int64("size", uploaded.Size),
	)
	jsonutil.Created(w, uploaded, "File uploaded")
}

// Multiple handles POST /multiple: several files under the "files" form field.
// The upload is all-or-nothing; a failure removes everything stored so far.
func (h *Handler) Multiple(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		jsonutil.BadRequest(w, "Upload too large (max 32MB)")
		return
	}
	defer h.cleanupForm(r)

	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		jsonutil.BadRequest(w, "At least one file is required under the \"files\" field.")
		return
	}
	headers := r.MultipartForm.File["files"]
	if len(headers) > MaxFilesPerRequest {
		jsonutil.BadRequest(w, fmt.Sprintf("At most %d files per request.", MaxFilesPerRequest))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.logger, "multi-file upload")
	defer cancel()

	uploaded := make([]UploadedFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			h.removeAll(uploaded)
			jsonutil.BadRequest(w, "Could not read "+header.Filename+".")
			return
		}

		one, err := h.storeOne(ctx, f, header)
		f.Close()
		if err != nil {
			h.removeAll(uploaded)
			if ve, ok := err.(*validationError); ok {
				jsonutil.BadRequest(w, ve.msg)
				return
			}
			h.logger.Error("failed to store uploaded file",
				zap.String("name", header.Filename),
				zap.Error(err),
			)
			jsonutil.StoreError(w, "Failed to store files", err)
			return
		}
		uploaded = append(uploaded, *one)
	}

	h.logger.Info("files uploaded", zap.Int("count", len(uploaded)))
	jsonutil.Created(w, uploaded, "Files uploaded")
}

// validationError marks a rejected file as a caller error rather than a
// storage failure.
type validationError struct{ msg string }

func (e *validationError) Error() string { return e.msg }

// storeOne validates one file and writes it under uploads/YYYY/MM/uuid.ext.
func (h *Handler) storeOne(ctx context.Context, f multipart.File, header *multipart.FileHeader) (*UploadedFile, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return nil, &validationError{msg: "File type " + ext + " is not allowed."}
	}
	if header.Size > MaxUploadSize {
		return nil, &validationError{msg: header.Filename + " is too large (max 32MB)."}
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now().UTC()
	name := uuid.New().String() + ext
	path := fmt.Sprintf("uploads/%04d/%02d/%s", now.Year(), int(now.Month()), name)

	opts := &storage.PutOptions{ContentType: contentType}
	if err := h.fileStorage.Put(ctx, path, f, opts); err != nil {
		return nil, err
	}

	return &UploadedFile{
		OriginalName: header.Filename,
		Path:         path,
		URL:          h.fileStorage.URL(path),
		Size:         header.Size,
		ContentType:  contentType,
	}, nil
}

// removeAll best-effort deletes files stored during a failed batch.
func (h *Handler) removeAll(files []UploadedFile) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), timeouts.Short(), h.logger, "upload cleanup")
	defer cancel()
	for _, f := range files {
		if err := h.fileStorage.Delete(ctx, f.Path); err != nil {
			h.logger.Warn("failed to clean up uploaded file",
				zap.String("path", f.Path),
				zap.Error(err),
			)
		}
	}
}

// cleanupForm removes the multipart temp files once the handler is done.
func (h *Handler) cleanupForm(r *http.Request) {
	if r.MultipartForm != nil {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.logger.Warn("failed to remove multipart temp files", zap.Error(err))
		}
	}
}

// Routes returns a router with the upload endpoints. All uploads require an
// admin token.
func Routes(h *Handler, tm *auth.TokenManager) http.Handler {
	r := chi.NewRouter()
	r.Use(tm.RequireAdmin)
	r.Post("/single", h.Single)
	r.Post("/multiple", h.Multiple)
	return r
}
