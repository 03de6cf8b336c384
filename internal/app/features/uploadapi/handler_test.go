package uploadapi

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocal(storage.LocalConfig{
		BasePath: dir,
		BaseURL:  "/files",
	})
	if err != nil {
		t.Fatalf("storage.NewLocal() error = %v", err)
	}
	return NewHandler(store, zap.NewNop()), dir
}

func multipartBody(t *testing.T, field string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for name, data := range files {
		fw, err := w.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("CreateFormFile() error = %v", err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return buf, w.FormDataContentType()
}

func countStoredFiles(t *testing.T, dir string) int {
	t.Helper()
	count := 0
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk storage dir: %v", err)
	}
	return count
}

func TestHandler_Single(t *testing.T) {
	h, dir := newTestHandler(t)

	body, contentType := multipartBody(t, "file", map[string][]byte{
		"photo.png": []byte("png-bytes"),
	})
	req := httptest.NewRequest(http.MethodPost, "/single", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Single(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"url":"/files/uploads/`) {
		t.Errorf("response missing stored URL: %s", rec.Body.String())
	}
	if got := countStoredFiles(t, dir); got != 1 {
		t.Errorf("stored files = %d, want 1", got)
	}
}

func TestHandler_Single_RejectsExtension(t *testing.T) {
	h, dir := newTestHandler(t)

	body, contentType := multipartBody(t, "file", map[string][]byte{
		"malware.exe": []byte("mz"),
	})
	req := httptest.NewRequest(http.MethodPost, "/single", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Single(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if got := countStoredFiles(t, dir); got != 0 {
		t.Errorf("stored files = %d, want 0", got)
	}
}

func TestHandler_Single_MissingFile(t *testing.T) {
	h, _ := newTestHandler(t)

	body, contentType := multipartBody(t, "other", map[string][]byte{
		"photo.png": []byte("png-bytes"),
	})
	req := httptest.NewRequest(http.MethodPost, "/single", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Single(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_Multiple(t *testing.T) {
	h, dir := newTestHandler(t)

	body, contentType := multipartBody(t, "files", map[string][]byte{
		"one.png": []byte("one"),
		"two.jpg": []byte("two"),
	})
	req := httptest.NewRequest(http.MethodPost, "/multiple", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Multiple(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	if got := countStoredFiles(t, dir); got != 2 {
		t.Errorf("stored files = %d, want 2", got)
	}
}

func TestHandler_Multiple_CleansUpOnRejection(t *testing.T) {
	h, dir := newTestHandler(t)

	body, contentType := multipartBody(t, "files", map[string][]byte{
		"ok.png":  []byte("fine"),
		"bad.exe": []byte("mz"),
	})
	req := httptest.NewRequest(http.MethodPost, "/multiple", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Multiple(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	// All-or-nothing: the accepted file must be removed too.
	if got := countStoredFiles(t, dir); got != 0 {
		t.Errorf("stored files after rejection = %d, want 0", got)
	}
}
