package contactsapi

import (
	"context"
	"net/http"
	"strings"
	"testing"

	contactstore "github.com/dalemusser/folioserve/internal/app/store/contact"
	"github.com/dalemusser/folioserve/internal/domain/models"
	"github.com/dalemusser/folioserve/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// withPathID attaches a chi route context carrying the {id} URL parameter,
// so handler methods can be exercised without mounting the full router.
func withPathID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newTestHandler(t *testing.T) (*Handler, *contactstore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	return NewHandler(store, nil, "", zap.NewNop()), store
}

func validSubmission() map[string]any {
	return map[string]any{
		"name":    "Jamie Visitor",
		"email":   "jamie@example.com",
		"mobile":  "+1 555-000-1234",
		"message": "I'd like to talk about a project.",
	}
}

func TestHandler_Create(t *testing.T) {
	h, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", validSubmission())
	rec := testutil.NewRecorder()
	h.Create(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, `"success":true`)

	page, err := store.List(ctx, contactstore.ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("Total = %d, want 1", page.Total)
	}
	msg := page.Messages[0]
	if msg.Status != models.StatusNew {
		t.Errorf("Status = %v, want %v", msg.Status, models.StatusNew)
	}
	// Email is stored lowercase, mobile keeps its separators stripped on
	// validation but is stored as normalized by the handler.
	if msg.Email != "jamie@example.com" {
		t.Errorf("Email = %v, want jamie@example.com", msg.Email)
	}
}

func TestHandler_Create_MissingField(t *testing.T) {
	h, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	body := validSubmission()
	delete(body, "message")

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", body)
	rec := testutil.NewRecorder()
	h.Create(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Message is required")

	page, _ := store.List(ctx, contactstore.ListOptions{})
	if page.Total != 0 {
		t.Errorf("rejected submission must not be stored, Total = %d", page.Total)
	}
}

func TestHandler_Create_MessageTooLong(t *testing.T) {
	h, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	body := validSubmission()
	body["message"] = strings.Repeat("a", 5001)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", body)
	rec := testutil.NewRecorder()
	h.Create(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "at most 5000")

	page, _ := store.List(ctx, contactstore.ListOptions{})
	if page.Total != 0 {
		t.Errorf("rejected submission must not be stored, Total = %d", page.Total)
	}
}

func TestHandler_Create_BadEmail(t *testing.T) {
	h, _ := newTestHandler(t)

	body := validSubmission()
	body["email"] = "not-an-email"

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", body)
	rec := testutil.NewRecorder()
	h.Create(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandler_Create_BadMobile(t *testing.T) {
	h, _ := newTestHandler(t)

	body := validSubmission()
	body["mobile"] = "call me maybe"

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", body)
	rec := testutil.NewRecorder()
	h.Create(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandler_List_InvalidStatus(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewRequest(http.MethodGet, "/?status=bogus")
	rec := testutil.NewRecorder()
	h.List(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandler_List_Paginated(t *testing.T) {
	h, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 3; i++ {
		if _, err := store.Create(ctx, models.ContactMessage{
			Name: "A", Email: "a@example.com", Mobile: "+15550000000", Message: "hi",
		}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	req := testutil.NewRequest(http.MethodGet, "/?page=1&limit=2")
	rec := testutil.NewRecorder()
	h.List(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"total":3`)
	rec.AssertContains(t, `"totalPages":2`)
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withPathID(testutil.NewRequest(http.MethodGet, "/"), primitive.NewObjectID().Hex())
	rec := testutil.NewRecorder()
	h.Get(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, `"success":false`)
}

func TestHandler_Delete_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withPathID(testutil.NewRequest(http.MethodDelete, "/"), primitive.NewObjectID().Hex())
	rec := testutil.NewRecorder()
	h.Delete(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestHandler_Delete_InvalidID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withPathID(testutil.NewRequest(http.MethodDelete, "/"), "not-a-hex-id")
	rec := testutil.NewRecorder()
	h.Delete(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Invalid message id")
}

func TestHandler_UpdateStatus(t *testing.T) {
	h, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	msg, err := store.Create(ctx, models.ContactMessage{
		Name: "A", Email: "a@example.com", Mobile: "+15550000000", Message: "hi",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	body := map[string]any{"status": "Read"}
	req := withPathID(testutil.NewJSONRequest(t, http.MethodPatch, "/", body), msg.ID.Hex())
	rec := testutil.NewRecorder()
	h.UpdateStatus(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusOK)

	updated, err := store.GetByID(ctx, msg.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if updated.Status != models.StatusRead {
		t.Errorf("Status = %v, want %v", updated.Status, models.StatusRead)
	}
}

func TestHandler_UpdateStatus_Empty(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withPathID(testutil.NewJSONRequest(t, http.MethodPatch, "/", map[string]any{}), primitive.NewObjectID().Hex())
	rec := testutil.NewRecorder()
	h.UpdateStatus(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Nothing to update")
}

func TestHandler_Stats(t *testing.T) {
	h, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 2; i++ {
		if _, err := store.Create(ctx, models.ContactMessage{
			Name: "A", Email: "a@example.com", Mobile: "+15550000000", Message: "hi",
		}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	req := testutil.NewRequest(http.MethodGet, "/stats")
	rec := testutil.NewRecorder()
	h.Stats(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"total":2`)
	rec.AssertContains(t, `"new":2`)
	rec.AssertContains(t, `"archived":0`)
}
