package homeapi

import (
	"net/http"
	"testing"

	homestore "github.com/dalemusser/folioserve/internal/app/store/home"
	"github.com/dalemusser/folioserve/internal/testutil"
	"go.uber.org/zap"
)

func TestHandler_Get_CreatesDefault(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(homestore.New(db), zap.NewNop())

	req := testutil.NewRequest(http.MethodGet, "/")
	rec := testutil.NewRecorder()
	h.Get(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"success":true`)
	rec.AssertContains(t, `"hero"`)
}

func TestHandler_Upsert_Valid(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := homestore.New(db)
	h := NewHandler(store, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	body := map[string]any{
		"hero": map[string]any{
			"name":  "Ada Lovelace",
			"title": "Engineer",
		},
		"quotes":       []string{"Hello"},
		"git_username": "ada",
	}

	req := testutil.NewJSONRequest(t, http.MethodPut, "/admin", body)
	rec := testutil.NewRecorder()
	h.Upsert(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusOK)

	saved, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if saved.Hero.Name != "Ada Lovelace" {
		t.Errorf("Hero.Name = %v, want Ada Lovelace", saved.Hero.Name)
	}
	// Published defaults to true when the payload omits it.
	if !saved.Published {
		t.Error("Published should default to true")
	}
}

func TestHandler_Upsert_MissingHeroName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := homestore.New(db)
	h := NewHandler(store, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	body := map[string]any{
		"hero": map[string]any{"title": "Engineer"},
	}

	req := testutil.NewJSONRequest(t, http.MethodPut, "/admin", body)
	rec := testutil.NewRecorder()
	h.Upsert(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Hero name is required")

	exists, err := store.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("rejected payload must not create a document")
	}
}

func TestHandler_Upsert_BadSkillColor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(homestore.New(db), zap.NewNop())

	body := map[string]any{
		"hero": map[string]any{"name": "Ada", "title": "Engineer"},
		"skills": map[string]any{
			"skills": []map[string]any{
				{"name": "Go", "percent": 80, "color": "crimson", "height": "medium"},
			},
		},
	}

	req := testutil.NewJSONRequest(t, http.MethodPut, "/admin", body)
	rec := testutil.NewRecorder()
	h.Upsert(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandler_Upsert_NegativeStat(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(homestore.New(db), zap.NewNop())

	body := map[string]any{
		"hero":  map[string]any{"name": "Ada", "title": "Engineer"},
		"stats": []map[string]any{{"label": "Projects", "value": -1}},
	}

	req := testutil.NewJSONRequest(t, http.MethodPut, "/admin", body)
	rec := testutil.NewRecorder()
	h.Upsert(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}
