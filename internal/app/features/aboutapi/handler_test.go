package aboutapi

import (
	"net/http"
	"strings"
	"testing"

	aboutstore "github.com/dalemusser/folioserve/internal/app/store/about"
	"github.com/dalemusser/folioserve/internal/testutil"
	"go.uber.org/zap"
)

func validBody() map[string]any {
	return map[string]any{
		"intro": map[string]any{
			"name":              "Ada Lovelace",
			"title":             "About Me",
			"description":       "<p>Hello</p>",
			"profile_image_url": "/images/me.png",
			"tags":              []string{"Mathematician"},
			"scrolling_skills":  []string{"Analysis", "Notes"},
		},
	}
}

func TestHandler_Upsert_SanitizesDescription(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := aboutstore.New(db)
	h := NewHandler(store, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	body := validBody()
	body["intro"].(map[string]any)["description"] = `<p>Hi</p><script>alert("xss")</script>`

	req := testutil.NewJSONRequest(t, http.MethodPut, "/admin", body)
	rec := testutil.NewRecorder()
	h.Upsert(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusOK)

	saved, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if strings.Contains(saved.Intro.Description, "<script") {
		t.Errorf("script tag survived sanitization: %q", saved.Intro.Description)
	}
	if !strings.Contains(saved.Intro.Description, "<p>Hi</p>") {
		t.Errorf("benign markup stripped: %q", saved.Intro.Description)
	}
}

func TestHandler_Upsert_MissingIntroName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := aboutstore.New(db)
	h := NewHandler(store, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	body := validBody()
	body["intro"].(map[string]any)["name"] = "  "

	req := testutil.NewJSONRequest(t, http.MethodPut, "/admin", body)
	rec := testutil.NewRecorder()
	h.Upsert(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusBadRequest)

	exists, err := store.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("rejected payload must not create a document")
	}
}

func TestHandler_Upsert_RequiresWholeIntro(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := aboutstore.New(db)
	h := NewHandler(store, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cases := []struct {
		name  string
		field string
		value any
	}{
		{"blank profile image", "profile_image_url", "  "},
		{"no tags", "tags", []string{}},
		{"blank tag entry", "tags", []string{"Developer", " "}},
		{"no scrolling skills", "scrolling_skills", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := validBody()
			body["intro"].(map[string]any)[tc.field] = tc.value

			req := testutil.NewJSONRequest(t, http.MethodPut, "/admin", body)
			rec := testutil.NewRecorder()
			h.Upsert(rec.ResponseRecorder, req)
			rec.AssertStatus(t, http.StatusBadRequest)
		})
	}

	exists, err := store.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("rejected payloads must not create a document")
	}
}

func TestHandler_Upsert_IncompleteExperience(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(aboutstore.New(db), zap.NewNop())

	body := validBody()
	body["experience"] = []map[string]any{
		{"title": "Engineer", "company": "", "period": "2020-2024"},
	}

	req := testutil.NewJSONRequest(t, http.MethodPut, "/admin", body)
	rec := testutil.NewRecorder()
	h.Upsert(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}
