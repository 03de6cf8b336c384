package aboutstore

import (
	"testing"

	"github.com/dalemusser/folioserve/internal/domain/models"
	"github.com/dalemusser/folioserve/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_Get_CreatesDefault(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	content, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	def := models.DefaultAboutContent()
	if content.Intro.Name != def.Intro.Name {
		t.Errorf("Intro.Name = %v, want %v", content.Intro.Name, def.Intro.Name)
	}
	if len(content.Intro.Tags) == 0 {
		t.Error("default intro should carry tags")
	}
	if content.ID.IsZero() {
		t.Error("created document should have an id")
	}
}

func TestStore_Get_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("first Get() error = %v", err)
	}
	second, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("second Get() error = %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("repeated Get returned different documents: %v vs %v", first.ID, second.ID)
	}

	count, err := db.Collection("about_content").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments() error = %v", err)
	}
	if count != 1 {
		t.Errorf("document count = %d, want 1", count)
	}
}

func TestStore_Upsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	content := models.AboutContent{
		Intro: models.AboutIntro{
			Name:            "Ada Lovelace",
			Title:           "About Me",
			Description:     "<p>Hello</p>",
			ProfileImageURL: "/images/me.png",
			Tags:            []string{"Mathematician"},
			ScrollingSkills: []string{"Analysis"},
		},
		Experience: []models.Experience{
			{Title: "Engineer", Company: "Analytical Engines Ltd", Period: "1840-1850"},
		},
		Education: []models.Education{},
	}

	saved, err := store.Upsert(ctx, content)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if saved.Intro.Name != content.Intro.Name {
		t.Errorf("Intro.Name = %v, want %v", saved.Intro.Name, content.Intro.Name)
	}
	if saved.UpdatedAt == nil {
		t.Error("UpdatedAt should be set after upsert")
	}

	// Upsert then Get must agree, still one document.
	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.Experience) != 1 || got.Experience[0].Company != "Analytical Engines Ltd" {
		t.Errorf("Experience = %+v, want the saved entry", got.Experience)
	}

	count, _ := db.Collection("about_content").CountDocuments(ctx, bson.M{})
	if count != 1 {
		t.Errorf("document count after upsert = %d, want 1", count)
	}
}

func TestStore_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	exists, err := store.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true before any access")
	}

	if _, err := store.Get(ctx); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	exists, err = store.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false after Get created the document")
	}
}
