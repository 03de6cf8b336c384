package homestore

import (
	"testing"

	"github.com/dalemusser/folioserve/internal/domain/models"
	"github.com/dalemusser/folioserve/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	if store == nil {
		t.Fatal("New() returned nil")
	}
}

func TestStore_Get_CreatesDefault(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	content, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	def := models.DefaultHomeContent()
	if content.Hero.Name != def.Hero.Name {
		t.Errorf("Hero.Name = %v, want %v", content.Hero.Name, def.Hero.Name)
	}
	if !content.Published {
		t.Error("default content should be published")
	}
	if len(content.Skills.Skills) != len(def.Skills.Skills) {
		t.Errorf("Skills count = %d, want %d", len(content.Skills.Skills), len(def.Skills.Skills))
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

	count, err := db.Collection("home_content").CountDocuments(ctx, bson.M{})
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

	content := models.HomeContent{
		Hero: models.Hero{
			Name:      "Ada Lovelace",
			Title:     "Software Engineer",
			Subtitles: []string{"I write programs."},
		},
		Quotes:      []string{"First quote"},
		Stats:       []models.Stat{{Label: "Projects", Value: 3, PlusSuffix: true}},
		GitUsername: "ada",
		Published:   true,
	}

	saved, err := store.Upsert(ctx, content)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if saved.Hero.Name != content.Hero.Name {
		t.Errorf("Hero.Name = %v, want %v", saved.Hero.Name, content.Hero.Name)
	}
	if saved.UpdatedAt == nil {
		t.Error("UpdatedAt should be set after upsert")
	}

	// Upsert then Get must agree, still one document.
	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.GitUsername != "ada" {
		t.Errorf("GitUsername = %v, want ada", got.GitUsername)
	}

	count, _ := db.Collection("home_content").CountDocuments(ctx, bson.M{})
	if count != 1 {
		t.Errorf("document count after upsert = %d, want 1", count)
	}
}

func TestStore_Upsert_ThenUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Create via Get, then replace twice.
	if _, err := store.Get(ctx); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	first := models.HomeContent{Hero: models.Hero{Name: "One", Title: "First"}, Published: true}
	if _, err := store.Upsert(ctx, first); err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}

	second := models.HomeContent{Hero: models.Hero{Name: "Two", Title: "Second"}, Published: false}
	saved, err := store.Upsert(ctx, second)
	if err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	if saved.Hero.Name != "Two" {
		t.Errorf("Hero.Name = %v, want Two", saved.Hero.Name)
	}
	if saved.Published {
		t.Error("Published should be false after second upsert")
	}

	count, _ := db.Collection("home_content").CountDocuments(ctx, bson.M{})
	if count != 1 {
		t.Errorf("document count = %d, want 1", count)
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
