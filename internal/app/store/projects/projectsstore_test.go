package projectsstore

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
	if content.Settings.Title == "" {
		t.Error("default settings title should not be empty")
	}
	if content.Projects == nil {
		t.Error("Projects should decode as an empty slice, not nil")
	}
}

func TestStore_Upsert_PersistsProjects(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	content := models.ProjectsContent{
		Settings: models.ProjectsSettings{Title: "Work"},
		Projects: []models.Project{
			{ProjectID: "p1", Title: "First", Featured: true},
			{ProjectID: "p2", Title: "Second"},
		},
		Details: []models.ProjectDetail{
			{ProjectID: "p1", Features: []string{"fast"}},
		},
	}

	saved, err := store.Upsert(ctx, content)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if len(saved.Projects) != 2 {
		t.Errorf("Projects count = %d, want 2", len(saved.Projects))
	}
	if !saved.Projects[0].Featured {
		t.Error("first project should keep its featured flag")
	}
	if len(saved.Details) != 1 {
		t.Errorf("Details count = %d, want 1", len(saved.Details))
	}

	count, _ := db.Collection("projects_content").CountDocuments(ctx, bson.M{})
	if count != 1 {
		t.Errorf("document count = %d, want 1", count)
	}
}
