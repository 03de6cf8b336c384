// internal/app/store/projects/projectsstore.go
package projectsstore

import (
	"context"
	"time"

	"github.com/dalemusser/folioserve/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the projects_content collection (singleton
// document).
type Store struct {
	c *mongo.Collection
}

// New creates a new projects content store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects_content")}
}

// Get returns the projects content document, creating a default-populated
// one atomically if none exists.
func (s *Store) Get(ctx context.Context) (*models.ProjectsContent, error) {
	def := models.DefaultProjectsContent()

	filter := bson.M{"singleton": true}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":      primitive.NewObjectID(),
			"settings": def.Settings,
			"projects": def.Projects,
			"details":  def.Details,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var content models.ProjectsContent
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&content); err != nil {
		return nil, err
	}
	return &content, nil
}

// Upsert replaces the editable fields of the projects content document,
// creating it if it does not exist yet. The caller is responsible for the
// featured-project invariant; the store persists what it is given.
func (s *Store) Upsert(ctx context.Context, content models.ProjectsContent) (*models.ProjectsContent, error) {
	now := time.Now().UTC()

	filter := bson.M{"singleton": true}
	update := bson.M{
		"$set": bson.M{
			"settings":   content.Settings,
			"projects":   content.Projects,
			"details":    content.Details,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.ProjectsContent
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Exists reports whether the content document has been created.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"singleton": true})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
