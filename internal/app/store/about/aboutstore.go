// internal/app/store/about/aboutstore.go
package aboutstore

import (
	"context"
	"time"

	"github.com/dalemusser/folioserve/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the about_content collection (singleton document).
type Store struct {
	c *mongo.Collection
}

// New creates a new about content store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("about_content")}
}

// Get returns the about content document, creating a default-populated one
// atomically if none exists.
func (s *Store) Get(ctx context.Context) (*models.AboutContent, error) {
	def := models.DefaultAboutContent()

	filter := bson.M{"singleton": true}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"intro":      def.Intro,
			"experience": def.Experience,
			"education":  def.Education,
			"skills":     def.Skills,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var content models.AboutContent
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&content); err != nil {
		return nil, err
	}
	return &content, nil
}

// Upsert replaces the editable fields of the about content document,
// creating it if it does not exist yet. Returns the persisted document.
func (s *Store) Upsert(ctx context.Context, content models.AboutContent) (*models.AboutContent, error) {
	now := time.Now().UTC()

	filter := bson.M{"singleton": true}
	update := bson.M{
		"$set": bson.M{
			"intro":      content.Intro,
			"experience": content.Experience,
			"education":  content.Education,
			"skills":     content.Skills,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.AboutContent
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
