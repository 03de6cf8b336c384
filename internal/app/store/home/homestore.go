// internal/app/store/home/homestore.go
package homestore

import (
	"context"
	"time"

	"github.com/dalemusser/folioserve/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the home_content collection.
// The collection holds a single content document keyed by the singleton
// marker; Get creates it with defaults on first access.
type Store struct {
	c *mongo.Collection
}

// New creates a new home content store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("home_content")}
}

// Get returns the home content document, creating a default-populated one
// atomically if none exists. The upsert keys on the singleton marker, so
// concurrent first reads resolve to the same document.
func (s *Store) Get(ctx context.Context) (*models.HomeContent, error) {
	def := models.DefaultHomeContent()

	filter := bson.M{"singleton": true}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":          primitive.NewObjectID(),
			"hero":         def.Hero,
			"quotes":       def.Quotes,
			"stats":        def.Stats,
			"skills":       def.Skills,
			"git_username": def.GitUsername,
			"published":    def.Published,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var content models.HomeContent
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&content); err != nil {
		return nil, err
	}
	return &content, nil
}

// Upsert replaces the editable fields of the home content document,
// creating it if it does not exist yet. Returns the persisted document.
func (s *Store) Upsert(ctx context.Context, content models.HomeContent) (*models.HomeContent, error) {
	now := time.Now().UTC()

	filter := bson.M{"singleton": true}
	update := bson.M{
		"$set": bson.M{
			"hero":         content.Hero,
			"quotes":       content.Quotes,
			"stats":        content.Stats,
			"skills":       content.Skills,
			"git_username": content.GitUsername,
			"published":    content.Published,
			"updated_at":   now,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.HomeContent
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
