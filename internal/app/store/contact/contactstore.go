// internal/app/store/contact/contactstore.go
package contactstore

import (
	"context"
	"time"

	"github.com/dalemusser/folioserve/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the contact_messages collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new contact message store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_messages")}
}

// ListOptions controls filtering, sorting, and pagination for List.
type ListOptions struct {
	Status string // empty means all statuses
	Page   int    // 1-based; values < 1 are treated as 1
	Limit  int    // values < 1 fall back to DefaultPageSize
	Sort   string // SortNewest (default) or SortOldest
}

// Sort orders accepted by List.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// DefaultPageSize is the number of messages per page when the caller does
// not specify a limit.
const DefaultPageSize = 10

// MaxPageSize caps the per-page limit a caller can request.
const MaxPageSize = 100

// Page is one page of contact messages along with pagination metadata.
type Page struct {
	Messages   []models.ContactMessage `json:"messages"`
	Total      int64                   `json:"total"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"totalPages"`
}

// Stats summarizes the inbox by status.
type Stats struct {
	Total    int64 `json:"total"`
	New      int64 `json:"new"`
	Read     int64 `json:"read"`
	Replied  int64 `json:"replied"`
	Archived int64 `json:"archived"`
}

// Create inserts a new contact message. Status and CreatedAt are set here;
// any values on the incoming message are overwritten.
func (s *Store) Create(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error) {
	now := time.Now().UTC()
	msg.ID = primitive.NewObjectID()
	msg.Status = models.StatusNew
	msg.CreatedAt = now
	msg.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// List returns one page of messages, newest first unless SortOldest is
// requested, optionally filtered by status. The total count reflects the
// filter, not the whole collection.
func (s *Store) List(ctx context.Context, lo ListOptions) (*Page, error) {
	if lo.Page < 1 {
		lo.Page = 1
	}
	if lo.Limit < 1 {
		lo.Limit = DefaultPageSize
	}
	if lo.Limit > MaxPageSize {
		lo.Limit = MaxPageSize
	}

	order := -1
	if lo.Sort == SortOldest {
		order = 1
	}

	filter := bson.M{}
	if lo.Status != "" {
		filter["status"] = lo.Status
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: order}}).
		SetSkip(int64((lo.Page - 1) * lo.Limit)).
		SetLimit(int64(lo.Limit))

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	messages := []models.ContactMessage{}
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}

	totalPages := int(total) / lo.Limit
	if int(total)%lo.Limit != 0 {
		totalPages++
	}

	return &Page{
		Messages:   messages,
		Total:      total,
		Page:       lo.Page,
		Limit:      lo.Limit,
		TotalPages: totalPages,
	}, nil
}

// GetByID returns a single message. mongo.ErrNoDocuments is returned when
// the id does not exist.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// StatusUpdate carries the mutable moderation fields. Nil fields are left
// untouched on the stored document.
type StatusUpdate struct {
	Status *string
	Notes  *string
}

// UpdateStatus applies a partial update to a message's status and notes and
// returns the updated document. mongo.ErrNoDocuments is returned when the id
// does not exist.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, upd StatusUpdate) (*models.ContactMessage, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var msg models.ContactMessage
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// Delete removes a message. mongo.ErrNoDocuments is returned when the id
// does not exist.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetStats returns per-status counts for the whole inbox. Statuses with no
// messages report zero.
func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := &Stats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case models.StatusNew:
			stats.New = row.Count
		case models.StatusRead:
			stats.Read = row.Count
		case models.StatusReplied:
			stats.Replied = row.Count
		case models.StatusArchived:
			stats.Archived = row.Count
		}
	}
	return stats, nil
}
