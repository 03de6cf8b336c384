// internal/app/store/admin/adminstore.go
package adminstore

import (
	"context"
	"time"

	"github.com/dalemusser/folioserve/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the admin_accounts collection. The application
// permits at most one account; Count gates creation at the feature layer and
// the unique email index backstops races.
type Store struct {
	c *mongo.Collection
}

// New creates a new admin account store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admin_accounts")}
}

// Count returns the number of admin accounts.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// Create inserts a new admin account. The email must already be normalized
// and the password hashed.
func (s *Store) Create(ctx context.Context, acct models.AdminAccount) (*models.AdminAccount, error) {
	now := time.Now().UTC()
	acct.ID = primitive.NewObjectID()
	acct.CreatedAt = now
	acct.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

// GetByEmail looks up the account by normalized email. mongo.ErrNoDocuments
// is returned when none matches.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	var acct models.AdminAccount
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

// GetByID returns the account with the given id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.AdminAccount, error) {
	var acct models.AdminAccount
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

// ProfileUpdate carries the mutable profile fields. Nil fields are left
// untouched on the stored document.
type ProfileUpdate struct {
	Name            *string
	Email           *string
	ProfileImageURL *string
	PasswordHash    *string
}

// Update applies a partial profile update and returns the updated account.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) (*models.AdminAccount, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.ProfileImageURL != nil {
		set["profile_image_url"] = *upd.ProfileImageURL
	}
	if upd.PasswordHash != nil {
		set["password_hash"] = *upd.PasswordHash
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var acct models.AdminAccount
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&acct)
	if err != nil {
		return nil, err
	}
	return &acct, nil
}
