// internal/domain/models/admin.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminAccount is the single administrator of the site. Exactly one row may
// ever exist; the store enforces this at creation time (the schema cannot).
type AdminAccount struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email           string             `bson:"email" json:"email"` // unique, stored lowercase
	PasswordHash    string             `bson:"password_hash" json:"-"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	ProfileImageURL string             `bson:"profile_image_url,omitempty" json:"profile_image_url,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
