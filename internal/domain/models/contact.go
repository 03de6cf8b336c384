// internal/domain/models/contact.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage is one inbound inquiry from the public contact form.
// Unlike the page content documents this is an ordinary multi-row collection.
type ContactMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"` // stored lowercase
	Mobile  string             `bson:"mobile" json:"mobile"`
	Message string             `bson:"message" json:"message"`

	Status string `bson:"status" json:"status"` // one of ContactStatuses
	Notes  string `bson:"notes,omitempty" json:"notes,omitempty"`

	SourceIP  string    `bson:"source_ip,omitempty" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Contact message lifecycle statuses.
const (
	StatusNew      = "new"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

// ContactStatuses returns all valid message statuses.
func ContactStatuses() []string {
	return []string{StatusNew, StatusRead, StatusReplied, StatusArchived}
}

// IsValidContactStatus checks whether status belongs to the closed status set.
func IsValidContactStatus(status string) bool {
	for _, s := range ContactStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
