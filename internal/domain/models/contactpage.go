// internal/domain/models/contactpage.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactPageContent is the singleton content document for the contact page:
// heading, map location, and the descriptors the frontend renders the contact
// form from.
type ContactPageContent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Singleton bool               `bson:"singleton" json:"-"`

	Settings   ContactPageSettings `bson:"settings" json:"settings"`
	FormFields []FormField         `bson:"form_fields" json:"form_fields"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// ContactPageSettings holds the page heading and map location.
type ContactPageSettings struct {
	Title       string      `bson:"title" json:"title"`
	Subtitle    string      `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	MapLocation MapLocation `bson:"map_location" json:"map_location"`
}

// MapLocation is a point and zoom level for the embedded map.
type MapLocation struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`   // [-90, 90]
	Longitude float64 `bson:"longitude" json:"longitude"` // [-180, 180]
	Zoom      int     `bson:"zoom" json:"zoom"`           // [1, 20]
}

// FormField describes one input of the contact form. Names must be unique
// within a page's form_fields list.
type FormField struct {
	Name        string `bson:"name" json:"name"`
	Label       string `bson:"label" json:"label"`
	Type        string `bson:"type" json:"type"` // one of FormFieldTypes
	Placeholder string `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
	Required    bool   `bson:"required" json:"required"`
	Order       int    `bson:"order" json:"order"`
}

// Contact form input types.
const (
	FieldTypeText     = "text"
	FieldTypeEmail    = "email"
	FieldTypeTel      = "tel"
	FieldTypeTextarea = "textarea"
	FieldTypeNumber   = "number"
)

// FormFieldTypes returns all valid contact form input types.
func FormFieldTypes() []string {
	return []string{FieldTypeText, FieldTypeEmail, FieldTypeTel, FieldTypeTextarea, FieldTypeNumber}
}

// IsValidFormFieldType checks whether t belongs to the closed type set.
func IsValidFormFieldType(t string) bool {
	for _, v := range FormFieldTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// DefaultContactPageContent returns the document created on first access to
// the contact page.
func DefaultContactPageContent() ContactPageContent {
	return ContactPageContent{
		Singleton: true,
		Settings: ContactPageSettings{
			Title:       "Get In Touch",
			Subtitle:    "Let's work together",
			Description: "Have a question or a project in mind? Send a message.",
			MapLocation: MapLocation{Latitude: 40.7128, Longitude: -74.0060, Zoom: 12},
		},
		FormFields: []FormField{
			{Name: "name", Label: "Name", Type: FieldTypeText, Placeholder: "Your name", Required: true, Order: 1},
			{Name: "email", Label: "Email", Type: FieldTypeEmail, Placeholder: "you@example.com", Required: true, Order: 2},
			{Name: "mobile", Label: "Mobile", Type: FieldTypeTel, Placeholder: "+1 555 000 0000", Required: true, Order: 3},
			{Name: "message", Label: "Message", Type: FieldTypeTextarea, Placeholder: "How can I help?", Required: true, Order: 4},
		},
	}
}
