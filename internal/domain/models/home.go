// internal/domain/models/home.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HomeContent is the singleton content document for the home page.
// At most one document exists in the home_content collection; the store
// creates a default-populated one on first access.
type HomeContent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Singleton bool               `bson:"singleton" json:"-"` // always true, the well-known upsert key

	Hero        Hero        `bson:"hero" json:"hero"`
	Quotes      []string    `bson:"quotes" json:"quotes"`
	Stats       []Stat      `bson:"stats" json:"stats"`
	Skills      SkillsBlock `bson:"skills" json:"skills"`
	GitUsername string      `bson:"git_username,omitempty" json:"git_username,omitempty"`
	Published   bool        `bson:"published" json:"published"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Hero is the headline block at the top of the home page.
type Hero struct {
	Name           string   `bson:"name" json:"name"`
	Title          string   `bson:"title" json:"title"`
	Subtitles      []string `bson:"subtitles,omitempty" json:"subtitles,omitempty"`
	ImageURL       string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
	MobileImageURL string   `bson:"mobile_image_url,omitempty" json:"mobile_image_url,omitempty"`
}

// Stat is one labeled counter in the home page stats strip.
type Stat struct {
	Label      string `bson:"label" json:"label"`
	Value      int    `bson:"value" json:"value"` // >= 0
	PlusSuffix bool   `bson:"plus_suffix" json:"plus_suffix"`
}

// DefaultHomeContent returns the document created on first access to the
// home page, before any admin edit.
func DefaultHomeContent() HomeContent {
	return HomeContent{
		Singleton: true,
		Hero: Hero{
			Name:      "Your Name",
			Title:     "Full Stack Developer",
			Subtitles: []string{"I build things for the web."},
		},
		Quotes: []string{
			"The best way to predict the future is to invent it.",
		},
		Stats: []Stat{
			{Label: "Projects", Value: 10, PlusSuffix: true},
			{Label: "Years Experience", Value: 2, PlusSuffix: false},
		},
		Skills: SkillsBlock{
			Settings: SkillsSettings{Title: "Skills"},
			Skills: []SkillBar{
				{Name: "JavaScript", Percent: 80, Color: ColorBlue, Height: HeightMedium},
				{Name: "Go", Percent: 70, Color: ColorTeal, Height: HeightMedium},
			},
		},
		Published: true,
	}
}
