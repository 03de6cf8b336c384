// internal/domain/models/about.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AboutContent is the singleton content document for the about page.
type AboutContent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Singleton bool               `bson:"singleton" json:"-"`

	Intro      AboutIntro   `bson:"intro" json:"intro"`
	Experience []Experience `bson:"experience" json:"experience"`
	Education  []Education  `bson:"education" json:"education"`
	Skills     SkillsBlock  `bson:"skills" json:"skills"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// AboutIntro is the personal introduction block. All scalar fields are
// required non-empty on upsert.
type AboutIntro struct {
	Name            string   `bson:"name" json:"name"`
	Title           string   `bson:"title" json:"title"`
	Description     string   `bson:"description" json:"description"` // rich text, sanitized
	ProfileImageURL string   `bson:"profile_image_url" json:"profile_image_url"`
	Tags            []string `bson:"tags,omitempty" json:"tags,omitempty"`
	ScrollingSkills []string `bson:"scrolling_skills,omitempty" json:"scrolling_skills,omitempty"`
}

// Experience is one entry in the work history list, newest first.
type Experience struct {
	Title        string   `bson:"title" json:"title"`
	Company      string   `bson:"company" json:"company"`
	Location     string   `bson:"location,omitempty" json:"location,omitempty"`
	Period       string   `bson:"period" json:"period"`
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	Achievements []string `bson:"achievements,omitempty" json:"achievements,omitempty"`
}

// Education is one entry in the education list.
type Education struct {
	Degree      string `bson:"degree" json:"degree"`
	University  string `bson:"university" json:"university"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
	Year        string `bson:"year" json:"year"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// DefaultAboutContent returns the document created on first access to the
// about page.
func DefaultAboutContent() AboutContent {
	return AboutContent{
		Singleton: true,
		Intro: AboutIntro{
			Name:            "Your Name",
			Title:           "About Me",
			Description:     "<p>Tell visitors who you are and what you do.</p>",
			ProfileImageURL: "/images/profile-placeholder.png",
			Tags:            []string{"Developer"},
			ScrollingSkills: []string{"JavaScript", "Go", "React"},
		},
		Skills: SkillsBlock{
			Settings: SkillsSettings{Title: "Skills"},
		},
	}
}
