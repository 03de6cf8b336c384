// internal/domain/models/projects.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectsContent is the singleton content document for the projects page:
// page settings plus the project summary cards and their detail records.
type ProjectsContent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Singleton bool               `bson:"singleton" json:"-"`

	Settings ProjectsSettings `bson:"settings" json:"settings"`
	Projects []Project        `bson:"projects" json:"projects"`
	Details  []ProjectDetail  `bson:"details" json:"details"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// ProjectsSettings holds the page heading and responsive background images.
type ProjectsSettings struct {
	Title               string `bson:"title" json:"title"`
	Subtitle            string `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	BackgroundURL       string `bson:"background_url,omitempty" json:"background_url,omitempty"`
	MobileBackgroundURL string `bson:"mobile_background_url,omitempty" json:"mobile_background_url,omitempty"`
}

// Project is one summary card on the projects page. At most one project in
// a document may be flagged featured; upsert demotes every featured entry
// after the first.
type Project struct {
	ProjectID   string   `bson:"project_id" json:"project_id"` // external identifier, keys the detail record
	Title       string   `bson:"title" json:"title"`
	ImageURL    string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
	SkillTags   []string `bson:"skill_tags,omitempty" json:"skill_tags,omitempty"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	LiveURL     string   `bson:"live_url,omitempty" json:"live_url,omitempty"`
	Featured    bool     `bson:"featured" json:"featured"`
}

// ProjectDetail is the expanded record behind a project card.
type ProjectDetail struct {
	ProjectID   string   `bson:"project_id" json:"project_id"`
	Gallery     []string `bson:"gallery,omitempty" json:"gallery,omitempty"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"` // rich text, sanitized
	Features    []string `bson:"features,omitempty" json:"features,omitempty"`
	SourceURL   string   `bson:"source_url,omitempty" json:"source_url,omitempty"`
}

// DefaultProjectsContent returns the document created on first access to the
// projects page.
func DefaultProjectsContent() ProjectsContent {
	return ProjectsContent{
		Singleton: true,
		Settings: ProjectsSettings{
			Title:    "Projects",
			Subtitle: "Things I've built",
		},
		Projects: []Project{},
		Details:  []ProjectDetail{},
	}
}
