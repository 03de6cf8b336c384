// internal/domain/models/skills.go
package models

// SkillBar is one entry in a skills block: a named skill rendered as a
// gradient bar with a proficiency percentage.
type SkillBar struct {
	Name    string `bson:"name" json:"name"`
	Icon    string `bson:"icon,omitempty" json:"icon,omitempty"`
	Percent int    `bson:"percent" json:"percent"` // 0-100
	Color   string `bson:"color" json:"color"`     // one of GradientColors
	Height  string `bson:"height" json:"height"`   // one of BarHeights

	// Category is free text and only used by the about page's skills block.
	Category string `bson:"category,omitempty" json:"category,omitempty"`
}

// SkillsSettings holds the heading shown above a skills block.
type SkillsSettings struct {
	Title    string `bson:"title" json:"title"`
	Subtitle string `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
}

// SkillsBlock is the skills section shared by the home and about pages.
type SkillsBlock struct {
	Settings SkillsSettings `bson:"settings" json:"settings"`
	Skills   []SkillBar     `bson:"skills" json:"skills"`
}

// Gradient color names for skill bars.
const (
	ColorBlue   = "blue"
	ColorPurple = "purple"
	ColorGreen  = "green"
	ColorOrange = "orange"
	ColorPink   = "pink"
	ColorTeal   = "teal"
)

// GradientColors returns all valid skill bar gradient colors.
func GradientColors() []string {
	return []string{ColorBlue, ColorPurple, ColorGreen, ColorOrange, ColorPink, ColorTeal}
}

// IsValidGradientColor checks whether color belongs to the closed color set.
func IsValidGradientColor(color string) bool {
	for _, c := range GradientColors() {
		if c == color {
			return true
		}
	}
	return false
}

// Skill bar heights.
const (
	HeightShort  = "short"
	HeightMedium = "medium"
	HeightTall   = "tall"
)

// BarHeights returns all valid skill bar heights.
func BarHeights() []string {
	return []string{HeightShort, HeightMedium, HeightTall}
}

// IsValidBarHeight checks whether height belongs to the closed height set.
func IsValidBarHeight(height string) bool {
	for _, h := range BarHeights() {
		if h == height {
			return true
		}
	}
	return false
}
