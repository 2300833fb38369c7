package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Section names tracked while converting a page into a template.
const (
	SectionName     = "name"
	SectionRole     = "role"
	SectionBio      = "bio"
	SectionSkills   = "skills"
	SectionProjects = "projects"
	SectionEmail    = "email"
	SectionSocial   = "social"
)

// AllSections lists every section in the order fallbacks are injected.
var AllSections = []string{
	SectionName,
	SectionRole,
	SectionBio,
	SectionSkills,
	SectionProjects,
	SectionEmail,
	SectionSocial,
}

// DetectedSections records which regions were found (or injected) in a page.
type DetectedSections map[string]bool

// NewDetectedSections returns a map with every section present and false.
func NewDetectedSections() DetectedSections {
	d := make(DetectedSections, len(AllSections))
	for _, s := range AllSections {
		d[s] = false
	}
	return d
}

// Missing returns the sections not yet marked, in AllSections order.
func (d DetectedSections) Missing() []string {
	var missing []string
	for _, s := range AllSections {
		if !d[s] {
			missing = append(missing, s)
		}
	}
	return missing
}

// Complete reports whether every section is marked.
func (d DetectedSections) Complete() bool {
	return len(d.Missing()) == 0
}

// TemplateSkeleton is the result of converting a fetched page into a template.
type TemplateSkeleton struct {
	TemplateMarkup   string           `json:"template_markup"`
	DetectedSections DetectedSections `json:"detected_sections"`
}

// ClonedTemplate is a TemplateSkeleton stored as a named, reusable template
// together with the page's CSS.
type ClonedTemplate struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	SourceURL        string           `json:"source_url"`
	Markup           string           `json:"markup"`
	CSS              string           `json:"css"`
	DetectedSections DetectedSections `json:"detected_sections"`
	CreatedAt        time.Time        `json:"created_at"`
}

// CloneRequest is the input for cloning a portfolio page.
type CloneRequest struct {
	URL  string `json:"url" validate:"required,url"`
	Name string `json:"name,omitempty" validate:"omitempty,max=80"`
}

// Validate validates the CloneRequest using the validator.
func (r *CloneRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
