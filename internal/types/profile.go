// Package types provides type definitions for structured data used throughout the portfolio generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field limits for a ProfileRecord.
const (
	MaxNameLength               = 50
	MaxBioLength                = 500
	MaxProjects                 = 5
	MaxProjectTitleLength       = 100
	MaxProjectDescriptionLength = 300
)

// ProfileRecord is the structured profile inferred from a resume.
// Every field has a usable zero value: strings are empty and slices are non-nil
// once the record has been built with NewProfileRecord.
type ProfileRecord struct {
	Name     string    `json:"name" validate:"max=50"`
	Role     string    `json:"role"`
	Bio      string    `json:"bio" validate:"max=500"`
	Summary  string    `json:"summary" validate:"max=500"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	GitHub   string    `json:"github" validate:"excludesall=/"`
	LinkedIn string    `json:"linkedin" validate:"excludesall=/"`
	Skills   []string  `json:"skills" validate:"required"`
	Projects []Project `json:"projects" validate:"required,max=5,dive"`
}

// Project is a single portfolio project.
type Project struct {
	Title       string `json:"title" validate:"max=100"`
	Description string `json:"description" validate:"max=300"`
	Link        string `json:"link"`
}

// NewProfileRecord returns an all-empty record with non-nil slices.
func NewProfileRecord() *ProfileRecord {
	return &ProfileRecord{
		Skills:   []string{},
		Projects: []Project{},
	}
}

// Normalize restores the non-nil slice invariant, e.g. after decoding JSON
// produced by another tool.
func (p *ProfileRecord) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
}

// Validate checks the record's size limits using the validator.
func (p *ProfileRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// GitHubURL derives the profile URL from the GitHub handle.
func (p *ProfileRecord) GitHubURL() string {
	if p.GitHub == "" {
		return ""
	}
	return "https://github.com/" + p.GitHub
}

// LinkedInURL derives the profile URL from the LinkedIn handle.
func (p *ProfileRecord) LinkedInURL() string {
	if p.LinkedIn == "" {
		return ""
	}
	return "https://www.linkedin.com/in/" + p.LinkedIn
}

// SkillsString joins the skills the way templates expect them: comma separated.
func (p *ProfileRecord) SkillsString() string {
	return strings.Join(p.Skills, ", ")
}

// BuildRenderContext shapes a profile into the data context handed to a
// template: the ProfileRecord fields plus derived githubUrl/linkedinUrl, with
// skills collapsed into a comma-joined string.
func BuildRenderContext(p *ProfileRecord) map[string]any {
	if p == nil {
		p = NewProfileRecord()
	}

	projects := make([]map[string]any, 0, len(p.Projects))
	for _, proj := range p.Projects {
		projects = append(projects, map[string]any{
			"title":       proj.Title,
			"description": proj.Description,
			"link":        proj.Link,
		})
	}

	return map[string]any{
		"name":        p.Name,
		"role":        p.Role,
		"bio":         p.Bio,
		"summary":     p.Summary,
		"email":       p.Email,
		"phone":       p.Phone,
		"github":      p.GitHub,
		"linkedin":    p.LinkedIn,
		"githubUrl":   p.GitHubURL(),
		"linkedinUrl": p.LinkedInURL(),
		"skills":      p.SkillsString(),
		"projects":    projects,
	}
}
