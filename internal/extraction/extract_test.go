package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Alice Doe
Senior Software Engineer
jane@example.com | (555) 123-4567
linkedin.com/in/janedoe | github.com/janedoe

SUMMARY
Backend engineer with eight years of experience building distributed systems and developer tooling.

TECHNICAL SKILLS
Languages: Go, Python, TypeScript
Infrastructure: Docker, Kubernetes, AWS

EXPERIENCE
Acme Corp - Staff Engineer
Built things in C++ and Java.

PROJECTS
Portfolio Builder | Go, React
Developed a static site generator used by 2k people. https://github.com/janedoe/builder
Ledger Sync
Reduced reconciliation time by 40%.
`

func TestExtractResumeData_NameRoleEmail(t *testing.T) {
	profile := ExtractResumeData("Jane Alice Doe\nSoftware Engineer\njane@example.com")

	assert.Equal(t, "Jane Alice Doe", profile.Name)
	assert.Contains(t, profile.Role, "Engineer")
	assert.Equal(t, "jane@example.com", profile.Email)
}

func TestExtractResumeData_FullResume(t *testing.T) {
	profile := ExtractResumeData(sampleResume)

	assert.Equal(t, "Jane Alice Doe", profile.Name)
	assert.Equal(t, "Senior Software Engineer", profile.Role)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.Equal(t, "(555) 123-4567", profile.Phone)
	assert.Equal(t, "janedoe", profile.LinkedIn)
	assert.Equal(t, "janedoe", profile.GitHub)

	assert.True(t, strings.HasPrefix(profile.Bio, "Backend engineer with eight years"))
	assert.Equal(t, profile.Bio, profile.Summary)

	// Skills come from the skills section only, in vocabulary order.
	assert.Equal(t, []string{"TypeScript", "Python", "Go", "AWS", "Docker", "Kubernetes"}, profile.Skills)
	assert.NotContains(t, profile.Skills, "C++")
	assert.NotContains(t, profile.Skills, "Java")

	require.Len(t, profile.Projects, 2)
	assert.Equal(t, "Portfolio Builder", profile.Projects[0].Title)
	assert.Equal(t, "https://github.com/janedoe/builder", profile.Projects[0].Link)
	assert.Contains(t, profile.Projects[0].Description, "Go, React")
	assert.Contains(t, profile.Projects[0].Description, "static site generator")
	assert.Equal(t, "Ledger Sync", profile.Projects[1].Title)
	assert.Equal(t, "Reduced reconciliation time by 40%.", profile.Projects[1].Description)

	require.NoError(t, profile.Validate())
}

func TestExtractResumeData_ProjectParsing(t *testing.T) {
	text := "Projects\nE-Commerce Platform | React, Node\nBuilt a scalable store with 10k users. https://github.com/x/y\nAI Tasks\nDeveloped a task app."

	profile := ExtractResumeData(text)

	require.Len(t, profile.Projects, 2)
	assert.Equal(t, "E-Commerce Platform", profile.Projects[0].Title)
	assert.Equal(t, "https://github.com/x/y", profile.Projects[0].Link)
	assert.Contains(t, profile.Projects[0].Description, "scalable store")
	assert.NotContains(t, profile.Projects[0].Description, "https://")
	assert.Equal(t, "AI Tasks", profile.Projects[1].Title)
	assert.Equal(t, "Developed a task app.", profile.Projects[1].Description)
}

func TestExtractResumeData_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\n  \r\n"} {
		profile := ExtractResumeData(input)
		require.NotNil(t, profile)

		assert.Empty(t, profile.Name)
		assert.Empty(t, profile.Role)
		assert.Empty(t, profile.Bio)
		assert.Empty(t, profile.Email)
		assert.NotNil(t, profile.Skills)
		assert.Empty(t, profile.Skills)
		assert.NotNil(t, profile.Projects)
		assert.Empty(t, profile.Projects)
	}
}

func TestExtractResumeData_NameFallbackTruncates(t *testing.T) {
	long := strings.Repeat("x", 70)
	profile := ExtractResumeData(long + "\nsomething else 123")

	assert.Len(t, profile.Name, 50)
}

func TestExtractResumeData_RoleSkipsNameLine(t *testing.T) {
	profile := ExtractResumeData("Dev Engineer Smith\nhello@x.io\nFrontend Developer at Foo")

	assert.Equal(t, "Dev Engineer Smith", profile.Name)
	assert.Equal(t, "Frontend Developer at Foo", profile.Role)
}

func TestExtractResumeData_BioFallbackToLongLine(t *testing.T) {
	text := "Sam Lee\n" + "Product designer who turns messy research into calm, usable interfaces for healthcare teams and patients."

	profile := ExtractResumeData(text)
	assert.True(t, strings.HasPrefix(profile.Bio, "Product designer who turns"))
}

func TestExtractResumeData_SkillsFallbackTokens(t *testing.T) {
	text := "Sam Lee\nSkills\nNegotiation, Public Speaking\nMentoring\nEducation\nBA"

	profile := ExtractResumeData(text)
	assert.Equal(t, []string{"Negotiation", "Public Speaking", "Mentoring"}, profile.Skills)
}

func TestExtractResumeData_SkillsInlineOnHeader(t *testing.T) {
	profile := ExtractResumeData("Sam Lee\nSkills: Python, Django\nExperience\nUsed Ruby daily")

	assert.Equal(t, []string{"Python", "Django"}, profile.Skills)
}

func TestExtractResumeData_NoProjectsNeverSynthesized(t *testing.T) {
	profile := ExtractResumeData("Sam Lee\nProjects\nbuilt many things.\nused tools.")

	assert.Empty(t, profile.Projects)
}

func TestExtractResumeData_ProjectsCappedAtFive(t *testing.T) {
	var b strings.Builder
	b.WriteString("Projects\n")
	for _, title := range []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf"} {
		b.WriteString(title + " | Go\nworked on it.\n")
	}

	profile := ExtractResumeData(b.String())
	require.Len(t, profile.Projects, 5)
	assert.Equal(t, "Echo", profile.Projects[4].Title)
}
