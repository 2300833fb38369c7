// Package extraction converts plain resume text into a structured ProfileRecord
// using layered heuristics. Every stage is best-effort: a stage that finds
// nothing leaves its field at the empty default.
package extraction

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/portfolio-generator/internal/skills"
	"github.com/jonathan/portfolio-generator/internal/types"
)

// ExtractResumeData infers a profile from resume text. It never fails; empty
// input yields an all-empty record.
func ExtractResumeData(text string) *types.ProfileRecord {
	profile := types.NewProfileRecord()

	text = normalizeNewlines(text)
	lines := splitLines(text)

	extractContact(profile, text)

	nameIdx := extractName(profile, lines)
	extractRole(profile, lines, nameIdx)

	about := findSection(lines, bioHeaders)
	extractBio(profile, lines, about)

	skillsSection := findSection(lines, skillHeaders)
	extractSkills(profile, text, lines, skillsSection)

	if projects := findSection(lines, projectHeaders); projects != nil {
		profile.Projects = parseProjects(projects.body(lines))
	}

	return profile
}

func extractBio(profile *types.ProfileRecord, lines []string, about *section) {
	if about != nil {
		bio := trimPunctuation(strings.Join(about.body(lines), " "))
		if utf8.RuneCountInString(bio) > 20 {
			profile.Bio = truncate(bio, types.MaxBioLength)
		}
	}

	if profile.Bio == "" {
		for i := 1; i < len(lines) && i <= 15; i++ {
			line := lines[i]
			if utf8.RuneCountInString(line) > 80 && !isSectionHeader(line) && !looksLikeContact(line) {
				profile.Bio = truncate(line, types.MaxBioLength)
				break
			}
		}
	}
	profile.Summary = profile.Bio
}

func extractSkills(profile *types.ProfileRecord, text string, lines []string, sec *section) {
	surface := text
	if sec != nil {
		surface = strings.Join(sec.body(lines), "\n")
	}

	profile.Skills = skills.Match(surface)
	if len(profile.Skills) == 0 && sec != nil {
		profile.Skills = skills.FallbackTokens(surface)
	}
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// splitLines returns the trimmed, non-empty lines of text.
func splitLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}
