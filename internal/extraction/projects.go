package extraction

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/portfolio-generator/internal/types"
)

var (
	projectURLRe   = regexp.MustCompile(`https?://[^\s)\]>]+`)
	titleSplitRe   = regexp.MustCompile(`\s*[|–—]\s*`)
	titleSeparator = regexp.MustCompile(`[|–—]`)
)

// actionVerbs open description bullets, never project titles.
var actionVerbs = []string{
	"built", "developed", "created", "implemented", "designed", "used", "utilized",
	"leveraged", "integrated", "achieved", "reduced", "improved", "managed", "led",
	"collaborated", "conducted",
}

// parseProjects groups a projects section into title lines and the
// description lines that follow them.
func parseProjects(lines []string) []types.Project {
	projects := []types.Project{}
	var current *types.Project

	flush := func() {
		if current != nil && current.Title != "" {
			projects = append(projects, *current)
		}
		current = nil
	}

	for _, raw := range lines {
		line := strings.TrimSpace(bulletRe.ReplaceAllString(raw, ""))
		if line == "" {
			continue
		}

		if isProjectTitle(line) {
			flush()
			current = newProjectFromTitle(line)
			continue
		}

		if current == nil {
			current = &types.Project{}
		}
		appendDescription(current, line)
	}
	flush()

	if len(projects) > types.MaxProjects {
		projects = projects[:types.MaxProjects]
	}
	return projects
}

func isProjectTitle(line string) bool {
	n := utf8.RuneCountInString(line)
	if n >= 80 || startsWithActionVerb(line) {
		return false
	}

	first, _ := utf8.DecodeRuneInString(line)
	if unicode.IsDigit(first) {
		return false
	}

	if titleSeparator.MatchString(line) {
		return true
	}
	return n < 60 && unicode.IsUpper(first) && !strings.Contains(line, ". ")
}

func startsWithActionVerb(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	word := strings.ToLower(strings.TrimRight(fields[0], ",:;."))
	for _, verb := range actionVerbs {
		if word == verb {
			return true
		}
	}
	return false
}

// newProjectFromTitle splits "Title | React, Node" into the title and a
// description seed holding the tech stack.
func newProjectFromTitle(line string) *types.Project {
	parts := titleSplitRe.Split(line, -1)
	project := &types.Project{Title: truncate(strings.TrimSpace(parts[0]), types.MaxProjectTitleLength)}

	var rest []string
	for _, p := range parts[1:] {
		if p = strings.TrimSpace(p); p != "" {
			rest = append(rest, p)
		}
	}
	if len(rest) > 0 {
		project.Description = truncate(strings.Join(rest, ", "), types.MaxProjectDescriptionLength)
	}
	return project
}

// appendDescription adds a continuation line, lifting the first URL out into
// the project link.
func appendDescription(project *types.Project, line string) {
	if url := projectURLRe.FindString(line); url != "" {
		if project.Link == "" {
			project.Link = strings.TrimRight(url, ".,;")
		}
		line = strings.TrimSpace(strings.Replace(line, url, "", 1))
	}
	if line == "" {
		return
	}

	desc := line
	if project.Description != "" {
		desc = project.Description + " " + line
	}
	project.Description = truncate(desc, types.MaxProjectDescriptionLength)
}
