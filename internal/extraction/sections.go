package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// sectionLineCap is the most lines a section may span after its header.
	sectionLineCap = 30
	// maxHeaderLength is the longest line treated as a generic section header.
	maxHeaderLength = 40
)

var (
	bioHeaders = []string{
		"professional summary", "career summary", "summary", "about me", "about",
		"professional profile", "profile", "career objective", "objective",
	}
	skillHeaders = []string{
		"technical skills", "core skills", "key skills", "skills", "tech stack",
		"technologies", "technical proficiencies",
	}
	projectHeaders = []string{
		"personal projects", "key projects", "academic projects", "side projects",
		"projects",
	}
	otherHeaders = []string{
		"work experience", "professional experience", "experience", "employment history",
		"employment", "work history", "education", "certifications", "certificates",
		"awards", "achievements", "publications", "interests", "hobbies",
		"references", "contact information", "contact details", "volunteer", "volunteering",
		"leadership", "activities", "coursework", "internships",
	}
	allHeaders = concat(bioHeaders, skillHeaders, projectHeaders, otherHeaders)

	headerNoiseRe = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
)

// section is a span of lines: the header at start, body up to end (exclusive).
type section struct {
	start  int
	end    int
	inline string // text after a "Header:" prefix on the header line
}

func (s *section) body(lines []string) []string {
	body := make([]string, 0, s.end-s.start)
	if s.inline != "" {
		body = append(body, s.inline)
	}
	return append(body, lines[s.start+1:s.end]...)
}

func concat(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// normalizeHeader lower-cases a line and strips punctuation.
func normalizeHeader(line string) string {
	cleaned := headerNoiseRe.ReplaceAllString(strings.ToLower(line), " ")
	return strings.Join(strings.Fields(cleaned), " ")
}

func matchesHeader(normalized string, headers []string) bool {
	if normalized == "" {
		return false
	}
	for _, h := range headers {
		if normalized == h || strings.HasPrefix(normalized, h) || strings.HasSuffix(normalized, h) {
			return true
		}
	}
	return false
}

// isSectionHeader reports whether a line looks like any known resume
// section header.
func isSectionHeader(line string) bool {
	if utf8.RuneCountInString(line) >= maxHeaderLength {
		return false
	}
	return matchesHeader(normalizeHeader(line), allHeaders)
}

// findSection locates the first line matching one of headers and extends the
// section to the next generic header or the line cap, whichever comes first.
func findSection(lines []string, headers []string) *section {
	for i, line := range lines {
		if !matchesHeader(normalizeHeader(line), headers) {
			continue
		}

		end := min(len(lines), i+1+sectionLineCap)
		for j := i + 1; j < end; j++ {
			if isSectionHeader(lines[j]) {
				end = j
				break
			}
		}
		return &section{start: i, end: end, inline: inlineContent(line)}
	}
	return nil
}

// inlineContent returns what follows the colon in "Skills: Go, Python".
func inlineContent(line string) string {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(line[idx+1:])
}
