package extraction

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/portfolio-generator/internal/types"
)

const (
	nameScanLines = 8
	roleScanLines = 10
)

var (
	nonNameCharRe = regexp.MustCompile(`[^\p{L}\p{M}\p{N}\s'.-]`)
	bulletRe      = regexp.MustCompile(`^[\s•·▪●◦►‣*>–—-]+`)
	digitRe       = regexp.MustCompile(`\d`)
)

// roleKeywords are matched as case-insensitive substrings of a line.
var roleKeywords = []string{
	"developer", "engineer", "designer", "full stack", "full-stack", "fullstack",
	"frontend", "front-end", "front end", "backend", "back-end", "back end",
	"devops", "architect", "analyst", "scientist", "programmer", "consultant",
	"manager", "team lead", "tech lead", "intern", "student", "specialist",
	"administrator", "researcher", "freelancer", "site reliability",
}

// cleanNameLine strips punctuation other than name-internal marks.
func cleanNameLine(line string) string {
	cleaned := nonNameCharRe.ReplaceAllString(line, " ")
	return strings.Join(strings.Fields(cleaned), " ")
}

// extractName scans the first lines for something shaped like a person's
// name. It returns the index of the line used, or -1.
func extractName(profile *types.ProfileRecord, lines []string) int {
	for i := 0; i < len(lines) && i < nameScanLines; i++ {
		if isNameCandidate(lines[i]) {
			profile.Name = cleanNameLine(lines[i])
			return i
		}
	}

	if len(lines) == 0 {
		return -1
	}
	profile.Name = truncate(cleanNameLine(lines[0]), types.MaxNameLength)
	return 0
}

func isNameCandidate(line string) bool {
	if digitRe.MatchString(line) || strings.Contains(line, "@") ||
		strings.Contains(line, "/") || urlLikeRe.MatchString(line) || contactRe.MatchString(line) ||
		isSectionHeader(line) {
		return false
	}

	cleaned := cleanNameLine(line)
	n := utf8.RuneCountInString(cleaned)
	if n < 3 || n > types.MaxNameLength {
		return false
	}

	tokens := strings.Fields(cleaned)
	return len(tokens) >= 2 && len(tokens) <= 5
}

// extractRole takes the first early line mentioning a professional role,
// skipping headers, contact lines and the line already used for the name.
func extractRole(profile *types.ProfileRecord, lines []string, nameIdx int) {
	for i := 0; i < len(lines) && i < roleScanLines; i++ {
		line := lines[i]
		if i == nameIdx || isSectionHeader(line) || looksLikeContact(line) {
			continue
		}
		if !containsRoleKeyword(line) {
			continue
		}

		cleaned := strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
		if n := utf8.RuneCountInString(cleaned); n >= 5 && n <= 120 {
			profile.Role = cleaned
			return
		}
	}
}

func containsRoleKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range roleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// trimPunctuation removes leading bullets and trailing separators from a
// block of joined text.
func trimPunctuation(s string) string {
	s = bulletRe.ReplaceAllString(s, "")
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ':' || r == '-' || r == '|' || r == ','
	})
}
