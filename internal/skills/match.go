package skills

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxFallbackTokens caps the number of raw tokens returned by FallbackTokens.
const MaxFallbackTokens = 20

var (
	tokenSplitRe = regexp.MustCompile(`[,\n•·▪●◦|;:/]+`)
	numericRe    = regexp.MustCompile(`^[\d\s.,%+-]+$`)
)

// Match runs every vocabulary rule over text and returns the labels that
// matched, deduplicated, in vocabulary order. The result is never nil.
func Match(text string) []string {
	found := []string{}
	if strings.TrimSpace(text) == "" {
		return found
	}

	seen := make(map[string]bool)
	for _, r := range vocabulary {
		if seen[r.Label] {
			continue
		}
		ok, err := r.Detector.MatchString(text)
		if err != nil || !ok {
			// A timed-out detector counts as no match.
			continue
		}
		seen[r.Label] = true
		found = append(found, r.Label)
	}
	return found
}

// FallbackTokens splits a skills section's raw text on list delimiters and
// keeps the plausible skill tokens: 2 to 34 characters, not purely numeric,
// deduplicated case-insensitively, at most MaxFallbackTokens.
func FallbackTokens(text string) []string {
	tokens := []string{}
	seen := make(map[string]bool)

	for _, part := range tokenSplitRe.Split(text, -1) {
		token := strings.Trim(strings.TrimSpace(part), "-*–—>•. \t")
		n := utf8.RuneCountInString(token)
		if n < 2 || n > 34 {
			continue
		}
		if numericRe.MatchString(token) {
			continue
		}
		key := strings.ToLower(token)
		if seen[key] {
			continue
		}
		seen[key] = true
		tokens = append(tokens, token)
		if len(tokens) == MaxFallbackTokens {
			break
		}
	}
	return tokens
}
