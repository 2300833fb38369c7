package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/portfolio-generator/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	linkedInRe = regexp.MustCompile(`(?i)linkedin\.com/in/([A-Za-z0-9_-]+)`)
	gitHubRe   = regexp.MustCompile(`(?i)github\.com/([A-Za-z0-9_-]+)`)
	urlLikeRe  = regexp.MustCompile(`(?i)https?://|www\.|\w\.(?:com|io|dev|org|net|me|co)\b`)
	contactRe  = regexp.MustCompile(`(?i)\b(?:phone|email|e-mail|address|linkedin|github)\b`)
)

// extractContact runs one pass over the full text for the first email, phone
// number and social handles.
func extractContact(profile *types.ProfileRecord, text string) {
	profile.Email = emailRe.FindString(text)
	profile.Phone = strings.TrimSpace(phoneRe.FindString(text))

	if m := linkedInRe.FindStringSubmatch(text); m != nil {
		profile.LinkedIn = m[1]
	}
	if m := gitHubRe.FindStringSubmatch(text); m != nil {
		profile.GitHub = m[1]
	}
}

// looksLikeContact reports whether a line is contact information rather than
// prose or a title.
func looksLikeContact(line string) bool {
	return strings.Contains(line, "@") ||
		urlLikeRe.MatchString(line) ||
		contactRe.MatchString(line) ||
		phoneRe.MatchString(line)
}
