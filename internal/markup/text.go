package markup

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var (
	anyTagRe     = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// StripTags returns the visible text of a markup fragment with entities
// decoded and whitespace collapsed.
func StripTags(fragment string) string {
	if !strings.Contains(fragment, "<") && !strings.Contains(fragment, "&") {
		return strings.TrimSpace(whitespaceRe.ReplaceAllString(fragment, " "))
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		// The tokenizer is lenient; fall back to dropping anything tag-shaped.
		return strings.TrimSpace(whitespaceRe.ReplaceAllString(anyTagRe.ReplaceAllString(fragment, " "), " "))
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(doc.Text(), " "))
}

// TextLen is the rune length of a fragment's stripped text.
func TextLen(fragment string) int {
	return utf8.RuneCountInString(StripTags(fragment))
}

// HasPlaceholder reports whether s already carries a template token.
func HasPlaceholder(s string) bool {
	return strings.Contains(s, "{{")
}
