package cloning

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	scriptBlockRe     = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	scriptSelfCloseRe = regexp.MustCompile(`(?i)<script\b[^>]*/>`)
	noscriptRe        = regexp.MustCompile(`(?is)<noscript\b[^>]*>.*?</noscript\s*>`)

	stylesheetLinkRe = regexp.MustCompile(`(?i)<link\b[^>]*\brel\s*=\s*["']?[^"'>]*\bstylesheet\b[^>]*>`)
	styleBlockRe     = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)

	// urlAttrRe captures a src or href attribute; group 2 holds a double
	// quoted value and group 3 a single quoted one.
	urlAttrRe = regexp.MustCompile(`(?i)(\s(?:src|href)\s*=\s*)(?:"([^"]*)"|'([^']*)')`)
	schemeRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

	// mustacheRe matches a brace run that Handlebars would read as a tag.
	mustacheRe = regexp.MustCompile(`\{\{+`)

	headCloseRe = regexp.MustCompile(`(?i)</head\s*>`)
	headOpenRe  = regexp.MustCompile(`(?i)<head\b[^>]*>`)
)

func (c *converter) stripScripts() {
	c.html = scriptBlockRe.ReplaceAllString(c.html, "")
	c.html = scriptSelfCloseRe.ReplaceAllString(c.html, "")
	c.html = noscriptRe.ReplaceAllString(c.html, "")
}

func (c *converter) stripStylesheets() {
	c.html = stylesheetLinkRe.ReplaceAllString(c.html, "")
	c.html = styleBlockRe.ReplaceAllString(c.html, "")
}

// escapeMustaches turns the page's own "{{" runs, such as code samples or
// client-side templates, into character references so that only placeholders
// written by later stages contain "{{".
func (c *converter) escapeMustaches() {
	c.html = mustacheRe.ReplaceAllStringFunc(c.html, func(run string) string {
		return strings.Repeat("&#123;", len(run))
	})
}

// absolutizeURLs rewrites relative src and href values against the page
// origin. It does nothing when the page URL was missing or invalid.
func (c *converter) absolutizeURLs() {
	if c.origin == nil {
		return
	}

	matches := urlAttrRe.FindAllStringSubmatchIndex(c.html, -1)
	if len(matches) == 0 {
		return
	}

	var b strings.Builder
	b.Grow(len(c.html))
	last := 0
	for _, m := range matches {
		valStart, valEnd := m[4], m[5]
		if valStart < 0 {
			valStart, valEnd = m[6], m[7]
		}
		value := c.html[valStart:valEnd]
		resolved, ok := c.resolve(value)
		if !ok {
			continue
		}
		b.WriteString(c.html[last:valStart])
		b.WriteString(resolved)
		last = valEnd
	}
	b.WriteString(c.html[last:])
	c.html = b.String()
}

// resolve returns the absolute form of a relative reference. Absolute URLs,
// protocol-relative URLs, fragments, data URIs and placeholders are left
// alone.
func (c *converter) resolve(value string) (string, bool) {
	v := strings.TrimSpace(value)
	switch {
	case v == "",
		strings.HasPrefix(v, "#"),
		strings.HasPrefix(v, "//"),
		strings.Contains(v, "{{"),
		schemeRe.MatchString(v):
		return "", false
	}
	ref, err := url.Parse(v)
	if err != nil {
		return "", false
	}
	return c.origin.ResolveReference(ref).String(), true
}

// linkStylesheet points the page at the locally written stylesheet.
func (c *converter) linkStylesheet() {
	link := fmt.Sprintf(`<link rel="stylesheet" href="%s">`, c.opts.Stylesheet)
	if loc := headCloseRe.FindStringIndex(c.html); loc != nil {
		c.html = c.html[:loc[0]] + link + "\n" + c.html[loc[0]:]
		return
	}
	if loc := headOpenRe.FindStringIndex(c.html); loc != nil {
		c.html = c.html[:loc[1]] + "\n" + link + c.html[loc[1]:]
		return
	}
	c.html = link + "\n" + c.html
}
