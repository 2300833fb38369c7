package cloning

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/portfolio-generator/internal/markup"
	"github.com/jonathan/portfolio-generator/internal/types"
)

const (
	minNameLength    = 2
	maxNameLength    = 80
	maxRoleLength    = 120
	maxFallbackRole  = 80
	titlePlaceholder = "<title>" + PlaceholderName + " | Portfolio</title>"
)

var (
	h1Opener        = markup.Opener("h1")
	h2Opener        = markup.Opener("h2")
	roleClassOpener = regexp.MustCompile(
		`(?i)<[a-z][a-z0-9]*\b[^>]*\sclass\s*=\s*["'][^"']*(?:subtitle|tagline|role|headline)[^"']*["'][^>]*>`)

	titleRe = regexp.MustCompile(`(?is)<title\b[^>]*>.*?</title\s*>`)

	roleKeywordRe = regexp.MustCompile(`(?i)\b(?:developer|engineer|designer|analyst|architect|scientist|programmer|consultant|manager|freelancer|student|researcher|specialist|full[\s-]?stack|front[\s-]?end|back[\s-]?end|devops|creative|artist|writer|photographer|founder|intern|lead)s?\b`)

	textSegmentRe = regexp.MustCompile(`>[^<]+<`)
	textAttrRe    = regexp.MustCompile(`(?i)(\s(?:alt|title|content|aria-label)\s*=\s*)(?:"([^"]*)"|'([^']*)')`)
)

// templateName replaces the first h1's content with the name placeholder.
func (c *converter) templateName() {
	region := markup.FindRegion(c.html, h1Opener)
	if region == nil {
		return
	}
	text := markup.StripTags(region.InnerText)
	n := utf8.RuneCountInString(text)
	if n < minNameLength || n > maxNameLength || markup.HasPlaceholder(text) {
		return
	}
	c.ownerName = text
	c.html = markup.Splice(c.html, region, region.Rebuild(PlaceholderName))
	c.detected[types.SectionName] = true
}

// replaceOwnerName rewrites the document title, whether or not a name was
// found, then swaps every further occurrence of the detected name in text
// content and text-bearing attributes.
func (c *converter) replaceOwnerName() {
	if loc := titleRe.FindStringIndex(c.html); loc != nil {
		c.html = c.html[:loc[0]] + titlePlaceholder + c.html[loc[1]:]
	}

	if c.ownerName == "" {
		return
	}
	name := c.ownerName

	c.html = textSegmentRe.ReplaceAllStringFunc(c.html, func(seg string) string {
		return strings.ReplaceAll(seg, name, PlaceholderName)
	})

	matches := textAttrRe.FindAllStringSubmatchIndex(c.html, -1)
	var b strings.Builder
	last := 0
	for _, m := range matches {
		valStart, valEnd := m[4], m[5]
		if valStart < 0 {
			valStart, valEnd = m[6], m[7]
		}
		value := c.html[valStart:valEnd]
		if !strings.Contains(value, name) {
			continue
		}
		b.WriteString(c.html[last:valStart])
		b.WriteString(strings.ReplaceAll(value, name, PlaceholderName))
		last = valEnd
	}
	b.WriteString(c.html[last:])
	c.html = b.String()
}

// templateRole looks through h2 elements and subtitle-like elements in
// document order for the first one that reads like a job title. When none
// does, the first short h2 is used instead.
func (c *converter) templateRole() {
	candidates := c.roleCandidates()

	for _, r := range candidates {
		text := markup.StripTags(r.InnerText)
		if text == "" || markup.HasPlaceholder(r.InnerText) {
			continue
		}
		if utf8.RuneCountInString(text) < maxRoleLength && roleKeywordRe.MatchString(text) {
			c.setRole(r)
			return
		}
	}

	for _, r := range candidates {
		if !strings.EqualFold(tagName(r.OpenTag), "h2") || markup.HasPlaceholder(r.InnerText) {
			continue
		}
		n := utf8.RuneCountInString(markup.StripTags(r.InnerText))
		if n > 0 && n < maxFallbackRole {
			c.setRole(r)
			return
		}
	}
}

func (c *converter) setRole(r *markup.Region) {
	c.html = markup.Splice(c.html, r, r.Rebuild(PlaceholderRole))
	c.detected[types.SectionRole] = true
}

// roleCandidates returns the balanced h2 and subtitle-class elements of the
// page ordered by position.
func (c *converter) roleCandidates() []*markup.Region {
	seen := make(map[int]bool)
	var regions []*markup.Region
	for _, opener := range []*regexp.Regexp{h2Opener, roleClassOpener} {
		for _, loc := range opener.FindAllStringIndex(c.html, -1) {
			if seen[loc[0]] {
				continue
			}
			seen[loc[0]] = true
			if r := markup.RegionAt(c.html, loc[0], loc[1]); r != nil {
				regions = append(regions, r)
			}
		}
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].Start < regions[j].Start })
	return regions
}

var openTagNameRe = regexp.MustCompile(`^<([A-Za-z][A-Za-z0-9-]*)`)

func tagName(openTag string) string {
	if m := openTagNameRe.FindStringSubmatch(openTag); m != nil {
		return strings.ToLower(m[1])
	}
	return ""
}
