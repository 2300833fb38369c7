package cloning

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/portfolio-generator/internal/markup"
	"github.com/jonathan/portfolio-generator/internal/types"
)

var (
	unusedSectionOpener = markup.OpenerWithAttr(containerTags,
		"experience", "work-history", "workhistory", "employment", "career",
		"writing", "blog", "testimonial", "education", "certification")

	idAttrRe = regexp.MustCompile(`(?i)\sid\s*=\s*["']([^"']+)["']`)

	emailRe      = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	imageTLDRe   = regexp.MustCompile(`(?i)\.(?:png|jpe?g|gif|svg|webp|avif|ico|bmp)$`)
	mailtoRe     = regexp.MustCompile(`(?i)mailto:[^"'\s>]*`)
	footerOpener = markup.Opener("footer")

	gitHubHrefRe   = regexp.MustCompile(`(?i)(\shref\s*=\s*["'])https?://(?:www\.)?github\.com/[A-Za-z0-9_-]+/?(["'])`)
	linkedInHrefRe = regexp.MustCompile(`(?i)(\shref\s*=\s*["'])https?://(?:[a-z]{2,3}\.)?linkedin\.com/in/[^"'/?#]+/?(?:\?[^"']*)?(["'])`)
	otherSocialRe  = regexp.MustCompile(`(?i)(\shref\s*=\s*["'])https?://(?:[a-z0-9-]+\.)?` +
		`(?:twitter\.com|x\.com|instagram\.com|facebook\.com|dribbble\.com|behance\.net|medium\.com|dev\.to|` +
		`codepen\.io|stackoverflow\.com|youtube\.com|gitlab\.com|bitbucket\.org|hashnode\.com|kaggle\.com|` +
		`leetcode\.com|hackerrank\.com|linktr\.ee|tiktok\.com|threads\.net|mastodon\.social|bsky\.app|` +
		`producthunt\.com|wellfound\.com|angel\.co|t\.me|discord\.gg|substack\.com)(?:[/?#][^"']*)?(["'])`)

	// creditRe matches a footer attribution line such as
	// "Designed & Built by Jane Doe" or "Made with love in Berlin".
	creditRe = regexp.MustCompile(`(?i)\b(?:designed|coded|built|developed|made|crafted|created)` +
		`(?:\s+(?:&amp;|&|and)\s+\w+)?[^<]{0,80}?\b(?:by|in|with)\b[^<]*`)
)

// removeUnusedSections deletes containers for content the profile does not
// carry, unless an earlier stage already templated them, then removes the
// in-page navigation entries that pointed at them.
func (c *converter) removeUnusedSections() {
	var removedIDs []string
	from := 0
	for {
		region := markup.FindRegionAt(c.html, unusedSectionOpener, from)
		if region == nil {
			break
		}
		if markup.HasPlaceholder(region.FullText) {
			from = region.Start + len(region.OpenTag)
			continue
		}
		if m := idAttrRe.FindStringSubmatch(region.OpenTag); m != nil {
			removedIDs = append(removedIDs, m[1])
		}
		c.html = markup.Splice(c.html, region, "")
		from = region.Start
	}

	for _, id := range removedIDs {
		c.html = removeNavLinks(c.html, id)
	}
}

func removeNavLinks(html, id string) string {
	target := regexp.QuoteMeta(id)
	itemRe := regexp.MustCompile(fmt.Sprintf(
		`(?is)<li\b[^>]*>\s*<a\b[^>]*\shref\s*=\s*["'][^"'#]*#%s["'][^>]*>.*?</a\s*>\s*</li\s*>`, target))
	anchorRe := regexp.MustCompile(fmt.Sprintf(
		`(?is)<a\b[^>]*\shref\s*=\s*["'][^"'#]*#%s["'][^>]*>.*?</a\s*>`, target))
	html = itemRe.ReplaceAllString(html, "")
	return anchorRe.ReplaceAllString(html, "")
}

// templateEmail replaces the first visible address, and every other
// occurrence of it, with the email placeholder and points mailto links at it.
func (c *converter) templateEmail() {
	address := ""
	for _, candidate := range emailRe.FindAllString(c.html, -1) {
		if !imageTLDRe.MatchString(candidate) {
			address = candidate
			break
		}
	}
	if address != "" {
		c.html = strings.ReplaceAll(c.html, address, PlaceholderEmail)
		c.detected[types.SectionEmail] = true
	}
	if mailtoRe.MatchString(c.html) {
		c.html = mailtoRe.ReplaceAllString(c.html, "mailto:"+PlaceholderEmail)
		c.detected[types.SectionEmail] = true
	}
}

// templateSocialLinks points GitHub and LinkedIn profile links at the
// profile's handles and neutralises links to any other social network.
func (c *converter) templateSocialLinks() {
	if gitHubHrefRe.MatchString(c.html) {
		c.html = gitHubHrefRe.ReplaceAllString(c.html, "${1}"+PlaceholderGitHubURL+"${2}")
		c.detected[types.SectionSocial] = true
	}
	if linkedInHrefRe.MatchString(c.html) {
		c.html = linkedInHrefRe.ReplaceAllString(c.html, "${1}"+PlaceholderLinkedInURL+"${2}")
		c.detected[types.SectionSocial] = true
	}
	c.html = otherSocialRe.ReplaceAllString(c.html, "${1}#${2}")
}

// replaceFooterCredit swaps the source author's attribution for a generic
// credit line.
func (c *converter) replaceFooterCredit() {
	footer := markup.FindRegion(c.html, footerOpener)
	if footer == nil {
		return
	}
	wrapped := textSegmentRe.ReplaceAllStringFunc(">"+footer.InnerText+"<", func(seg string) string {
		return creditRe.ReplaceAllLiteralString(seg, c.opts.Credit)
	})
	inner := wrapped[1 : len(wrapped)-1]
	if inner != footer.InnerText {
		c.html = markup.Splice(c.html, footer, footer.Rebuild(inner))
	}
}
