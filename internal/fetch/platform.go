// Package fetch - platform.go detects hosted site builders and their quirks.
package fetch

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Platform represents a known site builder or static host.
type Platform string

const (
	// PlatformFramer is a Framer-published site
	PlatformFramer Platform = "framer"
	// PlatformWix is a Wix site
	PlatformWix Platform = "wix"
	// PlatformWebflow is a Webflow site
	PlatformWebflow Platform = "webflow"
	// PlatformNotion is a public Notion page
	PlatformNotion Platform = "notion"
	// PlatformSquarespace is a Squarespace site
	PlatformSquarespace Platform = "squarespace"
	// PlatformGitHubPages is a GitHub Pages site
	PlatformGitHubPages Platform = "github-pages"
	// PlatformUnknown is an unrecognized host
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the hosting platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Hostname())

	switch {
	case strings.HasSuffix(host, ".framer.website"),
		strings.HasSuffix(host, ".framer.app"),
		strings.HasSuffix(host, ".framer.ai"):
		return PlatformFramer
	case strings.HasSuffix(host, ".wixsite.com"),
		strings.HasSuffix(host, ".wixstudio.io"):
		return PlatformWix
	case strings.HasSuffix(host, ".webflow.io"):
		return PlatformWebflow
	case strings.HasSuffix(host, ".notion.site"),
		host == "notion.site":
		return PlatformNotion
	case strings.HasSuffix(host, ".squarespace.com"):
		return PlatformSquarespace
	case strings.HasSuffix(host, ".github.io"):
		return PlatformGitHubPages
	}

	return PlatformUnknown
}

// NeedsBrowser reports whether pages on the platform are rendered client
// side, so that a plain HTTP fetch returns little more than a loader.
func (p Platform) NeedsBrowser() bool {
	switch p {
	case PlatformFramer, PlatformWix, PlatformNotion:
		return true
	default:
		return false
	}
}

// PlatformNoiseSelectors returns selectors for elements a platform injects
// into every page, such as "made with" badges and consent banners.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
		"#cookie-notice",
	}

	switch platform {
	case PlatformFramer:
		return append(common,
			"#__framer-badge-container",
			".__framer-badge",
		)
	case PlatformWix:
		return append(common,
			"#WIX_ADS",
			"#wix-ads",
			"[data-testid='freemium-banner']",
		)
	case PlatformWebflow:
		return append(common,
			".w-webflow-badge",
		)
	case PlatformNotion:
		return append(common,
			".notion-topbar",
			".notion-overlay-container",
		)
	case PlatformSquarespace:
		return append(common,
			".sqs-announcement-bar-dropzone",
			"#sqs-cookie-banner",
		)
	default:
		return common
	}
}

// StripPlatformNoise removes the platform's injected elements from a page.
// The markup is returned untouched when nothing matched, so well-behaved pages
// are never re-serialized.
func StripPlatformNoise(html string, platform Platform) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	noise := doc.Find(strings.Join(PlatformNoiseSelectors(platform), ", "))
	if noise.Length() == 0 {
		return html
	}
	noise.Remove()
	out, err := doc.Html()
	if err != nil {
		return html
	}
	return out
}
