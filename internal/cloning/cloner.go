// Package cloning turns an arbitrary portfolio page into a template skeleton
// by replacing the owner's content with Handlebars placeholders.
package cloning

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/portfolio-generator/internal/types"
)

const (
	// DefaultStylesheet is the href of the stylesheet written next to the
	// rendered page.
	DefaultStylesheet = "style.css"
	// DefaultCredit replaces the source page's footer attribution.
	DefaultCredit = "Built with Portfolio Generator"
)

// Options controls the parts of a conversion that callers may vary.
type Options struct {
	Stylesheet string
	Credit     string
}

// DefaultOptions returns the options used by ConvertHTMLToTemplate.
func DefaultOptions() *Options {
	return &Options{Stylesheet: DefaultStylesheet, Credit: DefaultCredit}
}

// Source is a fetched page handed to Clone.
type Source struct {
	URL  string
	HTML string
	CSS  string
	Name string
}

// converter carries the markup through the ordered conversion stages.
type converter struct {
	html      string
	origin    *url.URL
	opts      *Options
	detected  types.DetectedSections
	ownerName string
}

type stage func(*converter)

// stages run in this order; later stages rely on the placeholders written by
// earlier ones.
var stages = []stage{
	(*converter).stripScripts,
	(*converter).stripStylesheets,
	(*converter).escapeMustaches,
	(*converter).absolutizeURLs,
	(*converter).linkStylesheet,
	(*converter).templateName,
	(*converter).replaceOwnerName,
	(*converter).templateRole,
	(*converter).templateBio,
	(*converter).templateSkills,
	(*converter).templateProjects,
	(*converter).removeUnusedSections,
	(*converter).templateEmail,
	(*converter).templateSocialLinks,
	(*converter).replaceFooterCredit,
	(*converter).injectMissingSections,
}

// ConvertHTMLToTemplate converts a page into a template skeleton using the
// default options. pageURL is used to absolutize relative asset references
// and may be empty.
func ConvertHTMLToTemplate(html, pageURL string) *types.TemplateSkeleton {
	return Convert(html, pageURL, nil)
}

// Convert is ConvertHTMLToTemplate with explicit options. It never fails; a
// stage that finds nothing leaves the markup unchanged and the final stage
// injects whatever the page lacked.
func Convert(html, pageURL string, opts *Options) *types.TemplateSkeleton {
	o := DefaultOptions()
	if opts != nil {
		if opts.Stylesheet != "" {
			o.Stylesheet = opts.Stylesheet
		}
		if opts.Credit != "" {
			o.Credit = opts.Credit
		}
	}

	c := &converter{
		html:     html,
		origin:   pageOrigin(pageURL),
		opts:     o,
		detected: types.NewDetectedSections(),
	}
	for _, run := range stages {
		run(c)
	}

	return &types.TemplateSkeleton{
		TemplateMarkup:   c.html,
		DetectedSections: c.detected,
	}
}

// Clone converts a fetched page and wraps the result with the metadata a
// stored template carries. The page's CSS passes through untouched.
func Clone(src Source, opts *Options) *types.ClonedTemplate {
	skeleton := Convert(src.HTML, src.URL, opts)
	name := src.Name
	if name == "" {
		name = TemplateName(src.URL)
	}
	return &types.ClonedTemplate{
		ID:               uuid.New(),
		Name:             name,
		SourceURL:        src.URL,
		Markup:           skeleton.TemplateMarkup,
		CSS:              src.CSS,
		DetectedSections: skeleton.DetectedSections,
		CreatedAt:        time.Now().UTC(),
	}
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// TemplateName derives a stable template name from a page URL, for example
// "clone-jane-dev" for https://www.jane.dev/.
func TemplateName(pageURL string) string {
	host := ""
	if u, err := url.Parse(strings.TrimSpace(pageURL)); err == nil {
		host = strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	}
	slug := strings.Trim(slugRe.ReplaceAllString(host, "-"), "-")
	if slug == "" {
		return "clone"
	}
	return "clone-" + slug
}

// pageOrigin returns scheme://host/ for an absolute http(s) URL and nil for
// anything else.
func pageOrigin(pageURL string) *url.URL {
	u, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil || u.Host == "" {
		return nil
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}
}
