package rendering

import (
	"fmt"
	"strings"

	"github.com/aymerick/raymond"
	"github.com/jonathan/portfolio-generator/internal/types"
)

// TemplateSource is a template to render. Cloned marks templates produced
// from a fetched page or supplied by the user; those are never cached.
type TemplateSource struct {
	Name   string
	Markup string
	CSS    string
	Cloned bool
}

// Renderer executes Handlebars templates against a profile.
type Renderer struct {
	cache *TemplateCache
}

// NewRenderer creates a renderer. A nil cache disables caching.
func NewRenderer(cache *TemplateCache) *Renderer {
	return &Renderer{cache: cache}
}

// Render fills src with the profile's render context and returns the page.
func (r *Renderer) Render(src TemplateSource, profile *types.ProfileRecord) (string, error) {
	tpl, err := r.compiled(src)
	if err != nil {
		return "", err
	}

	if profile == nil {
		profile = types.NewProfileRecord()
	}
	out, err := tpl.Exec(types.BuildRenderContext(profile))
	if err != nil {
		return "", &RenderError{
			Message: fmt.Sprintf("failed to execute template %q", src.Name),
			Cause:   err,
		}
	}
	return out, nil
}

// compiled returns the parsed template for src, consulting the cache for
// built-in templates only.
func (r *Renderer) compiled(src TemplateSource) (*raymond.Template, error) {
	cacheable := r.cache != nil && !src.Cloned && src.Name != ""
	if cacheable {
		if tpl, ok := r.cache.Get(src.Name); ok {
			return tpl, nil
		}
	}

	tpl, err := Compile(src.Name, src.Markup)
	if err != nil {
		return nil, err
	}
	if cacheable {
		r.cache.Put(src.Name, tpl)
	}
	return tpl, nil
}

// Compile parses markup as a Handlebars template with the portfolio helpers
// registered.
func Compile(name, markup string) (tpl *raymond.Template, err error) {
	// raymond panics on some malformed input instead of returning an error.
	defer func() {
		if rec := recover(); rec != nil {
			tpl = nil
			err = &TemplateError{Name: name, Message: "failed to parse template", Cause: fmt.Errorf("%v", rec)}
		}
	}()

	tpl, err = raymond.Parse(markup)
	if err != nil {
		return nil, &TemplateError{Name: name, Message: "failed to parse template", Cause: err}
	}
	tpl.RegisterHelper("split", splitHelper)
	return tpl, nil
}

// splitHelper turns the comma separated skills string back into a list for
// {{#each (split skills)}}.
func splitHelper(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}
