package rendering

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed themes
var themeFS embed.FS

// DefaultTheme is used when no template is given.
const DefaultTheme = "minimal"

// ThemeNames lists the built-in themes in name order.
func ThemeNames() []string {
	entries, err := fs.ReadDir(themeFS, "themes")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Theme loads a built-in theme as a cacheable template source.
func Theme(name string) (TemplateSource, error) {
	markup, err := themeFS.ReadFile(path.Join("themes", name, "index.html"))
	if err != nil {
		return TemplateSource{}, &TemplateError{
			Name:    name,
			Message: fmt.Sprintf("unknown theme (available: %v)", ThemeNames()),
			Cause:   err,
		}
	}
	css, _ := themeFS.ReadFile(path.Join("themes", name, "style.css"))
	return TemplateSource{Name: name, Markup: string(markup), CSS: string(css)}, nil
}
