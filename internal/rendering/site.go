package rendering

import (
	"fmt"
	"os"
	"path/filepath"
)

// File names used for generated sites and saved template directories.
const (
	IndexFile    = "index.html"
	StyleFile    = "style.css"
	TemplateFile = "template.html"
)

// WriteSite writes a rendered page and its stylesheet into outDir.
func WriteSite(outDir, html, css string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return &RenderError{Message: fmt.Sprintf("failed to create output directory %s", outDir), Cause: err}
	}
	if err := os.WriteFile(filepath.Join(outDir, IndexFile), []byte(html), 0644); err != nil {
		return &RenderError{Message: "failed to write " + IndexFile, Cause: err}
	}
	if err := os.WriteFile(filepath.Join(outDir, StyleFile), []byte(css), 0644); err != nil {
		return &RenderError{Message: "failed to write " + StyleFile, Cause: err}
	}
	return nil
}

// WriteTemplateDir saves a template's markup and CSS so LoadTemplateDir can
// read them back.
func WriteTemplateDir(dir, markup, css string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &TemplateError{Message: fmt.Sprintf("failed to create template directory %s", dir), Cause: err}
	}
	if err := os.WriteFile(filepath.Join(dir, TemplateFile), []byte(markup), 0644); err != nil {
		return &TemplateError{Message: "failed to write " + TemplateFile, Cause: err}
	}
	if err := os.WriteFile(filepath.Join(dir, StyleFile), []byte(css), 0644); err != nil {
		return &TemplateError{Message: "failed to write " + StyleFile, Cause: err}
	}
	return nil
}

// LoadTemplateDir reads a template saved by WriteTemplateDir. The stylesheet
// is optional. Templates read from disk are treated as user supplied and are
// never cached.
func LoadTemplateDir(dir string) (TemplateSource, error) {
	name := filepath.Base(filepath.Clean(dir))
	markup, err := os.ReadFile(filepath.Join(dir, TemplateFile))
	if err != nil {
		if os.IsNotExist(err) {
			return TemplateSource{}, &TemplateError{
				Name:    name,
				Message: fmt.Sprintf("template file not found: %s", filepath.Join(dir, TemplateFile)),
				Cause:   err,
			}
		}
		return TemplateSource{}, &TemplateError{Name: name, Message: "failed to read template file", Cause: err}
	}

	css, err := os.ReadFile(filepath.Join(dir, StyleFile))
	if err != nil && !os.IsNotExist(err) {
		return TemplateSource{}, &TemplateError{Name: name, Message: "failed to read stylesheet", Cause: err}
	}

	return TemplateSource{Name: name, Markup: string(markup), CSS: string(css), Cloned: true}, nil
}
