// Package pipeline provides the high-level orchestration for portfolio generation.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/portfolio-generator/internal/cloning"
	"github.com/jonathan/portfolio-generator/internal/db"
	"github.com/jonathan/portfolio-generator/internal/extraction"
	"github.com/jonathan/portfolio-generator/internal/fetch"
	"github.com/jonathan/portfolio-generator/internal/ingestion"
	"github.com/jonathan/portfolio-generator/internal/observability"
	"github.com/jonathan/portfolio-generator/internal/rendering"
	"github.com/jonathan/portfolio-generator/internal/types"
)

// Step names reported through ProgressEvent.
const (
	StepIngestResume  = "ingest_resume"
	StepExtractResume = "extract_resume"
	StepFetchPage     = "fetch_page"
	StepCloneTemplate = "clone_template"
	StepLoadTemplate  = "load_template"
	StepSave          = "save"
	StepRender        = "render"
	StepWriteSite     = "write_site"
)

// Step categories reported through ProgressEvent.
const (
	CategoryResume   = "resume"
	CategoryTemplate = "template"
	CategoryOutput   = "output"
)

// ErrNoTemplate is returned when no template source was given.
var ErrNoTemplate = errors.New("no template: give a page URL, a template directory or a template name")

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs. Calls are
// serialized even though the branches run concurrently.
type ProgressCallback func(event ProgressEvent)

// Store persists profiles and templates. *db.DB implements it.
type Store interface {
	SaveProfile(ctx context.Context, profile *types.ProfileRecord, source string) (uuid.UUID, error)
	SaveTemplate(ctx context.Context, tpl *types.ClonedTemplate) (uuid.UUID, error)
	GetTemplateByName(ctx context.Context, name string) (*types.ClonedTemplate, error)
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	// ResumePath is a resume document on disk or an http(s) URL of a resume
	// page. Empty yields an empty profile.
	ResumePath string
	// Profile, when set, is rendered as is and ResumePath is ignored.
	Profile *types.ProfileRecord

	// Exactly one template source is used, in this order of precedence.
	CloneURL    string // portfolio page to clone
	TemplateDir string // directory written by rendering.WriteTemplateDir
	Template    string // built-in theme or stored template name

	TemplateName string // name for the cloned template; derived from the URL when empty
	OutDir       string
	Stylesheet   string
	Credit       string

	MaxInputBytes int64
	FetchTimeout  time.Duration
	UseBrowser    bool
	Verbose       bool

	// Save persists the profile and a cloned template through Store, or
	// through a connection to DatabaseURL when Store is nil.
	Save        bool
	DatabaseURL string
	Store       Store

	Cache      *rendering.TemplateCache
	Browser    fetch.BrowserFunc
	Out        io.Writer // progress output; nil means os.Stdout
	OnProgress ProgressCallback
}

// Result holds everything a run produced
type Result struct {
	Profile    *types.ProfileRecord
	Template   rendering.TemplateSource
	Cloned     *types.ClonedTemplate // nil unless CloneURL was used
	HTML       string
	OutDir     string
	ProfileID  uuid.UUID
	TemplateID uuid.UUID
}

// logPrefix is used to distinguish concurrent log output
type logPrefix string

const (
	prefixResume   logPrefix = "[Resume]   "
	prefixTemplate logPrefix = "[Template] "
)

// run carries per-invocation state shared by both branches.
type run struct {
	opts    RunOptions
	out     io.Writer
	printer *observability.Printer
	store   Store

	mu sync.Mutex // serializes OnProgress
}

func (r *run) emit(step, category, message string, content any) {
	if r.opts.OnProgress == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opts.OnProgress(ProgressEvent{
		Step:     step,
		Category: category,
		Message:  message,
		Content:  content,
	})
}

//nolint:errcheck // progress output; errors are not recoverable
func (r *run) printf(prefix logPrefix, format string, args ...any) {
	fmt.Fprintf(r.out, string(prefix)+format, args...)
}

// RunPipeline extracts a profile from the resume and prepares a template
// concurrently, optionally persists both, renders the page and writes the site.
func RunPipeline(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.CloneURL == "" && opts.TemplateDir == "" && opts.Template == "" {
		return nil, ErrNoTemplate
	}
	if opts.OutDir == "" {
		return nil, errors.New("output directory is required")
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	out = &syncWriter{w: out}
	r := &run{
		opts:    opts,
		out:     out,
		printer: observability.NewPrinter(out),
		store:   opts.Store,
	}

	// Initialize database connection if configured
	needStore := opts.Save || (opts.Template != "" && !isTheme(opts.Template))
	if r.store == nil && needStore && opts.DatabaseURL != "" {
		database, err := db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			r.printer.Warnf("Failed to connect to database: %v\n", err)
			r.printf("", "Continuing without database persistence...\n")
		} else {
			defer database.Close()
			if err := database.EnsureSchema(ctx); err != nil {
				return nil, err
			}
			r.store = database
			if opts.Verbose {
				r.printf("", "[VERBOSE] Connected to database\n")
			}
		}
	}

	result := &Result{OutDir: opts.OutDir}

	// =========================================================================
	// Resume and template branches run concurrently
	// =========================================================================
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := r.resumeBranch(gCtx)
		if err != nil {
			return err
		}
		result.Profile = profile
		return nil
	})

	g.Go(func() error {
		src, cloned, err := r.templateBranch(gCtx)
		if err != nil {
			return err
		}
		result.Template = src
		result.Cloned = cloned
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Save {
		if err := r.save(ctx, result); err != nil {
			return nil, err
		}
	}

	r.printf("", "Rendering %s...\n", result.Template.Name)
	html, err := rendering.NewRenderer(opts.Cache).Render(result.Template, result.Profile)
	if err != nil {
		return nil, err
	}
	result.HTML = html
	r.emit(StepRender, CategoryOutput, fmt.Sprintf("Rendered %d bytes", len(html)), nil)

	if err := rendering.WriteSite(opts.OutDir, html, result.Template.CSS); err != nil {
		return nil, err
	}
	r.emit(StepWriteSite, CategoryOutput, "Wrote site to "+opts.OutDir, nil)
	if opts.Verbose {
		r.printer.PrintSite(opts.OutDir, []string{rendering.IndexFile, rendering.StyleFile})
	}

	r.printer.Successf("Done! Site written to %s\n", filepath.Join(opts.OutDir, rendering.IndexFile))
	return result, nil
}

// resumeBranch ingests the resume and extracts the profile.
func (r *run) resumeBranch(ctx context.Context) (*types.ProfileRecord, error) {
	prefix := prefixResume
	if r.opts.Profile != nil {
		profile := *r.opts.Profile
		profile.Normalize()
		return &profile, nil
	}
	if r.opts.ResumePath == "" {
		r.printf(prefix, "No resume given, using an empty profile\n")
		return types.NewProfileRecord(), nil
	}

	var (
		text string
		meta *ingestion.Metadata
		err  error
	)
	if isURL(r.opts.ResumePath) {
		r.printf(prefix, "Step 1/2: Ingesting resume from URL: %s...\n", r.opts.ResumePath)
		text, meta, err = ingestion.IngestFromURL(ctx, r.opts.ResumePath, &ingestion.URLOptions{
			HTTP:           r.httpOptions(),
			UseBrowser:     r.opts.UseBrowser,
			BrowserTimeout: r.opts.FetchTimeout,
			Verbose:        r.opts.Verbose,
			Browser:        r.opts.Browser,
		})
	} else {
		r.printf(prefix, "Step 1/2: Ingesting resume from file: %s...\n", r.opts.ResumePath)
		text, meta, err = ingestion.ReadDocument(r.opts.ResumePath, r.opts.MaxInputBytes)
	}
	if err != nil {
		return nil, fmt.Errorf("resume ingestion failed: %w", err)
	}
	r.emit(StepIngestResume, CategoryResume,
		fmt.Sprintf("Ingested %d chars of %s text", len(text), meta.Format), meta)

	r.printf(prefix, "Step 2/2: Extracting profile...\n")
	profile := extraction.ExtractResumeData(text)
	r.emit(StepExtractResume, CategoryResume,
		fmt.Sprintf("Extracted %d skills and %d projects", len(profile.Skills), len(profile.Projects)), profile)
	if r.opts.Verbose {
		r.printer.PrintProfile(profile)
	}
	return profile, nil
}

// templateBranch clones, loads or looks up the template to render.
func (r *run) templateBranch(ctx context.Context) (rendering.TemplateSource, *types.ClonedTemplate, error) {
	prefix := prefixTemplate
	switch {
	case r.opts.CloneURL != "":
		r.printf(prefix, "Step 1/2: Fetching page: %s...\n", r.opts.CloneURL)
		page, err := fetch.FetchPage(ctx, r.opts.CloneURL, &fetch.PageOptions{
			HTTP:           r.httpOptions(),
			UseBrowser:     r.opts.UseBrowser,
			BrowserTimeout: r.opts.FetchTimeout,
			Verbose:        r.opts.Verbose,
			Browser:        r.opts.Browser,
		})
		if err != nil {
			return rendering.TemplateSource{}, nil, fmt.Errorf("fetching page failed: %w", err)
		}
		r.emit(StepFetchPage, CategoryTemplate,
			fmt.Sprintf("Fetched %d bytes of HTML and %d bytes of CSS", len(page.HTML), len(page.CSS)), nil)

		r.printf(prefix, "Step 2/2: Converting page to template...\n")
		cloned := cloning.Clone(cloning.Source{
			URL:  page.URL,
			HTML: page.HTML,
			CSS:  page.CSS,
			Name: r.opts.TemplateName,
		}, &cloning.Options{Stylesheet: r.opts.Stylesheet, Credit: r.opts.Credit})
		r.emit(StepCloneTemplate, CategoryTemplate, "Cloned template "+cloned.Name, cloned.DetectedSections)
		if r.opts.Verbose {
			r.printer.PrintDetectedSections(cloned.DetectedSections, cloning.InjectedSections(cloned.Markup))
		}
		return clonedSource(cloned), cloned, nil

	case r.opts.TemplateDir != "":
		r.printf(prefix, "Loading template from %s...\n", r.opts.TemplateDir)
		src, err := rendering.LoadTemplateDir(r.opts.TemplateDir)
		if err != nil {
			return rendering.TemplateSource{}, nil, err
		}
		r.emit(StepLoadTemplate, CategoryTemplate, "Loaded template "+src.Name, nil)
		return src, nil, nil

	default:
		if isTheme(r.opts.Template) {
			r.printf(prefix, "Using built-in theme %s\n", r.opts.Template)
			src, err := rendering.Theme(r.opts.Template)
			if err != nil {
				return rendering.TemplateSource{}, nil, err
			}
			r.emit(StepLoadTemplate, CategoryTemplate, "Loaded theme "+src.Name, nil)
			return src, nil, nil
		}
		if r.store == nil {
			return rendering.TemplateSource{}, nil, &rendering.TemplateError{
				Name:    r.opts.Template,
				Message: fmt.Sprintf("not a built-in theme (available: %v) and no database configured", rendering.ThemeNames()),
			}
		}
		r.printf(prefix, "Loading stored template %s...\n", r.opts.Template)
		stored, err := r.store.GetTemplateByName(ctx, r.opts.Template)
		if err != nil {
			return rendering.TemplateSource{}, nil, err
		}
		if stored == nil {
			return rendering.TemplateSource{}, nil, &rendering.TemplateError{
				Name:    r.opts.Template,
				Message: "no stored template with this name",
			}
		}
		r.emit(StepLoadTemplate, CategoryTemplate, "Loaded stored template "+stored.Name, nil)
		return clonedSource(stored), nil, nil
	}
}

// save persists the profile and, when one was cloned, the template.
func (r *run) save(ctx context.Context, result *Result) error {
	if r.store == nil {
		r.printer.Warnf("no database configured, skipping save\n")
		return nil
	}

	if r.opts.Profile == nil {
		id, err := r.store.SaveProfile(ctx, result.Profile, r.opts.ResumePath)
		if err != nil {
			return err
		}
		result.ProfileID = id
	}

	if result.Cloned != nil {
		id, err := r.store.SaveTemplate(ctx, result.Cloned)
		if err != nil {
			return err
		}
		result.TemplateID = id
	}

	r.emit(StepSave, CategoryOutput, "Saved run artifacts", nil)
	return nil
}

func (r *run) httpOptions() *fetch.Options {
	opts := fetch.DefaultOptions()
	if r.opts.FetchTimeout > 0 {
		opts.Timeout = r.opts.FetchTimeout
	}
	if r.opts.MaxInputBytes > 0 {
		opts.MaxBytes = r.opts.MaxInputBytes
	}
	return opts
}

func clonedSource(tpl *types.ClonedTemplate) rendering.TemplateSource {
	return rendering.TemplateSource{Name: tpl.Name, Markup: tpl.Markup, CSS: tpl.CSS, Cloned: true}
}

func isTheme(name string) bool {
	return slices.Contains(rendering.ThemeNames(), name)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// syncWriter lets both branches print progress to one writer.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
