package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jonathan/portfolio-generator/internal/cloning"
	"github.com/jonathan/portfolio-generator/internal/config"
	"github.com/jonathan/portfolio-generator/internal/fetch"
	"github.com/jonathan/portfolio-generator/internal/observability"
	"github.com/jonathan/portfolio-generator/internal/rendering"
	"github.com/jonathan/portfolio-generator/internal/types"
	rootschemas "github.com/jonathan/portfolio-generator/schemas"
	"github.com/spf13/cobra"
)

type cloneTemplateOptions struct {
	url        string
	outDir     string
	name       string
	stylesheet string
	credit     string
	timeout    int
	maxBytes   int64
	useBrowser bool
	save       bool
	dbURL      string
	verbose    bool
	browser    fetch.BrowserFunc
}

func newCloneTemplateCmd() *cobra.Command {
	var opts cloneTemplateOptions
	cmd := &cobra.Command{
		Use:   "clone-template",
		Short: "Turn a portfolio page into a reusable template",
		Long: `Fetch a portfolio page and its stylesheets, replace the owner's content with
placeholders and save the result as a template directory (template.html, style.css)
plus template.json describing which sections were found.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCloneTemplate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.url, "url", "u", "", "Portfolio page to clone (required)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Template directory to write (required)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Template name (defaults to clone-<host>)")
	cmd.Flags().StringVar(&opts.stylesheet, "stylesheet", cloning.DefaultStylesheet, "Stylesheet href linked from the template")
	cmd.Flags().StringVar(&opts.credit, "credit", cloning.DefaultCredit, "Footer credit written into the template")
	cmd.Flags().IntVar(&opts.timeout, "timeout", config.DefaultFetchTimeoutSeconds, "Fetch timeout in seconds")
	cmd.Flags().Int64Var(&opts.maxBytes, "max-bytes", config.DefaultMaxInputBytes, "Maximum page size in bytes")
	cmd.Flags().BoolVar(&opts.useBrowser, "use-browser", false, "Always render the page in a headless browser (requires Chrome)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Store the template in the database")
	cmd.Flags().StringVar(&opts.dbURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print detailed debug information")

	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func runCloneTemplate(cmd *cobra.Command, opts cloneTemplateOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	req := types.CloneRequest{URL: opts.url, Name: opts.name}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid clone request: %w", err)
	}

	timeout := time.Duration(opts.timeout) * time.Second
	page, err := fetch.FetchPage(ctx, req.URL, &fetch.PageOptions{
		HTTP:           &fetch.Options{Timeout: timeout, UserAgent: fetch.DefaultUserAgent, MaxBytes: opts.maxBytes},
		UseBrowser:     opts.useBrowser,
		BrowserTimeout: timeout,
		Verbose:        opts.verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch page: %w", err)
	}

	tpl := cloning.Clone(cloning.Source{URL: page.URL, HTML: page.HTML, CSS: page.CSS, Name: req.Name},
		&cloning.Options{Stylesheet: opts.stylesheet, Credit: opts.credit})
	if opts.verbose {
		observability.NewPrinter(out).PrintDetectedSections(tpl.DetectedSections, cloning.InjectedSections(tpl.Markup))
	}

	if err := rendering.WriteTemplateDir(opts.outDir, tpl.Markup, tpl.CSS); err != nil {
		return err
	}
	if err := writeArtifact(filepath.Join(opts.outDir, templateJSON), rootschemas.ClonedTemplate, tpl); err != nil {
		return err
	}

	if opts.save {
		database, err := connect(ctx, databaseURL(opts.dbURL))
		if err != nil {
			return err
		}
		defer database.Close()
		if _, err := database.SaveTemplate(ctx, tpl); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Saved template %s\n", tpl.Name)
	}

	observability.Success(out, "Successfully cloned %s as %s\n", page.URL, tpl.Name)
	_, _ = fmt.Fprintf(out, "Template: %s\n", filepath.Join(opts.outDir, rendering.TemplateFile))
	if injected := cloning.InjectedSections(tpl.Markup); len(injected) > 0 {
		_, _ = fmt.Fprintf(out, "Added fallback sections: %v\n", injected)
	}
	return nil
}
