package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/portfolio-generator/internal/config"
	"github.com/jonathan/portfolio-generator/internal/pipeline"
	"github.com/jonathan/portfolio-generator/internal/rendering"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	configPath  string
	resume      string
	url         string
	templateDir string
	template    string
	name        string
	outDir      string
	stylesheet  string
	credit      string
	maxBytes    int64
	timeout     int
	useBrowser  bool
	save        bool
	verbose     bool
	dbURL       string
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a portfolio site from a resume end-to-end",
		Long: `Extract a profile from the resume and prepare a template concurrently, then render
the site: index.html and style.css in the output directory.

The template comes from exactly one of --url (clone a portfolio page), --template-dir
(a directory written by clone-template) or --template (a built-in theme or a stored
template). Without a template source the default theme is used.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	// Config file flag (processed first)
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	cmd.Flags().StringVarP(&opts.resume, "resume", "r", "", "Path or URL of the resume")
	cmd.Flags().StringVarP(&opts.url, "url", "u", "", "Portfolio page to clone")
	cmd.Flags().StringVar(&opts.templateDir, "template-dir", "", "Template directory written by clone-template")
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "Built-in theme or stored template name")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Name for the cloned template")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Site output directory (default \"site\")")
	cmd.Flags().StringVar(&opts.stylesheet, "stylesheet", "", "Stylesheet href linked from cloned pages")
	cmd.Flags().StringVar(&opts.credit, "credit", "", "Footer credit written into cloned pages")
	cmd.Flags().Int64Var(&opts.maxBytes, "max-bytes", 0, "Maximum resume and page size in bytes")
	cmd.Flags().IntVar(&opts.timeout, "timeout", 0, "Fetch timeout in seconds")
	cmd.Flags().BoolVar(&opts.useBrowser, "use-browser", false, "Use headless browser for client-rendered sites (requires Chrome)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Store the profile and cloned template in the database")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for persistence and stored templates
	cmd.Flags().StringVar(&opts.dbURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	// Step 1: Load config file if provided
	var cfg config.Config
	if opts.configPath != "" {
		loadedCfg, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if opts.verbose {
			_, _ = fmt.Fprintf(out, "Loaded config from: %s\n", opts.configPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	flags := cmd.Flags()
	if flags.Changed("resume") {
		cfg.Resume = opts.resume
	}
	if flags.Changed("url") {
		cfg.URL = opts.url
	}
	if flags.Changed("template-dir") {
		cfg.TemplateDir = opts.templateDir
	}
	if flags.Changed("template") {
		cfg.Template = opts.template
	}
	if flags.Changed("name") {
		cfg.Name = opts.name
	}
	if flags.Changed("out") {
		cfg.OutDir = opts.outDir
	}
	if flags.Changed("stylesheet") {
		cfg.Stylesheet = opts.stylesheet
	}
	if flags.Changed("credit") {
		cfg.Credit = opts.credit
	}
	if flags.Changed("max-bytes") {
		cfg.MaxInputBytes = opts.maxBytes
	}
	if flags.Changed("timeout") {
		cfg.FetchTimeoutSeconds = opts.timeout
	}
	if flags.Changed("use-browser") {
		cfg.UseBrowser = opts.useBrowser
	}
	if flags.Changed("save") {
		cfg.Save = opts.save
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if flags.Changed("db-url") {
		cfg.DatabaseURL = opts.dbURL
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{DatabaseURL: os.Getenv("DATABASE_URL")})
	if cfg.URL == "" && cfg.TemplateDir == "" && cfg.Template == "" {
		cfg.Template = rendering.DefaultTheme
	}

	// Step 4: Validate the merged configuration
	if err := cfg.Validate(); err != nil {
		return err
	}

	runOpts := pipeline.RunOptions{
		ResumePath:    cfg.Resume,
		CloneURL:      cfg.URL,
		TemplateDir:   cfg.TemplateDir,
		Template:      cfg.Template,
		TemplateName:  cfg.Name,
		OutDir:        cfg.OutDir,
		Stylesheet:    cfg.Stylesheet,
		Credit:        cfg.Credit,
		MaxInputBytes: cfg.MaxInputBytes,
		FetchTimeout:  cfg.FetchTimeout(),
		UseBrowser:    cfg.UseBrowser,
		Verbose:       cfg.Verbose,
		Save:          cfg.Save,
		DatabaseURL:   cfg.DatabaseURL,
		Cache:         rendering.NewTemplateCache(),
		Out:           out,
	}
	if cfg.Verbose {
		runOpts.OnProgress = func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(out, "[VERBOSE] %s/%s: %s\n", event.Category, event.Step, event.Message)
		}
	}

	result, err := pipeline.RunPipeline(ctx, runOpts)
	if err != nil {
		return err
	}

	if result.Cloned != nil {
		_, _ = fmt.Fprintf(out, "Template: %s (from %s)\n", result.Cloned.Name, result.Cloned.SourceURL)
	}
	return nil
}
