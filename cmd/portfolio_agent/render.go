package main

import (
	"context"
	"fmt"

	"github.com/jonathan/portfolio-generator/internal/pipeline"
	"github.com/jonathan/portfolio-generator/internal/rendering"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	profilePath string
	templateDir string
	template    string
	outDir      string
	dbURL       string
	verbose     bool
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a saved profile into a site",
		Long: fmt.Sprintf(`Render a profile.json written by extract-resume with either a template directory
written by clone-template or a named template. Built-in themes: %v.
Any other name is looked up in the database.`, rendering.ThemeNames()),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.profilePath, "profile", "p", "", "Path to profile.json (required)")
	cmd.Flags().StringVar(&opts.templateDir, "template-dir", "", "Template directory written by clone-template")
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "Built-in theme or stored template name")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Site output directory (required)")
	cmd.Flags().StringVar(&opts.dbURL, "db-url", "", "PostgreSQL connection URL for stored templates (optional, defaults to DATABASE_URL env var)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print detailed debug information")

	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("out")
	cmd.MarkFlagsMutuallyExclusive("template-dir", "template")
	cmd.MarkFlagsOneRequired("template-dir", "template")
	return cmd
}

func runRender(cmd *cobra.Command, opts renderOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	profile, err := readProfile(opts.profilePath)
	if err != nil {
		return err
	}

	_, err = pipeline.RunPipeline(ctx, pipeline.RunOptions{
		Profile:     profile,
		TemplateDir: opts.templateDir,
		Template:    opts.template,
		OutDir:      opts.outDir,
		DatabaseURL: databaseURL(opts.dbURL),
		Verbose:     opts.verbose,
		Cache:       rendering.NewTemplateCache(),
		Out:         cmd.OutOrStdout(),
	})
	return err
}
