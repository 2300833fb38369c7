package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/portfolio-generator/internal/config"
	"github.com/jonathan/portfolio-generator/internal/extraction"
	"github.com/jonathan/portfolio-generator/internal/ingestion"
	"github.com/jonathan/portfolio-generator/internal/observability"
	rootschemas "github.com/jonathan/portfolio-generator/schemas"
	"github.com/spf13/cobra"
)

type extractResumeOptions struct {
	file       string
	outDir     string
	maxBytes   int64
	useBrowser bool
	save       bool
	dbURL      string
	verbose    bool
}

func newExtractResumeCmd() *cobra.Command {
	var opts extractResumeOptions
	cmd := &cobra.Command{
		Use:   "extract-resume",
		Short: "Extract a structured profile from a resume",
		Long: `Read a resume (.pdf, .docx, .html, .txt or .md, or an http(s) URL of a resume page),
clean its text and infer a profile: name, role, bio, contact details, skills and projects.

Writes resume.cleaned.txt, resume.meta.json and profile.json to the output directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtractResume(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path or URL of the resume (required)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Output directory (required)")
	cmd.Flags().Int64Var(&opts.maxBytes, "max-bytes", config.DefaultMaxInputBytes, "Maximum resume size in bytes")
	cmd.Flags().BoolVar(&opts.useBrowser, "use-browser", false, "Render resume pages in a headless browser when needed (requires Chrome)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Store the profile in the database")
	cmd.Flags().StringVar(&opts.dbURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print detailed debug information")

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func runExtractResume(cmd *cobra.Command, opts extractResumeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	var (
		text string
		meta *ingestion.Metadata
		err  error
	)
	if strings.HasPrefix(opts.file, "http://") || strings.HasPrefix(opts.file, "https://") {
		text, meta, err = ingestion.IngestFromURL(ctx, opts.file, &ingestion.URLOptions{
			UseBrowser: opts.useBrowser,
			Verbose:    opts.verbose,
		})
	} else {
		text, meta, err = ingestion.ReadDocument(opts.file, opts.maxBytes)
	}
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}

	if err := ingestion.WriteOutput(opts.outDir, text, meta); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	profile := extraction.ExtractResumeData(text)
	if opts.verbose {
		observability.NewPrinter(out).PrintProfile(profile)
	}

	profilePath := filepath.Join(opts.outDir, profileFile)
	if err := writeArtifact(profilePath, rootschemas.Profile, profile); err != nil {
		return err
	}

	if opts.save {
		database, err := connect(ctx, databaseURL(opts.dbURL))
		if err != nil {
			return err
		}
		defer database.Close()
		id, err := database.SaveProfile(ctx, profile, opts.file)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Saved profile %s\n", id)
	}

	observability.Success(out, "Successfully extracted profile from %s (%s)\n", opts.file, meta.Format)
	_, _ = fmt.Fprintf(out, "Cleaned text: %s\n", filepath.Join(opts.outDir, "resume.cleaned.txt"))
	_, _ = fmt.Fprintf(out, "Profile: %s\n", profilePath)
	return nil
}
