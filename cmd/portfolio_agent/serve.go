package main

import (
	"fmt"
	"time"

	"github.com/jonathan/portfolio-generator/internal/config"
	"github.com/jonathan/portfolio-generator/internal/server"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	port       int
	dbURL      string
	maxBytes   int64
	timeout    int
	useBrowser bool
	verbose    bool
}

func newServeCmd() *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start an HTTP server that exposes the generator over REST: resume extraction,
page cloning, rendering, stored templates and a streamed end-to-end generation.

The database is optional; without one the stored-template endpoints answer 503.
Rate limits are read from RATE_LIMIT_* environment variables.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(opts)
		},
	}

	cmd.Flags().IntVar(&opts.port, "port", 8080, "Port to listen on")
	cmd.Flags().StringVar(&opts.dbURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	cmd.Flags().Int64Var(&opts.maxBytes, "max-bytes", config.DefaultMaxInputBytes, "Maximum upload and fetched page size in bytes")
	cmd.Flags().IntVar(&opts.timeout, "timeout", config.DefaultFetchTimeoutSeconds, "Fetch timeout in seconds")
	cmd.Flags().BoolVar(&opts.useBrowser, "use-browser", false, "Always render fetched pages in a headless browser (requires Chrome)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print detailed debug information")
	return cmd
}

func runServe(opts serveOptions) error {
	if opts.port <= 0 || opts.port > 65535 {
		return fmt.Errorf("invalid port: %d", opts.port)
	}

	srv, err := server.New(server.Config{
		Port:          opts.port,
		DatabaseURL:   databaseURL(opts.dbURL),
		MaxInputBytes: opts.maxBytes,
		FetchTimeout:  time.Duration(opts.timeout) * time.Second,
		UseBrowser:    opts.useBrowser,
		Verbose:       opts.verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
