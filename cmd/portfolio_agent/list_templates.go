package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/jonathan/portfolio-generator/internal/db"
	"github.com/jonathan/portfolio-generator/internal/rendering"
	"github.com/spf13/cobra"
)

type listTemplatesOptions struct {
	prefix string
	limit  int
	dbURL  string
}

func newListTemplatesCmd() *cobra.Command {
	var opts listTemplatesOptions
	cmd := &cobra.Command{
		Use:   "list-templates",
		Short: "List built-in themes and stored templates",
		Long: `List the built-in themes. When a database is configured, also list the cloned
templates stored in it, newest first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListTemplates(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Only list stored templates whose name starts with this prefix")
	cmd.Flags().IntVar(&opts.limit, "limit", db.DefaultListLimit, "Maximum number of stored templates to list")
	cmd.Flags().StringVar(&opts.dbURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	return cmd
}

func runListTemplates(cmd *cobra.Command, opts listTemplatesOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintln(out, "Built-in themes:")
	for _, name := range rendering.ThemeNames() {
		_, _ = fmt.Fprintf(out, "  %s\n", name)
	}

	url := databaseURL(opts.dbURL)
	if url == "" {
		return nil
	}
	database, err := connect(ctx, url)
	if err != nil {
		return err
	}
	defer database.Close()

	templates, err := database.ListTemplates(ctx, db.TemplateFilters{NamePrefix: opts.prefix, Limit: opts.limit})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "\nStored templates:")
	if len(templates) == 0 {
		_, _ = fmt.Fprintln(out, "  (none)")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "  NAME\tSOURCE\tCREATED")
	for _, t := range templates {
		_, _ = fmt.Fprintf(w, "  %s\t%s\t%s\n", t.Name, t.SourceURL, t.CreatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}
