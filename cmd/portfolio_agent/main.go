// Package main provides the command line entry point for the Portfolio Generator.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "portfolio_agent",
		Short:         "Portfolio Generator CLI",
		Long:          "Portfolio Generator turns a resume into a personal website, either from a built-in theme or by cloning the layout of an existing portfolio page.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		newExtractResumeCmd(),
		newCloneTemplateCmd(),
		newRenderCmd(),
		newGenerateCmd(),
		newListTemplatesCmd(),
		newServeCmd(),
	)
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
