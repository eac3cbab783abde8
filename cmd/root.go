package cmd

import (
	"os"

	"github.com/inovacc/opnr/internal/application"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A developer project locator and opener",
	Long: `Opnr finds the projects scattered across your machine and opens them
in your editor of choice. It scans configured root directories for project
markers, remembers what you open, and can clone or scaffold new projects
straight into your workspace.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}
