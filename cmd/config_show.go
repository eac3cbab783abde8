package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/inovacc/opnr/internal/core"
	"github.com/inovacc/opnr/internal/store"
	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := core.LoadConfig(store.GetDB())

		_, _ = fmt.Fprintf(os.Stdout, "Root paths:      %s\n", strings.Join(cfg.RootPaths, ", "))
		_, _ = fmt.Fprintf(os.Stdout, "Scan depth:      %d\n", cfg.ScanDepth)
		_, _ = fmt.Fprintf(os.Stdout, "Exclusions:      %s\n", strings.Join(cfg.ExclusionPatterns, ", "))
		_, _ = fmt.Fprintf(os.Stdout, "Clone directory: %s\n", cfg.DefaultCloneDir)
		_, _ = fmt.Fprintf(os.Stdout, "Editor:          %s\n", cfg.Editor)
		_, _ = fmt.Fprintf(os.Stdout, "New window:      %t\n", cfg.OpenInNewWindow)

		if len(cfg.CustomEditors) > 0 {
			names := make([]string, len(cfg.CustomEditors))
			for i, e := range cfg.CustomEditors {
				names[i] = e.Name
			}

			_, _ = fmt.Fprintf(os.Stdout, "Custom editors:  %s\n", strings.Join(names, ", "))
		}

		if len(cfg.Tokens) > 0 {
			hosts := make([]string, 0, len(cfg.Tokens))
			for h := range cfg.Tokens {
				hosts = append(hosts, h)
			}

			// tokens themselves are never printed
			_, _ = fmt.Fprintf(os.Stdout, "Tokens for:      %s\n", strings.Join(hosts, ", "))
		}

		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
