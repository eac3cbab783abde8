package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage opnr configuration",
	Long: `Commands for managing opnr configuration.

Available Commands:
  show      Show the current configuration
  set       Change configuration values
  editor    Manage custom editors
  token     Manage provider access tokens`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
