package cmd

import (
	"fmt"

	"github.com/inovacc/opnr/internal/core"
	"github.com/inovacc/opnr/internal/store"
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rescan the configured root paths",
	Long:  `Invalidate the cached scan results and rescan the configured root paths.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db := store.GetDB()
		cfg := core.LoadConfig(db)

		projects := core.Refresh(db, cfg)

		fmt.Printf("✓ Found %d projects\n", len(projects))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
