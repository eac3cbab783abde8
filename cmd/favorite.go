package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/opnr/internal/cli"
	"github.com/inovacc/opnr/internal/core"
	"github.com/inovacc/opnr/internal/store"
	"github.com/spf13/cobra"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite [path]",
	Short: "Mark a project as favorite",
	Long: `Mark a project as favorite. Favorited projects are starred in lists
and can be shown on their own with 'opnr list --favorites'.

With no arguments an interactive picker is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db := store.GetDB()

		if len(args) == 1 {
			if err := core.FavoriteProject(db, args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Marked %s as favorite\n", args[0])

			return nil
		}

		cfg := core.LoadConfig(db)

		m := cli.NewProjectList("Favorite a project", core.Projects(db, cfg))

		finalModel, err := tea.NewProgram(m).Run()
		if err != nil {
			return err
		}

		selected := finalModel.(cli.ProjectListModel).Selected()
		if selected == nil {
			return nil
		}

		if err := core.FavoriteProject(db, selected.Path); err != nil {
			return err
		}

		fmt.Printf("✓ Marked %s as favorite\n", selected.Path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
}
