package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/opnr/internal/cli"
	"github.com/inovacc/opnr/internal/core"
	"github.com/inovacc/opnr/internal/model"
	"github.com/inovacc/opnr/internal/store"
	"github.com/spf13/cobra"
)

var (
	favoritesOnly bool
	copyOnly      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Interactively list scanned projects",
	Long: `Display scanned projects in an interactive list. Use arrow keys to
navigate, '/' to filter, 'c' to copy the highlighted path and Enter to open.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db := store.GetDB()
		cfg := core.LoadConfig(db)

		var projects []model.Project
		if favoritesOnly {
			projects = core.FavoriteProjects(db)
		} else {
			projects = core.Projects(db, cfg)
		}

		title := "Projects"
		if favoritesOnly {
			title = "Favorite projects"
		}

		m := cli.NewProjectList(title, projects)

		finalModel, err := tea.NewProgram(m).Run()
		if err != nil {
			return err
		}

		selected := finalModel.(cli.ProjectListModel).Selected()
		if selected == nil {
			return nil
		}

		if copyOnly {
			if err := clipboard.WriteAll(selected.Path); err != nil {
				return err
			}

			fmt.Printf("✓ Copied %s\n", selected.Path)

			return nil
		}

		return core.OpenProject(db, cfg, *selected, "", false)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&favoritesOnly, "favorites", false, "Show only favorite projects")
	listCmd.Flags().BoolVar(&copyOnly, "copy", false, "Copy the selected project path instead of opening it")
}
