package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/opnr/internal/cli"
	"github.com/inovacc/opnr/internal/core"
	"github.com/inovacc/opnr/internal/launch"
	"github.com/inovacc/opnr/internal/store"
	"github.com/spf13/cobra"
)

var configEditorPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick the default editor interactively",
	Long:  `Select the default editor from the installed editors found on this machine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db := store.GetDB()
		cfg := core.LoadConfig(db)

		installed := launch.InstalledEditors(cfg.CustomEditors)
		if len(installed) == 0 {
			return fmt.Errorf("no known editors found on this machine; add one with 'opnr config editor add'")
		}

		m := cli.NewEditorList("Default editor", installed)

		finalModel, err := tea.NewProgram(m).Run()
		if err != nil {
			return err
		}

		selected := finalModel.(cli.EditorListModel).Selected()
		if selected == nil {
			return nil
		}

		cfg.Editor = selected.Command

		if err := core.SaveConfig(db, cfg); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "✓ Default editor set to %s (%s)\n", selected.Name, selected.Command)

		return nil
	},
}

func init() {
	configEditorCmd.AddCommand(configEditorPickCmd)
}
