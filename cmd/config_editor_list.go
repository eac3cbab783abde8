package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/opnr/internal/core"
	"github.com/inovacc/opnr/internal/launch"
	"github.com/inovacc/opnr/internal/store"
	"github.com/spf13/cobra"
)

var editorListAll bool

var configEditorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all editors",
	Long: `List available editors (default + custom).

By default, shows only installed editors. Use --all to show all editors.`,
	RunE: runConfigEditorList,
}

func init() {
	configEditorCmd.AddCommand(configEditorListCmd)
	configEditorListCmd.Flags().BoolVarP(&editorListAll, "all", "a", false, "Show all editors (including not installed)")
}

func runConfigEditorList(cmd *cobra.Command, args []string) error {
	cfg := core.LoadConfig(store.GetDB())

	customNames := make(map[string]bool)
	for _, e := range cfg.CustomEditors {
		customNames[e.Name] = true
	}

	_, _ = fmt.Fprintln(os.Stdout, "Available Editors:")
	_, _ = fmt.Fprintln(os.Stdout, "")

	for _, editor := range launch.AllEditors(cfg.CustomEditors) {
		installed := launch.IsInstalled(editor.Command)

		if !editorListAll && !installed {
			continue
		}

		status := "✓"
		if !installed {
			status = "✗"
		}

		customMark := ""
		if customNames[editor.Name] {
			customMark = " [custom]"
		}

		runningMark := ""
		if installed && launch.Running(editor.Command) {
			runningMark = " [running]"
		}

		icon := ""
		if editor.Icon != "" {
			icon = editor.Icon + " "
		}

		_, _ = fmt.Fprintf(os.Stdout, "  %s %s%s (%s)%s%s\n", status, icon, editor.Name, editor.Command, customMark, runningMark)
	}

	_, _ = fmt.Fprintln(os.Stdout, "")
	_, _ = fmt.Fprintln(os.Stdout, "Legend: ✓ installed, ✗ not installed, [custom] user-added, [running] currently open")

	return nil
}
