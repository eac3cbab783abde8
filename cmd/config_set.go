package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/opnr/internal/core"
	"github.com/inovacc/opnr/internal/model"
	"github.com/inovacc/opnr/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	setRoots     string
	setDepth     string
	setExclude   string
	setCloneDir  string
	setEditor    string
	setNewWindow string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change configuration values",
	Long: `Change one or more configuration values. Only the flags you pass are
changed; everything else keeps its current value.

Examples:
  opnr config set --roots "~/code,~/work"
  opnr config set --depth 4 --exclude "node_modules,.cache,target"
  opnr config set --editor nvim --new-window true`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db := store.GetDB()
		cfg := core.LoadConfig(db)

		cmd.Flags().Visit(func(f *pflag.Flag) {
			switch f.Name {
			case "roots":
				cfg.RootPaths = model.ParsePaths(setRoots)
			case "depth":
				cfg.ScanDepth = model.ParseDepth(setDepth)
			case "exclude":
				cfg.ExclusionPatterns = model.ParsePatterns(setExclude)
			case "clone-dir":
				cfg.DefaultCloneDir = model.ExpandHome(setCloneDir)
			case "editor":
				cfg.Editor = setEditor
			case "new-window":
				cfg.OpenInNewWindow = setNewWindow == "true"
			}
		})

		if err := core.SaveConfig(db, cfg); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(os.Stdout, "✓ Configuration saved")

		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringVar(&setRoots, "roots", "", "Comma-separated scan root paths ('~' expands to home)")
	configSetCmd.Flags().StringVar(&setDepth, "depth", "", "Maximum scan depth from each root")
	configSetCmd.Flags().StringVar(&setExclude, "exclude", "", "Comma-separated exclusion substrings")
	configSetCmd.Flags().StringVar(&setCloneDir, "clone-dir", "", "Default directory for clones and new projects")
	configSetCmd.Flags().StringVar(&setEditor, "editor", "", "Default editor command")
	configSetCmd.Flags().StringVar(&setNewWindow, "new-window", "", "Always open in a new window (true/false)")
}
