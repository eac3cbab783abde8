package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/inovacc/opnr/internal/core"
	"github.com/inovacc/opnr/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage provider access tokens",
	Long: `Commands for managing hosting provider access tokens.

Stored tokens are embedded into clone URLs for their host. Tokens are read
from a hidden prompt and never echoed or printed back.

Available Commands:
  set       Store a token for a host
  remove    Delete the token for a host

Examples:
  opnr config token set github.com
  opnr config token remove github.com`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configTokenSetCmd = &cobra.Command{
	Use:   "set <host>",
	Short: "Store a token for a host",
	Long: `Store an access token for a hosting provider host such as github.com,
gitlab.com or bitbucket.org. The token is read from a hidden prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		host := args[0]

		_, _ = fmt.Fprintf(os.Stdout, "Token for %s: ", host)

		raw, err := term.ReadPassword(int(os.Stdin.Fd()))

		_, _ = fmt.Fprintln(os.Stdout)

		if err != nil {
			return fmt.Errorf("reading token: %w", err)
		}

		token := strings.TrimSpace(string(raw))

		if err := core.SetToken(store.GetDB(), host, token); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "✓ Token stored for %s\n", host)

		return nil
	},
}

var configTokenRemoveCmd = &cobra.Command{
	Use:   "remove <host>",
	Short: "Delete the token for a host",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		host := args[0]

		if err := core.RemoveToken(store.GetDB(), host); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "✓ Token removed for %s\n", host)

		return nil
	},
}

func init() {
	configCmd.AddCommand(configTokenCmd)
	configTokenCmd.AddCommand(configTokenSetCmd)
	configTokenCmd.AddCommand(configTokenRemoveCmd)
}
