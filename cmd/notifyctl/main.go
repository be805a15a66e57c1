// notifyctl sends tracker notifications from hook scripts and checks the
// author map.
//
// Usage:
//
//	notifyctl changeset added --rev 1234 --author alice --message "Fix #42" --reponame core
//	svnlook log /srv/svn/core -r 1234 | notifyctl changeset added --rev 1234 --message -
//	notifyctl resolve "alice <alice@example.com>"
//
// Configuration is read from the same environment variables, .env file and
// CONFIG_FILE as the bot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tracslack/internal/di"
)

var version = "dev"

// loadListeners is replaced in tests.
var loadListeners = di.InitializeListeners

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "notifyctl",
		Short: "Send tracker notifications to Slack",
		Long: `notifyctl posts tracker events to the configured Slack webhooks.

It is meant to be called from repository hooks, where no long-running
receiver is available.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(changesetCmd())
	rootCmd.AddCommand(resolveCmd())
	return rootCmd
}
