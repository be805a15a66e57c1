package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve AUTHOR...",
		Short: "Show how authors appear in chat messages",
		Long:  "Resolve prints each author as it will appear in notifications, using the configured author map.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listeners, err := loadListeners()
			if err != nil {
				return fmt.Errorf("initialize: %w", err)
			}
			for _, author := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", author, listeners.Resolver.Resolve(cmd.Context(), author))
			}
			return nil
		},
	}
}
