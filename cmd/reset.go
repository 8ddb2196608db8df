package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskgene/arena/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the LLM event log",
	Long: `Delete every recorded LLM request from the event log.

Challenge sessions are never stored, so this is the only local state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		n, err := s.EventRepo().DeleteLLMEvents(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d LLM events from %s\n", n, dbPath)
		return nil
	},
}
