package cmd

import (
	"fmt"

	"github.com/abhisek/cyberhunter/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all recorded course progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("this deletes all completion data; re-run with --force to confirm")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.ProgressRepo().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}

		fmt.Println("Progress wiped.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm the wipe")
}
