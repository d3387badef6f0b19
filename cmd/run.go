package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/cyberhunter/internal/app"
	"github.com/abhisek/cyberhunter/internal/gateway"
	"github.com/abhisek/cyberhunter/internal/llm"
	"github.com/abhisek/cyberhunter/internal/session"
	"github.com/abhisek/cyberhunter/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	tracker := session.NewTracker(ctx, st.ProgressRepo())
	ctrl := session.NewController()

	var gw *gateway.Service
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		gw = gateway.NewService(provider, gateway.DefaultConfig())
	}

	return app.Run(gw, ctrl, tracker)
}
