package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/cyberhunter/internal/catalog"
	"github.com/abhisek/cyberhunter/internal/gateway"
	"github.com/abhisek/cyberhunter/internal/llm"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated content for a tool (no database)",
	Long: `Generate and print the guide and practice scenario for one tool.

This is a stateless developer tool — no database, no progress tracking, no
event logging. Useful for evaluating prompt and content quality.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("tool", "", "Tool name, e.g. nmap (required)")
	previewCmd.Flags().Bool("videos", false, "Also print suggested video resources")
	_ = previewCmd.MarkFlagRequired("tool")
}

func runPreview(cmd *cobra.Command, args []string) error {
	toolVal, _ := cmd.Flags().GetString("tool")
	withVideos, _ := cmd.Flags().GetBool("videos")

	tool, ok := catalog.FindTool(toolVal)
	if !ok {
		tool = catalog.CustomTool(toolVal)
		fmt.Printf("(not in library, previewing as custom tool)\n\n")
	}

	// No EventRepo: logging skipped.
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gw := gateway.NewService(provider, gateway.DefaultConfig())

	fmt.Printf("Tool: %s [%s]\n", tool.Name, tool.Category)
	if tool.Description != "" {
		fmt.Println(tool.Description)
	}
	fmt.Println()

	fmt.Println("── Guide ──")
	fmt.Println(gw.Guide(ctx, tool.Name))
	fmt.Println()

	fmt.Println("── Scenario ──")
	if sc := gw.Scenario(ctx, tool.Name); sc != nil {
		fmt.Printf("Contexte   : %s\n", sc.Context)
		fmt.Printf("Tâche      : %s\n", sc.Task)
		fmt.Printf("Cible      : %s\n", sc.Target)
		fmt.Printf("Difficulté : %s\n", sc.Difficulty)
	} else {
		fmt.Println("(scenario generation failed)")
	}

	if withVideos {
		fmt.Println()
		fmt.Println("── Videos ──")
		videos := gw.Videos(ctx, tool.Name)
		if len(videos) == 0 {
			fmt.Println("(no suggestions)")
		}
		for _, v := range videos {
			fmt.Printf("- %s — %s\n  ⌕ %s\n", v.Title, v.Description, v.SearchQuery)
		}
	}

	return nil
}
