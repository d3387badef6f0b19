package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/cyberhunter/internal/catalog"
	"github.com/abhisek/cyberhunter/internal/session"
	"github.com/abhisek/cyberhunter/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show course completion statistics",
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

		tracker := session.NewTracker(cmd.Context(), s.ProgressRepo())

		fmt.Printf("%-42s  %-14s  %9s  %5s\n", "Module", "Difficulty", "Chapters", "%")
		fmt.Println(strings.Repeat("─", 78))

		totalDone, totalTopics := 0, 0
		for _, course := range catalog.AllCourses() {
			done := tracker.CompletedCount(course.ID)
			totalDone += done
			totalTopics += len(course.Topics)

			fmt.Printf("%-42s  %-14s  %4d/%-4d  %4d%%\n",
				truncate(course.Title, 42),
				course.Difficulty,
				done,
				len(course.Topics),
				tracker.CompletionPercent(course.ID),
			)
		}

		fmt.Println(strings.Repeat("─", 78))
		overall := 0
		if totalTopics > 0 {
			overall = int(math.Round(100 * float64(totalDone) / float64(totalTopics)))
		}
		fmt.Printf("%-42s  %-14s  %4d/%-4d  %4d%%\n", "TOTAL", "", totalDone, totalTopics, overall)
		return nil
	},
}
