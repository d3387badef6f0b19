package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/cyberhunter/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the static tool and course catalog",
}

var catalogToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List tools (optionally filtered by category or search query)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		query, _ := cmd.Flags().GetString("search")

		var tools []catalog.Tool
		switch {
		case category != "" && query != "":
			return fmt.Errorf("use --category or --search, not both")
		case category != "":
			tools = catalog.ToolsByCategory(catalog.Category(category))
			if len(tools) == 0 {
				var names []string
				for _, c := range catalog.Categories() {
					names = append(names, string(c))
				}
				return fmt.Errorf("no tools in category %q; categories: %s",
					category, strings.Join(names, ", "))
			}
		case query != "":
			tools = catalog.SearchTools(query)
		default:
			tools = catalog.AllTools()
		}

		for _, t := range tools {
			star := " "
			if t.Popular {
				star = "★"
			}
			fmt.Printf("%s %-24s  %-28s  %s\n", star, t.Name, t.Category, t.Description)
		}
		fmt.Printf("\n%d tools\n", len(tools))
		return nil
	},
}

var catalogCoursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List course modules and their chapters",
	RunE: func(cmd *cobra.Command, args []string) error {
		showTopics, _ := cmd.Flags().GetBool("topics")

		for _, c := range catalog.AllCourses() {
			fmt.Printf("%-24s  %-14s  %s\n", c.ID, c.Difficulty, c.Title)
			if showTopics {
				for _, topic := range c.Topics {
					fmt.Printf("    - %s\n", topic)
				}
			}
		}
		fmt.Printf("\n%d modules, %d chapters\n", len(catalog.AllCourses()), catalog.TotalTopics())
		return nil
	},
}

func init() {
	catalogToolsCmd.Flags().String("category", "", "Filter by category")
	catalogToolsCmd.Flags().String("search", "", "Search name and description")
	catalogCoursesCmd.Flags().Bool("topics", false, "Also list each module's chapters")

	catalogCmd.AddCommand(catalogToolsCmd)
	catalogCmd.AddCommand(catalogCoursesCmd)
}
