// Package catalog holds the static training data: the tools library and
// the course modules. All accessors return copies; the data is immutable.
package catalog

import (
	"fmt"
	"strings"
)

// AllTools returns every tool in library order.
func AllTools() []Tool {
	out := make([]Tool, len(tools))
	copy(out, tools)
	return out
}

// PopularTools returns the tools flagged as popular, in library order.
func PopularTools() []Tool {
	var out []Tool
	for _, t := range tools {
		if t.Popular {
			out = append(out, t)
		}
	}
	return out
}

// ToolsByCategory returns the tools of one category, in library order.
func ToolsByCategory(c Category) []Tool {
	var out []Tool
	for _, t := range tools {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// FindTool looks a tool up by exact name (case-insensitive).
func FindTool(name string) (Tool, bool) {
	for _, t := range tools {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Tool{}, false
}

// SearchTools returns tools whose name or description contains the query
// (case-insensitive). An empty query matches everything.
func SearchTools(query string) []Tool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return AllTools()
	}
	var out []Tool
	for _, t := range tools {
		if strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}

// CustomTool builds an ad-hoc tool entry for a name outside the library,
// so any command the user types can open a training session.
func CustomTool(name string) Tool {
	return Tool{
		Name:        strings.TrimSpace(name),
		Category:    CategoryOther,
		Description: "Outil personnalisé (hors bibliothèque).",
	}
}

// AllCourses returns every course module in program order.
func AllCourses() []CourseModule {
	out := make([]CourseModule, len(courses))
	copy(out, courses)
	return out
}

// FindCourse looks a course module up by ID.
func FindCourse(id string) (CourseModule, error) {
	for _, c := range courses {
		if c.ID == id {
			return c, nil
		}
	}
	return CourseModule{}, fmt.Errorf("unknown course %q", id)
}

// TotalTopics returns the number of topics across all course modules.
func TotalTopics() int {
	n := 0
	for _, c := range courses {
		n += len(c.Topics)
	}
	return n
}
