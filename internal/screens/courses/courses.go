// Package courses is the course catalog screen: module list with completion
// bars, topic expansion and session launch.
package courses

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberhunter/internal/catalog"
	"github.com/abhisek/cyberhunter/internal/gateway"
	"github.com/abhisek/cyberhunter/internal/router"
	"github.com/abhisek/cyberhunter/internal/screen"
	"github.com/abhisek/cyberhunter/internal/screens/activesession"
	sess "github.com/abhisek/cyberhunter/internal/session"
	"github.com/abhisek/cyberhunter/internal/ui/components"
	"github.com/abhisek/cyberhunter/internal/ui/layout"
	"github.com/abhisek/cyberhunter/internal/ui/theme"
)

// CoursesScreen lists the course modules.
type CoursesScreen struct {
	gw      *gateway.Service
	ctrl    *sess.Controller
	tracker *sess.Tracker

	courses     []catalog.CourseModule
	cursor      int
	expanded    bool
	topicCursor int
}

var _ screen.Screen = (*CoursesScreen)(nil)
var _ screen.KeyHintProvider = (*CoursesScreen)(nil)

// New creates the courses screen.
func New(gw *gateway.Service, ctrl *sess.Controller, tracker *sess.Tracker) *CoursesScreen {
	return &CoursesScreen{
		gw:      gw,
		ctrl:    ctrl,
		tracker: tracker,
		courses: catalog.AllCourses(),
	}
}

func (s *CoursesScreen) Init() tea.Cmd {
	return nil
}

func (s *CoursesScreen) Title() string {
	return "Formations"
}

func (s *CoursesScreen) KeyHints() []layout.KeyHint {
	if s.expanded {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Chapitre"},
			{Key: "Enter", Description: "Étudier"},
			{Key: "←", Description: "Replier"},
			{Key: "Esc", Description: "Retour"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Enter", Description: "Chapitres"},
		{Key: "Esc", Description: "Retour"},
	}
}

func (s *CoursesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	course := s.courses[s.cursor]

	if s.expanded {
		switch kmsg.String() {
		case "up", "k":
			if s.topicCursor > 0 {
				s.topicCursor--
			}
		case "down", "j":
			if s.topicCursor < len(course.Topics)-1 {
				s.topicCursor++
			}
		case "left", "h":
			s.expanded = false
			s.topicCursor = 0
		case "enter":
			if s.topicCursor >= 0 && s.topicCursor < len(course.Topics) {
				topic := course.Topics[s.topicCursor]
				return s, func() tea.Msg {
					return router.PushScreenMsg{
						Screen: activesession.NewTopic(s.gw, s.ctrl, s.tracker, course, topic),
					}
				}
			}
		}
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.courses)-1 {
			s.cursor++
		}
	case "enter", "right", "l":
		s.expanded = true
		s.topicCursor = 0
	}

	return s, nil
}

func (s *CoursesScreen) View(width, height int) string {
	if s.expanded {
		return s.renderTopics(width, height)
	}
	return s.renderList(width, height)
}

// renderList shows every module with difficulty tag and completion bar.
func (s *CoursesScreen) renderList(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	listHeight := (height - 2) / 2
	start := 0
	if listHeight > 0 && s.cursor >= listHeight {
		start = s.cursor - listHeight + 1
	}

	for i := start; i < len(s.courses) && (listHeight <= 0 || i < start+listHeight); i++ {
		course := s.courses[i]
		percent := s.tracker.CompletionPercent(course.ID)

		title := course.Title
		tag := difficultyTag(course.Difficulty)
		bar := components.NewProgressBar("", float64(percent)/100, false, 20).View()

		var line string
		if i == s.cursor {
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
				Render(fmt.Sprintf("  ▸ %-44s", title))
		} else {
			line = lipgloss.NewStyle().Foreground(theme.Text).
				Render(fmt.Sprintf("    %-44s", title))
		}
		b.WriteString(fmt.Sprintf("%s %s  %s %3d%%\n", line, tag, bar, percent))

		desc := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("      " + course.Description)
		b.WriteString(desc + "\n")
	}

	return b.String()
}

// renderTopics shows the selected module's chapter list.
func (s *CoursesScreen) renderTopics(width, height int) string {
	course := s.courses[s.cursor]

	var b strings.Builder
	b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(course.Title))
	b.WriteString("  " + difficultyTag(course.Difficulty))
	b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(course.Description))
	b.WriteString("\n\n")

	for i, topic := range course.Topics {
		mark := lipgloss.NewStyle().Foreground(theme.TextDim).Render("○")
		if s.tracker.Completed(course.ID, topic) {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("●")
		}

		if i == s.topicCursor {
			b.WriteString(fmt.Sprintf("  %s %s\n", mark,
				lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+topic)))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s\n", mark,
				lipgloss.NewStyle().Foreground(theme.Text).Render("  "+topic)))
		}
	}

	return b.String()
}

func difficultyTag(d catalog.Difficulty) string {
	var color = theme.Secondary
	switch d {
	case catalog.DifficultyIntermediate:
		color = theme.Primary
	case catalog.DifficultyAdvanced:
		color = theme.Warning
	case catalog.DifficultyExpert:
		color = theme.Error
	}
	return lipgloss.NewStyle().Foreground(color).Render("[" + string(d) + "]")
}
