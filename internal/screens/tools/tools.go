// Package tools is the tool library screen: category filter, incremental
// search and session launch.
package tools

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

// allCategories is the label for the unfiltered view.
const allCategories = "TOUS"

// ToolsScreen lists the tool library.
type ToolsScreen struct {
	gw      *gateway.Service
	ctrl    *sess.Controller
	tracker *sess.Tracker

	categories []string
	catIdx     int
	visible    []catalog.Tool
	cursor     int

	searching bool
	search    components.TextInput
	query     string
}

var _ screen.Screen = (*ToolsScreen)(nil)
var _ screen.KeyHintProvider = (*ToolsScreen)(nil)

// New creates the tools screen.
func New(gw *gateway.Service, ctrl *sess.Controller, tracker *sess.Tracker) *ToolsScreen {
	cats := []string{allCategories}
	for _, c := range catalog.Categories() {
		cats = append(cats, string(c))
	}

	s := &ToolsScreen{
		gw:         gw,
		ctrl:       ctrl,
		tracker:    tracker,
		categories: cats,
		search:     components.NewTextInput("nmap, scapy, chmod...", 40),
	}
	s.refresh()
	return s
}

func (s *ToolsScreen) Init() tea.Cmd {
	return nil
}

func (s *ToolsScreen) Title() string {
	return "Arsenal"
}

func (s *ToolsScreen) KeyHints() []layout.KeyHint {
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Valider"},
			{Key: "Ctrl+C", Description: "Quitter"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Catégorie"},
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "/", Description: "Rechercher"},
		{Key: "Enter", Description: "Ouvrir"},
		{Key: "Esc", Description: "Retour"},
	}
}

// refresh recomputes the visible tool list from category and query.
func (s *ToolsScreen) refresh() {
	if s.query != "" {
		s.visible = catalog.SearchTools(s.query)
	} else if s.catIdx == 0 {
		s.visible = catalog.AllTools()
	} else {
		s.visible = catalog.ToolsByCategory(catalog.Category(s.categories[s.catIdx]))
	}
	if s.cursor >= len(s.visible) {
		s.cursor = 0
	}
}

func (s *ToolsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.searching {
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.searching {
		switch kmsg.String() {
		case "enter":
			s.searching = false
			s.query = strings.TrimSpace(s.search.Value())
			s.refresh()
			// A query matching nothing opens a custom tool session, so
			// any command the user types can be trained on.
			if s.query != "" && len(s.visible) == 0 {
				tool := catalog.CustomTool(s.query)
				s.query = ""
				s.search.Reset()
				s.refresh()
				return s, s.openTool(tool)
			}
			return s, nil
		default:
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			return s, cmd
		}
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.visible)-1 {
			s.cursor++
		}
	case "left", "h":
		s.catIdx = (s.catIdx - 1 + len(s.categories)) % len(s.categories)
		s.query = ""
		s.search.Reset()
		s.cursor = 0
		s.refresh()
	case "right", "l":
		s.catIdx = (s.catIdx + 1) % len(s.categories)
		s.query = ""
		s.search.Reset()
		s.cursor = 0
		s.refresh()
	case "/":
		s.searching = true
		return s, s.search.Init()
	case "enter":
		if s.cursor >= 0 && s.cursor < len(s.visible) {
			return s, s.openTool(s.visible[s.cursor])
		}
	}

	return s, nil
}

// openTool claims the session slot and pushes the active session screen.
func (s *ToolsScreen) openTool(tool catalog.Tool) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: activesession.NewTool(s.gw, s.ctrl, s.tracker, tool),
		}
	}
}

func (s *ToolsScreen) View(width, height int) string {
	var b strings.Builder

	// Category selector.
	cat := theme.TabActive.Render(s.categories[s.catIdx])
	pos := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d", s.catIdx+1, len(s.categories)))
	b.WriteString(fmt.Sprintf("  ◂ %s ▸  %s", cat, pos))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	// Search line.
	if s.searching {
		b.WriteString("  RECHERCHE " + s.search.View() + "\n\n")
	} else if s.query != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  Filtre : %q (/ pour modifier)", s.query)) + "\n\n")
	} else {
		b.WriteString("\n")
	}

	// Tool list, windowed around the cursor.
	listHeight := height - 6
	if listHeight < 3 {
		listHeight = 3
	}
	start := 0
	if s.cursor >= listHeight {
		start = s.cursor - listHeight + 1
	}

	if len(s.visible) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  Aucun outil. Enter après une recherche ouvre un outil personnalisé."))
	}

	for i := start; i < len(s.visible) && i < start+listHeight; i++ {
		tool := s.visible[i]
		label := tool.Name
		if tool.Popular {
			label += " ★"
		}
		line := fmt.Sprintf("%-24s %s", label, tool.Description)
		line = trimToWidth(line, width-6)

		if i == s.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ " + line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("    " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func trimToWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	if len(r) > w {
		r = r[:w]
	}
	return string(r)
}
