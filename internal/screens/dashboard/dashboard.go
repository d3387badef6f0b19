// Package dashboard is the arcade-style entry screen: banner, global stats
// and the main navigation menu.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberhunter/internal/catalog"
	"github.com/abhisek/cyberhunter/internal/gateway"
	"github.com/abhisek/cyberhunter/internal/router"
	"github.com/abhisek/cyberhunter/internal/screen"
	"github.com/abhisek/cyberhunter/internal/screens/courses"
	"github.com/abhisek/cyberhunter/internal/screens/placeholder"
	"github.com/abhisek/cyberhunter/internal/screens/tools"
	"github.com/abhisek/cyberhunter/internal/screens/tutor"
	sess "github.com/abhisek/cyberhunter/internal/session"
	"github.com/abhisek/cyberhunter/internal/ui/components"
	"github.com/abhisek/cyberhunter/internal/ui/theme"
)

// DashboardScreen is the main entry screen of the application.
type DashboardScreen struct {
	menu       components.Menu
	menuLabels []string
	tracker    *sess.Tracker
	aiEnabled  bool
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard. gw may be nil when no LLM provider is
// configured; AI-backed entries then open a placeholder.
func New(gw *gateway.Service, ctrl *sess.Controller, tracker *sess.Tracker) *DashboardScreen {
	menuLabels := []string{"ARSENAL D'OUTILS", "FORMATIONS", "TUTEUR IA", "QUITTER"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			if gw == nil {
				return pushPlaceholder("Arsenal")
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tools.New(gw, ctrl, tracker)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			if gw == nil {
				return pushPlaceholder("Formations")
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: courses.New(gw, ctrl, tracker)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			if gw == nil {
				return pushPlaceholder("Tuteur")
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tutor.New(gw)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &DashboardScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		tracker:    tracker,
		aiEnabled:  gw != nil,
	}
}

func pushPlaceholder(title string) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: placeholder.New(title)}
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 110

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderBanner(cw, compact))
	sections = append(sections, d.renderStatsBar(cw))
	if !d.aiEnabled {
		sections = append(sections, renderKeyBanner(cw))
	}
	sections = append(sections, renderMenu(d.menuLabels, d.menu.Selected, cw))

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (d *DashboardScreen) Title() string {
	return "Accueil"
}

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 104 {
		w = 104
	}
	if w < 24 {
		w = 24
	}
	return w
}

// renderStatsBar renders tool/module counts and overall completion.
func (d *DashboardScreen) renderStatsBar(cw int) string {
	toolStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	moduleStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)

	percent := 0
	if d.tracker != nil {
		percent = d.tracker.OverallPercent()
	}

	stats := fmt.Sprintf("%s  %s  %s",
		toolStyle.Render(fmt.Sprintf("⌦ %d OUTILS", len(catalog.AllTools()))),
		moduleStyle.Render(fmt.Sprintf("▣ %d MODULES", len(catalog.AllCourses()))),
		doneStyle.Render(fmt.Sprintf("▲ %d%% COMPLÉTÉ", percent)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderKeyBanner renders a warning when no LLM API key is configured.
func renderKeyBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Warning).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Configurez une clé API LLM pour activer l'IA (voir cyberhunter --help)")
}

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	const buttonWidth = 26

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, components.ArcadeButton(label, true, buttonWidth))
		} else {
			buttons = append(buttons, components.ArcadeButton(label, false, buttonWidth))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}
