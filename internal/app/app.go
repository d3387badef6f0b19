package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberhunter/internal/gateway"
	"github.com/abhisek/cyberhunter/internal/router"
	"github.com/abhisek/cyberhunter/internal/screen"
	"github.com/abhisek/cyberhunter/internal/screens/dashboard"
	sess "github.com/abhisek/cyberhunter/internal/session"
	"github.com/abhisek/cyberhunter/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *sess.Tracker
	width   int
	height  int
}

// newAppModel creates a new AppModel with the dashboard screen.
func newAppModel(gw *gateway.Service, ctrl *sess.Controller, tracker *sess.Tracker) AppModel {
	return AppModel{
		router:  router.New(dashboard.New(gw, ctrl, tracker)),
		tracker: tracker,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	completion := 0
	if m.tracker != nil {
		completion = m.tracker.OverallPercent()
	}
	header := layout.RenderHeader(title, completion, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Retour"},
				{Key: "Ctrl+C", Description: "Quitter"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Naviguer"},
				{Key: "Enter", Description: "Choisir"},
				{Key: "Ctrl+C", Description: "Quitter"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. gw is nil when no LLM provider is
// configured; the dashboard degrades accordingly.
func Run(gw *gateway.Service, ctrl *sess.Controller, tracker *sess.Tracker) error {
	p := tea.NewProgram(newAppModel(gw, ctrl, tracker))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
