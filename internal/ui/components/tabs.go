package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberhunter/internal/ui/theme"
)

// TabBar is a horizontal tab selector.
type TabBar struct {
	Labels []string
	Active int
}

// NewTabBar creates a tab bar with the first tab active.
func NewTabBar(labels ...string) TabBar {
	return TabBar{Labels: labels}
}

// Next moves to the following tab, wrapping around.
func (t *TabBar) Next() {
	if len(t.Labels) == 0 {
		return
	}
	t.Active = (t.Active + 1) % len(t.Labels)
}

// Prev moves to the preceding tab, wrapping around.
func (t *TabBar) Prev() {
	if len(t.Labels) == 0 {
		return
	}
	t.Active = (t.Active - 1 + len(t.Labels)) % len(t.Labels)
}

// View renders the tab bar.
func (t TabBar) View() string {
	parts := make([]string, 0, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	bar := strings.Join(parts, " ")
	rule := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", lipgloss.Width(bar)))
	return bar + "\n" + rule
}
