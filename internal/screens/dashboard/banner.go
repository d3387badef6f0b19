package dashboard

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberhunter/internal/ui/theme"
)

// Block-letter title rendered on wide terminals.
const bannerFull = ` ██████╗██╗   ██╗██████╗ ███████╗██████╗       ██╗  ██╗██╗   ██╗███╗   ██╗████████╗███████╗██████╗
██╔════╝╚██╗ ██╔╝██╔══██╗██╔════╝██╔══██╗      ██║  ██║██║   ██║████╗  ██║╚══██╔══╝██╔════╝██╔══██╗
██║      ╚████╔╝ ██████╔╝█████╗  ██████╔╝█████╗███████║██║   ██║██╔██╗ ██║   ██║   █████╗  ██████╔╝
██║       ╚██╔╝  ██╔══██╗██╔══╝  ██╔══██╗╚════╝██╔══██║██║   ██║██║╚██╗██║   ██║   ██╔══╝  ██╔══██╗
╚██████╗   ██║   ██████╔╝███████╗██║  ██║      ██║  ██║╚██████╔╝██║ ╚████║   ██║   ███████╗██║  ██║
 ╚═════╝   ╚═╝   ╚═════╝ ╚══════╝╚═╝  ╚═╝      ╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝   ╚═╝   ╚══════╝╚═╝  ╚═╝`

const bannerCompact = "C Y B E R - H U N T E R"

const tagline = "Académie de Cybersécurité // Linux // Réseaux"

// renderBanner returns the styled title block or compact fallback.
func renderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := bannerFull
	if compact || cw < 100 {
		title = bannerCompact
	}

	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(tagline)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title) + "\n" + sub)
}
