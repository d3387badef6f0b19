package activesession

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberhunter/internal/gateway"
	sess "github.com/abhisek/cyberhunter/internal/session"
	"github.com/abhisek/cyberhunter/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *SessionScreen) View(width, height int) string {
	if s.st.Phase != sess.PhaseReady {
		return s.renderLoading(width, height)
	}

	var b strings.Builder
	b.WriteString("  " + s.tabs.View() + "\n\n")

	var body string
	switch {
	case s.st.Kind == sess.KindTopic && s.tabs.Active == 0:
		body = s.renderLesson(width)
	case s.st.Kind == sess.KindTool && s.tabs.Active == tabGuide:
		body = s.renderGuide(width)
	case s.tabs.Active == tabVideos || (s.st.Kind == sess.KindTopic && s.tabs.Active == 1):
		body = s.renderVideos(width)
	case s.tabs.Active == tabPractice:
		body = s.renderPractice(width)
	}

	bodyHeight := height - 4
	b.WriteString(scrollWindow(body, s.scroll, bodyHeight))
	return b.String()
}

func (s *SessionScreen) renderLoading(width, height int) string {
	frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]

	text := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(frame+" DECRYPTING_DATA...") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Connexion au flux de l'Instructeur Chef")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(text)
}

func (s *SessionScreen) renderGuide(width int) string {
	return s.renderDocument(s.st.Content.Guide, width)
}

func (s *SessionScreen) renderLesson(width int) string {
	doc := s.renderDocument(s.st.Content.Lesson, width)

	if s.tracker != nil && s.tracker.Completed(s.st.CourseID, s.st.Topic) {
		badge := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("  ✔ CHAPITRE VALIDÉ")
		return badge + "\n\n" + doc
	}
	hint := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("  [M] pour valider ce chapitre")
	return hint + "\n\n" + doc
}

func (s *SessionScreen) renderDocument(text string, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 6).
		PaddingLeft(2).
		Render(text)
}

func (s *SessionScreen) renderVideos(width int) string {
	videos := s.st.Content.Videos
	if len(videos) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  Aucune ressource vidéo disponible.")
	}

	cardWidth := width - 8
	if cardWidth > 70 {
		cardWidth = 70
	}

	var cards []string
	for _, v := range videos {
		cards = append(cards, renderVideoCard(v, cardWidth))
	}
	return strings.Join(cards, "\n")
}

func renderVideoCard(v gateway.Video, width int) string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(v.Title)
	if v.Duration != "" {
		title += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + v.Duration)
	}
	desc := lipgloss.NewStyle().Foreground(theme.Text).Render(v.Description)
	query := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render("⌕ " + v.SearchQuery)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width).
		Padding(0, 1).
		MarginLeft(2).
		Render(title + "\n" + desc + "\n" + query)
}

func (s *SessionScreen) renderPractice(width int) string {
	scenario := s.st.Content.Scenario
	if scenario == nil {
		return lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  Scénario indisponible pour cette session.")
	}

	var b strings.Builder

	briefing := fmt.Sprintf("%s\n\n%s %s\n%s %s\n%s %s",
		lipgloss.NewStyle().Foreground(theme.Text).Render(scenario.Context),
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("MISSION :"),
		scenario.Task,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("CIBLE   :"),
		scenario.Target,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("NIVEAU  :"),
		difficultyBadge(scenario.Difficulty),
	)

	boxWidth := width - 8
	if boxWidth > 76 {
		boxWidth = 76
	}
	b.WriteString(lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(boxWidth).
		Padding(0, 1).
		MarginLeft(2).
		Render(briefing))
	b.WriteString("\n\n")

	b.WriteString("  " + s.input.View() + "\n\n")

	switch {
	case s.verifying:
		frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
			Render("  " + frame + " ANALYZING..."))
	case s.feedback != nil:
		b.WriteString(renderFeedback(*s.feedback, boxWidth))
	}

	return b.String()
}

func renderFeedback(fb gateway.Feedback, width int) string {
	var verdict string
	if fb.Correct {
		verdict = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("✔ ACCÈS AUTORISÉ — " + fb.Message)
	} else {
		verdict = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
			Render("✘ ACCÈS REFUSÉ — " + fb.Message)
	}

	body := verdict
	if fb.Tips != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(fb.Tips)
	}
	body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("[R] Réessayer")

	return lipgloss.NewStyle().
		Width(width).
		MarginLeft(2).
		Render(body)
}

func difficultyBadge(d string) string {
	color := theme.Secondary
	switch d {
	case "Medium":
		color = theme.Warning
	case "Hard":
		color = theme.Error
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(d)
}

// scrollWindow returns at most height lines of content starting at offset.
func scrollWindow(content string, offset, height int) string {
	if height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	if offset >= len(lines) {
		offset = len(lines) - 1
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}
