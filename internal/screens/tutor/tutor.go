// Package tutor is the free-form chat screen with the AI instructor.
package tutor

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberhunter/internal/gateway"
	"github.com/abhisek/cyberhunter/internal/screen"
	"github.com/abhisek/cyberhunter/internal/ui/components"
	"github.com/abhisek/cyberhunter/internal/ui/layout"
	"github.com/abhisek/cyberhunter/internal/ui/theme"
)

type role int

const (
	roleUser role = iota
	roleMentor
)

type chatMessage struct {
	role role
	text string
}

// replyMsg carries the mentor's answer back to the screen.
type replyMsg struct {
	text string
}

// TutorScreen is a chat with the AI mentor.
type TutorScreen struct {
	gw      *gateway.Service
	history []chatMessage
	input   components.TextInput
	waiting bool
}

var _ screen.Screen = (*TutorScreen)(nil)
var _ screen.KeyHintProvider = (*TutorScreen)(nil)

// New creates the tutor screen.
func New(gw *gateway.Service) *TutorScreen {
	return &TutorScreen{
		gw: gw,
		history: []chatMessage{
			{role: roleMentor, text: "Canal sécurisé établi. Pose ta question, recrue."},
		},
		input: components.NewTextInput("Ta question technique...", 200),
	}
}

func (s *TutorScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *TutorScreen) Title() string {
	return "Tuteur IA"
}

func (s *TutorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Envoyer"},
		{Key: "Esc", Description: "Retour"},
	}
}

func (s *TutorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.waiting = false
		s.history = append(s.history, chatMessage{role: roleMentor, text: msg.text})
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && !s.waiting {
			question := strings.TrimSpace(s.input.Value())
			if question == "" {
				return s, nil
			}
			s.history = append(s.history, chatMessage{role: roleUser, text: question})
			s.input.Reset()
			s.waiting = true
			return s, s.ask(question)
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TutorScreen) ask(question string) tea.Cmd {
	return func() tea.Msg {
		return replyMsg{text: s.gw.TutorReply(context.Background(), question)}
	}
}

func (s *TutorScreen) View(width, height int) string {
	var b strings.Builder

	userStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	mentorStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 6)

	// Render newest messages in the space above the input line.
	var lines []string
	for _, m := range s.history {
		var label string
		if m.role == roleUser {
			label = userStyle.Render("  VOUS ▸")
		} else {
			label = mentorStyle.Render("  MENTOR ▸")
		}
		block := label + "\n" + bodyStyle.Render("    "+m.text)
		lines = append(lines, block)
	}
	if s.waiting {
		lines = append(lines, mentorStyle.Render("  MENTOR ▸")+"\n"+
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("    ANALYSE EN COURS..."))
	}

	transcript := strings.Join(lines, "\n\n")
	transcriptLines := strings.Split(transcript, "\n")
	avail := height - 3
	if avail > 0 && len(transcriptLines) > avail {
		transcriptLines = transcriptLines[len(transcriptLines)-avail:]
	}
	b.WriteString(strings.Join(transcriptLines, "\n"))

	b.WriteString("\n\n  " + s.input.View())
	return b.String()
}
