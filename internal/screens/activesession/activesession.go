// Package activesession renders one open training session: the loading
// state while content is generated, then the tabbed guide/videos/practice
// (tool) or lesson/videos (chapter) view.
package activesession

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cyberhunter/internal/catalog"
	"github.com/abhisek/cyberhunter/internal/gateway"
	"github.com/abhisek/cyberhunter/internal/llm"
	"github.com/abhisek/cyberhunter/internal/screen"
	sess "github.com/abhisek/cyberhunter/internal/session"
	"github.com/abhisek/cyberhunter/internal/ui/components"
	"github.com/abhisek/cyberhunter/internal/ui/layout"
)

// Tab indices for tool sessions.
const (
	tabGuide = iota
	tabVideos
	tabPractice
)

// SessionScreen displays the active session slot.
type SessionScreen struct {
	gw      *gateway.Service
	ctrl    *sess.Controller
	tracker *sess.Tracker

	epoch uint64
	st    sess.State

	tabs  components.TabBar
	input components.TextInput

	scroll       int
	verifying    bool
	feedback     *gateway.Feedback
	spinnerFrame int
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.Closer = (*SessionScreen)(nil)

// NewTool opens a tool session: the slot is claimed immediately and content
// generation starts on Init.
func NewTool(gw *gateway.Service, ctrl *sess.Controller, tracker *sess.Tracker, tool catalog.Tool) *SessionScreen {
	epoch, st := ctrl.BeginTool(tool)
	return &SessionScreen{
		gw:      gw,
		ctrl:    ctrl,
		tracker: tracker,
		epoch:   epoch,
		st:      st,
		tabs:    components.NewTabBar("GUIDE", "VIDEOS", "PRATIQUE"),
		input:   components.NewTextInput("Tape ta commande...", 120),
	}
}

// NewTopic opens a course chapter session.
func NewTopic(gw *gateway.Service, ctrl *sess.Controller, tracker *sess.Tracker, course catalog.CourseModule, topic string) *SessionScreen {
	epoch, st := ctrl.BeginTopic(course, topic)
	return &SessionScreen{
		gw:      gw,
		ctrl:    ctrl,
		tracker: tracker,
		epoch:   epoch,
		st:      st,
		tabs:    components.NewTabBar("COURS", "VIDEOS"),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(s.fetch(), s.spinnerTick())
}

func (s *SessionScreen) Title() string {
	return s.st.Title
}

// Close releases the slot. The epoch bump makes any still-running
// generation land dead.
func (s *SessionScreen) Close() {
	s.ctrl.Close()
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.st.Phase == sess.PhaseLoading {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Abandonner"},
		}
	}

	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Onglet"},
		{Key: "↑↓", Description: "Défiler"},
	}
	if s.st.Kind == sess.KindTopic {
		hints = append(hints, layout.KeyHint{Key: "M", Description: "Valider le chapitre"})
	}
	if s.st.Kind == sess.KindTool && s.tabs.Active == tabPractice {
		if s.feedback != nil {
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Réessayer"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Analyser"})
		}
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Fermer"})
}

// fetch runs the generation fan-out off the UI loop and reports back with
// the claimed epoch.
func (s *SessionScreen) fetch() tea.Cmd {
	epoch := s.epoch
	st := s.st
	gw := s.gw

	return func() tea.Msg {
		ctx := llm.WithSessionID(context.Background(), st.SessionID)

		var content sess.Content
		switch st.Kind {
		case sess.KindTool:
			tc := gw.FetchToolContent(ctx, st.ToolName)
			content = sess.Content{Guide: tc.Guide, Scenario: tc.Scenario, Videos: tc.Videos}
		case sess.KindTopic:
			courseContext := ""
			if course, err := catalog.FindCourse(st.CourseID); err == nil {
				courseContext = course.Description
			}
			tc := gw.FetchTopicContent(ctx, st.Topic, courseContext)
			content = sess.Content{Lesson: tc.Lesson, Videos: tc.Videos}
		}

		return contentReadyMsg{epoch: epoch, content: content}
	}
}

func (s *SessionScreen) spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case contentReadyMsg:
		if !s.ctrl.Complete(msg.epoch, msg.content) {
			return s, nil
		}
		s.st = s.ctrl.State()
		return s, nil

	case verifiedMsg:
		s.verifying = false
		fb := msg.feedback
		s.feedback = &fb
		s.input.Submit(fb.Correct)
		return s, nil

	case markedMsg:
		return s, nil

	case spinnerTickMsg:
		if s.st.Phase == sess.PhaseLoading || s.verifying {
			s.spinnerFrame++
			return s, s.spinnerTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.inputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// inputActive reports whether keystrokes should reach the answer field.
func (s *SessionScreen) inputActive() bool {
	return s.st.Phase == sess.PhaseReady &&
		s.st.Kind == sess.KindTool &&
		s.tabs.Active == tabPractice &&
		s.st.Content.Scenario != nil &&
		s.feedback == nil &&
		!s.verifying
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.st.Phase != sess.PhaseReady {
		return s, nil
	}

	switch msg.String() {
	case "tab":
		s.tabs.Next()
		s.scroll = 0
		return s, nil
	case "shift+tab":
		s.tabs.Prev()
		s.scroll = 0
		return s, nil
	case "up":
		if s.scroll > 0 {
			s.scroll--
		}
		return s, nil
	case "down":
		s.scroll++
		return s, nil
	}

	if s.st.Kind == sess.KindTopic && msg.String() == "m" {
		return s, s.markComplete()
	}

	if s.st.Kind == sess.KindTool && s.tabs.Active == tabPractice {
		switch msg.String() {
		case "enter":
			return s, s.submitAnswer()
		case "r":
			if s.feedback != nil {
				s.feedback = nil
				s.input.Reset()
				return s, s.input.Init()
			}
		}
	}

	if s.inputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submitAnswer sends the typed command for analysis. A blank answer is
// silently ignored: no request, no feedback.
func (s *SessionScreen) submitAnswer() tea.Cmd {
	if s.verifying || s.feedback != nil || s.st.Content.Scenario == nil {
		return nil
	}

	answer := strings.TrimSpace(s.input.Value())
	if answer == "" {
		return nil
	}

	s.verifying = true
	scenario := *s.st.Content.Scenario
	toolName := s.st.ToolName
	sessionID := s.st.SessionID
	gw := s.gw

	return tea.Batch(
		func() tea.Msg {
			ctx := llm.WithSessionID(context.Background(), sessionID)
			return verifiedMsg{feedback: gw.Verify(ctx, toolName, scenario, answer)}
		},
		s.spinnerTick(),
	)
}

// markComplete records the chapter as done. Marking twice is harmless.
func (s *SessionScreen) markComplete() tea.Cmd {
	tracker := s.tracker
	courseID := s.st.CourseID
	topic := s.st.Topic

	return func() tea.Msg {
		return markedMsg{err: tracker.MarkComplete(context.Background(), courseID, topic)}
	}
}
