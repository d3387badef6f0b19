package activesession

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cyberhunter/internal/catalog"
	"github.com/abhisek/cyberhunter/internal/gateway"
	"github.com/abhisek/cyberhunter/internal/llm"
	sess "github.com/abhisek/cyberhunter/internal/session"
	"github.com/abhisek/cyberhunter/internal/store"
)

// routedProvider serves canned responses keyed by purpose so the concurrent
// fan-out stays deterministic.
type routedProvider struct {
	mu        sync.Mutex
	responses map[string]string
	calls     map[string]int
}

func newRoutedProvider(responses map[string]string) *routedProvider {
	return &routedProvider{responses: responses, calls: make(map[string]int)}
}

func (p *routedProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	purpose := llm.PurposeFrom(ctx)

	p.mu.Lock()
	p.calls[purpose]++
	content, ok := p.responses[purpose]
	p.mu.Unlock()

	if !ok {
		return nil, &llm.ErrProviderUnavailable{}
	}
	return &llm.Response{Content: json.RawMessage(content), Model: "mock", StopReason: "end"}, nil
}

func (p *routedProvider) ModelID() string { return "mock" }

func (p *routedProvider) callCount(purpose string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[purpose]
}

type memoryProgressRepo struct {
	stored map[string][]string
	saves  int
}

func (r *memoryProgressRepo) Load(context.Context) map[string][]string {
	if r.stored == nil {
		return map[string][]string{}
	}
	return r.stored
}

func (r *memoryProgressRepo) Save(_ context.Context, m map[string][]string) error {
	r.saves++
	r.stored = m
	return nil
}

func (r *memoryProgressRepo) Reset(context.Context) error {
	r.stored = nil
	return nil
}

var _ store.ProgressRepo = (*memoryProgressRepo)(nil)

const lessonJSON = "## Théorie Approfondie\nLe noyau Linux..."

const videosJSON = `{"videos":[
	{"title":"Linux Kernel Basics","description":"Vue d'ensemble.","searchQuery":"linux kernel explained"},
	{"title":"FHS Tour","description":"Arborescence standard.","searchQuery":"linux filesystem hierarchy"}
]}`

const scenarioJSON = `{"context":"Un serveur web répond lentement.","task":"Lister les processus les plus gourmands","target":"serveur web","difficulty":"Medium"}`

func newTestTracker(t *testing.T) (*sess.Tracker, *memoryProgressRepo) {
	t.Helper()
	repo := &memoryProgressRepo{}
	return sess.NewTracker(t.Context(), repo), repo
}

func deliver(t *testing.T, s *SessionScreen, msg tea.Msg) *SessionScreen {
	t.Helper()
	updated, _ := s.Update(msg)
	out, ok := updated.(*SessionScreen)
	if !ok {
		t.Fatalf("update returned %T", updated)
	}
	return out
}

func TestTopicSession_EndToEnd(t *testing.T) {
	provider := newRoutedProvider(map[string]string{
		"lesson": lessonJSON,
		"videos": videosJSON,
	})
	gw := gateway.NewService(provider, gateway.DefaultConfig())
	ctrl := sess.NewController()
	tracker, repo := newTestTracker(t)

	course, err := catalog.FindCourse("mod-linux-base")
	if err != nil {
		t.Fatal(err)
	}
	topic := course.Topics[1]

	s := NewTopic(gw, ctrl, tracker, course, topic)
	if s.st.Phase != sess.PhaseLoading {
		t.Fatalf("phase = %v, want loading", s.st.Phase)
	}
	if !strings.HasPrefix(s.Title(), course.Title) {
		t.Fatalf("title %q missing course name", s.Title())
	}

	msg := s.fetch()()
	s = deliver(t, s, msg)

	if s.st.Phase != sess.PhaseReady {
		t.Fatalf("phase = %v, want ready", s.st.Phase)
	}
	if !strings.Contains(s.st.Content.Lesson, "Théorie") {
		t.Fatalf("lesson not installed: %q", s.st.Content.Lesson)
	}
	if n := len(s.st.Content.Videos); n < 1 || n > 4 {
		t.Fatalf("videos = %d, want 1..4", n)
	}

	// Mark complete twice: one mapping entry, one write.
	for range 2 {
		cmd := s.markComplete()
		s = deliver(t, s, cmd())
	}
	if !tracker.Completed(course.ID, topic) {
		t.Fatal("topic should be completed")
	}
	if repo.saves != 1 {
		t.Fatalf("expected one persistence write, got %d", repo.saves)
	}

	// Reopening shows the same completion state.
	s.Close()
	reopened := NewTopic(gw, ctrl, tracker, course, topic)
	if !tracker.Completed(reopened.st.CourseID, reopened.st.Topic) {
		t.Fatal("completion must survive reopen")
	}
}

func TestToolSession_ScenarioFailureStillReady(t *testing.T) {
	provider := newRoutedProvider(map[string]string{
		"tool-guide": "# ps\nLister les processus.",
		"videos":     videosJSON,
		// no scenario entry: that request fails
	})
	gw := gateway.NewService(provider, gateway.DefaultConfig())
	ctrl := sess.NewController()
	tracker, _ := newTestTracker(t)

	tool, _ := catalog.FindTool("ps")
	s := NewTool(gw, ctrl, tracker, tool)

	s = deliver(t, s, s.fetch()())

	if s.st.Phase != sess.PhaseReady {
		t.Fatalf("phase = %v, want ready despite scenario failure", s.st.Phase)
	}
	if s.st.Content.Scenario != nil {
		t.Fatalf("scenario should be nil, got %+v", s.st.Content.Scenario)
	}
	if s.st.Content.Guide == "" {
		t.Fatal("guide should be present")
	}
}

func TestToolSession_StaleContentDiscardedAfterClose(t *testing.T) {
	provider := newRoutedProvider(map[string]string{
		"tool-guide": "# nmap",
		"scenario":   scenarioJSON,
		"videos":     videosJSON,
	})
	gw := gateway.NewService(provider, gateway.DefaultConfig())
	ctrl := sess.NewController()
	tracker, _ := newTestTracker(t)

	tool, _ := catalog.FindTool("nmap")
	s := NewTool(gw, ctrl, tracker, tool)

	msg := s.fetch()()
	s.Close()
	s = deliver(t, s, msg)

	if ctrl.State().Active() {
		t.Fatalf("slot must stay idle after close, got %+v", ctrl.State())
	}
}

func TestPractice_EmptyAnswerIsIgnored(t *testing.T) {
	provider := newRoutedProvider(map[string]string{
		"tool-guide": "# grep",
		"scenario":   scenarioJSON,
		"videos":     videosJSON,
	})
	gw := gateway.NewService(provider, gateway.DefaultConfig())
	ctrl := sess.NewController()
	tracker, _ := newTestTracker(t)

	tool, _ := catalog.FindTool("grep")
	s := NewTool(gw, ctrl, tracker, tool)
	s = deliver(t, s, s.fetch()())

	s.tabs.Active = tabPractice
	if cmd := s.submitAnswer(); cmd != nil {
		t.Fatal("empty answer must not produce a command")
	}

	s.input.Model.SetValue("   ")
	if cmd := s.submitAnswer(); cmd != nil {
		t.Fatal("whitespace answer must not produce a command")
	}

	if s.feedback != nil {
		t.Fatal("feedback must stay unset")
	}
	if provider.callCount("verify") != 0 {
		t.Fatalf("verify calls = %d, want 0", provider.callCount("verify"))
	}
}

func TestPractice_VerifyFlow(t *testing.T) {
	provider := newRoutedProvider(map[string]string{
		"tool-guide": "# ps",
		"scenario":   scenarioJSON,
		"videos":     videosJSON,
		"verify":     `{"correct":true,"message":"Succès","tips":"aux trie par usage."}`,
	})
	gw := gateway.NewService(provider, gateway.DefaultConfig())
	ctrl := sess.NewController()
	tracker, _ := newTestTracker(t)

	tool, _ := catalog.FindTool("ps")
	s := NewTool(gw, ctrl, tracker, tool)
	s = deliver(t, s, s.fetch()())

	s.tabs.Active = tabPractice
	s.input.Model.SetValue("ps aux --sort=-%cpu")

	cmd := s.submitAnswer()
	if cmd == nil {
		t.Fatal("expected a verify command")
	}
	if !s.verifying {
		t.Fatal("screen should show the analyzing state")
	}

	s = deliver(t, s, verifiedMsg{feedback: gateway.Feedback{Correct: true, Message: "Succès"}})
	if s.verifying {
		t.Fatal("analyzing state should clear")
	}
	if s.feedback == nil || !s.feedback.Correct {
		t.Fatalf("unexpected feedback %+v", s.feedback)
	}
}
