package gateway

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/cyberhunter/internal/llm"
)

// purposeProvider routes canned responses by purpose label so concurrent
// fan-out tests stay deterministic.
type purposeProvider struct {
	mu        sync.Mutex
	responses map[string]llm.MockResponse
	calls     map[string]int
	requests  map[string]llm.Request
}

func newPurposeProvider(responses map[string]llm.MockResponse) *purposeProvider {
	return &purposeProvider{
		responses: responses,
		calls:     make(map[string]int),
		requests:  make(map[string]llm.Request),
	}
}

func (p *purposeProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	purpose := llm.PurposeFrom(ctx)

	p.mu.Lock()
	p.calls[purpose]++
	p.requests[purpose] = req
	resp, ok := p.responses[purpose]
	p.mu.Unlock()

	if !ok {
		return nil, &llm.ErrProviderUnavailable{}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &llm.Response{Content: resp.Content, Model: "mock", StopReason: "end"}, nil
}

func (p *purposeProvider) ModelID() string { return "mock" }

func (p *purposeProvider) callCount(purpose string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[purpose]
}

func (p *purposeProvider) request(purpose string) llm.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests[purpose]
}

func validScenarioJSON() json.RawMessage {
	return json.RawMessage(`{
		"context": "Serveur Linux compromis, un processus suspect tourne en arrière-plan.",
		"task": "Trouver le PID du processus apache2",
		"target": "apache2",
		"difficulty": "Easy"
	}`)
}

func validVideosJSON() json.RawMessage {
	return json.RawMessage(`{"videos":[
		{"title":"TCP Handshake","description":"Animation claire du three-way handshake.","searchQuery":"TCP handshake explained animation","duration":"Court (~5min)"},
		{"title":"OSI en profondeur","description":"Les 7 couches en détail.","searchQuery":"OSI model deep dive"}
	]}`)
}

func TestGuide_ReturnsGeneratedText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("# nmap\n\nLe standard du scan réseau."),
	})
	svc := NewService(mock, DefaultConfig())

	got := svc.Guide(t.Context(), "nmap")
	if !strings.Contains(got, "nmap") {
		t.Fatalf("expected guide text, got %q", got)
	}

	req := mock.Calls[0]
	if req.Schema != nil {
		t.Fatal("guide is free text, expected no schema")
	}
	if !strings.Contains(req.System, "Instructeur Chef") {
		t.Fatal("expected instructor persona in system prompt")
	}
	if !strings.Contains(req.Messages[0].Content, "nmap") {
		t.Fatal("expected tool name in user message")
	}
}

func TestGuide_FallsBackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	if got := svc.Guide(t.Context(), "nmap"); got != FallbackGuide {
		t.Fatalf("expected %q, got %q", FallbackGuide, got)
	}
}

func TestGuide_FallsBackOnEmptyText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("   ")})
	svc := NewService(mock, DefaultConfig())

	if got := svc.Guide(t.Context(), "nmap"); got != FallbackGuideEmpty {
		t.Fatalf("expected %q, got %q", FallbackGuideEmpty, got)
	}
}

func TestLesson_FallsBackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	svc := NewService(mock, DefaultConfig())

	got := svc.Lesson(t.Context(), "Adressage IPv4, IPv6 et MAC", "Les fondations théoriques")
	if got != FallbackLesson {
		t.Fatalf("expected %q, got %q", FallbackLesson, got)
	}
}

func TestTutorReply_FallsBackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	if got := svc.TutorReply(t.Context(), "C'est quoi un VLAN ?"); got != FallbackTutor {
		t.Fatalf("expected %q, got %q", FallbackTutor, got)
	}
}

func TestScenario_ParsesStructuredOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validScenarioJSON()})
	svc := NewService(mock, DefaultConfig())

	sc := svc.Scenario(t.Context(), "ps")
	if sc == nil {
		t.Fatal("expected scenario")
	}
	if sc.Task != "Trouver le PID du processus apache2" {
		t.Fatalf("unexpected task %q", sc.Task)
	}
	if sc.Difficulty != "Easy" {
		t.Fatalf("unexpected difficulty %q", sc.Difficulty)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "exercise-scenario" {
		t.Fatal("expected exercise-scenario schema")
	}
}

func TestScenario_NilOnInvalidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrInvalidResponse{}})
	svc := NewService(mock, DefaultConfig())

	if sc := svc.Scenario(t.Context(), "ps"); sc != nil {
		t.Fatalf("expected nil scenario, got %+v", sc)
	}
}

func TestVideos_ParsesAndCaps(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validVideosJSON()})
	svc := NewService(mock, DefaultConfig())

	videos := svc.Videos(t.Context(), "Protocoles de Transport : TCP vs UDP")
	if len(videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(videos))
	}
	if videos[0].SearchQuery != "TCP handshake explained animation" {
		t.Fatalf("unexpected search query %q", videos[0].SearchQuery)
	}

	// Over-long lists are truncated to four.
	long := `{"videos":[` + strings.Repeat(`{"title":"t","description":"d","searchQuery":"q"},`, 5)
	long = strings.TrimSuffix(long, ",") + `]}`
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(long)})
	videos = svc.Videos(t.Context(), "VLANs")
	if len(videos) != 4 {
		t.Fatalf("expected cap at 4 videos, got %d", len(videos))
	}
}

func TestVideos_EmptyOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	if videos := svc.Videos(t.Context(), "DNS"); len(videos) != 0 {
		t.Fatalf("expected no videos, got %d", len(videos))
	}
}

func TestVerify_ParsesVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"correct":true,"message":"Succès","tips":"L'option -sV identifie les versions des services."}`),
	})
	svc := NewService(mock, DefaultConfig())

	scenario := Scenario{Context: "Audit réseau", Task: "Identifier les services", Target: "10.0.0.5", Difficulty: "Medium"}
	fb := svc.Verify(t.Context(), "nmap", scenario, "nmap -sV 10.0.0.5")
	if !fb.Correct {
		t.Fatal("expected correct verdict")
	}
	if fb.Message != "Succès" {
		t.Fatalf("unexpected message %q", fb.Message)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "exercise-feedback" {
		t.Fatal("expected exercise-feedback schema")
	}
	if !strings.Contains(req.Messages[0].Content, "nmap -sV 10.0.0.5") {
		t.Fatal("expected submitted command in user message")
	}
}

func TestVerify_FallsBackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	fb := svc.Verify(t.Context(), "grep", Scenario{}, "grep -r secret /etc")
	want := FallbackFeedback()
	if fb != want {
		t.Fatalf("expected fallback feedback, got %+v", fb)
	}
}

func TestFetchToolContent_JoinsAllThree(t *testing.T) {
	p := newPurposeProvider(map[string]llm.MockResponse{
		"tool-guide": {Content: json.RawMessage("# Guide nmap")},
		"scenario":   {Content: validScenarioJSON()},
		"videos":     {Content: validVideosJSON()},
	})
	svc := NewService(p, DefaultConfig())

	tc := svc.FetchToolContent(t.Context(), "nmap")
	if !strings.Contains(tc.Guide, "Guide nmap") {
		t.Fatalf("unexpected guide %q", tc.Guide)
	}
	if tc.Scenario == nil || tc.Scenario.Difficulty != "Easy" {
		t.Fatalf("unexpected scenario %+v", tc.Scenario)
	}
	if len(tc.Videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(tc.Videos))
	}

	for _, purpose := range []string{"tool-guide", "scenario", "videos"} {
		if p.callCount(purpose) != 1 {
			t.Fatalf("expected exactly one %s call, got %d", purpose, p.callCount(purpose))
		}
	}
}

func TestFetchToolContent_PartialFailureStillJoins(t *testing.T) {
	p := newPurposeProvider(map[string]llm.MockResponse{
		"tool-guide": {Content: json.RawMessage("# Guide ps")},
		"scenario":   {Err: &llm.ErrInvalidResponse{}},
		"videos":     {Content: validVideosJSON()},
	})
	svc := NewService(p, DefaultConfig())

	tc := svc.FetchToolContent(t.Context(), "ps")
	if tc.Scenario != nil {
		t.Fatalf("expected nil scenario on parse failure, got %+v", tc.Scenario)
	}
	if !strings.Contains(tc.Guide, "Guide ps") {
		t.Fatal("guide should survive scenario failure")
	}
	if len(tc.Videos) != 2 {
		t.Fatal("videos should survive scenario failure")
	}
}

func TestFetchToolContent_TotalFailureYieldsDefaults(t *testing.T) {
	p := newPurposeProvider(nil)
	svc := NewService(p, DefaultConfig())

	tc := svc.FetchToolContent(t.Context(), "hydra")
	if tc.Guide != FallbackGuide {
		t.Fatalf("expected %q, got %q", FallbackGuide, tc.Guide)
	}
	if tc.Scenario != nil {
		t.Fatal("expected nil scenario")
	}
	if len(tc.Videos) != 0 {
		t.Fatal("expected no videos")
	}
}

func TestFetchTopicContent_JoinsBoth(t *testing.T) {
	p := newPurposeProvider(map[string]llm.MockResponse{
		"lesson": {Content: json.RawMessage("## Théorie Approfondie\n...")},
		"videos": {Content: validVideosJSON()},
	})
	svc := NewService(p, DefaultConfig())

	tc := svc.FetchTopicContent(t.Context(), "Pare-feu : Iptables, NFTables et UFW", "Durcissement système")
	if !strings.Contains(tc.Lesson, "Théorie") {
		t.Fatalf("unexpected lesson %q", tc.Lesson)
	}
	if len(tc.Videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(tc.Videos))
	}

	lessonReq := p.request("lesson")
	if !strings.Contains(lessonReq.Messages[0].Content, "Iptables") {
		t.Fatal("expected topic in lesson prompt")
	}
	if !strings.Contains(lessonReq.Messages[0].Content, "Durcissement système") {
		t.Fatal("expected course context in lesson prompt")
	}
}

func TestTemperaturesPerOperation(t *testing.T) {
	p := newPurposeProvider(map[string]llm.MockResponse{
		"tool-guide": {Content: json.RawMessage("g")},
		"scenario":   {Content: validScenarioJSON()},
		"verify":     {Content: json.RawMessage(`{"correct":false,"message":"Accès Refusé"}`)},
	})
	cfg := DefaultConfig()
	svc := NewService(p, cfg)

	ctx := t.Context()
	svc.Guide(ctx, "ls")
	svc.Scenario(ctx, "ls")
	svc.Verify(ctx, "ls", Scenario{}, "ls -la")

	if got := p.request("tool-guide").Temperature; got != cfg.GuideTemperature {
		t.Fatalf("guide temperature = %v, want %v", got, cfg.GuideTemperature)
	}
	if got := p.request("scenario").Temperature; got != cfg.ScenarioTemperature {
		t.Fatalf("scenario temperature = %v, want %v", got, cfg.ScenarioTemperature)
	}
	if got := p.request("verify").Temperature; got != cfg.VerifyTemperature {
		t.Fatalf("verify temperature = %v, want %v", got, cfg.VerifyTemperature)
	}
}
