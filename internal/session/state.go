package session

import "github.com/abhisek/cyberhunter/internal/gateway"

// Phase is the lifecycle phase of the content slot.
type Phase int

const (
	PhaseIdle    Phase = iota // no active session
	PhaseLoading              // title known, content pending
	PhaseReady                // content installed
)

// Kind distinguishes tool sessions from course topic sessions.
type Kind int

const (
	KindTool Kind = iota
	KindTopic
)

// Content is the generated payload for one session. It is always replaced
// wholesale; fields left at their zero value mean that part failed or does
// not apply to the session kind.
type Content struct {
	Guide    string
	Lesson   string
	Scenario *gateway.Scenario
	Videos   []gateway.Video
}

// State is a snapshot of the content slot at one point in time.
type State struct {
	Phase Phase
	Kind  Kind

	// SessionID is a fresh UUID assigned at Begin, threaded into the LLM
	// event log for attribution.
	SessionID string

	// Title is the display title, known from Begin onward.
	Title string

	// ToolName is set for tool sessions.
	ToolName string

	// CourseID and Topic are set for topic sessions, for progress
	// attribution.
	CourseID string
	Topic    string

	Content Content
}

// Active reports whether a session is open (loading or ready).
func (s State) Active() bool {
	return s.Phase != PhaseIdle
}
