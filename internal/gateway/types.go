package gateway

// Scenario is a generated practice challenge (mini-CTF or admin task).
type Scenario struct {
	Context    string `json:"context"`
	Task       string `json:"task"`
	Target     string `json:"target"`
	Difficulty string `json:"difficulty"` // "Easy", "Medium" or "Hard"
}

// Feedback is the verdict on a submitted exercise answer.
type Feedback struct {
	Correct bool   `json:"correct"`
	Message string `json:"message"`
	Tips    string `json:"tips,omitempty"`
}

// Video is a suggested video resource for a topic.
type Video struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SearchQuery string `json:"searchQuery"`
	Duration    string `json:"duration,omitempty"`
}

// ToolContent is the joined result of opening a tool session.
type ToolContent struct {
	Guide    string
	Scenario *Scenario
	Videos   []Video
}

// TopicContent is the joined result of opening a course topic session.
type TopicContent struct {
	Lesson string
	Videos []Video
}

// Fallback strings returned when generation fails or produces nothing.
// They are user-facing content, kept in French like the generated output.
const (
	FallbackGuide      = "Désolé, service temporairement indisponible."
	FallbackGuideEmpty = "Erreur lors de la génération du guide."
	FallbackLesson     = "Service indisponible."
	FallbackLessonEmpty = "Erreur génération cours."
	FallbackTutor      = "Erreur connexion tuteur."
	FallbackTutorEmpty = "Pas de réponse."
)

// FallbackFeedback is the typed default when answer analysis fails.
func FallbackFeedback() Feedback {
	return Feedback{Correct: false, Message: "Erreur d'analyse", Tips: "Réessayez."}
}
