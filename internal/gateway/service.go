// Package gateway mediates all content generation. Every operation is a
// single LLM attempt with a timeout; on any failure the operation returns
// its typed default instead of an error, so callers never branch on
// transport faults. The underlying fault is recorded by the provider's
// event logging for diagnostics.
package gateway

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/abhisek/cyberhunter/internal/llm"
)

// Service generates training content through an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a content gateway.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Guide returns a technical manual for a tool, or FallbackGuide.
func (s *Service) Guide(ctx context.Context, toolName string) string {
	return s.generateText(ctx, "tool-guide", buildGuideUserMessage(toolName),
		s.cfg.GuideTemperature, FallbackGuideEmpty, FallbackGuide)
}

// Lesson returns a full course lecture for a topic, or FallbackLesson.
func (s *Service) Lesson(ctx context.Context, topic, courseContext string) string {
	return s.generateText(ctx, "lesson", buildLessonUserMessage(topic, courseContext),
		s.cfg.GuideTemperature, FallbackLessonEmpty, FallbackLesson)
}

// TutorReply answers a free-form question, or returns FallbackTutor.
func (s *Service) TutorReply(ctx context.Context, question string) string {
	return s.generateText(ctx, "tutor", buildTutorUserMessage(question),
		s.cfg.TutorTemperature, FallbackTutorEmpty, FallbackTutor)
}

// Scenario returns a practice challenge for a tool, or nil when
// generation or parsing fails.
func (s *Service) Scenario(ctx context.Context, toolName string) *Scenario {
	var out Scenario
	err := s.generateJSON(ctx, "scenario", ScenarioSchema,
		buildScenarioUserMessage(toolName), s.cfg.ScenarioTemperature, &out)
	if err != nil {
		return nil
	}
	return &out
}

// Videos returns up to four suggested video resources for a topic.
// Failures yield an empty list.
func (s *Service) Videos(ctx context.Context, topic string) []Video {
	var out struct {
		Videos []Video `json:"videos"`
	}
	err := s.generateJSON(ctx, "videos", VideosSchema,
		buildVideosUserMessage(topic), s.cfg.GuideTemperature, &out)
	if err != nil {
		return nil
	}
	if len(out.Videos) > 4 {
		return out.Videos[:4]
	}
	return out.Videos
}

// Verify grades a submitted command against a scenario. On any failure
// it returns FallbackFeedback so the exercise never dead-ends.
func (s *Service) Verify(ctx context.Context, toolName string, scenario Scenario, answer string) Feedback {
	var out Feedback
	err := s.generateJSON(ctx, "verify", FeedbackSchema,
		buildVerifyUserMessage(toolName, scenario, answer), s.cfg.VerifyTemperature, &out)
	if err != nil {
		return FallbackFeedback()
	}
	return out
}

// generateText runs a free-text generation. emptyFallback covers a
// successful call with blank output; errFallback covers failures.
func (s *Service) generateText(ctx context.Context, purpose, userMsg string, temperature float64, emptyFallback, errFallback string) string {
	ctx, cancel := context.WithTimeout(llm.WithPurpose(ctx, purpose), s.cfg.Timeout)
	defer cancel()

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return errFallback
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return emptyFallback
	}
	return text
}

// generateJSON runs a schema-constrained generation and unmarshals the
// validated content into out.
func (s *Service) generateJSON(ctx context.Context, purpose string, schema *llm.Schema, userMsg string, temperature float64, out any) error {
	ctx, cancel := context.WithTimeout(llm.WithPurpose(ctx, purpose), s.cfg.Timeout)
	defer cancel()

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return err
	}

	return json.Unmarshal(resp.Content, out)
}
