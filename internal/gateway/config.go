package gateway

import "time"

// Config holds content generation settings.
type Config struct {
	MaxTokens int

	// Temperatures per operation family. Structured verification runs
	// colder than scenario generation.
	GuideTemperature    float64 // guides, lessons, video suggestions
	ScenarioTemperature float64
	VerifyTemperature   float64
	TutorTemperature    float64

	// Timeout bounds every request. One attempt only; on expiry the
	// operation falls back to its typed default.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for content generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:           3072,
		GuideTemperature:    0.3,
		ScenarioTemperature: 0.5,
		VerifyTemperature:   0.2,
		TutorTemperature:    0.4,
		Timeout:             45 * time.Second,
	}
}
