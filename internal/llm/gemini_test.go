package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"task":       map[string]any{"type": "string"},
			"correct":    map[string]any{"type": "boolean"},
			"difficulty": map[string]any{"type": "string", "enum": []any{"Easy", "Medium", "Hard"}},
			"videos": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"maxItems": 4,
			},
		},
		"required": []any{"task", "correct"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["task"].Type != "STRING" {
		t.Fatalf("expected STRING for task, got %s", schema.Properties["task"].Type)
	}
	if schema.Properties["correct"].Type != "BOOLEAN" {
		t.Fatalf("expected BOOLEAN for correct, got %s", schema.Properties["correct"].Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["difficulty"].Enum))
	}
	if schema.Properties["videos"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for videos, got %s", schema.Properties["videos"].Type)
	}
	if schema.Properties["videos"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for videos items, got %s", schema.Properties["videos"].Items.Type)
	}
	if schema.Properties["videos"].MaxItems == nil || *schema.Properties["videos"].MaxItems != 4 {
		t.Fatalf("expected maxItems 4, got %v", schema.Properties["videos"].MaxItems)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
