package gateway

import "github.com/abhisek/cyberhunter/internal/llm"

// ScenarioSchema defines the JSON schema for practice scenario generation.
var ScenarioSchema = &llm.Schema{
	Name:        "exercise-scenario",
	Description: "A practice challenge for a security or admin tool",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"context": map[string]any{
				"type":        "string",
				"description": "Mise en situation (ex: Serveur Linux compromis)",
			},
			"task": map[string]any{
				"type":        "string",
				"description": "Objectif technique précis",
			},
			"target": map[string]any{
				"type":        "string",
				"description": "Cible fictive (Fichier, IP, Processus)",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"Easy", "Medium", "Hard"},
			},
		},
		"required":             []any{"context", "task", "target", "difficulty"},
		"additionalProperties": false,
	},
}

// FeedbackSchema defines the JSON schema for answer verification.
var FeedbackSchema = &llm.Schema{
	Name:        "exercise-feedback",
	Description: "Verdict on a submitted exercise command",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correct": map[string]any{
				"type": "boolean",
			},
			"message": map[string]any{
				"type":        "string",
				"description": "Feedback court (ex: Accès Refusé ou Succès)",
			},
			"tips": map[string]any{
				"type":        "string",
				"description": "Explication technique détaillée",
			},
		},
		"required":             []any{"correct", "message"},
		"additionalProperties": false,
	},
}

// VideosSchema defines the JSON schema for video suggestions. The list is
// wrapped in an object so every provider's structured output mode accepts it.
var VideosSchema = &llm.Schema{
	Name:        "video-resources",
	Description: "Suggested video resources for a technical topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"videos": map[string]any{
				"type":     "array",
				"maxItems": 4,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Titre de la vidéo idéale ou du concept",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "Pourquoi cette vidéo est importante (1 phrase)",
						},
						"searchQuery": map[string]any{
							"type":        "string",
							"description": "Recherche YouTube optimisée",
						},
						"duration": map[string]any{
							"type":        "string",
							"description": "Court (~5min) ou Long (~30min)",
						},
					},
					"required":             []any{"title", "description", "searchQuery"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"videos"},
		"additionalProperties": false,
	},
}
