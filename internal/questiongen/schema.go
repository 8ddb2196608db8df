package questiongen

import "github.com/taskgene/arena/internal/llm"

// QuestionSetSchema defines the JSON reply for structured generation.
var QuestionSetSchema = &llm.Schema{
	Name:        "challenge-questions",
	Description: "A set of multiple choice spreadsheet questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question shown to the learner",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly 4 options, each prefixed with its label such as \"A. \"",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct option, repeated exactly including its label",
						},
					},
					"required":             []any{"prompt", "options", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
