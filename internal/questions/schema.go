package questions

import "github.com/abhisek/careerprep/internal/llm"

// SetSchema constrains the LLM response to a list of multiple-choice questions.
var SetSchema = &llm.Schema{
	Name:        "interview-question-set",
	Description: "A set of multiple-choice technical interview questions with explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The interview question, self-contained and in plain text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 distinct answer options",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The exact text of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is right, in two or three sentences",
						},
					},
					"required":             []any{"question", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
