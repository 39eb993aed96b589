package quizgen

import "github.com/abhisek/quizforge/internal/llm"

// AssessmentSchema defines the JSON schema for feasibility assessment
// responses.
var AssessmentSchema = &llm.Schema{
	Name:        "feasibility-assessment",
	Description: "Assessment of whether a learning standard can be tested with text-only quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feasibility": map[string]any{
				"type":        "string",
				"enum":        []any{"feasible", "partially_feasible", "not_feasible"},
				"description": "Whether the standard can be assessed via text-based questions",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Explanation of the assessment",
			},
			"suggested_question_types": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
					"enum": []any{"multiple_choice", "fill_in_blank", "true_false", "short_answer"},
				},
				"description": "Question types that would work best for this standard",
			},
			"requires_visual_aids": map[string]any{
				"type":        "boolean",
				"description": "Whether assessing this standard needs diagrams or images",
			},
			"requires_hands_on": map[string]any{
				"type":        "boolean",
				"description": "Whether this standard needs physical activities to assess",
			},
		},
		"required":             []any{"feasibility", "reasoning", "suggested_question_types", "requires_visual_aids", "requires_hands_on"},
		"additionalProperties": false,
	},
}

// QuestionSchema defines the JSON schema for question generation
// responses. One schema serves all question types; options is empty for
// everything except multiple choice.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single quiz question with answer, options, and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question shown to the student. Fill-in-blank questions mark the blank with _____.",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The correct answer. For multiple choice: the text of the correct option.",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options for multiple_choice. Empty array for other types.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the answer is correct",
			},
			"difficulty_level": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "Difficulty rating of the question",
			},
		},
		"required":             []any{"question_text", "correct_answer", "options", "explanation", "difficulty_level"},
		"additionalProperties": false,
	},
}
