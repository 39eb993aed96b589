package quizgen

import (
	"fmt"
	"strings"
	"time"
)

// QuestionType is the closed set of quiz question formats.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeFillInBlank    QuestionType = "fill_in_blank"
	TypeTrueFalse      QuestionType = "true_false"
	TypeShortAnswer    QuestionType = "short_answer"
)

// AllQuestionTypes returns the question types in their canonical order.
// The order doubles as the tie-break for statistics and the weighted
// default distribution.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{TypeMultipleChoice, TypeFillInBlank, TypeTrueFalse, TypeShortAnswer}
}

// Label returns a human-readable name for display.
func (t QuestionType) Label() string {
	switch t {
	case TypeMultipleChoice:
		return "Multiple Choice"
	case TypeFillInBlank:
		return "Fill in Blank"
	case TypeTrueFalse:
		return "True/False"
	case TypeShortAnswer:
		return "Short Answer"
	default:
		return string(t)
	}
}

// ParseQuestionType normalizes a raw string to a QuestionType.
// Unrecognized values are an error, never a silent default.
func ParseQuestionType(s string) (QuestionType, error) {
	switch QuestionType(normalizeEnum(s)) {
	case TypeMultipleChoice:
		return TypeMultipleChoice, nil
	case TypeFillInBlank:
		return TypeFillInBlank, nil
	case TypeTrueFalse:
		return TypeTrueFalse, nil
	case TypeShortAnswer:
		return TypeShortAnswer, nil
	default:
		return "", fmt.Errorf("unknown question type: %q", s)
	}
}

// Feasibility classifies whether a standard can be assessed with
// text-only questions.
type Feasibility string

const (
	Feasible          Feasibility = "feasible"
	PartiallyFeasible Feasibility = "partially_feasible"
	NotFeasible       Feasibility = "not_feasible"
)

// ParseFeasibility normalizes a raw string to a Feasibility value.
func ParseFeasibility(s string) (Feasibility, error) {
	switch Feasibility(normalizeEnum(s)) {
	case Feasible:
		return Feasible, nil
	case PartiallyFeasible:
		return PartiallyFeasible, nil
	case NotFeasible:
		return NotFeasible, nil
	default:
		return "", fmt.Errorf("unknown feasibility: %q", s)
	}
}

// Difficulty is the closed set of question difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns the difficulty levels easiest first.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty normalizes a raw string to a Difficulty value.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(normalizeEnum(s)) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty: %q", s)
	}
}

// normalizeEnum lowercases, trims, and converts separators so that
// "Partially Feasible" and "partially_feasible" compare equal. The match
// is structural, not exact text.
func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Question is a single generated quiz question. Questions are never
// mutated in place; regeneration creates a new Question.
type Question struct {
	ID            string       `json:"id,omitempty"`
	StandardID    string       `json:"standard_id"`
	Type          QuestionType `json:"question_type"`
	Text          string       `json:"question_text"`
	CorrectAnswer string       `json:"correct_answer"`

	// Options is present only for multiple_choice, always length 4,
	// with CorrectAnswer among them.
	Options []string `json:"options,omitempty"`

	Explanation string     `json:"explanation,omitempty"`
	Difficulty  Difficulty `json:"difficulty_level"`
}

// Assessment records whether a standard is suitable for text-based
// quizzing. One per standard per session; recomputation overwrites.
type Assessment struct {
	StandardID          string         `json:"standard_id"`
	Feasibility         Feasibility    `json:"feasibility"`
	Reasoning           string         `json:"reasoning"`
	SuggestedTypes      []QuestionType `json:"suggested_question_types"`
	RequiresVisualAids  bool           `json:"requires_visual_aids"`
	RequiresHandsOn     bool           `json:"requires_hands_on"`
	AssessedAt          time.Time      `json:"assessed_at,omitempty"`
}
