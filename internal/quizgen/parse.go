package quizgen

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// assessmentOutput is the raw assessment payload before normalization.
type assessmentOutput struct {
	Feasibility        string   `json:"feasibility"`
	Reasoning          string   `json:"reasoning"`
	SuggestedTypes     []string `json:"suggested_question_types"`
	RequiresVisualAids bool     `json:"requires_visual_aids"`
	RequiresHandsOn    bool     `json:"requires_hands_on"`
}

// questionOutput is the raw question payload before normalization.
type questionOutput struct {
	QuestionText  string   `json:"question_text"`
	CorrectAnswer string   `json:"correct_answer"`
	Options       []string `json:"options"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty_level"`
}

// ParseAssessment parses raw model output into an Assessment for the
// given standard. Enum values are normalized to the closed sets;
// unrecognized values fail rather than defaulting.
func ParseAssessment(raw []byte, standardID string) (*Assessment, error) {
	var out assessmentOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("invalid JSON: %v", err), Raw: raw}
	}

	if out.Feasibility == "" {
		return nil, &MalformedResponseError{Reason: `missing "feasibility"`, Raw: raw}
	}
	feasibility, err := ParseFeasibility(out.Feasibility)
	if err != nil {
		return nil, &MalformedResponseError{Reason: err.Error(), Raw: raw}
	}

	if out.Reasoning == "" {
		return nil, &MalformedResponseError{Reason: `missing "reasoning"`, Raw: raw}
	}

	types := make([]QuestionType, 0, len(out.SuggestedTypes))
	for _, s := range out.SuggestedTypes {
		qt, err := ParseQuestionType(s)
		if err != nil {
			return nil, &MalformedResponseError{Reason: err.Error(), Raw: raw}
		}
		if !slices.Contains(types, qt) {
			types = append(types, qt)
		}
	}

	return &Assessment{
		StandardID:         standardID,
		Feasibility:        feasibility,
		Reasoning:          out.Reasoning,
		SuggestedTypes:     types,
		RequiresVisualAids: out.RequiresVisualAids,
		RequiresHandsOn:    out.RequiresHandsOn,
		AssessedAt:         time.Now().UTC(),
	}, nil
}

// ParseQuestion parses raw model output into a Question of the expected
// type. Multiple choice questions must carry exactly 4 options with the
// correct answer among them; other types drop options entirely.
func ParseQuestion(raw []byte, standardID string, expected QuestionType) (*Question, error) {
	if _, err := ParseQuestionType(string(expected)); err != nil {
		return nil, &ConfigError{Field: "question type", Value: string(expected)}
	}

	var out questionOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("invalid JSON: %v", err), Raw: raw}
	}

	if out.QuestionText == "" {
		return nil, &MalformedResponseError{Reason: `missing "question_text"`, Raw: raw}
	}
	if out.CorrectAnswer == "" {
		return nil, &MalformedResponseError{Reason: `missing "correct_answer"`, Raw: raw}
	}
	if out.Difficulty == "" {
		return nil, &MalformedResponseError{Reason: `missing "difficulty_level"`, Raw: raw}
	}
	difficulty, err := ParseDifficulty(out.Difficulty)
	if err != nil {
		return nil, &MalformedResponseError{Reason: err.Error(), Raw: raw}
	}

	q := &Question{
		ID:            uuid.NewString(),
		StandardID:    standardID,
		Type:          expected,
		Text:          out.QuestionText,
		CorrectAnswer: out.CorrectAnswer,
		Explanation:   out.Explanation,
		Difficulty:    difficulty,
	}

	if expected == TypeMultipleChoice {
		if len(out.Options) != 4 {
			return nil, &MalformedResponseError{
				Reason: fmt.Sprintf("multiple_choice requires exactly 4 options, got %d", len(out.Options)),
				Raw:    raw,
			}
		}
		if !slices.Contains(out.Options, out.CorrectAnswer) {
			return nil, &MalformedResponseError{
				Reason: fmt.Sprintf("correct_answer %q is not one of the options", out.CorrectAnswer),
				Raw:    raw,
			}
		}
		q.Options = out.Options
	}

	return q, nil
}
