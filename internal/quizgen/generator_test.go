package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/standards"
)

func feasibleAssessment(types ...string) llm.MockResponse {
	if len(types) == 0 {
		types = []string{"short_answer"}
	}
	payload := map[string]any{
		"feasibility":              "feasible",
		"reasoning":                "Text questions work fine.",
		"suggested_question_types": types,
		"requires_visual_aids":     false,
		"requires_hands_on":        false,
	}
	raw, _ := json.Marshal(payload)
	return llm.MockResponse{Content: raw}
}

func shortAnswerQuestion(text string) llm.MockResponse {
	payload := map[string]any{
		"question_text":    text,
		"correct_answer":   "46",
		"options":          []string{},
		"explanation":      "Addition.",
		"difficulty_level": "medium",
	}
	raw, _ := json.Marshal(payload)
	return llm.MockResponse{Content: raw}
}

func TestAssess(t *testing.T) {
	mock := llm.NewMockProvider(feasibleAssessment())
	gen := New(mock, DefaultConfig())

	a, err := gen.Assess(context.Background(), testStandard, standards.Grade4)
	if err != nil {
		t.Fatalf("Assess failed: %v", err)
	}
	if a.Feasibility != Feasible {
		t.Errorf("Feasibility = %q", a.Feasibility)
	}
	if a.StandardID != testStandard.ID {
		t.Errorf("StandardID = %q", a.StandardID)
	}

	// The assessment request uses the low temperature.
	if got := mock.Calls[0].Temperature; got != 0.3 {
		t.Errorf("assessment temperature = %v, want 0.3", got)
	}
}

func TestAssessProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	_, err := gen.Assess(context.Background(), testStandard, standards.Grade4)
	if err == nil {
		t.Fatal("expected error")
	}
	var ge *GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected *GenerationError, got %T", err)
	}
	var pu *llm.ErrProviderUnavailable
	if !errors.As(err, &pu) {
		t.Error("expected wrapped *ErrProviderUnavailable")
	}
}

func TestGenerateQuestionTemperature(t *testing.T) {
	mock := llm.NewMockProvider(shortAnswerQuestion("What is 23 + 23?"))
	gen := New(mock, DefaultConfig())

	q, err := gen.GenerateQuestion(context.Background(), testStandard, standards.Grade4, TypeShortAnswer, "")
	if err != nil {
		t.Fatalf("GenerateQuestion failed: %v", err)
	}
	if q.Type != TypeShortAnswer {
		t.Errorf("Type = %q", q.Type)
	}
	if got := mock.Calls[0].Temperature; got != 0.7 {
		t.Errorf("question temperature = %v, want 0.7", got)
	}
}

func TestGenerateBatch(t *testing.T) {
	mock := llm.NewMockProvider(
		feasibleAssessment("short_answer"),
		shortAnswerQuestion("q1"),
		shortAnswerQuestion("q2"),
		shortAnswerQuestion("q3"),
	)
	gen := New(mock, DefaultConfig())

	res, err := gen.GenerateBatch(context.Background(), testStandard, standards.Grade4, BatchOptions{Count: 3})
	if err != nil {
		t.Fatalf("GenerateBatch failed: %v", err)
	}
	if len(res.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(res.Questions))
	}
	if len(res.Failures) != 0 {
		t.Errorf("expected no failures, got %d", len(res.Failures))
	}
	// 1 assessment + 3 questions.
	if mock.CallCount() != 4 {
		t.Errorf("expected 4 provider calls, got %d", mock.CallCount())
	}
}

func TestGenerateBatchPartialFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		feasibleAssessment("short_answer"),
		shortAnswerQuestion("q1"),
		llm.MockResponse{Content: []byte(`{"broken`)},
		shortAnswerQuestion("q3"),
	)
	gen := New(mock, DefaultConfig())

	res, err := gen.GenerateBatch(context.Background(), testStandard, standards.Grade4, BatchOptions{Count: 3})
	if err != nil {
		t.Fatalf("GenerateBatch failed: %v", err)
	}
	if len(res.Questions) != 2 {
		t.Errorf("expected 2 successful questions, got %d", len(res.Questions))
	}
	if len(res.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(res.Failures))
	}
	var mre *MalformedResponseError
	if !errors.As(res.Failures[0].Err, &mre) {
		t.Errorf("expected failure to be *MalformedResponseError, got %T", res.Failures[0].Err)
	}
}

func TestGenerateBatchNotFeasible(t *testing.T) {
	notFeasible := func() llm.MockResponse {
		raw, _ := json.Marshal(map[string]any{
			"feasibility": "not_feasible",
			"reasoning":   "Needs physical manipulatives.",
		})
		return llm.MockResponse{Content: raw}
	}

	t.Run("skipped without force", func(t *testing.T) {
		mock := llm.NewMockProvider(notFeasible())
		gen := New(mock, DefaultConfig())

		res, err := gen.GenerateBatch(context.Background(), testStandard, standards.Grade4, BatchOptions{Count: 2})
		if err != nil {
			t.Fatalf("GenerateBatch failed: %v", err)
		}
		if len(res.Questions) != 0 {
			t.Errorf("expected no questions, got %d", len(res.Questions))
		}
		if res.Assessment == nil || res.Assessment.Feasibility != NotFeasible {
			t.Error("expected assessment to be recorded")
		}
		if mock.CallCount() != 1 {
			t.Errorf("expected only the assessment call, got %d", mock.CallCount())
		}
	})

	t.Run("force generates anyway", func(t *testing.T) {
		mock := llm.NewMockProvider(notFeasible(), shortAnswerQuestion("q1"), shortAnswerQuestion("q2"))
		gen := New(mock, DefaultConfig())

		res, err := gen.GenerateBatch(context.Background(), testStandard, standards.Grade4,
			BatchOptions{Count: 2, Types: []QuestionType{TypeShortAnswer}, Force: true})
		if err != nil {
			t.Fatalf("GenerateBatch failed: %v", err)
		}
		if len(res.Questions) != 2 {
			t.Errorf("expected 2 questions, got %d", len(res.Questions))
		}
	})
}

func TestGenerateBatchFailedAssessmentAborts(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateBatch(context.Background(), testStandard, standards.Grade4, BatchOptions{Count: 2})
	if err == nil {
		t.Fatal("expected error when assessment fails")
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected no question calls after failed assessment, got %d calls", mock.CallCount())
	}
}
