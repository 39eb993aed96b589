package quizgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/quizforge/internal/standards"
)

var testStandard = standards.Standard{
	ID:        "4.NS.1",
	Statement: "Read and write whole numbers up to 1,000,000.",
	Objectives: []string{
		"Read numerals up to 1,000,000",
		"Write numerals up to 1,000,000",
	},
}

func TestBuildFeasibilityPromptDeterministic(t *testing.T) {
	p1, err := BuildFeasibilityPrompt(testStandard, standards.Grade4)
	if err != nil {
		t.Fatalf("BuildFeasibilityPrompt failed: %v", err)
	}
	p2, err := BuildFeasibilityPrompt(testStandard, standards.Grade4)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Error("expected identical prompts for identical inputs")
	}

	for _, want := range []string{"4.NS.1", "Grade 4", testStandard.Statement, "1. Read numerals"} {
		if !strings.Contains(p1, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildFeasibilityPromptInvalidGrade(t *testing.T) {
	_, err := BuildFeasibilityPrompt(testStandard, "Grade 13")
	if err == nil {
		t.Fatal("expected error for invalid grade")
	}
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("expected *ConfigError, got %T", err)
	}
}

func TestBuildQuestionPrompt(t *testing.T) {
	p, err := BuildQuestionPrompt(testStandard, standards.Grade4, TypeMultipleChoice, "Read numerals up to 1,000,000")
	if err != nil {
		t.Fatalf("BuildQuestionPrompt failed: %v", err)
	}

	if !strings.Contains(p, "Focus Objective: Read numerals up to 1,000,000") {
		t.Error("prompt missing focus objective")
	}
	if !strings.Contains(p, "multiple_choice") {
		t.Error("prompt missing question type")
	}
	// Grade 4 guidance: moderate vocabulary, 18-word sentences.
	if !strings.Contains(p, "moderate vocabulary") || !strings.Contains(p, "18 words") {
		t.Errorf("prompt missing grade guidance:\n%s", p)
	}
}

func TestBuildQuestionPromptNoObjective(t *testing.T) {
	p, err := BuildQuestionPrompt(testStandard, standards.Grade4, TypeTrueFalse, "")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(p, "Focus Objective") {
		t.Error("expected no focus objective")
	}
	if !strings.Contains(p, "1. Read numerals up to 1,000,000") {
		t.Error("expected full objectives list")
	}
}

func TestBuildQuestionPromptInvalidType(t *testing.T) {
	_, err := BuildQuestionPrompt(testStandard, standards.Grade4, "essay", "")
	if err == nil {
		t.Fatal("expected error for invalid question type")
	}
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("expected *ConfigError, got %T", err)
	}
}

func TestPickTypes(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("requested wins", func(t *testing.T) {
		got := cfg.pickTypes(3, []QuestionType{TypeTrueFalse}, []QuestionType{TypeMultipleChoice})
		for i, qt := range got {
			if qt != TypeTrueFalse {
				t.Errorf("types[%d] = %s, want true_false", i, qt)
			}
		}
	})

	t.Run("suggested fallback", func(t *testing.T) {
		got := cfg.pickTypes(4, nil, []QuestionType{TypeShortAnswer, TypeFillInBlank})
		want := []QuestionType{TypeShortAnswer, TypeFillInBlank, TypeShortAnswer, TypeFillInBlank}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("types[%d] = %s, want %s", i, got[i], want[i])
			}
		}
	})

	t.Run("weighted default", func(t *testing.T) {
		got := cfg.pickTypes(5, nil, nil)
		// Cycles through the weight table heaviest first.
		want := []QuestionType{TypeMultipleChoice, TypeFillInBlank, TypeTrueFalse, TypeShortAnswer, TypeMultipleChoice}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("types[%d] = %s, want %s", i, got[i], want[i])
			}
		}
	})
}
