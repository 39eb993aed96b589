package session

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/standards"
)

const fixtureJSON = `{
  "total_documents": 1,
  "documents": [
    {
      "document": {
        "title": "Mathematics Standards",
        "course_name": "Mathematics",
        "grade_level": "Grade 4",
        "year": "2024",
        "strands": [
          {
            "code": "NS",
            "name": "Number Sense",
            "standards": [
              {"id": "4.NS.1", "statement": "Read and write whole numbers.", "knowledge_and_skills": {"objectives": [{"text": "Read numerals"}]}},
              {"id": "4.NS.2", "statement": "Compare whole numbers.", "knowledge_and_skills": {"objectives": []}}
            ]
          }
        ]
      }
    }
  ]
}`

func fixtureCollection(t *testing.T) *standards.Collection {
	t.Helper()
	coll, err := standards.Parse(strings.NewReader(fixtureJSON))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return coll
}

func assessmentResponse() llm.MockResponse {
	return llm.MockJSON(map[string]any{
		"feasibility":              "feasible",
		"reasoning":                "Plain arithmetic.",
		"suggested_question_types": []string{"short_answer"},
	})
}

func questionResponse(text string) llm.MockResponse {
	return llm.MockJSON(map[string]any{
		"question_text":    text,
		"correct_answer":   "46",
		"explanation":      "Addition.",
		"difficulty_level": "medium",
	})
}

func newTestSession(t *testing.T, mock *llm.MockProvider) *Session {
	t.Helper()
	sess := New(fixtureCollection(t), quizgen.New(mock, quizgen.DefaultConfig()))
	// Keeps the canned response order deterministic.
	sess.Concurrency = 1
	return sess
}

func TestAssess(t *testing.T) {
	mock := llm.NewMockProvider(assessmentResponse())
	sess := newTestSession(t, mock)

	a, err := sess.Assess(context.Background(), "4.NS.1")
	if err != nil {
		t.Fatalf("Assess failed: %v", err)
	}
	if a.Feasibility != quizgen.Feasible {
		t.Errorf("Feasibility = %q", a.Feasibility)
	}

	e := sess.Bank.Get("4.NS.1")
	if e == nil || e.Assessment == nil {
		t.Fatal("assessment not banked")
	}
	if e.Document.CourseName != "Mathematics" || e.Document.GradeLevel != "Grade 4" {
		t.Errorf("banked document = %+v", e.Document)
	}
}

func TestAssessUnknownStandard(t *testing.T) {
	sess := newTestSession(t, llm.NewMockProvider())

	if _, err := sess.Assess(context.Background(), "9.XX.9"); err == nil {
		t.Fatal("expected error for unknown standard")
	}
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(
		assessmentResponse(),
		questionResponse("q1"),
		questionResponse("q2"),
	)
	sess := newTestSession(t, mock)

	res, err := sess.Generate(context.Background(), "4.NS.1", quizgen.BatchOptions{Count: 2})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(res.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(res.Questions))
	}

	e := sess.Bank.Get("4.NS.1")
	if e == nil {
		t.Fatal("nothing banked")
	}
	if len(e.Questions) != 2 || e.Assessment == nil {
		t.Errorf("banked %d questions, assessment %v", len(e.Questions), e.Assessment)
	}
}

func TestGenerateMany(t *testing.T) {
	mock := llm.NewMockProvider(
		assessmentResponse(),
		questionResponse("q1"),
		assessmentResponse(),
		questionResponse("q2"),
	)
	sess := newTestSession(t, mock)

	results, err := sess.GenerateMany(context.Background(),
		[]string{"4.NS.1", "4.NS.2"}, quizgen.BatchOptions{Count: 1})
	if err != nil {
		t.Fatalf("GenerateMany failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, id := range []string{"4.NS.1", "4.NS.2"} {
		if results[id] == nil || len(results[id].Questions) != 1 {
			t.Errorf("standard %s: result = %+v", id, results[id])
		}
		if sess.Bank.Get(id) == nil {
			t.Errorf("standard %s not banked", id)
		}
	}
	if sess.Bank.TotalQuestions() != 2 {
		t.Errorf("TotalQuestions = %d", sess.Bank.TotalQuestions())
	}
}

func TestGenerateManyPartialFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		assessmentResponse(),
		questionResponse("q1"),
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	sess := newTestSession(t, mock)

	results, err := sess.GenerateMany(context.Background(),
		[]string{"4.NS.1", "4.NS.2"}, quizgen.BatchOptions{Count: 1})
	if err == nil {
		t.Fatal("expected error when one standard fails")
	}
	if !strings.Contains(err.Error(), "4.NS.2") {
		t.Errorf("error should name the failed standard: %v", err)
	}

	// The successful standard still lands in the results and the bank.
	if results["4.NS.1"] == nil || len(results["4.NS.1"].Questions) != 1 {
		t.Errorf("results[4.NS.1] = %+v", results["4.NS.1"])
	}
	if sess.Bank.Get("4.NS.1") == nil {
		t.Error("successful standard not banked")
	}
}
