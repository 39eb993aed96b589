package bank

import (
	"errors"
	"testing"

	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/standards"
)

var mathDoc = standards.DocumentInfo{
	Title:      "Mathematics Standards",
	GradeLevel: "Grade 4",
	CourseName: "Mathematics",
	Year:       "2024",
}

var scienceDoc = standards.DocumentInfo{
	Title:      "Science Standards",
	GradeLevel: "Grade 5",
	CourseName: "Science",
	Year:       "2024",
}

func question(standardID string, qtype quizgen.QuestionType, text string) quizgen.Question {
	q := quizgen.Question{
		StandardID:    standardID,
		Type:          qtype,
		Text:          text,
		CorrectAnswer: "46",
		Difficulty:    quizgen.DifficultyMedium,
	}
	if qtype == quizgen.TypeMultipleChoice {
		q.Options = []string{"44", "46", "47", "50"}
	}
	return q
}

func TestAddAndGet(t *testing.T) {
	b := New()
	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeMultipleChoice, "q1"))
	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeTrueFalse, "q2"))

	e := b.Get("4.NS.1")
	if e == nil {
		t.Fatal("expected entry for 4.NS.1")
	}
	if len(e.Questions) != 2 {
		t.Errorf("expected 2 questions, got %d", len(e.Questions))
	}
	if e.Document.CourseName != "Mathematics" {
		t.Errorf("Document = %+v", e.Document)
	}

	if b.Get("9.XX.9") != nil {
		t.Error("expected nil for unknown standard")
	}
}

func TestAddAssessmentReplaces(t *testing.T) {
	b := New()
	b.AddAssessment("4.NS.1", mathDoc, quizgen.Assessment{Feasibility: quizgen.Feasible})
	b.AddAssessment("4.NS.1", mathDoc, quizgen.Assessment{Feasibility: quizgen.NotFeasible})

	e := b.Get("4.NS.1")
	if e.Assessment.Feasibility != quizgen.NotFeasible {
		t.Errorf("expected replacement, got %q", e.Assessment.Feasibility)
	}
	if b.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", b.Len())
	}
}

func TestEntriesInsertionOrder(t *testing.T) {
	b := New()
	b.AddQuestion(scienceDoc, question("5.PS.1", quizgen.TypeShortAnswer, "q"))
	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeShortAnswer, "q"))
	b.AddQuestion(mathDoc, question("4.NS.2", quizgen.TypeShortAnswer, "q"))

	entries := b.Entries()
	want := []string{"5.PS.1", "4.NS.1", "4.NS.2"}
	for i, id := range want {
		if entries[i].StandardID != id {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].StandardID, id)
		}
	}
}

func TestDeleteQuestion(t *testing.T) {
	b := New()
	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeShortAnswer, "first"))
	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeShortAnswer, "second"))
	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeShortAnswer, "third"))

	if err := b.DeleteQuestion("4.NS.1", 1); err != nil {
		t.Fatalf("DeleteQuestion failed: %v", err)
	}

	e := b.Get("4.NS.1")
	if len(e.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(e.Questions))
	}
	if e.Questions[0].Text != "first" || e.Questions[1].Text != "third" {
		t.Errorf("unexpected order after delete: %q, %q", e.Questions[0].Text, e.Questions[1].Text)
	}
}

func TestDeleteQuestionNotFound(t *testing.T) {
	b := New()
	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeShortAnswer, "q"))

	var nf *NotFoundError

	err := b.DeleteQuestion("9.XX.9", 0)
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError for unknown standard, got %T", err)
	}

	err = b.DeleteQuestion("4.NS.1", 5)
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError for bad index, got %T", err)
	}

	err = b.DeleteQuestion("4.NS.1", -1)
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError for negative index, got %T", err)
	}
}

func TestDeleteLastQuestionKeepsEntry(t *testing.T) {
	b := New()
	b.AddAssessment("4.NS.1", mathDoc, quizgen.Assessment{Feasibility: quizgen.Feasible})
	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeShortAnswer, "only"))

	if err := b.DeleteQuestion("4.NS.1", 0); err != nil {
		t.Fatal(err)
	}

	e := b.Get("4.NS.1")
	if e == nil {
		t.Fatal("entry should survive deletion of its last question")
	}
	if e.Assessment == nil {
		t.Error("assessment should be preserved")
	}
}

func TestMerge(t *testing.T) {
	dst := New()
	dst.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeShortAnswer, "existing"))
	dst.AddAssessment("4.NS.1", mathDoc, quizgen.Assessment{Feasibility: quizgen.Feasible})

	src := New()
	src.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeShortAnswer, "incoming"))
	src.AddAssessment("4.NS.1", mathDoc, quizgen.Assessment{Feasibility: quizgen.PartiallyFeasible})
	src.AddQuestion(scienceDoc, question("5.PS.1", quizgen.TypeTrueFalse, "new standard"))

	dst.Merge(src)

	e := dst.Get("4.NS.1")
	if len(e.Questions) != 2 {
		t.Errorf("expected questions appended without dedup, got %d", len(e.Questions))
	}
	if e.Assessment.Feasibility != quizgen.PartiallyFeasible {
		t.Errorf("expected incoming assessment to win, got %q", e.Assessment.Feasibility)
	}
	if dst.Len() != 2 {
		t.Errorf("expected 2 entries after merge, got %d", dst.Len())
	}
}

func TestStatistics(t *testing.T) {
	b := New()
	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeMultipleChoice, "q1"))
	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeMultipleChoice, "q2"))
	b.AddQuestion(mathDoc, question("4.NS.2", quizgen.TypeTrueFalse, "q3"))

	hard := question("4.NS.2", quizgen.TypeShortAnswer, "q4")
	hard.Difficulty = quizgen.DifficultyHard
	b.AddQuestion(mathDoc, hard)

	stats := b.Statistics()
	if stats.TotalStandards != 2 {
		t.Errorf("TotalStandards = %d", stats.TotalStandards)
	}
	if stats.TotalQuestions != 4 {
		t.Errorf("TotalQuestions = %d", stats.TotalQuestions)
	}
	if stats.AveragePerStandard != 2.0 {
		t.Errorf("AveragePerStandard = %v", stats.AveragePerStandard)
	}
	if stats.CountsByType[quizgen.TypeMultipleChoice] != 2 {
		t.Errorf("MC count = %d", stats.CountsByType[quizgen.TypeMultipleChoice])
	}
	if stats.CountsByDifficulty[quizgen.DifficultyHard] != 1 {
		t.Errorf("hard count = %d", stats.CountsByDifficulty[quizgen.DifficultyHard])
	}
	if stats.MostCommonType != quizgen.TypeMultipleChoice {
		t.Errorf("MostCommonType = %q", stats.MostCommonType)
	}
}

func TestStatisticsMostCommonTypeTieBreak(t *testing.T) {
	// One of each: the tie resolves to the earlier canonical type, not
	// the alphabetically first.
	b := New()
	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeFillInBlank, "q1"))
	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeMultipleChoice, "q2"))

	if got := b.Statistics().MostCommonType; got != quizgen.TypeMultipleChoice {
		t.Errorf("MostCommonType = %q, want multiple_choice on a tie", got)
	}

	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeShortAnswer, "q3"))
	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeShortAnswer, "q4"))

	if got := b.Statistics().MostCommonType; got != quizgen.TypeShortAnswer {
		t.Errorf("MostCommonType = %q, want short_answer once it leads", got)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	stats := New().Statistics()
	if stats.TotalStandards != 0 || stats.TotalQuestions != 0 {
		t.Errorf("expected zero counts, got %+v", stats)
	}
	if stats.AveragePerStandard != 0 {
		t.Errorf("AveragePerStandard = %v", stats.AveragePerStandard)
	}
	if stats.MostCommonType != "" {
		t.Errorf("MostCommonType = %q, want empty", stats.MostCommonType)
	}
}

func TestClear(t *testing.T) {
	b := New()
	b.AddQuestion(mathDoc, question("4.NS.1", quizgen.TypeShortAnswer, "q"))
	b.Clear()

	if b.Len() != 0 || b.TotalQuestions() != 0 {
		t.Error("expected empty bank after Clear")
	}
	if len(b.Entries()) != 0 {
		t.Error("expected no entries after Clear")
	}
}
