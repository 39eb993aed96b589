package bank

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/standards"
)

// ImportResult reports what an import actually loaded.
type ImportResult struct {
	Documents int
	Standards int
	Questions int

	// Warnings lists entries that were skipped or flagged. A warning
	// never aborts the import.
	Warnings []string
}

// Import reads a previously exported bank from r and merges it into b.
// Malformed questions and assessments are skipped with a warning.
// When coll is non-nil, entries whose standard ID is absent from the
// loaded documents are skipped too; pass nil to accept any ID.
func (b *Bank) Import(r io.Reader, coll *standards.Collection) (*ImportResult, error) {
	var file exportFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode bank import: %w", err)
	}

	res := &ImportResult{}

	for _, doc := range file.Documents {
		res.Documents++
		for _, std := range doc.Standards {
			if std.StandardID == "" {
				res.warn("skipping entry with empty standard_id")
				continue
			}
			if coll != nil && !coll.Has(std.StandardID) {
				res.warn("skipping standard %q: not found in loaded documents", std.StandardID)
				continue
			}
			res.Standards++

			if std.Assessment != nil {
				if err := validateAssessment(std.Assessment); err != nil {
					res.warn("standard %q: dropping assessment: %v", std.StandardID, err)
				} else {
					b.AddAssessment(std.StandardID, doc.DocumentInfo, *std.Assessment)
				}
			}

			for i, q := range std.Questions {
				if err := validateQuestion(&q, std.StandardID); err != nil {
					res.warn("standard %q: skipping question %d: %v", std.StandardID, i, err)
					continue
				}
				q.StandardID = std.StandardID
				b.AddQuestion(doc.DocumentInfo, q)
				res.Questions++
			}
		}
	}

	return res, nil
}

// ImportFile reads an exported bank from the file at path.
func (b *Bank) ImportFile(path string, coll *standards.Collection) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()
	return b.Import(f, coll)
}

func (r *ImportResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// validateQuestion re-checks an imported question against the same
// rules applied at generation time.
func validateQuestion(q *quizgen.Question, standardID string) error {
	t, err := quizgen.ParseQuestionType(string(q.Type))
	if err != nil {
		return err
	}
	q.Type = t

	d, err := quizgen.ParseDifficulty(string(q.Difficulty))
	if err != nil {
		return err
	}
	q.Difficulty = d

	if q.Text == "" {
		return fmt.Errorf("empty question_text")
	}
	if q.CorrectAnswer == "" {
		return fmt.Errorf("empty correct_answer")
	}

	if t == quizgen.TypeMultipleChoice {
		if len(q.Options) != 4 {
			return fmt.Errorf("multiple_choice needs 4 options, got %d", len(q.Options))
		}
		found := false
		for _, o := range q.Options {
			if o == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("correct_answer %q not among options", q.CorrectAnswer)
		}
	} else if len(q.Options) > 0 {
		q.Options = nil
	}

	return nil
}

func validateAssessment(a *quizgen.Assessment) error {
	f, err := quizgen.ParseFeasibility(string(a.Feasibility))
	if err != nil {
		return err
	}
	a.Feasibility = f

	for i, t := range a.SuggestedTypes {
		parsed, err := quizgen.ParseQuestionType(string(t))
		if err != nil {
			return fmt.Errorf("suggested type %d: %w", i, err)
		}
		a.SuggestedTypes[i] = parsed
	}
	return nil
}
