// Package bank accumulates generated questions and feasibility
// assessments per standard, and handles export/import of the bank as a
// JSON document grouped by source standards document.
package bank

import (
	"fmt"
	"sync"

	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/standards"
)

// NotFoundError reports a lookup that matched nothing in the bank.
type NotFoundError struct {
	StandardID string
	Index      int // question index, -1 when the standard itself is missing
}

func (e *NotFoundError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("standard %q not in bank", e.StandardID)
	}
	return fmt.Sprintf("standard %q has no question at index %d", e.StandardID, e.Index)
}

// Entry holds everything banked for one standard.
type Entry struct {
	StandardID string
	Document   standards.DocumentInfo
	Assessment *quizgen.Assessment
	Questions  []quizgen.Question
}

// Bank is an in-memory question bank keyed by standard ID. Entries keep
// insertion order so exports are stable across runs. Safe for
// concurrent use.
type Bank struct {
	mu      sync.Mutex
	order   []string
	entries map[string]*Entry
}

// New returns an empty Bank.
func New() *Bank {
	return &Bank{entries: make(map[string]*Entry)}
}

// entry returns the entry for standardID, creating it if needed.
// Callers must hold b.mu.
func (b *Bank) entry(standardID string, doc standards.DocumentInfo) *Entry {
	e, ok := b.entries[standardID]
	if !ok {
		e = &Entry{StandardID: standardID, Document: doc}
		b.entries[standardID] = e
		b.order = append(b.order, standardID)
	}
	return e
}

// AddAssessment records a feasibility assessment for a standard,
// replacing any previous one.
func (b *Bank) AddAssessment(standardID string, doc standards.DocumentInfo, a quizgen.Assessment) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entry(standardID, doc).Assessment = &a
}

// AddQuestion appends a question to its standard's entry. Duplicate
// texts are not rejected; the bank stores what generation produced.
func (b *Bank) AddQuestion(doc standards.DocumentInfo, q quizgen.Question) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e := b.entry(q.StandardID, doc)
	e.Questions = append(e.Questions, q)
}

// AddBatch records a whole generation result for a standard.
func (b *Bank) AddBatch(doc standards.DocumentInfo, res quizgen.BatchResult) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e := b.entry(res.StandardID, doc)
	if res.Assessment != nil {
		e.Assessment = res.Assessment
	}
	for _, q := range res.Questions {
		if q != nil {
			e.Questions = append(e.Questions, *q)
		}
	}
}

// DeleteQuestion removes the question at index from a standard's entry.
// The entry itself stays even when its last question is removed, so the
// assessment is preserved.
func (b *Bank) DeleteQuestion(standardID string, index int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[standardID]
	if !ok {
		return &NotFoundError{StandardID: standardID, Index: -1}
	}
	if index < 0 || index >= len(e.Questions) {
		return &NotFoundError{StandardID: standardID, Index: index}
	}
	e.Questions = append(e.Questions[:index], e.Questions[index+1:]...)
	return nil
}

// Get returns a copy of the entry for standardID, or nil if absent.
func (b *Bank) Get(standardID string) *Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[standardID]
	if !ok {
		return nil
	}
	cp := *e
	cp.Questions = append([]quizgen.Question(nil), e.Questions...)
	return &cp
}

// Entries returns copies of all entries in insertion order.
func (b *Bank) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Entry, 0, len(b.order))
	for _, id := range b.order {
		e := b.entries[id]
		cp := *e
		cp.Questions = append([]quizgen.Question(nil), e.Questions...)
		out = append(out, cp)
	}
	return out
}

// Merge copies every entry of other into b. Questions are appended
// without deduplication; an assessment in other overwrites the one in b
// for the same standard.
func (b *Bank) Merge(other *Bank) {
	for _, e := range other.Entries() {
		b.mu.Lock()
		dst := b.entry(e.StandardID, e.Document)
		if e.Assessment != nil {
			dst.Assessment = e.Assessment
		}
		dst.Questions = append(dst.Questions, e.Questions...)
		b.mu.Unlock()
	}
}

// Clear removes all entries.
func (b *Bank) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.order = nil
	b.entries = make(map[string]*Entry)
}

// Len returns the number of standards with an entry.
func (b *Bank) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// TotalQuestions returns the number of questions across all entries.
func (b *Bank) TotalQuestions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, e := range b.entries {
		n += len(e.Questions)
	}
	return n
}

// Statistics summarizes the bank contents.
type Statistics struct {
	TotalStandards     int
	TotalQuestions     int
	AveragePerStandard float64
	CountsByType       map[quizgen.QuestionType]int
	CountsByDifficulty map[quizgen.Difficulty]int
	MostCommonType     quizgen.QuestionType // "" when the bank is empty
}

// Statistics computes aggregate counts over the bank. An empty bank
// yields zero counts and no most-common type.
func (b *Bank) Statistics() Statistics {
	b.mu.Lock()
	defer b.mu.Unlock()

	stats := Statistics{
		TotalStandards:     len(b.entries),
		CountsByType:       make(map[quizgen.QuestionType]int),
		CountsByDifficulty: make(map[quizgen.Difficulty]int),
	}

	for _, e := range b.entries {
		stats.TotalQuestions += len(e.Questions)
		for _, q := range e.Questions {
			stats.CountsByType[q.Type]++
			stats.CountsByDifficulty[q.Difficulty]++
		}
	}

	if stats.TotalStandards > 0 {
		stats.AveragePerStandard = float64(stats.TotalQuestions) / float64(stats.TotalStandards)
	}

	// Ties resolve to the earlier type in canonical order.
	best := 0
	for _, t := range quizgen.AllQuestionTypes() {
		if stats.CountsByType[t] > best {
			best = stats.CountsByType[t]
			stats.MostCommonType = t
		}
	}

	return stats
}
