// Package session coordinates a working session: loaded standards, the
// question bank being built, and the generator that fills it.
package session

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/quizforge/internal/bank"
	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/standards"
)

// defaultConcurrency bounds parallel batch generation. Providers
// rate-limit aggressively, so this stays small.
const defaultConcurrency = 3

// Session holds the state of one run of the tool.
type Session struct {
	Standards *standards.Collection
	Bank      *bank.Bank
	Generator *quizgen.Generator

	// Concurrency caps parallel standards in GenerateMany. Zero means
	// the default.
	Concurrency int
}

// New creates a session over the given collection and generator with an
// empty bank.
func New(coll *standards.Collection, gen *quizgen.Generator) *Session {
	return &Session{
		Standards: coll,
		Bank:      bank.New(),
		Generator: gen,
	}
}

// resolve looks up a standard and its document context.
func (s *Session) resolve(standardID string) (standards.Standard, standards.Document, error) {
	std, err := s.Standards.Get(standardID)
	if err != nil {
		return standards.Standard{}, standards.Document{}, err
	}
	doc, err := s.Standards.DocumentFor(standardID)
	if err != nil {
		return standards.Standard{}, standards.Document{}, err
	}
	return std, doc, nil
}

// Assess runs a feasibility assessment for one standard and banks the
// result.
func (s *Session) Assess(ctx context.Context, standardID string) (*quizgen.Assessment, error) {
	std, doc, err := s.resolve(standardID)
	if err != nil {
		return nil, err
	}

	a, err := s.Generator.Assess(ctx, std, standards.GradeLevel(doc.GradeLevel))
	if err != nil {
		return nil, err
	}

	s.Bank.AddAssessment(standardID, doc.Info(), *a)
	return a, nil
}

// Generate runs a full batch (assessment plus questions) for one
// standard and banks everything that succeeded.
func (s *Session) Generate(ctx context.Context, standardID string, opts quizgen.BatchOptions) (*quizgen.BatchResult, error) {
	std, doc, err := s.resolve(standardID)
	if err != nil {
		return nil, err
	}

	res, err := s.Generator.GenerateBatch(ctx, std, standards.GradeLevel(doc.GradeLevel), opts)
	if err != nil {
		return nil, err
	}

	s.Bank.AddBatch(doc.Info(), *res)
	return res, nil
}

// GenerateMany runs Generate for each standard, a few in parallel.
// Per-standard failures land in the result map as errors; the first
// hard failure cancels the remaining work.
func (s *Session) GenerateMany(ctx context.Context, standardIDs []string, opts quizgen.BatchOptions) (map[string]*quizgen.BatchResult, error) {
	limit := s.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	results := make(map[string]*quizgen.BatchResult, len(standardIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	type outcome struct {
		id  string
		res *quizgen.BatchResult
	}
	out := make(chan outcome, len(standardIDs))

	for _, id := range standardIDs {
		g.Go(func() error {
			res, err := s.Generate(gctx, id, opts)
			if err != nil {
				return fmt.Errorf("standard %s: %w", id, err)
			}
			out <- outcome{id: id, res: res}
			return nil
		})
	}

	err := g.Wait()
	close(out)
	for o := range out {
		results[o.id] = o.res
	}
	return results, err
}
