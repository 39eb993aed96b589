package quizgen

import (
	"context"
	"fmt"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/standards"
)

// Generator runs the assessment and question pipelines against a model
// provider. Safe for concurrent use; it holds no mutable state.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Assess asks the model whether the standard can be tested with
// text-only questions.
func (g *Generator) Assess(ctx context.Context, std standards.Standard, grade standards.GradeLevel) (*Assessment, error) {
	ctx = llm.WithPurpose(ctx, "feasibility")

	userMsg, err := BuildFeasibilityPrompt(std, grade)
	if err != nil {
		return nil, err
	}

	req := llm.Request{
		System: assessmentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      AssessmentSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.AssessmentTemperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{StandardID: std.ID, Err: err}
	}

	return ParseAssessment(resp.Content, std.ID)
}

// GenerateQuestion produces a single validated question of the given type.
// A malformed model response is surfaced immediately, not retried; the
// caller may regenerate if it wants another attempt.
func (g *Generator) GenerateQuestion(ctx context.Context, std standards.Standard, grade standards.GradeLevel, qtype QuestionType, objective string) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	userMsg, err := BuildQuestionPrompt(std, grade, qtype, objective)
	if err != nil {
		return nil, err
	}

	req := llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.QuestionTemperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{StandardID: std.ID, QuestionType: qtype, Err: err}
	}

	return ParseQuestion(resp.Content, std.ID, qtype)
}

// BatchOptions configures GenerateBatch.
type BatchOptions struct {
	// Count is the number of questions to generate. Zero means the
	// config default.
	Count int

	// Types constrains the question types. Empty means draw from the
	// assessment's suggestions, then the weighted defaults.
	Types []QuestionType

	// Force generates questions even when the assessment says
	// not_feasible.
	Force bool
}

// BatchFailure records one failed item of a batch.
type BatchFailure struct {
	StandardID   string
	QuestionType QuestionType
	Err          error
}

// BatchResult is the outcome of a batch: the successful subset plus
// per-item failures. Never all-or-nothing.
type BatchResult struct {
	StandardID string
	Assessment *Assessment
	Questions  []*Question
	Failures   []BatchFailure
}

// GenerateBatch assesses the standard and generates up to opts.Count
// questions, cycling through objectives so each question focuses on a
// different one where possible. Individual failures are recorded and the
// remaining items still run; only a failed assessment aborts the batch.
func (g *Generator) GenerateBatch(ctx context.Context, std standards.Standard, grade standards.GradeLevel, opts BatchOptions) (*BatchResult, error) {
	assessment, err := g.Assess(ctx, std, grade)
	if err != nil {
		return nil, fmt.Errorf("feasibility assessment: %w", err)
	}

	result := &BatchResult{StandardID: std.ID, Assessment: assessment}

	if assessment.Feasibility == NotFeasible && !opts.Force {
		return result, nil
	}

	count := opts.Count
	if count <= 0 {
		count = g.config.DefaultCount
	}
	types := g.config.pickTypes(count, opts.Types, assessment.SuggestedTypes)

	for i, qtype := range types {
		objective := ""
		if len(std.Objectives) > 0 {
			objective = std.Objectives[i%len(std.Objectives)]
		}

		q, qerr := g.GenerateQuestion(ctx, std, grade, qtype, objective)
		if qerr != nil {
			result.Failures = append(result.Failures, BatchFailure{
				StandardID:   std.ID,
				QuestionType: qtype,
				Err:          qerr,
			})
			continue
		}
		result.Questions = append(result.Questions, q)
	}

	return result, nil
}
