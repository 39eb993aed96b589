package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/quizforge/internal/store"
)

// captureLog records appended requests without a database.
type captureLog struct {
	records []store.RequestRecord
}

func (c *captureLog) Append(_ context.Context, rec store.RequestRecord) {
	c.records = append(c.records, rec)
}

func (c *captureLog) Query(context.Context, store.QueryOpts) ([]store.RequestRecord, error) {
	return c.records, nil
}

func (c *captureLog) Get(context.Context, int64) (*store.RequestRecord, error) {
	return nil, nil
}

func (c *captureLog) UsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (c *captureLog) UsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func TestLoggingRecordsProviderAndModel(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: []byte(`{"ok": true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	log := &captureLog{}
	p := WithLogging(mock, "openai", log)

	ctx := WithPurpose(context.Background(), "feasibility")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(log.records) != 1 {
		t.Fatalf("expected 1 logged request, got %d", len(log.records))
	}
	rec := log.records[0]
	// The provider name and the model are separate columns.
	if rec.Provider != "openai" {
		t.Errorf("Provider = %q, want the provider name", rec.Provider)
	}
	if rec.Model != "mock" {
		t.Errorf("Model = %q", rec.Model)
	}
	if rec.Purpose != "feasibility" {
		t.Errorf("Purpose = %q", rec.Purpose)
	}
	if !rec.Success {
		t.Error("expected Success")
	}
	if rec.InputTokens != 12 || rec.OutputTokens != 7 {
		t.Errorf("tokens = %d/%d", rec.InputTokens, rec.OutputTokens)
	}
	if rec.ResponseBody != `{"ok": true}` {
		t.Errorf("ResponseBody = %q", rec.ResponseBody)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})
	log := &captureLog{}
	p := WithLogging(mock, "anthropic", log)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	rec := log.records[0]
	if rec.Success {
		t.Error("expected failure to be logged")
	}
	if rec.Provider != "anthropic" {
		t.Errorf("Provider = %q", rec.Provider)
	}
	if rec.ErrorMessage == "" {
		t.Error("expected ErrorMessage")
	}
	if rec.Purpose != "unknown" {
		t.Errorf("Purpose = %q, want the unlabeled default", rec.Purpose)
	}
}
