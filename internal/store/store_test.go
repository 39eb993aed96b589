package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func record(purpose, model string, in, out int, ok bool) RequestRecord {
	return RequestRecord{
		Provider:     "openai",
		Model:        model,
		Purpose:      purpose,
		InputTokens:  in,
		OutputTokens: out,
		LatencyMs:    120,
		Success:      ok,
	}
}

func TestAppendAndQuery(t *testing.T) {
	log := openTestStore(t).RequestLog()
	ctx := context.Background()

	log.Append(ctx, record("feasibility", "gpt-4o-mini", 100, 50, true))
	log.Append(ctx, record("question-gen", "gpt-4o-mini", 200, 80, true))
	log.Append(ctx, record("question-gen", "gpt-4o-mini", 150, 0, false))

	recs, err := log.Query(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	// Newest first.
	if recs[0].Purpose != "question-gen" || recs[0].Success {
		t.Errorf("recs[0] = %+v", recs[0])
	}
	if recs[2].Purpose != "feasibility" {
		t.Errorf("recs[2] = %+v", recs[2])
	}
	if recs[0].Timestamp.IsZero() {
		t.Error("timestamp not round-tripped")
	}
}

func TestQueryPurposeFilter(t *testing.T) {
	log := openTestStore(t).RequestLog()
	ctx := context.Background()

	log.Append(ctx, record("feasibility", "m", 1, 1, true))
	log.Append(ctx, record("question-gen", "m", 1, 1, true))
	log.Append(ctx, record("question-gen", "m", 1, 1, true))

	recs, err := log.Query(ctx, QueryOpts{Purpose: "question-gen"})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	for _, r := range recs {
		if r.Purpose != "question-gen" {
			t.Errorf("unexpected purpose %q", r.Purpose)
		}
	}
}

func TestQueryLimit(t *testing.T) {
	log := openTestStore(t).RequestLog()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		log.Append(ctx, record("question-gen", "m", i, i, true))
	}

	recs, err := log.Query(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	// The two most recent appends.
	if recs[0].InputTokens != 4 || recs[1].InputTokens != 3 {
		t.Errorf("got tokens %d, %d", recs[0].InputTokens, recs[1].InputTokens)
	}
}

func TestGet(t *testing.T) {
	log := openTestStore(t).RequestLog()
	ctx := context.Background()

	rec := record("feasibility", "m", 10, 5, true)
	rec.RequestBody = `{"prompt": "assess"}`
	rec.ResponseBody = `{"feasibility": "feasible"}`
	log.Append(ctx, rec)

	recs, err := log.Query(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}

	got, err := log.Get(ctx, recs[0].ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected record")
	}
	// Bodies are only loaded by Get, not Query.
	if got.RequestBody != rec.RequestBody || got.ResponseBody != rec.ResponseBody {
		t.Errorf("bodies = %q / %q", got.RequestBody, got.ResponseBody)
	}

	missing, err := log.Get(ctx, 9999)
	if err != nil {
		t.Fatalf("Get missing failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing id, got %+v", missing)
	}
}

func TestUsageByPurpose(t *testing.T) {
	log := openTestStore(t).RequestLog()
	ctx := context.Background()

	log.Append(ctx, record("feasibility", "m", 100, 50, true))
	log.Append(ctx, record("question-gen", "m", 200, 80, true))
	log.Append(ctx, record("question-gen", "m", 300, 120, true))

	usage, err := log.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("UsageByPurpose failed: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(usage))
	}
	// Ordered by purpose name.
	if usage[0].Purpose != "feasibility" || usage[0].Calls != 1 {
		t.Errorf("usage[0] = %+v", usage[0])
	}
	qg := usage[1]
	if qg.Purpose != "question-gen" || qg.Calls != 2 || qg.InputTokens != 500 || qg.OutputTokens != 200 {
		t.Errorf("usage[1] = %+v", qg)
	}
	if qg.AvgLatencyMs != 120 {
		t.Errorf("AvgLatencyMs = %d", qg.AvgLatencyMs)
	}
}

func TestUsageByModel(t *testing.T) {
	log := openTestStore(t).RequestLog()
	ctx := context.Background()

	log.Append(ctx, record("question-gen", "gpt-4o-mini", 100, 50, true))
	log.Append(ctx, record("question-gen", "claude-sonnet-4-5", 200, 80, true))
	log.Append(ctx, record("feasibility", "gpt-4o-mini", 50, 20, true))

	usage, err := log.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("UsageByModel failed: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 models, got %d", len(usage))
	}
	for _, u := range usage {
		if u.Model == "gpt-4o-mini" {
			if u.Calls != 2 || u.InputTokens != 150 || u.OutputTokens != 70 {
				t.Errorf("gpt-4o-mini usage = %+v", u)
			}
		}
	}
}

func TestAppendZeroTimestamp(t *testing.T) {
	log := openTestStore(t).RequestLog()
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	log.Append(ctx, record("feasibility", "m", 1, 1, true))

	recs, err := log.Query(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if recs[0].Timestamp.Before(before) {
		t.Errorf("expected Append to fill in the timestamp, got %v", recs[0].Timestamp)
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom", "my.db")
	t.Setenv("QUIZFORGE_DB", p)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath failed: %v", err)
	}
	if got != p {
		t.Errorf("DefaultDBPath = %q, want %q", got, p)
	}
}

func TestDefaultDBPathXDG(t *testing.T) {
	t.Setenv("QUIZFORGE_DB", "")
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath failed: %v", err)
	}
	want := filepath.Join(dataHome, "quizforge", "quizforge.db")
	if got != want {
		t.Errorf("DefaultDBPath = %q, want %q", got, want)
	}
}
