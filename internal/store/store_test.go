package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/soltrack/soltrack/internal/catalog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testStandard(code string) *catalog.Standard {
	return &catalog.Standard{
		Code:                code,
		Subject:             "mathematics",
		Grade:               "3",
		Strand:              "Number and Number Sense",
		Description:         "The student will use place value understanding.",
		Difficulty:          catalog.DifficultyGradeLevel,
		CognitiveComplexity: catalog.ComplexitySkill,
		SourceDocument:      "test.txt",
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestStandardUpsertIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.StandardRepo()
	ctx := context.Background()

	std := testStandard("3.NS.1")
	created, err := repo.Upsert(ctx, std)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if !created {
		t.Error("first upsert should report created")
	}

	std.Description = "Revised description."
	created, err = repo.Upsert(ctx, std)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if created {
		t.Error("second upsert should not report created")
	}

	got, err := repo.Get(ctx, std.ID())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Description != "Revised description." {
		t.Errorf("description = %q, want revision applied", got.Description)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1 after re-upsert", n)
	}
}

func TestStandardListOrderAndFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.StandardRepo()
	ctx := context.Background()

	for _, code := range []string{"3.NS.2", "3.NS.1", "3.CE.1"} {
		if _, err := repo.Upsert(ctx, testStandard(code)); err != nil {
			t.Fatalf("upsert %s: %v", code, err)
		}
	}
	other := testStandard("4.NS.1")
	other.Grade = "4"
	if _, err := repo.Upsert(ctx, other); err != nil {
		t.Fatalf("upsert grade 4: %v", err)
	}

	all, err := repo.List(ctx, StandardFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("len = %d, want 4", len(all))
	}
	// Insertion order, not code order.
	wantOrder := []string{"3.NS.2", "3.NS.1", "3.CE.1", "4.NS.1"}
	for i, std := range all {
		if std.Code != wantOrder[i] {
			t.Errorf("list[%d].Code = %q, want %q", i, std.Code, wantOrder[i])
		}
	}

	grade3, err := repo.List(ctx, StandardFilter{Subject: "mathematics", Grade: "3"})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(grade3) != 3 {
		t.Errorf("filtered len = %d, want 3", len(grade3))
	}
}

func TestStandardGetNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.StandardRepo().Get(context.Background(), "mathematics-3-9.ZZ.9")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestItemCreateGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.StandardRepo().Upsert(ctx, testStandard("3.NS.1")); err != nil {
		t.Fatalf("upsert standard: %v", err)
	}

	rec := &ItemRecord{
		ID:         "item-1",
		StandardID: "mathematics-3-3.NS.1",
		ItemType:   "MCQ",
		Difficulty: "medium",
		DOK:        2,
		Stem:       "Which number has a 4 in the hundreds place?",
		Payload: map[string]any{
			"choices": []any{
				map[string]any{"label": "A", "text": "1,234"},
				map[string]any{"label": "B", "text": "1,423"},
			},
			"answer": "B",
		},
	}
	if err := s.ItemRepo().Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set on create")
	}

	got, err := s.ItemRepo().Get(ctx, "item-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Stem != rec.Stem || got.ItemType != "MCQ" || got.DOK != 2 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Payload["answer"] != "B" {
		t.Errorf("payload answer = %v, want B", got.Payload["answer"])
	}

	_, err = s.ItemRepo().Get(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing item err = %v, want ErrNotFound", err)
	}
}

func TestAttemptAppendAndOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.StandardRepo().Upsert(ctx, testStandard("3.NS.1")); err != nil {
		t.Fatalf("upsert standard: %v", err)
	}
	if err := s.UserRepo().Create(ctx, &User{ID: "u1", Name: "Ada", Grade: "3"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := s.ItemRepo().Create(ctx, &ItemRecord{
		ID:         "item-1",
		StandardID: "mathematics-3-3.NS.1",
		ItemType:   "MCQ",
		Difficulty: "easy",
		DOK:        1,
		Stem:       "stem",
		Payload:    map[string]any{"answer": "A"},
	}); err != nil {
		t.Fatalf("create item: %v", err)
	}

	// Same timestamp for all three; sequence must break the tie.
	ts := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := s.AttemptRepo()
	for i, id := range []string{"a1", "a2", "a3"} {
		a := &Attempt{
			ID:         id,
			UserID:     "u1",
			ItemID:     "item-1",
			StandardID: "mathematics-3-3.NS.1",
			Response:   "A",
			Correct:    i%2 == 0,
			Score:      float64(i % 2),
			MaxScore:   1,
			Timestamp:  ts,
		}
		if err := repo.Append(ctx, a); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
		if a.Sequence == 0 {
			t.Errorf("append %s: sequence not assigned", id)
		}
	}

	got, err := repo.ListByUserStandard(ctx, "u1", "mathematics-3-3.NS.1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Sequence <= got[i-1].Sequence {
			t.Errorf("attempts out of sequence order: %d then %d", got[i-1].Sequence, got[i].Sequence)
		}
	}
	if got[0].ID != "a1" || got[2].ID != "a3" {
		t.Errorf("replay order = %s..%s, want a1..a3", got[0].ID, got[2].ID)
	}
}

func TestUserCreateGetList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.UserRepo()

	if err := repo.Create(ctx, &User{ID: "u1", Name: "Ada", Grade: "3", Age: 8}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, &User{ID: "u2", Name: "Grace", Grade: "5"}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	u, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.Name != "Ada" || u.Age != 8 {
		t.Errorf("user = %+v", u)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("len = %d, want 2", len(all))
	}

	_, err = repo.Get(ctx, "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing user err = %v, want ErrNotFound", err)
	}
}

func TestLLMEventAppendQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "item-gen", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "cr-judge", InputTokens: 80, OutputTokens: 20, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "item-gen", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}

	gen, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "item-gen"})
	if err != nil {
		t.Fatalf("query purpose: %v", err)
	}
	if len(gen) != 2 {
		t.Errorf("item-gen len = %d, want 2", len(gen))
	}

	one, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(one) != 1 {
		t.Errorf("limited len = %d, want 1", len(one))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	found := false
	for _, st := range byPurpose {
		if st.Purpose == "item-gen" {
			found = true
			if st.Calls != 2 || st.InputTokens != 100 {
				t.Errorf("item-gen stats = %+v", st)
			}
		}
	}
	if !found {
		t.Error("no item-gen row in usage stats")
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 10; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= prev {
			t.Fatalf("sequence not increasing: %d after %d", n, prev)
		}
		prev = n
	}
}
