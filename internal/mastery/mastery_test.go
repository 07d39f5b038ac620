package mastery

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/soltrack/soltrack/internal/store"
)

func attemptsFromResults(results []bool) []*store.Attempt {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	out := make([]*store.Attempt, len(results))
	for i, ok := range results {
		score := 0.0
		if ok {
			score = 1.0
		}
		out[i] = &store.Attempt{
			Correct:   ok,
			Score:     score,
			MaxScore:  1,
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return out
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFoldEmpty(t *testing.T) {
	r := Fold(nil)
	if r.Count != 0 || r.EWMA != 0 {
		t.Errorf("zero attempts should give zero record, got %+v", r)
	}
	if !r.LastAttempt.IsZero() {
		t.Error("LastAttempt should be zero")
	}
}

func TestFoldSeedsWithFirstAttempt(t *testing.T) {
	r := Fold(attemptsFromResults([]bool{true}))
	if !almostEqual(r.EWMA, 1.0) {
		t.Errorf("EWMA = %v, want 1.0 (first attempt seeds, not blends)", r.EWMA)
	}
}

func TestFoldSequence(t *testing.T) {
	// correct, incorrect, correct with alpha 0.3: 1.0 -> 0.7 -> 0.79.
	attempts := attemptsFromResults([]bool{true, false, true})

	r := Fold(attempts[:2])
	if !almostEqual(r.EWMA, 0.7) {
		t.Errorf("after correct,incorrect: EWMA = %v, want 0.7", r.EWMA)
	}

	r = Fold(attempts)
	if !almostEqual(r.EWMA, 0.79) {
		t.Errorf("after correct,incorrect,correct: EWMA = %v, want 0.79", r.EWMA)
	}
	if r.Count != 3 {
		t.Errorf("Count = %d, want 3", r.Count)
	}
	if !r.LastAttempt.Equal(attempts[2].Timestamp) {
		t.Errorf("LastAttempt = %v, want %v", r.LastAttempt, attempts[2].Timestamp)
	}
}

func TestFoldPartialCreditStillBinary(t *testing.T) {
	// A constructed response scoring 3 of 4 passes; the fold sees the
	// correctness flag, not the raw score.
	attempts := []*store.Attempt{
		{Correct: true, Score: 3, MaxScore: 4, Sequence: 1, Timestamp: time.Now()},
	}
	r := Fold(attempts)
	if !almostEqual(r.EWMA, 1.0) {
		t.Errorf("EWMA = %v, want 1.0 for a passing attempt", r.EWMA)
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		ewma  float64
		count int
		want  Level
	}{
		{0, 0, LevelBeginning},
		{0.9, 0, LevelBeginning}, // no attempts, value meaningless
		{0.1, 5, LevelBeginning},
		{0.25, 5, LevelDeveloping},
		{0.49, 5, LevelDeveloping},
		{0.5, 5, LevelProficient},
		{0.74, 5, LevelProficient},
		{0.75, 5, LevelAdvanced},
		{1.0, 5, LevelAdvanced},
	}
	for _, tt := range tests {
		r := Record{EWMA: tt.ewma, Count: tt.count}
		if got := r.Level(); got != tt.want {
			t.Errorf("Level(ewma=%v, count=%d) = %s, want %s", tt.ewma, tt.count, got, tt.want)
		}
	}
}

// stubAttempts serves canned attempts without a database.
type stubAttempts struct {
	attempts []*store.Attempt
}

func (f *stubAttempts) Append(context.Context, *store.Attempt) error { return nil }

func (f *stubAttempts) ListByUser(context.Context, string) ([]*store.Attempt, error) {
	return f.attempts, nil
}

func (f *stubAttempts) ListByUserStandard(_ context.Context, _, standardID string) ([]*store.Attempt, error) {
	var out []*store.Attempt
	for _, a := range f.attempts {
		if a.StandardID == standardID {
			out = append(out, a)
		}
	}
	return out, nil
}

func TestServiceGroupsByStandard(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := &stubAttempts{attempts: []*store.Attempt{
		{StandardID: "s1", Correct: true, Score: 1, MaxScore: 1, Sequence: 1, Timestamp: base},
		{StandardID: "s2", Correct: false, Score: 0, MaxScore: 1, Sequence: 2, Timestamp: base.Add(time.Minute)},
		{StandardID: "s1", Correct: false, Score: 0, MaxScore: 1, Sequence: 3, Timestamp: base.Add(2 * time.Minute)},
	}}

	svc := NewService(repo)
	got, err := svc.ForUser(t.Context(), "u1")
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 standards", len(got))
	}
	if !almostEqual(got["s1"].EWMA, 0.7) {
		t.Errorf("s1 EWMA = %v, want 0.7 after correct then incorrect", got["s1"].EWMA)
	}
	if got["s2"].EWMA != 0 || got["s2"].Count != 1 {
		t.Errorf("s2 record = %+v", got["s2"])
	}
}

func TestServiceForUserStandardEmpty(t *testing.T) {
	svc := NewService(&stubAttempts{})
	r, err := svc.ForUserStandard(t.Context(), "u1", "s1")
	if err != nil {
		t.Fatalf("ForUserStandard: %v", err)
	}
	if r.Count != 0 {
		t.Errorf("expected zero record, got %+v", r)
	}
}
