package review

import (
	"context"
	"testing"
	"time"

	"github.com/soltrack/soltrack/internal/mastery"
	"github.com/soltrack/soltrack/internal/store"
)

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func record(ewma float64, count int, lastAttempt time.Time) mastery.Record {
	return mastery.Record{EWMA: ewma, Count: count, LastAttempt: lastAttempt}
}

func TestIntervalDaysByLevel(t *testing.T) {
	tests := []struct {
		level mastery.Level
		want  int
	}{
		{mastery.LevelBeginning, 1},
		{mastery.LevelDeveloping, 3},
		{mastery.LevelProficient, 7},
		{mastery.LevelAdvanced, 14},
	}
	for _, tt := range tests {
		if got := IntervalDays(tt.level); got != tt.want {
			t.Errorf("IntervalDays(%s) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestEntryStatus(t *testing.T) {
	tests := []struct {
		name string
		rec  mastery.Record
		want Status
	}{
		{
			name: "attempted today, not due",
			rec:  record(0.9, 4, now),
			want: StatusUpcoming,
		},
		{
			name: "advanced, due at exactly 14 days",
			rec:  record(0.9, 4, now.AddDate(0, 0, -14)),
			want: StatusDue,
		},
		{
			name: "advanced, past due but inside grace",
			rec:  record(0.9, 4, now.AddDate(0, 0, -16)),
			want: StatusDue,
		},
		{
			name: "advanced, far past grace",
			rec:  record(0.9, 4, now.AddDate(0, 0, -30)),
			want: StatusOverdue,
		},
		{
			name: "beginning, one day makes it due",
			rec:  record(0.1, 2, now.AddDate(0, 0, -1)),
			want: StatusDue,
		},
		{
			name: "beginning, two days late is overdue",
			rec:  record(0.1, 2, now.AddDate(0, 0, -2)),
			want: StatusOverdue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entryFor("s1", tt.rec)
			if got := e.Status(now); got != tt.want {
				t.Errorf("Status = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEntryDaysUntil(t *testing.T) {
	// Proficient, attempted just over 3 days ago, 7 day interval:
	// next review rounds up to 4 days out.
	e := entryFor("s1", record(0.6, 3, now.Add(-73*time.Hour)))
	if got := e.DaysUntil(now); got != 4 {
		t.Errorf("DaysUntil = %d, want 4", got)
	}
	if e.OverdueDays(now) != 0 {
		t.Error("not-due entry should have 0 overdue days")
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

func attempt(standardID string, seq int64, correct bool, ts time.Time) *store.Attempt {
	score := 0.0
	if correct {
		score = 1
	}
	return &store.Attempt{
		StandardID: standardID,
		Sequence:   seq,
		Correct:    correct,
		Score:      score,
		MaxScore:   1,
		Timestamp:  ts,
	}
}

func TestPlanOrdersByPriority(t *testing.T) {
	repo := &stubAttempts{attempts: []*store.Attempt{
		// mastered two weeks ago, advanced, just coming due
		attempt("adv", 1, true, now.AddDate(0, 0, -15)),
		attempt("adv", 2, true, now.AddDate(0, 0, -14)),
		// failed a month ago, beginning, very overdue
		attempt("weak", 3, false, now.AddDate(0, 0, -30)),
		// practiced this morning, not due
		attempt("fresh", 4, true, now.Add(-2*time.Hour)),
	}}

	p := NewPlanner(mastery.NewService(repo))
	plan, err := p.Plan(t.Context(), "u1", now)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(plan) != 3 {
		t.Fatalf("len = %d, want 3", len(plan))
	}

	wantOrder := []string{"weak", "adv", "fresh"}
	for i, want := range wantOrder {
		if plan[i].StandardID != want {
			t.Errorf("plan[%d] = %s, want %s", i, plan[i].StandardID, want)
		}
	}
	if plan[0].Status(now) != StatusOverdue {
		t.Errorf("weak should be overdue, got %s", plan[0].Status(now))
	}
	if plan[2].Status(now) != StatusUpcoming {
		t.Errorf("fresh should be upcoming, got %s", plan[2].Status(now))
	}
}

func TestDueFiltersUpcoming(t *testing.T) {
	repo := &stubAttempts{attempts: []*store.Attempt{
		attempt("old", 1, false, now.AddDate(0, 0, -10)),
		attempt("fresh", 2, true, now.Add(-time.Hour)),
	}}

	p := NewPlanner(mastery.NewService(repo))
	due, err := p.Due(t.Context(), "u1", now)
	if err != nil {
		t.Fatalf("Due: %v", err)
	}
	if len(due) != 1 || due[0].StandardID != "old" {
		t.Fatalf("due = %v, want just old", due)
	}
}

func TestPlanEmptyHistory(t *testing.T) {
	p := NewPlanner(mastery.NewService(&stubAttempts{}))
	plan, err := p.Plan(t.Context(), "u1", now)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(plan) != 0 {
		t.Errorf("plan should be empty, got %d entries", len(plan))
	}
}
