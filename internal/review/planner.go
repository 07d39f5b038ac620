package review

import (
	"context"
	"sort"
	"time"

	"github.com/soltrack/soltrack/internal/mastery"
)

// Planner builds a prioritized review plan from a learner's mastery
// records. The plan is a pure projection; it is recomputed on every call
// and never stored.
type Planner struct {
	mastery *mastery.Service
}

// NewPlanner creates a planner over the mastery service.
func NewPlanner(m *mastery.Service) *Planner {
	return &Planner{mastery: m}
}

// Plan returns every attempted standard ordered by review priority:
// overdue before due before upcoming; within overdue, most overdue
// first; within due and upcoming, weakest mastery first.
func (p *Planner) Plan(ctx context.Context, userID string, now time.Time) ([]*Entry, error) {
	records, err := p.mastery.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0, len(records))
	for id, rec := range records {
		entries = append(entries, entryFor(id, rec))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		si, sj := statusRank(entries[i].Status(now)), statusRank(entries[j].Status(now))
		if si != sj {
			return si < sj
		}
		if si == statusRank(StatusOverdue) {
			return entries[i].OverdueDays(now) > entries[j].OverdueDays(now)
		}
		if entries[i].Record.EWMA != entries[j].Record.EWMA {
			return entries[i].Record.EWMA < entries[j].Record.EWMA
		}
		return entries[i].StandardID < entries[j].StandardID
	})
	return entries, nil
}

// Due returns only the entries that are due or overdue, in plan order.
func (p *Planner) Due(ctx context.Context, userID string, now time.Time) ([]*Entry, error) {
	all, err := p.Plan(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	due := all[:0:0]
	for _, e := range all {
		if e.IsDue(now) {
			due = append(due, e)
		}
	}
	return due, nil
}

func statusRank(s Status) int {
	switch s {
	case StatusOverdue:
		return 0
	case StatusDue:
		return 1
	default:
		return 2
	}
}
