package review

import (
	"time"

	"github.com/soltrack/soltrack/internal/mastery"
)

// levelIntervals is the expanding review schedule in days, keyed by
// mastery level. Weak standards come back quickly; strong ones stretch
// out.
var levelIntervals = map[mastery.Level]int{
	mastery.LevelBeginning:  1,
	mastery.LevelDeveloping: 3,
	mastery.LevelProficient: 7,
	mastery.LevelAdvanced:   14,
}

// Status describes where a standard sits in its review cycle.
type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusDue      Status = "due"
	StatusUpcoming Status = "upcoming"
)

// Entry is one standard's position in the review schedule. It is derived
// from the mastery record and carries no state of its own.
type Entry struct {
	StandardID string
	Record     mastery.Record
	NextReview time.Time
}

// entryFor derives the schedule entry from a mastery record.
func entryFor(standardID string, rec mastery.Record) *Entry {
	return &Entry{
		StandardID: standardID,
		Record:     rec,
		NextReview: rec.LastAttempt.AddDate(0, 0, IntervalDays(rec.Level())),
	}
}

// IntervalDays returns the review interval for a mastery level.
func IntervalDays(l mastery.Level) int {
	if d, ok := levelIntervals[l]; ok {
		return d
	}
	return 1
}

// IsDue reports whether the standard is at or past its review date.
func (e *Entry) IsDue(now time.Time) bool {
	return !now.Before(e.NextReview)
}

// OverdueDays returns how far past due the entry is, 0 when not yet due.
func (e *Entry) OverdueDays(now time.Time) float64 {
	if !e.IsDue(now) {
		return 0
	}
	return now.Sub(e.NextReview).Hours() / 24
}

// Status classifies the entry. An entry is overdue once it is past due
// by more than half its interval; the grace period keeps a learner who
// practices daily from seeing everything flagged red.
func (e *Entry) Status(now time.Time) Status {
	if !e.IsDue(now) {
		return StatusUpcoming
	}
	grace := time.Duration(float64(IntervalDays(e.Record.Level())) * 12 * float64(time.Hour))
	if now.After(e.NextReview.Add(grace)) {
		return StatusOverdue
	}
	return StatusDue
}

// DaysUntil returns whole days until the next review, 0 when already due.
func (e *Entry) DaysUntil(now time.Time) int {
	if e.IsDue(now) {
		return 0
	}
	return int(e.NextReview.Sub(now).Hours()/24) + 1
}
