package mastery

import (
	"time"

	"github.com/soltrack/soltrack/internal/store"
)

// Alpha is the EWMA smoothing factor. Recent attempts count for 30% of
// the running value, so a learner's estimate moves quickly after a few
// submissions but a single lucky guess cannot dominate it.
const Alpha = 0.3

// Record is the derived mastery projection for one (user, standard) pair.
// It is never stored; it is recomputed by replaying the attempt log.
type Record struct {
	EWMA        float64
	Count       int
	LastAttempt time.Time
}

// Level labels a mastery record for display.
type Level string

const (
	LevelBeginning  Level = "beginning"
	LevelDeveloping Level = "developing"
	LevelProficient Level = "proficient"
	LevelAdvanced   Level = "advanced"
)

// Level maps the EWMA value onto a named band.
func (r Record) Level() Level {
	switch {
	case r.Count == 0:
		return LevelBeginning
	case r.EWMA < 0.25:
		return LevelBeginning
	case r.EWMA < 0.5:
		return LevelDeveloping
	case r.EWMA < 0.75:
		return LevelProficient
	default:
		return LevelAdvanced
	}
}

// Fold replays attempts in the order given and returns the resulting
// record. Each attempt contributes 1 if correct, 0 otherwise; the first
// attempt seeds the EWMA and each later one folds in as
// alpha*score + (1-alpha)*prev. Callers must pass attempts in ascending
// (timestamp, sequence) order or the result is not reproducible.
func Fold(attempts []*store.Attempt) Record {
	var r Record
	for _, a := range attempts {
		var score float64
		if a.Correct {
			score = 1
		}
		if r.Count == 0 {
			r.EWMA = score
		} else {
			r.EWMA = Alpha*score + (1-Alpha)*r.EWMA
		}
		r.Count++
		if a.Timestamp.After(r.LastAttempt) {
			r.LastAttempt = a.Timestamp
		}
	}
	return r
}
