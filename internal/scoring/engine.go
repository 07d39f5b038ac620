package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/soltrack/soltrack/internal/itemgen"
	"github.com/soltrack/soltrack/internal/store"
)

// Engine runs the submission pipeline: look up the item and user, score
// the response, persist exactly one attempt. It never mutates a prior
// attempt.
type Engine struct {
	items    store.ItemRepo
	users    store.UserRepo
	attempts store.AttemptRepo
	judge    Judge
}

// NewEngine wires the scoring engine to its repositories and the
// constructed-response judge.
func NewEngine(items store.ItemRepo, users store.UserRepo, attempts store.AttemptRepo, judge Judge) *Engine {
	return &Engine{items: items, users: users, attempts: attempts, judge: judge}
}

// Submission is one response to score.
type Submission struct {
	UserID           string
	ItemID           string
	Response         string
	TimeSpentSeconds int
}

// passThreshold returns the minimum passing score for a rubric maximum,
// conventionally 3 of 4.
func passThreshold(max float64) float64 {
	return math.Ceil(max * 0.75)
}

// Submit scores the submission and appends the resulting attempt.
func (e *Engine) Submit(ctx context.Context, sub Submission) (*store.Attempt, error) {
	rec, err := e.items.Get(ctx, sub.ItemID)
	if err != nil {
		return nil, err
	}
	item, err := itemgen.FromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("load item %s: %w", sub.ItemID, err)
	}
	if _, err := e.users.Get(ctx, sub.UserID); err != nil {
		return nil, err
	}

	result, err := e.score(ctx, item, sub.Response)
	if err != nil {
		return nil, err
	}

	attempt := &store.Attempt{
		ID:               uuid.NewString(),
		UserID:           sub.UserID,
		ItemID:           item.ID,
		StandardID:       item.StandardID,
		Response:         sub.Response,
		Correct:          result.Correct,
		Score:            result.Score,
		MaxScore:         result.MaxScore,
		Feedback:         result.Feedback,
		TimeSpentSeconds: sub.TimeSpentSeconds,
	}
	if err := e.attempts.Append(ctx, attempt); err != nil {
		return nil, fmt.Errorf("persist attempt: %w", err)
	}
	return attempt, nil
}

func (e *Engine) score(ctx context.Context, item *itemgen.Item, response string) (Result, error) {
	switch item.Type {
	case itemgen.TypeMultipleChoice:
		if item.MCQ == nil {
			return Result{}, fmt.Errorf("item %s: MCQ payload missing", item.ID)
		}
		return ScoreMCQ(item.MCQ, response), nil

	case itemgen.TypeFillInBlank:
		if item.FIB == nil {
			return Result{}, fmt.Errorf("item %s: FIB payload missing", item.ID)
		}
		return ScoreFIB(item.FIB, response), nil

	case itemgen.TypeConstructedResponse:
		max := itemgen.TypeConstructedResponse.MaxScore()
		jd := e.judge.Judge(ctx, item, response)
		return Result{
			Correct:  float64(jd.Score) >= passThreshold(max),
			Score:    float64(jd.Score),
			MaxScore: max,
			Feedback: jd.Feedback,
		}, nil

	default:
		return Result{}, fmt.Errorf("item %s: unknown type %q", item.ID, item.Type)
	}
}
