package store

import (
	"context"
	"fmt"
	"time"

	"github.com/soltrack/soltrack/ent"
	"github.com/soltrack/soltrack/ent/assessmentattempt"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, a *Attempt) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	a.Sequence = seqNum
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}

	_, err = r.client.AssessmentAttempt.Create().
		SetID(a.ID).
		SetUserID(a.UserID).
		SetItemID(a.ItemID).
		SetStandardID(a.StandardID).
		SetSequence(seqNum).
		SetResponse(a.Response).
		SetCorrect(a.Correct).
		SetScore(a.Score).
		SetMaxScore(a.MaxScore).
		SetFeedback(a.Feedback).
		SetTimeSpentSeconds(a.TimeSpentSeconds).
		SetTimestamp(a.Timestamp).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append attempt %s: %w", a.ID, err)
	}
	return nil
}

func (r *attemptRepo) ListByUser(ctx context.Context, userID string) ([]*Attempt, error) {
	rows, err := r.client.AssessmentAttempt.Query().
		Where(assessmentattempt.UserID(userID)).
		Order(ent.Asc(assessmentattempt.FieldTimestamp), ent.Asc(assessmentattempt.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts for user %s: %w", userID, err)
	}
	return entAttemptsToStore(rows), nil
}

func (r *attemptRepo) ListByUserStandard(ctx context.Context, userID, standardID string) ([]*Attempt, error) {
	rows, err := r.client.AssessmentAttempt.Query().
		Where(
			assessmentattempt.UserID(userID),
			assessmentattempt.StandardID(standardID),
		).
		Order(ent.Asc(assessmentattempt.FieldTimestamp), ent.Asc(assessmentattempt.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts for user %s standard %s: %w", userID, standardID, err)
	}
	return entAttemptsToStore(rows), nil
}

func entAttemptsToStore(rows []*ent.AssessmentAttempt) []*Attempt {
	out := make([]*Attempt, len(rows))
	for i, a := range rows {
		out[i] = &Attempt{
			ID:               a.ID,
			UserID:           a.UserID,
			ItemID:           a.ItemID,
			StandardID:       a.StandardID,
			Sequence:         a.Sequence,
			Response:         a.Response,
			Correct:          a.Correct,
			Score:            a.Score,
			MaxScore:         a.MaxScore,
			Feedback:         a.Feedback,
			TimeSpentSeconds: a.TimeSpentSeconds,
			Timestamp:        a.Timestamp,
		}
	}
	return out
}
