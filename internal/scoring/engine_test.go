package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/soltrack/soltrack/internal/itemgen"
	"github.com/soltrack/soltrack/internal/store"
)

type stubItems struct {
	recs map[string]*store.ItemRecord
}

func (s *stubItems) Create(_ context.Context, rec *store.ItemRecord) error {
	s.recs[rec.ID] = rec
	return nil
}

func (s *stubItems) Get(_ context.Context, id string) (*store.ItemRecord, error) {
	rec, ok := s.recs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return rec, nil
}

type stubUsers struct {
	ids map[string]bool
}

func (s *stubUsers) Create(_ context.Context, u *store.User) error {
	s.ids[u.ID] = true
	return nil
}

func (s *stubUsers) Get(_ context.Context, id string) (*store.User, error) {
	if !s.ids[id] {
		return nil, store.ErrNotFound
	}
	return &store.User{ID: id, Name: "Test", Grade: "3"}, nil
}

func (s *stubUsers) List(context.Context) ([]*store.User, error) { return nil, nil }

type stubAttempts struct {
	appended []*store.Attempt
}

func (s *stubAttempts) Append(_ context.Context, a *store.Attempt) error {
	a.Sequence = int64(len(s.appended) + 1)
	s.appended = append(s.appended, a)
	return nil
}

func (s *stubAttempts) ListByUser(context.Context, string) ([]*store.Attempt, error) {
	return s.appended, nil
}

func (s *stubAttempts) ListByUserStandard(context.Context, string, string) ([]*store.Attempt, error) {
	return s.appended, nil
}

type fixedJudge struct{ jd Judgment }

func (f fixedJudge) Judge(context.Context, *itemgen.Item, string) Judgment { return f.jd }

func testEngine(t *testing.T, judge Judge) (*Engine, *stubItems, *stubAttempts) {
	t.Helper()
	items := &stubItems{recs: map[string]*store.ItemRecord{}}
	users := &stubUsers{ids: map[string]bool{"u1": true}}
	attempts := &stubAttempts{}
	return NewEngine(items, users, attempts, judge), items, attempts
}

func storeMCQ(t *testing.T, items *stubItems) {
	t.Helper()
	item := &itemgen.Item{
		ID:         "item-1",
		StandardID: "mathematics-3-3.NS.1",
		Type:       itemgen.TypeMultipleChoice,
		Difficulty: "medium",
		DOK:        2,
		Stem:       "stem",
		MCQ:        mcqPayload(),
	}
	rec, err := itemgen.ToRecord(item)
	if err != nil {
		t.Fatalf("ToRecord: %v", err)
	}
	items.recs[rec.ID] = rec
}

func TestSubmitMCQ(t *testing.T) {
	eng, items, attempts := testEngine(t, fixedJudge{})
	storeMCQ(t, items)

	attempt, err := eng.Submit(context.Background(), Submission{
		UserID: "u1", ItemID: "item-1", Response: "B", TimeSpentSeconds: 30,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !attempt.Correct || attempt.Score != 1 || attempt.MaxScore != 1 {
		t.Errorf("attempt = %+v", attempt)
	}
	if attempt.ID == "" {
		t.Error("attempt id not assigned")
	}
	if attempt.StandardID != "mathematics-3-3.NS.1" {
		t.Errorf("standard id = %q", attempt.StandardID)
	}
	if len(attempts.appended) != 1 {
		t.Errorf("appended %d attempts, want exactly 1", len(attempts.appended))
	}
}

func TestSubmitCRUsesJudge(t *testing.T) {
	eng, items, _ := testEngine(t, fixedJudge{jd: Judgment{Score: 3, MeetsExpectations: true, Feedback: "Good work."}})
	rec, err := itemgen.ToRecord(crItem())
	if err != nil {
		t.Fatalf("ToRecord: %v", err)
	}
	items.recs[rec.ID] = rec

	attempt, err := eng.Submit(context.Background(), Submission{
		UserID: "u1", ItemID: "item-cr", Response: "Because Earth rotates.",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !attempt.Correct {
		t.Error("score 3 of 4 should pass the threshold")
	}
	if attempt.Score != 3 || attempt.MaxScore != 4 {
		t.Errorf("score = %v/%v, want 3/4", attempt.Score, attempt.MaxScore)
	}
	if attempt.Feedback != "Good work." {
		t.Errorf("feedback = %q", attempt.Feedback)
	}
}

func TestSubmitCRDegradedStillPersists(t *testing.T) {
	eng, items, attempts := testEngine(t, fixedJudge{jd: Judgment{Score: degradedScore}})
	rec, err := itemgen.ToRecord(crItem())
	if err != nil {
		t.Fatalf("ToRecord: %v", err)
	}
	items.recs[rec.ID] = rec

	attempt, err := eng.Submit(context.Background(), Submission{
		UserID: "u1", ItemID: "item-cr", Response: "answer",
	})
	if err != nil {
		t.Fatalf("degraded judgment must not fail the submission: %v", err)
	}
	if attempt.Correct {
		t.Error("degraded score 2 of 4 should be incorrect")
	}
	if len(attempts.appended) != 1 {
		t.Error("degraded submission must still persist an attempt")
	}
}

func TestSubmitUnknownItemOrUser(t *testing.T) {
	eng, items, _ := testEngine(t, fixedJudge{})
	storeMCQ(t, items)

	_, err := eng.Submit(context.Background(), Submission{UserID: "u1", ItemID: "missing", Response: "A"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("missing item err = %v, want ErrNotFound", err)
	}

	_, err = eng.Submit(context.Background(), Submission{UserID: "ghost", ItemID: "item-1", Response: "A"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("missing user err = %v, want ErrNotFound", err)
	}
}
