package itemgen

import "testing"

func TestRecordRoundTrip(t *testing.T) {
	item := validMCQItem()
	item.ID = "item-1"

	rec, err := ToRecord(item)
	if err != nil {
		t.Fatalf("ToRecord: %v", err)
	}
	if rec.ItemType != "MCQ" {
		t.Errorf("stored type = %q", rec.ItemType)
	}
	if _, ok := rec.Payload["choices"]; !ok {
		t.Error("payload missing choices key")
	}

	back, err := FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if back.MCQ == nil || back.MCQ.CorrectChoice() != "B" {
		t.Errorf("round trip lost correct choice: %+v", back.MCQ)
	}
	if back.Stem != item.Stem || back.DOK != item.DOK {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestFromRecordUnknownType(t *testing.T) {
	rec := validMCQItem()
	stored, err := ToRecord(rec)
	if err != nil {
		t.Fatalf("ToRecord: %v", err)
	}
	stored.ItemType = "ESSAY"
	if _, err := FromRecord(stored); err == nil {
		t.Error("unknown stored type should fail")
	}
}
