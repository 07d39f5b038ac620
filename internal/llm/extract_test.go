package llm

import (
	"encoding/json"
	"testing"
)

func TestExtractJSON_Bare(t *testing.T) {
	raw, err := ExtractJSON(`{"a": 1, "b": "two"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("extracted content not parseable: %v", err)
	}
	if m["b"] != "two" {
		t.Errorf(`m["b"] = %v, want "two"`, m["b"])
	}
}

func TestExtractJSON_Fenced(t *testing.T) {
	input := "Here you go:\n```json\n{\"score\": 3}\n```\nHope that helps!"
	raw, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"score": 3}` {
		t.Errorf("got %s", raw)
	}
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	input := `Sure! The result is {"ok": true, "note": "a } inside a string"} as requested.`
	raw, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out struct {
		OK   bool   `json:"ok"`
		Note string `json:"note"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.OK || out.Note != "a } inside a string" {
		t.Errorf("unexpected result: %+v", out)
	}
}

func TestExtractJSON_Nested(t *testing.T) {
	raw, err := ExtractJSON(`{"outer": {"inner": [1, 2, 3]}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"outer": {"inner": [1, 2, 3]}}` {
		t.Errorf("got %s", raw)
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	if _, err := ExtractJSON("no json here at all"); err == nil {
		t.Fatal("expected error for prose with no object")
	}
}

func TestExtractJSON_Unbalanced(t *testing.T) {
	if _, err := ExtractJSON(`{"a": 1`); err == nil {
		t.Fatal("expected error for unbalanced object")
	}
}
