package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-judgment",
		Description: "test schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score": map[string]any{
					"type":    "integer",
					"minimum": 1,
					"maximum": 4,
				},
				"meets_expectations": map[string]any{
					"type": "boolean",
				},
			},
			"required":             []any{"score", "meets_expectations"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"score": 3, "meets_expectations": true}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"score":`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_SchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing field", `{"score": 3}`},
		{"out of range", `{"score": 9, "meets_expectations": true}`},
		{"extra field", `{"score": 3, "meets_expectations": true, "bonus": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			var invResp *ErrInvalidResponse
			if !errors.As(err, &invResp) {
				t.Fatalf("expected ErrInvalidResponse, got %v", err)
			}
		})
	}
}
