package oracle

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "profile",
	Description: "test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"age":  map[string]any{"type": "integer", "minimum": 0},
			"grade": map[string]any{
				"type": "string",
				"enum": []any{"a", "b", "c"},
			},
		},
		"required":             []any{"name", "age"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"name":"Mina","age":11,"grade":"a"}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("expected valid, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"name":"Mina","age":11}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("expected valid without optional field, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"name":"Mina"}`)
	err := validateResponse(testSchema, raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"name":"Mina","age":"eleven"}`)
	err := validateResponse(testSchema, raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"name":`)
	err := validateResponse(testSchema, raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	raw := json.RawMessage(`this is not even JSON`)
	if err := validateResponse(nil, raw); err != nil {
		t.Errorf("nil schema must skip validation, got: %v", err)
	}
}
