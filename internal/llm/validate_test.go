package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-learner",
		Description: "A learner record",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
				"age":  map[string]any{"type": "integer", "minimum": 0},
				"tier": map[string]any{"type": "string", "enum": []any{"high", "low"}},
			},
			"required": []any{"name", "age"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"name":"Priya","age":30,"tier":"high"}`, false},
		{"optional omitted", `{"name":"Priya","age":30}`, false},
		{"missing required", `{"name":"Priya"}`, true},
		{"wrong type", `{"name":"Priya","age":"thirty"}`, true},
		{"bad enum", `{"name":"Priya","age":30,"tier":"medium"}`, true},
		{"below minimum", `{"name":"Priya","age":-1}`, true},
		{"not json", `Sure! Here are your questions`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestExtractJSONObject(t *testing.T) {
	got := extractJSONObject("Here you go:\n{\"a\":{\"b\":1}}\nThanks!")
	if string(got) != `{"a":{"b":1}}` {
		t.Fatalf("extractJSONObject = %s", got)
	}
	if extractJSONObject("no json here") != nil {
		t.Fatal("expected nil when there is no object")
	}
}

func TestFinish(t *testing.T) {
	schemaReq := Request{Schema: testSchema()}

	resp, err := finish(Request{}, "plain text", &Response{Model: "m"})
	if err != nil || resp.Text() != "plain text" {
		t.Fatalf("raw text: %v %q", err, resp.Text())
	}

	resp, err = finish(schemaReq, "```json\n{\"name\":\"Priya\",\"age\":30}\n```", &Response{StopReason: "end"})
	if err != nil {
		t.Fatalf("fenced JSON: %v", err)
	}
	if string(resp.Content) != `{"name":"Priya","age":30}` {
		t.Fatalf("Content = %s", resp.Content)
	}

	_, err = finish(schemaReq, `{"name":"Pri`, &Response{StopReason: "max_tokens"})
	var mte *ErrMaxTokensExceeded
	if !errors.As(err, &mte) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}

	_, err = finish(schemaReq, "no json", &Response{StopReason: "end"})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}
