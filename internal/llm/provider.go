package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over a remote text-generation service.
type Provider interface {
	// Generate sends one request and returns the model output.
	// When req.Schema is set the provider asks for JSON conforming to it
	// and validates the output before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Question generation sends a single
	// user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When nil, Response.Content is the raw text encoded as a JSON string.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness (0.0 - 1.0). Zero means greedy decoding.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema, e.g. "challenge-questions".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the validated JSON object when a Schema was requested,
	// otherwise the raw text wrapped as a JSON string.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Text returns the response as plain text. Raw-text responses are decoded
// from their JSON string form; structured responses are returned verbatim.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish fills resp.Content from the model's text. With a schema the
// outermost JSON object is taken and validated; text cut off before any
// object closed is ErrMaxTokensExceeded.
func finish(req Request, text string, resp *Response) (*Response, error) {
	resp.Content = rawText(text)
	if req.Schema == nil {
		return resp, nil
	}

	obj := extractJSONObject(text)
	if obj == nil {
		if resp.StopReason == "max_tokens" {
			return nil, &ErrMaxTokensExceeded{Content: resp.Content}
		}
		obj = json.RawMessage(text)
	}
	if err := validateResponse(req.Schema, obj); err != nil {
		return nil, err
	}
	resp.Content = obj
	return resp, nil
}

// rawText wraps plain model output as a JSON string.
func rawText(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
