package llm

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// TextResponse builds an unstructured reply, as a text-generation endpoint
// would return it.
func TextResponse(text string) MockResponse {
	return MockResponse{
		Content: rawText(text),
		Usage:   Usage{OutputTokens: len(strings.Fields(text))},
	}
}

// JSONResponse builds a structured reply from v.
func JSONResponse(v any) MockResponse {
	b, err := json.Marshal(v)
	if err != nil {
		return MockResponse{Err: err}
	}
	return MockResponse{Content: b}
}

// MockProvider is a deterministic Provider for tests and offline demos.
// Responses are served in FIFO order; when repeating, the last one is
// served for every further call. All requests are recorded.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	repeat    bool
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Repeating makes the last queued response answer every later call.
func (m *MockProvider) Repeating() *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repeat = true
	return m
}

// Generate returns the next canned response, or ErrProviderUnavailable once
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	if !m.repeat || len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	usage := resp.Usage
	if usage.InputTokens == 0 {
		for _, msg := range req.Messages {
			usage.InputTokens += len(strings.Fields(msg.Content))
		}
	}

	return &Response{
		Content:    resp.Content,
		Usage:      usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// demoReply is what the "mock" provider answers when picked from the
// environment.
const demoReply = `1. Which function returns the position of a value in a range?
A. MATCH  B. FIND  C. SEARCH  D. LOOKUP
Answer: A`
