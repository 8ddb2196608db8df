package llm

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when no remote provider is selected.
var ErrNotConfigured = errors.New("no LLM provider configured")

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrUnauthorized indicates the credential or access token was rejected,
// or the token exchange itself failed.
type ErrUnauthorized struct {
	Err error
}

func (e *ErrUnauthorized) Error() string {
	return fmt.Sprintf("unauthorized: %v", e.Err)
}

func (e *ErrUnauthorized) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that is missing
// an expected field or does not conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// classifyStatus maps an HTTP status code from any provider onto the
// package's error taxonomy.
func classifyStatus(status int, err error) error {
	switch {
	case status == 401 || status == 403:
		return &ErrUnauthorized{Err: err}
	case status == 429:
		return &ErrRateLimit{Err: err}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}
