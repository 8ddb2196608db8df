package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_FIFO(t *testing.T) {
	m := NewMockProvider(TextResponse("first"), MockResponse{Err: errors.New("boom")})

	resp, err := m.Generate(context.Background(), textRequest())
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Text())
	assert.Equal(t, "mock", resp.Model)

	_, err = m.Generate(context.Background(), textRequest())
	assert.EqualError(t, err, "boom")

	_, err = m.Generate(context.Background(), textRequest())
	var unavailable *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 3, m.CallCount())
}

func TestMockProvider_Repeating(t *testing.T) {
	m := NewMockProvider(TextResponse("a"), TextResponse("b")).Repeating()

	var got []string
	for range 4 {
		resp, err := m.Generate(context.Background(), textRequest())
		require.NoError(t, err)
		got = append(got, resp.Text())
	}
	assert.Equal(t, []string{"a", "b", "b", "b"}, got)
}

func TestJSONResponse(t *testing.T) {
	m := NewMockProvider(JSONResponse(map[string]int{"n": 7}))
	resp, err := m.Generate(context.Background(), textRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":7}`, string(resp.Content))
	assert.Positive(t, resp.Usage.InputTokens)
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock

	p, err := NewProvider(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	for range 2 {
		resp, err := p.Generate(context.Background(), textRequest())
		require.NoError(t, err)
		assert.Contains(t, resp.Text(), "MATCH")
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	m := NewMockProvider(TextResponse("ok"))
	req := textRequest()

	_, err := m.Generate(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, m.Calls, 1)
	assert.Equal(t, req.System, m.Calls[0].System)
	assert.Equal(t, "Write questions.", m.Calls[0].Messages[0].Content)
}
