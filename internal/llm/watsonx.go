package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

const (
	defaultWatsonxBaseURL = "https://us-south.ml.cloud.ibm.com"
	defaultIAMTokenURL    = "https://iam.cloud.ibm.com/identity/token"
	defaultWatsonxVersion = "2024-01-15"

	iamAPIKeyGrant = "urn:ibm:params:oauth:grant-type:apikey"
)

// watsonxModels maps friendly names to watsonx.ai model IDs.
var watsonxModels = map[string]string{
	"granite":       "ibm/granite-3-8b-instruct",
	"llama-3.3-70b": "meta-llama/llama-3-3-70b-instruct",
}

// WatsonxProvider implements Provider against the watsonx.ai text
// generation REST API. The IAM access token is exchanged once from the API
// key and reused until it expires or the service rejects it.
type WatsonxProvider struct {
	httpClient *http.Client
	tokens     *iamTokenSource
	baseURL    string
	version    string
	projectID  string
	model      string
}

// NewWatsonxProvider creates a new watsonx provider.
func NewWatsonxProvider(cfg WatsonxConfig, httpClient *http.Client) (*WatsonxProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("watsonx API key is required")
	}
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("watsonx project ID is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultWatsonxBaseURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultIAMTokenURL
	}
	version := cfg.Version
	if version == "" {
		version = defaultWatsonxVersion
	}

	return &WatsonxProvider{
		httpClient: httpClient,
		tokens: &iamTokenSource{
			httpClient: httpClient,
			tokenURL:   tokenURL,
			apiKey:     cfg.APIKey,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		version:   version,
		projectID: cfg.ProjectID,
		model:     resolveModel(cfg.Model, watsonxModels),
	}, nil
}

type watsonxParameters struct {
	DecodingMethod string  `json:"decoding_method"`
	MaxNewTokens   int     `json:"max_new_tokens,omitempty"`
	Temperature    float64 `json:"temperature,omitempty"`
}

type watsonxRequest struct {
	Input      string            `json:"input"`
	Parameters watsonxParameters `json:"parameters"`
	ModelID    string            `json:"model_id"`
	ProjectID  string            `json:"project_id"`
}

type watsonxResult struct {
	GeneratedText       string `json:"generated_text"`
	GeneratedTokenCount int    `json:"generated_token_count"`
	InputTokenCount     int    `json:"input_token_count"`
	StopReason          string `json:"stop_reason"`
}

type watsonxResponse struct {
	ModelID string          `json:"model_id"`
	Results []watsonxResult `json:"results"`
}

func (p *WatsonxProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	params := watsonxParameters{
		DecodingMethod: "greedy",
		MaxNewTokens:   req.MaxTokens,
	}
	if req.Temperature > 0 {
		params.DecodingMethod = "sample"
		params.Temperature = req.Temperature
	}

	body, err := json.Marshal(watsonxRequest{
		Input:      buildWatsonxInput(req),
		Parameters: params,
		ModelID:    p.model,
		ProjectID:  p.projectID,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal watsonx request: %w", err)
	}

	status, respBody, err := p.post(ctx, body)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		// Cached token was revoked or expired early; exchange once more.
		p.tokens.Invalidate()
		status, respBody, err = p.post(ctx, body)
		if err != nil {
			return nil, err
		}
	}
	if status < 200 || status > 299 {
		return nil, classifyStatus(status, fmt.Errorf("text generation returned HTTP %d: %s", status, truncate(respBody, 200)))
	}

	var out watsonxResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, &ErrInvalidResponse{Content: respBody, Err: fmt.Errorf("decode text generation response: %w", err)}
	}
	if len(out.Results) == 0 {
		return nil, &ErrInvalidResponse{Content: respBody, Err: fmt.Errorf("no results in watsonx response")}
	}

	result := out.Results[0]
	stop := mapWatsonxStopReason(result.StopReason)

	model := out.ModelID
	if model == "" {
		model = p.model
	}

	return finish(req, result.GeneratedText, &Response{
		Usage: Usage{
			InputTokens:  result.InputTokenCount,
			OutputTokens: result.GeneratedTokenCount,
			TotalTokens:  result.InputTokenCount + result.GeneratedTokenCount,
		},
		Model:      model,
		StopReason: stop,
	})
}

func (p *WatsonxProvider) ModelID() string {
	return p.model
}

// post sends one authenticated text generation request and returns the
// status code and body.
func (p *WatsonxProvider) post(ctx context.Context, body []byte) (int, []byte, error) {
	tok, err := p.tokens.TokenContext(ctx)
	if err != nil {
		return 0, nil, err
	}

	endpoint := fmt.Sprintf("%s/ml/v1/text/generation?version=%s", p.baseURL, url.QueryEscape(p.version))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("build text generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	tok.SetAuthHeader(httpReq)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, &ErrProviderUnavailable{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &ErrProviderUnavailable{Err: fmt.Errorf("read response: %w", err)}
	}
	return resp.StatusCode, respBody, nil
}

// buildWatsonxInput flattens the system prompt and messages into the single
// input string the text generation endpoint accepts.
func buildWatsonxInput(req Request) string {
	var b strings.Builder
	if req.System != "" {
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}
	for i, m := range req.Messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if m.Role == RoleAssistant {
			b.WriteString("Assistant: ")
		}
		b.WriteString(m.Content)
	}
	if req.Schema != nil {
		def, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString("\n\nRespond with a single JSON object matching this JSON Schema and nothing else:\n")
			b.Write(def)
		}
	}
	return b.String()
}

func mapWatsonxStopReason(reason string) string {
	switch reason {
	case "max_tokens", "token_limit":
		return "max_tokens"
	case "error":
		return "error"
	default:
		return "end"
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// iamTokenSource exchanges an IBM Cloud API key for a bearer token and
// caches it for the process lifetime, bounded by the token's expiry.
type iamTokenSource struct {
	httpClient *http.Client
	tokenURL   string
	apiKey     string

	mu  sync.Mutex
	tok *oauth2.Token
}

type iamTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Token implements oauth2.TokenSource.
func (s *iamTokenSource) Token() (*oauth2.Token, error) {
	return s.TokenContext(context.Background())
}

// TokenContext returns the cached token if still valid, otherwise performs
// a new exchange.
func (s *iamTokenSource) TokenContext(ctx context.Context) (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tok.Valid() {
		return s.tok, nil
	}

	tok, err := s.exchange(ctx)
	if err != nil {
		return nil, err
	}
	s.tok = tok
	return tok, nil
}

// Invalidate drops the cached token so the next call re-exchanges.
func (s *iamTokenSource) Invalidate() {
	s.mu.Lock()
	s.tok = nil
	s.mu.Unlock()
}

func (s *iamTokenSource) exchange(ctx context.Context) (*oauth2.Token, error) {
	form := url.Values{
		"grant_type": {iamAPIKeyGrant},
		"apikey":     {s.apiKey},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("token exchange: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("read token response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("token exchange returned HTTP %d", resp.StatusCode)
		// IAM answers 400 for an unknown or revoked API key.
		if resp.StatusCode == http.StatusBadRequest {
			return nil, &ErrUnauthorized{Err: err}
		}
		return nil, classifyStatus(resp.StatusCode, err)
	}

	var out iamTokenResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &ErrInvalidResponse{Content: body, Err: fmt.Errorf("decode token response: %w", err)}
	}
	if out.AccessToken == "" {
		return nil, &ErrInvalidResponse{Content: body, Err: fmt.Errorf("token response has no access_token")}
	}

	tok := &oauth2.Token{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
	}
	if out.ExpiresIn > 0 {
		tok.Expiry = time.Now().Add(time.Duration(out.ExpiresIn) * time.Second)
	}
	return tok, nil
}
