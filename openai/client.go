package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/flumekit/flume"
)

// Interface compliance check.
var _ flume.Provider = (*Client)(nil)

// Client implements [flume.Provider] for OpenAI-compatible endpoints.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the endpoint base URL. Required for self-hosted or
// managed endpoints; also useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger for transport diagnostics. Default discards.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a new [Client] with the given API key and options.
// An empty key is allowed: endpoints fronted by network-level auth don't
// check the Authorization header.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		log:        zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Stream sends a streaming request to the endpoint and returns a
// [flume.Stream] that emits one event per decoded record.
func (c *Client) Stream(ctx context.Context, req flume.Request) (flume.Stream, error) {
	resp, err := c.post(ctx, req, true)
	if err != nil {
		return nil, err
	}
	return newStream(ctx, resp.Body, c.log), nil
}

// Complete sends a synchronous request and returns the full completion.
func (c *Client) Complete(ctx context.Context, req flume.Request) (flume.Completion, error) {
	resp, err := c.post(ctx, req, false)
	if err != nil {
		return flume.Completion{}, err
	}
	defer resp.Body.Close()

	var body chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return flume.Completion{}, fmt.Errorf("openai: decode response: %w", err)
	}
	if len(body.Choices) == 0 {
		return flume.Completion{}, fmt.Errorf("openai: response contains no choices")
	}

	choice := body.Choices[0]
	return flume.Completion{
		Text:         choice.Message.Content,
		FinishReason: choice.FinishReason,
		Usage: flume.Usage{
			PromptTokens:     body.Usage.PromptTokens,
			CompletionTokens: body.Usage.CompletionTokens,
			TotalTokens:      body.Usage.TotalTokens,
		},
	}, nil
}

func (c *Client) post(ctx context.Context, req flume.Request, stream bool) (*http.Response, error) {
	body, err := json.Marshal(buildRequestBody(req, stream))
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if stream {
		httpReq.Header.Set("Accept", "text/event-stream")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, parseHTTPError(resp)
	}
	return resp, nil
}

// buildRequestBody forwards generation parameters verbatim; only the model
// and max_tokens fall back to defaults when unset.
func buildRequestBody(req flume.Request, stream bool) apiRequest {
	model := req.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	messages := make([]apiMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = apiMessage{Role: string(m.Role), Content: m.Content}
	}

	return apiRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		Stream:      stream,
	}
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("openai: HTTP %d (failed to read body: %w)", resp.StatusCode, err)
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Message == "" {
		return fmt.Errorf("openai: HTTP %d: %s", resp.StatusCode, string(body))
	}
	return fmt.Errorf("openai: %s: %s", apiErr.Error.Type, apiErr.Error.Message)
}
