package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blakethaselberger/StarsOps-sub001/internal/chat"
)

// Config controls how the client reaches an OpenAI-compatible chat completions API.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client implements chat.Completer against POST {base}/chat/completions.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Complete performs one non-streaming completion. Upstream errors carry the
// API's error code in their text.
func (c *Client) Complete(ctx context.Context, req chat.CompletionRequest) (chat.Completion, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return chat.Completion{}, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return chat.Completion{}, fmt.Errorf("%s: %w", providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return chat.Completion{}, statusError(resp.StatusCode, body)
	}

	var payload completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return chat.Completion{}, fmt.Errorf("%s: decode response: %w", providerName, err)
	}
	if payload.Error != nil {
		return chat.Completion{}, fmt.Errorf("%s: %s", providerName, payload.Error.describe())
	}
	return mapCompletion(payload), nil
}

func (c *Client) buildRequest(ctx context.Context, req chat.CompletionRequest) (*http.Request, error) {
	body := completionRequest{
		Model:       req.Model,
		Messages:    make([]chatMessage, len(req.Messages)),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Stream:      false,
	}
	for i, m := range req.Messages {
		body.Messages[i] = chatMessage{Role: string(m.Role), Content: m.Content}
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", providerName, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return httpReq, nil
}

func mapCompletion(payload completionResponse) chat.Completion {
	out := chat.Completion{
		Usage: chat.Usage{
			PromptTokens:     payload.Usage.PromptTokens,
			CompletionTokens: payload.Usage.CompletionTokens,
			TotalTokens:      payload.Usage.TotalTokens,
		},
	}
	if len(payload.Choices) > 0 {
		out.Content = payload.Choices[0].Message.Content
	}
	return out
}

func statusError(status int, body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		return fmt.Errorf("%s: status %d: %s", providerName, status, env.Error.describe())
	}
	return fmt.Errorf("%s: status %d: %s", providerName, status, strings.TrimSpace(string(body)))
}

func (e *apiError) describe() string {
	code := e.Type
	switch v := e.Code.(type) {
	case string:
		if v != "" {
			code = v
		}
	case float64:
		code = fmt.Sprintf("%g", v)
	}
	if code == "" {
		return e.Message
	}
	return code + ": " + e.Message
}
