package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/blakethaselberger/StarsOps-sub001/internal/chat"
)

const providerName = "gemini"

// generator is the slice of genai.Models the client needs.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config controls the Gemini API connection.
type Config struct {
	APIKey  string
	Timeout time.Duration
}

// Client implements chat.Completer over the Gemini API.
type Client struct {
	models generator
}

// NewClient builds a Gemini-backed completer.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: %w", providerName, chat.ErrMissingCredential)
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Timeout > 0 {
		cc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("%s: create client: %w", providerName, err)
	}
	return &Client{models: client.Models}, nil
}

// Complete sends the conversation as one GenerateContent call. System
// messages become the system instruction.
func (c *Client) Complete(ctx context.Context, req chat.CompletionRequest) (chat.Completion, error) {
	system, contents := splitMessages(req.Messages)
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := c.models.GenerateContent(ctx, req.Model, contents, cfg)
	if err != nil {
		return chat.Completion{}, rewriteError(err)
	}
	return mapResponse(resp), nil
}

func splitMessages(msgs []chat.Message) (string, []*genai.Content) {
	var system []string
	contents := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case chat.RoleSystem:
			system = append(system, m.Content)
		case chat.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return strings.Join(system, "\n\n"), contents
}

func mapResponse(resp *genai.GenerateContentResponse) chat.Completion {
	if resp == nil {
		return chat.Completion{}
	}
	out := chat.Completion{Content: resp.Text()}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = chat.Usage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	return out
}

// rewriteError tags Gemini's quota and credential failures with the same
// indicators the OpenAI API uses.
func rewriteError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return fmt.Errorf("%s: %s: %w", providerName, chat.IndicatorQuota, err)
	case strings.Contains(msg, "API_KEY_INVALID"),
		strings.Contains(msg, "API key not valid"),
		strings.Contains(msg, "UNAUTHENTICATED"),
		strings.Contains(msg, "PERMISSION_DENIED"):
		return fmt.Errorf("%s: %s: %w", providerName, chat.IndicatorInvalidKey, err)
	default:
		return fmt.Errorf("%s: %w", providerName, err)
	}
}
