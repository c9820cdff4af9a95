package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Chat providers.
const (
	ChatProviderOpenAI = "openai"
	ChatProviderGemini = "gemini"
)

// Default models per provider, used when CHAT_MODEL is unset.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// ChatConfig controls the upstream completion call made by POST /api/chat.
type ChatConfig struct {
	Provider     string        `envconfig:"CHAT_PROVIDER" default:"openai"`
	APIKey       string        `envconfig:"OPENAI_API_KEY"`
	GeminiAPIKey string        `envconfig:"GEMINI_API_KEY"`
	BaseURL      string        `envconfig:"CHAT_BASE_URL" default:"https://api.openai.com/v1"`
	Model        string        `envconfig:"CHAT_MODEL"`
	MaxTokens    int           `envconfig:"CHAT_MAX_TOKENS" default:"1000"`
	Temperature  float64       `envconfig:"CHAT_TEMPERATURE" default:"0.7"`
	Timeout      time.Duration `envconfig:"CHAT_TIMEOUT" default:"60s"`
	PromptFile   string        `envconfig:"CHAT_PROMPT_FILE"`
}

// Credential returns the key for the selected provider; empty means unconfigured.
func (c ChatConfig) Credential() string {
	if c.Provider == ChatProviderGemini {
		return c.GeminiAPIKey
	}
	return c.APIKey
}

// LoadChat decodes the chat variables. Malformed numbers are reported rather than guessed.
func LoadChat() (ChatConfig, error) {
	var c ChatConfig
	if err := envconfig.Process("", &c); err != nil {
		return ChatConfig{}, fmt.Errorf("chat config: %w", err)
	}
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	switch c.Provider {
	case ChatProviderOpenAI, ChatProviderGemini:
	default:
		return ChatConfig{}, fmt.Errorf("chat config: unknown CHAT_PROVIDER %q", c.Provider)
	}
	c.Model = strings.TrimSpace(c.Model)
	if c.Model == "" {
		c.Model = DefaultOpenAIModel
		if c.Provider == ChatProviderGemini {
			c.Model = DefaultGeminiModel
		}
	}
	if c.MaxTokens <= 0 {
		return ChatConfig{}, fmt.Errorf("chat config: CHAT_MAX_TOKENS must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return ChatConfig{}, fmt.Errorf("chat config: CHAT_TIMEOUT must be positive, got %s", c.Timeout)
	}
	return c, nil
}
