package chat

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed prompt.yaml
var defaultPromptYAML []byte

// Prompt is the operator prompt and the fallback team snapshot.
type Prompt struct {
	System         string `yaml:"system_prompt"`
	DefaultContext string `yaml:"default_context"`
}

// PromptSource supplies the current prompt.
type PromptSource interface {
	Prompt() Prompt
}

// StaticPrompt is a PromptSource that never changes.
type StaticPrompt Prompt

func (s StaticPrompt) Prompt() Prompt {
	return Prompt(s)
}

var errEmptySystemPrompt = errors.New("system_prompt is empty")

// ParsePrompt decodes prompt YAML.
func ParsePrompt(data []byte) (Prompt, error) {
	var p Prompt
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Prompt{}, fmt.Errorf("parse prompt: %w", err)
	}
	p.System = strings.TrimSpace(p.System)
	p.DefaultContext = strings.TrimSpace(p.DefaultContext)
	if p.System == "" {
		return Prompt{}, fmt.Errorf("parse prompt: %w", errEmptySystemPrompt)
	}
	return p, nil
}

// LoadPromptFile reads and parses a prompt file.
func LoadPromptFile(path string) (Prompt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Prompt{}, fmt.Errorf("read prompt %s: %w", path, err)
	}
	return ParsePrompt(data)
}

var defaultPrompt = sync.OnceValue(func() Prompt {
	p, err := ParsePrompt(defaultPromptYAML)
	if err != nil {
		panic(err)
	}
	return p
})

// DefaultPrompt returns the prompt compiled into the binary.
func DefaultPrompt() Prompt {
	return defaultPrompt()
}

// SystemMessage joins the operator prompt with context, or with the default
// snapshot when context is blank.
func (p Prompt) SystemMessage(context string) string {
	block := strings.TrimSpace(context)
	if block == "" {
		block = p.DefaultContext
	}
	if block == "" {
		return p.System
	}
	return p.System + "\n\n" + block
}
