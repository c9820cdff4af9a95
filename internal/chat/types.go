package chat

import "context"

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// FromCaller reports whether a client may send r. The system turn is built
// server-side from the prompt and is never accepted in a request.
func (r Role) FromCaller() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is the body accepted by POST /api/chat. The caller resends the full
// history on every turn.
type Request struct {
	Messages []Message `json:"messages"`
	// Context is free text substituted into the system prompt; empty means the default snapshot.
	Context string `json:"context,omitempty"`
}

// Usage is the token accounting reported by the upstream.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Reply is the success body of POST /api/chat.
type Reply struct {
	Message string `json:"message"`
	Usage   Usage  `json:"usage"`
}

// CompletionRequest is what a Completer sends upstream.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Completion is a single non-streaming upstream answer.
type Completion struct {
	Content string
	Usage   Usage
}

// Completer performs exactly one upstream chat completion call.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
}
