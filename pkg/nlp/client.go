package nlp

import "context"

// Role identifies the author of a chat message.
type Role string

const (
	// RoleSystem represents a system message.
	RoleSystem Role = "system"
	// RoleUser represents a user message.
	RoleUser Role = "user"
	// RoleAssistant represents an assistant message.
	RoleAssistant Role = "assistant"
)

// Message is a single chat message.
type Message struct {
	Role    Role
	Content string
}

// Response is a chat completion result.
type Response struct {
	Content      string
	FinishReason string
	Model        string
}

// Client defines the interface for language model operations.
type Client interface {
	// Chat sends a chat completion request with the given output token
	// budget and returns the response.
	Chat(ctx context.Context, messages []Message, maxTokens int) (*Response, error)

	// Close cleans up any resources.
	Close() error
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}
