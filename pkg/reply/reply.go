// Package reply generates assistant replies from conversation context.
//
// Generation runs through a chain of providers tried in order: a hosted
// chat-completion endpoint, an optional local OpenAI-compatible backend
// (Ollama, vLLM, and friends), and a deterministic rule-based responder
// that cannot fail. The Generator builds the message window from the shared
// conversation store and runs the chain, so a reply is produced whenever at
// least one fallback tier is configured.
//
// Example usage:
//
//	primary, _ := reply.NewClient(
//	    reply.WithAPIKey(os.Getenv("OPENAI_API_KEY")),
//	    reply.WithModel("gpt-4o-mini"),
//	)
//	chain, _ := reply.NewChain(primary, reply.NewRules())
//	gen := reply.NewGenerator(chain, store)
//
//	text, _ := gen.Generate(ctx, "hello there")
package reply

import "context"

// Role defines message roles in a conversation.
type Role string

const (
	// RoleSystem is for system instructions.
	RoleSystem Role = "system"

	// RoleUser is for user messages.
	RoleUser Role = "user"

	// RoleAssistant is for assistant responses.
	RoleAssistant Role = "assistant"
)

// Message represents a chat message sent to a provider.
type Message struct {
	// Role identifies the message sender.
	Role Role `json:"role"`

	// Content is the text content of the message.
	Content string `json:"content"`
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// ChatRequest for chat completions.
type ChatRequest struct {
	// Messages is the conversation context, oldest first.
	Messages []Message

	// Model overrides the provider's default model.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int

	// Temperature controls randomness (0.0-2.0).
	Temperature float64
}

// ChatResponse from a chat completion.
type ChatResponse struct {
	// Content is the assistant's reply text.
	Content string

	// Model used for generation.
	Model string

	// LatencyMs is the response time in milliseconds.
	LatencyMs int64
}

// Provider is one reply-generation tier.
// All implementations must satisfy this interface.
type Provider interface {
	// Chat generates a response from a sequence of messages.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Health checks provider connectivity and API key validity.
	Health(ctx context.Context) error

	// Name identifies the provider in logs and errors.
	Name() string

	// Close releases any resources held by the provider.
	Close() error
}
