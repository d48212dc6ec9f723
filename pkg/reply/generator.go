package reply

import (
	"context"
	"log/slog"

	"github.com/daroloh/voice-agent/pkg/convo"
)

// DefaultSystemPrompt is the assistant's behavior contract, sent as the
// synthetic system turn at the head of every request.
const DefaultSystemPrompt = "You are a friendly and helpful AI assistant. " +
	"Keep your responses concise and conversational, suitable for voice interaction."

// DefaultWindow is the number of stored turns included per request.
const DefaultWindow = 10

// Generator produces an assistant reply for a user utterance.
//
// Each request is built as: one system message, the trailing window of the
// shared conversation store, then the new user message. The store itself is
// not mutated here; the orchestrator appends the exchange after the full
// turn succeeds.
type Generator struct {
	provider     Provider
	store        *convo.Store
	window       int
	systemPrompt string
	logger       *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithWindow sets how many stored turns are included per request.
func WithWindow(n int) GeneratorOption {
	return func(g *Generator) {
		if n > 0 {
			g.window = n
		}
	}
}

// WithSystemPrompt overrides the assistant's behavior contract.
func WithSystemPrompt(prompt string) GeneratorOption {
	return func(g *Generator) {
		if prompt != "" {
			g.systemPrompt = prompt
		}
	}
}

// WithGeneratorLogger sets the structured logger.
func WithGeneratorLogger(l *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = l.With("component", "reply.generator")
	}
}

// NewGenerator creates a generator over a provider (usually a Chain) and
// the shared conversation store.
func NewGenerator(provider Provider, store *convo.Store, opts ...GeneratorOption) *Generator {
	g := &Generator{
		provider:     provider,
		store:        store,
		window:       DefaultWindow,
		systemPrompt: DefaultSystemPrompt,
		logger:       slog.Default().With("component", "reply.generator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a reply for userText using the current conversation
// snapshot. It fails only when the underlying provider fails, which a
// chain ending in the rule-based tier never does.
func (g *Generator) Generate(ctx context.Context, userText string) (string, error) {
	messages := g.buildMessages(userText)

	resp, err := g.provider.Chat(ctx, &ChatRequest{Messages: messages})
	if err != nil {
		return "", err
	}

	g.logger.Debug("reply generated",
		"model", resp.Model,
		"context_messages", len(messages),
		"chars", len(resp.Content),
	)
	return resp.Content, nil
}

// buildMessages assembles system + windowed history + new user message.
func (g *Generator) buildMessages(userText string) []Message {
	recent := g.store.Window(g.window)

	messages := make([]Message, 0, len(recent)+2)
	messages = append(messages, NewSystemMessage(g.systemPrompt))
	for _, turn := range recent {
		messages = append(messages, Message{Role: Role(turn.Role), Content: turn.Content})
	}
	return append(messages, NewUserMessage(userText))
}

// Window returns the configured history window size.
func (g *Generator) Window() int {
	return g.window
}

// Health reports the underlying provider's health.
func (g *Generator) Health(ctx context.Context) error {
	return g.provider.Health(ctx)
}

// BackendHealth reports whether a model backend currently answers a ping.
// For a chain this excludes the rule-based floor, which always answers
// and would otherwise hide dead model tiers.
func (g *Generator) BackendHealth(ctx context.Context) error {
	if p, ok := g.provider.(interface{ ModelHealth(context.Context) error }); ok {
		return p.ModelHealth(ctx)
	}
	return g.provider.Health(ctx)
}

// Close releases provider resources.
func (g *Generator) Close() error {
	return g.provider.Close()
}
