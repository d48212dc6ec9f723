package reply

import (
	"log/slog"
	"time"
)

// Config holds provider configuration.
// Use functional options (WithXxx) to set these values.
type Config struct {
	// Connection
	BaseURL string // OpenAI-compatible API base URL
	APIKey  string // API key (optional for local backends)

	// Identity
	ProviderName string // name used in logs and errors

	// Request defaults
	Model       string
	MaxTokens   int
	Temperature float64

	// Timeouts
	Timeout time.Duration

	// Retry configuration
	MaxRetries int
	RetryDelay time.Duration

	// Observability
	Logger *slog.Logger
}

// Option is a functional option for configuring providers.
type Option func(*Config)

// WithBaseURL sets the API base URL.
// Examples: "https://api.openai.com/v1", "http://localhost:11434/v1"
func WithBaseURL(url string) Option {
	return func(c *Config) { c.BaseURL = url }
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) Option {
	return func(c *Config) { c.APIKey = key }
}

// WithName sets the provider name used in logs and errors.
func WithName(name string) Option {
	return func(c *Config) { c.ProviderName = name }
}

// WithModel sets the default chat model.
func WithModel(model string) Option {
	return func(c *Config) { c.Model = model }
}

// WithMaxTokens sets the default max tokens.
func WithMaxTokens(n int) Option {
	return func(c *Config) { c.MaxTokens = n }
}

// WithTemperature sets the default temperature.
func WithTemperature(t float64) Option {
	return func(c *Config) { c.Temperature = t }
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithRetry configures retry behavior.
func WithRetry(maxRetries int, delay time.Duration) Option {
	return func(c *Config) {
		c.MaxRetries = maxRetries
		c.RetryDelay = delay
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// DefaultConfig returns sensible defaults for a hosted endpoint.
// Replies are kept short: they are read aloud, not displayed.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:      "https://api.openai.com/v1",
		ProviderName: "openai",
		Model:        "gpt-4o-mini",
		MaxTokens:    300,
		Temperature:  0.7,
		Timeout:      30 * time.Second,
		MaxRetries:   0,
		RetryDelay:   100 * time.Millisecond,
		Logger:       slog.Default(),
	}
}

// LocalConfig returns resource-saving defaults for a self-hosted backend:
// a short timeout and a bounded reply length.
func LocalConfig() *Config {
	cfg := DefaultConfig()
	cfg.BaseURL = "http://localhost:11434/v1"
	cfg.ProviderName = "ollama"
	cfg.Model = "llama3.2"
	cfg.MaxTokens = 150
	cfg.Timeout = 15 * time.Second
	return cfg
}

// Apply applies functional options to the config.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}
