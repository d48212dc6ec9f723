package reply

import (
	"context"
	"log/slog"
	"strings"
)

// Chain implements Provider by trying multiple tiers in order.
// The first successful tier wins; a tier's failure is absorbed and the next
// tier is tried. Only when every tier fails does the chain return an error,
// and a chain ending in Rules therefore never fails.
type Chain struct {
	providers []Provider
	logger    *slog.Logger
}

// NewChain creates a provider chain that tries tiers in order.
// At least one provider is required.
func NewChain(providers ...Provider) (*Chain, error) {
	if len(providers) == 0 {
		return nil, ErrProviderUnavailable
	}
	return &Chain{
		providers: providers,
		logger:    slog.Default().With("component", "reply.chain"),
	}, nil
}

// NewChainWithLogger creates a provider chain with a custom logger.
func NewChainWithLogger(logger *slog.Logger, providers ...Provider) (*Chain, error) {
	chain, err := NewChain(providers...)
	if err != nil {
		return nil, err
	}
	chain.logger = logger.With("component", "reply.chain")
	return chain, nil
}

// Name identifies the chain by its tiers.
func (c *Chain) Name() string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

// Chat tries each tier until one succeeds.
func (c *Chain) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	var errs []error

	for i, p := range c.providers {
		resp, err := p.Chat(ctx, req)
		if err == nil {
			if i > 0 {
				c.logger.Info("fallback tier succeeded",
					"provider", p.Name(),
					"tier", i,
				)
			}
			return resp, nil
		}

		errs = append(errs, err)
		c.logger.Warn("tier failed, trying next",
			"provider", p.Name(),
			"tier", i,
			"error", err,
		)

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, &ChainError{Errors: errs}
}

// Health checks all tiers and fails only if every one is unhealthy.
func (c *Chain) Health(ctx context.Context) error {
	var healthy int
	var lastErr error

	for _, p := range c.providers {
		if err := p.Health(ctx); err != nil {
			lastErr = err
		} else {
			healthy++
		}
	}

	if healthy == 0 {
		return WrapError("chain", lastErr)
	}

	c.logger.Debug("health check complete",
		"healthy", healthy,
		"total", len(c.providers),
	)
	return nil
}

// ModelHealth reports whether a model-backed tier currently answers a
// ping. The rule-based floor is skipped: it has no backend, so counting
// it would mask dead model tiers. A chain with no model tiers is
// trivially healthy.
func (c *Chain) ModelHealth(ctx context.Context) error {
	var lastErr error
	checked := 0

	for _, p := range c.providers {
		if _, ok := p.(*Rules); ok {
			continue
		}
		checked++
		if err := p.Health(ctx); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	if checked == 0 {
		return nil
	}
	return WrapError("chain", lastErr)
}

// Close closes all tiers.
func (c *Chain) Close() error {
	var lastErr error
	for _, p := range c.providers {
		if err := p.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Providers returns the tiers in order.
func (c *Chain) Providers() []Provider {
	return c.providers
}

// Verify Chain implements Provider at compile time.
var _ Provider = (*Chain)(nil)
