package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/gardenmate/internal/events"
	"github.com/phrazzld/gardenmate/internal/fallback"
	"github.com/phrazzld/gardenmate/internal/gate"
	"github.com/phrazzld/gardenmate/internal/redact"
)

// DefaultRequestTimeout bounds a single provider call when no timeout is
// configured.
const DefaultRequestTimeout = 10 * time.Second

// Client orchestrates one generation attempt with graceful degradation:
// cooldown gate, bounded provider call, and fallback substitution.
type Client struct {
	provider Provider
	gate     *gate.Gate
	oracle   *fallback.Oracle
	logger   *slog.Logger

	now     func() time.Time
	timeout time.Duration
	emitter events.EventEmitter
}

// Option customizes a Client.
type Option func(*Client)

// WithClock replaces the wall clock used for the cooldown gate and events.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithTimeout sets the per-call provider timeout. Non-positive values keep
// DefaultRequestTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithEmitter publishes one events.GenerationEvent per Generate call.
func WithEmitter(emitter events.EventEmitter) Option {
	return func(c *Client) {
		c.emitter = emitter
	}
}

// NewClient creates a Client. The gate and oracle are owned by the caller so
// several clients can share, or deliberately not share, a cooldown window.
func NewClient(
	provider Provider,
	g *gate.Gate,
	oracle *fallback.Oracle,
	logger *slog.Logger,
	opts ...Option,
) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if provider == nil {
		return nil, fmt.Errorf("%w: provider cannot be nil", ErrInvalidConfig)
	}
	if g == nil {
		return nil, fmt.Errorf("%w: gate cannot be nil", ErrInvalidConfig)
	}
	if oracle == nil {
		return nil, fmt.Errorf("%w: fallback oracle cannot be nil", ErrInvalidConfig)
	}

	c := &Client{
		provider: provider,
		gate:     g,
		oracle:   oracle,
		logger:   logger,
		now:      time.Now,
		timeout:  DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Generate answers prompt. It never fails: if the gate is closed or the
// provider call fails for any reason, the answer comes from the fallback
// oracle and Result.Reason records why.
func (c *Client) Generate(ctx context.Context, prompt string) Result {
	start := c.now()

	var result Result
	if !c.gate.TryAcquire(start) {
		c.logger.DebugContext(ctx, "Cooldown active, using fallback",
			"cooldown_ms", c.gate.Cooldown().Milliseconds())
		result = c.fallback(prompt, ErrGateRejected)
	} else {
		text, err := c.call(ctx, prompt)
		if err != nil {
			c.logger.WarnContext(ctx, "Gemini API call failed, using fallback",
				"reason", ReasonLabel(err),
				"error", redact.Error(err))
			result = c.fallback(prompt, err)
		} else {
			c.logger.DebugContext(ctx, "Gemini API call successful",
				"response_length", len(text))
			result = Result{Text: text, Source: SourceProvider}
		}
	}

	c.emit(ctx, prompt, start, result)
	return result
}

// GenerateText is Generate for callers that only display the text.
func (c *Client) GenerateText(ctx context.Context, prompt string) string {
	return c.Generate(ctx, prompt).Text
}

// call performs one bounded provider call. Panics inside the provider are
// converted into transport failures.
func (c *Client) call(ctx context.Context, prompt string) (text string, err error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	defer func() {
		if v := recover(); v != nil {
			text, err = "", &panicError{value: v}
		}
	}()

	text, err = c.provider.Complete(callCtx, prompt)
	if err != nil {
		if callCtx.Err() != nil && !errors.Is(err, ErrTransport) {
			err = fmt.Errorf("%w: %w", ErrTransport, err)
		}
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("%w: empty text in response", ErrShapeMismatch)
	}

	return text, nil
}

func (c *Client) fallback(prompt string, reason error) Result {
	text, category := c.oracle.Answer(prompt)
	return Result{
		Text:     text,
		Source:   SourceFallback,
		Category: category,
		Reason:   reason,
	}
}

func (c *Client) emit(ctx context.Context, prompt string, start time.Time, result Result) {
	if c.emitter == nil {
		return
	}

	event := events.NewGenerationEvent(string(result.Source), start)
	event.Reason = ReasonLabel(result.Reason)
	event.Category = string(result.Category)
	event.PromptLength = len(prompt)
	event.Duration = c.now().Sub(start)

	if err := c.emitter.EmitEvent(ctx, event); err != nil {
		c.logger.DebugContext(ctx, "generation event not fully handled", "error", err)
	}
}
