package generation

import "context"

// Provider defines the boundary between the application core and an external
// AI/LLM text-generation service.
type Provider interface {
	// Complete sends prompt to the provider and returns the generated text.
	//
	// Implementations must honour ctx cancellation and report failures by
	// wrapping one of ErrTransport, ErrProtocol, ErrShapeMismatch or
	// ErrProviderError so the client can label them.
	Complete(ctx context.Context, prompt string) (string, error)
}

// ProviderFunc adapts an ordinary function to the Provider interface.
type ProviderFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f(ctx, prompt).
func (f ProviderFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
