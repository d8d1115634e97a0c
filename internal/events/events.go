package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Outcome sources carried by GenerationEvent.Source.
const (
	SourceProvider = "provider"
	SourceFallback = "fallback"
)

// GenerationEvent describes the outcome of one generation request.
// It never carries the prompt text itself, only its length.
type GenerationEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Source is SourceProvider or SourceFallback
	Source string `json:"source"`

	// Reason labels why a fallback answer was used; empty for provider answers
	Reason string `json:"reason,omitempty"`

	// Category is the fallback category; empty for provider answers
	Category string `json:"category,omitempty"`

	PromptLength int           `json:"prompt_length"`
	Duration     time.Duration `json:"duration"`

	// OccurredAt is the time the request was received by the client
	OccurredAt time.Time `json:"occurred_at"`
}

// Degraded reports whether the event describes a fallback answer.
func (e *GenerationEvent) Degraded() bool {
	return e.Source == SourceFallback
}

// NewGenerationEvent creates a GenerationEvent with a fresh ID.
func NewGenerationEvent(source string, occurredAt time.Time) *GenerationEvent {
	return &GenerationEvent{
		ID:         uuid.New(),
		Source:     source,
		OccurredAt: occurredAt,
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *GenerationEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows the generation client to publish outcomes without direct
// knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *GenerationEvent) error
}
