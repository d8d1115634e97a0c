package generation

import "github.com/phrazzld/gardenmate/internal/fallback"

// Source records where a Result's text came from.
type Source string

const (
	// SourceProvider marks a genuine answer from the LLM provider.
	SourceProvider Source = "provider"

	// SourceFallback marks a canned answer from the fallback oracle.
	SourceFallback Source = "fallback"
)

// Result is the outcome of one generation request. Text is always non-empty
// and safe to display.
type Result struct {
	Text   string
	Source Source

	// Category is the fallback category the text was drawn from. It is empty
	// for provider answers.
	Category fallback.Category

	// Reason wraps the failure that caused a fallback answer (one of the
	// sentinel errors in this package). It is nil for provider answers.
	Reason error
}

// Degraded reports whether the text is a fallback answer.
func (r Result) Degraded() bool {
	return r.Source == SourceFallback
}
