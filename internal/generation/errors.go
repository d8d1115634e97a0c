package generation

import (
	"errors"
	"fmt"
)

// Failure kinds. Every one of them is absorbed by Client.Generate and turned
// into a fallback answer; they surface only as Result.Reason.
var (
	// ErrGateRejected is used when the cooldown window has not elapsed
	ErrGateRejected = errors.New("cooldown window has not elapsed")

	// ErrTransport is returned when the provider cannot be reached or the call
	// is aborted (connection refused, DNS failure, timeout, cancellation)
	ErrTransport = errors.New("transport failure calling language model")

	// ErrProtocol is returned for HTTP statuses outside the success range
	ErrProtocol = errors.New("unexpected status from language model")

	// ErrShapeMismatch is returned when the response body is not the expected
	// JSON structure or lacks the generated text
	ErrShapeMismatch = errors.New("invalid response from language model")

	// ErrProviderError is returned when the response body carries a
	// provider-reported error object
	ErrProviderError = errors.New("language model reported an error")

	// ErrInvalidConfig is returned when a provider or client is misconfigured
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyPrompt is returned by validation at the edges of the system
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)

// Reason labels used in logs and events.
const (
	ReasonGateRejected  = "gate_rejected"
	ReasonTransport     = "transport"
	ReasonProtocol      = "protocol"
	ReasonShapeMismatch = "shape_mismatch"
	ReasonProviderError = "provider_error"
	ReasonUnknown       = "unknown"
)

// ReasonLabel maps a failure to a short, stable label. A nil error yields "".
func ReasonLabel(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrGateRejected):
		return ReasonGateRejected
	case errors.Is(err, ErrTransport):
		return ReasonTransport
	case errors.Is(err, ErrProtocol):
		return ReasonProtocol
	case errors.Is(err, ErrShapeMismatch):
		return ReasonShapeMismatch
	case errors.Is(err, ErrProviderError):
		return ReasonProviderError
	default:
		return ReasonUnknown
	}
}

// panicError wraps a value recovered from a panicking provider.
type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("provider panicked: %v", e.value)
}

func (e *panicError) Unwrap() error {
	return ErrTransport
}
