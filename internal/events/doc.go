// Package events provides types and interfaces for publishing generation outcomes.
//
// The generation client emits one GenerationEvent per request without knowing
// which handlers will consume it. Handlers are registered on an emitter at
// startup; the server registers a LoggingHandler so degraded answers are visible
// in the logs even though the caller never sees an error.
//
// The primary components are:
// - GenerationEvent: Describes the outcome of one generation request
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
