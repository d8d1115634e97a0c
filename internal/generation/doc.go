// Package generation turns a user prompt into displayable text. The Client
// asks an LLM Provider (the Gemini adapter in production) for an answer,
// spaced by a cooldown gate, and substitutes a canned fallback answer whenever
// the gate is closed or the provider call fails in any way.
//
// Callers never receive an error from Generate. Instead the returned Result
// records whether the text came from the provider or from the fallback oracle,
// and why, so the UI can stay responsive while logs and tests can still tell
// genuine answers from degraded ones.
package generation
