// Package gemini provides implementations of the generation.Provider interface
// that call Google's Gemini generateContent API.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's generation core to Google's external Gemini AI
// service without exposing the details of the external service to the core.
//
// Key components:
//
// 1. RESTProvider:
//   - Posts the minimal {"contents":[{"parts":[{"text":...}]}]} envelope
//     to a configured endpoint, authenticating with the ?key= parameter
//   - Validates the response shape and extracts the first candidate's text
//
// 2. SDKProvider:
//   - Same contract over Google's genai client library
//
// 3. Error Handling:
//   - Sorts every failure into the generation package's sentinel errors
//     (transport, protocol, shape mismatch, provider error)
//   - Never retries; the generation client decides what to do with failures
//
// NewProvider selects the backend from configuration after validating it.
package gemini
