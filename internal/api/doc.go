// Package api exposes the generation client over HTTP for the UI layer.
// Handlers decode and validate requests, call the client, and format JSON
// responses. Generation never produces an error status: provider failures
// are already absorbed into fallback answers by the time a handler sees them.
package api
