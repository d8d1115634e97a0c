package api

// MaxPromptLength bounds the prompt accepted by POST /api/generate.
const MaxPromptLength = 8000

// GenerateRequest defines the payload for the generate endpoint.
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required,max=8000"`
}

// GenerateResponse is returned for every accepted generate request.
type GenerateResponse struct {
	Text string `json:"text"`

	// Source is "provider" or "fallback"
	Source string `json:"source"`

	// Category names the fallback table the text came from; omitted for
	// provider answers
	Category string `json:"category,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
