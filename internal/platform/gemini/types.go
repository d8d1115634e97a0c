package gemini

// generateRequest is the request body sent by RESTProvider:
// {"contents":[{"parts":[{"text": <prompt>}]}]}
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

func newGenerateRequest(prompt string) generateRequest {
	return generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
}

// Response paths checked by RESTProvider.
const (
	errorPath = "error"
	textPath  = "candidates.0.content.parts.0.text"
)
