package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/phrazzld/gardenmate/internal/generation"
	"github.com/tidwall/gjson"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// RESTProvider calls a generateContent endpoint directly over HTTP.
type RESTProvider struct {
	logger     *slog.Logger
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// NewRESTProvider creates a RESTProvider posting to endpoint with apiKey.
// A nil httpClient is replaced by one with the given timeout.
func NewRESTProvider(
	logger *slog.Logger,
	httpClient *http.Client,
	endpoint string,
	apiKey string,
	timeout time.Duration,
) (*RESTProvider, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: endpoint must be an absolute URL", generation.ErrInvalidConfig)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &RESTProvider{
		logger:     logger,
		httpClient: httpClient,
		endpoint:   endpoint,
		apiKey:     apiKey,
	}, nil
}

// Complete implements generation.Provider.
func (p *RESTProvider) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(newGenerateRequest(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", generation.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.requestURL(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to build request: %v", generation.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	p.logger.DebugContext(ctx, "Making Gemini API call", "prompt_length", len(prompt))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d %s",
			generation.ErrProtocol, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response body: %v", generation.ErrTransport, err)
	}

	return extractText(data)
}

// requestURL appends the key query parameter to the endpoint, preserving any
// query the endpoint already carries.
func (p *RESTProvider) requestURL() string {
	u, _ := url.Parse(p.endpoint) // validated in NewRESTProvider
	q := u.Query()
	q.Set("key", p.apiKey)
	u.RawQuery = q.Encode()
	return u.String()
}

// extractText validates a generateContent response body and returns the
// first candidate's first text part.
func extractText(data []byte) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("%w: body is not valid JSON", generation.ErrShapeMismatch)
	}

	if providerErr := gjson.GetBytes(data, errorPath); providerErr.Exists() {
		msg := providerErr.Get("message").String()
		if msg == "" {
			msg = providerErr.Raw
		}
		return "", fmt.Errorf("%w: %s", generation.ErrProviderError, msg)
	}

	text := gjson.GetBytes(data, textPath)
	if !text.Exists() {
		return "", fmt.Errorf("%w: missing %s", generation.ErrShapeMismatch, textPath)
	}
	if text.Type != gjson.String {
		return "", fmt.Errorf("%w: %s is not a string", generation.ErrShapeMismatch, textPath)
	}

	return text.String(), nil
}
