package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/gardenmate/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the slice of the genai Models service used here.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// SDKProvider calls Gemini through Google's genai client library.
type SDKProvider struct {
	logger *slog.Logger
	models contentGenerator
	model  string
}

// NewSDKProvider creates an SDKProvider. baseURL may be empty to use the
// library's default host; httpClient may be nil.
func NewSDKProvider(
	ctx context.Context,
	logger *slog.Logger,
	httpClient *http.Client,
	apiKey string,
	model string,
	baseURL string,
) (*SDKProvider, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return newSDKProvider(logger, client.Models, model), nil
}

func newSDKProvider(logger *slog.Logger, models contentGenerator, model string) *SDKProvider {
	return &SDKProvider{
		logger: logger,
		models: models,
		model:  model,
	}
}

// Complete implements generation.Provider.
func (p *SDKProvider) Complete(ctx context.Context, prompt string) (string, error) {
	p.logger.DebugContext(ctx, "Making Gemini API call",
		"model", p.model,
		"prompt_length", len(prompt))

	resp, err := p.models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrTransport, err)
	}

	return textFromResponse(resp)
}

// textFromResponse mirrors extractText for the SDK's typed response.
func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	switch {
	case resp == nil:
		return "", fmt.Errorf("%w: nil response", generation.ErrShapeMismatch)
	case len(resp.Candidates) == 0 || resp.Candidates[0] == nil:
		return "", fmt.Errorf("%w: no content generated", generation.ErrShapeMismatch)
	case resp.Candidates[0].FinishReason == genai.FinishReasonSafety:
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrProviderError)
	case resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0:
		return "", fmt.Errorf("%w: empty content in response", generation.ErrShapeMismatch)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: no text parts in response", generation.ErrShapeMismatch)
	}

	return sb.String(), nil
}
