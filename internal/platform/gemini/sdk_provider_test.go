package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/gardenmate/internal/generation"
	"github.com/phrazzld/gardenmate/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeModels stands in for the genai Models service.
type fakeModels struct {
	resp *genai.GenerateContentResponse
	err  error

	gotModel    string
	gotContents []*genai.Content
}

func (f *fakeModels) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	_ *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.gotModel = model
	f.gotContents = contents
	return f.resp, f.err
}

func candidateWithText(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, 0, len(texts))
	for _, text := range texts {
		parts = append(parts, &genai.Part{Text: text})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

func TestSDKProviderComplete(t *testing.T) {
	t.Parallel()

	_, l := logger.NewTestLogger(t)
	models := &fakeModels{resp: candidateWithText("Sure, ", "ask away!")}
	p := newSDKProvider(l, models, "gemini-test")

	text, err := p.Complete(context.Background(), "hello, I have a question")

	require.NoError(t, err)
	assert.Equal(t, "Sure, ask away!", text)
	assert.Equal(t, "gemini-test", models.gotModel)
	require.Len(t, models.gotContents, 1)
	require.Len(t, models.gotContents[0].Parts, 1)
	assert.Equal(t, "hello, I have a question", models.gotContents[0].Parts[0].Text)
}

func TestSDKProviderFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		models  *fakeModels
		wantErr error
	}{
		{
			name:    "call error",
			models:  &fakeModels{err: errors.New("connection reset")},
			wantErr: generation.ErrTransport,
		},
		{
			name:    "nil response",
			models:  &fakeModels{},
			wantErr: generation.ErrShapeMismatch,
		},
		{
			name:    "no candidates",
			models:  &fakeModels{resp: &genai.GenerateContentResponse{}},
			wantErr: generation.ErrShapeMismatch,
		},
		{
			name: "nil content",
			models: &fakeModels{resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{}},
			}},
			wantErr: generation.ErrShapeMismatch,
		},
		{
			name: "blocked by safety",
			models: &fakeModels{resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
			}},
			wantErr: generation.ErrProviderError,
		},
		{
			name:    "only empty text parts",
			models:  &fakeModels{resp: candidateWithText("")},
			wantErr: generation.ErrShapeMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, l := logger.NewTestLogger(t)
			p := newSDKProvider(l, tc.models, "gemini-test")

			text, err := p.Complete(context.Background(), "daily tips")
			assert.Empty(t, text)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewSDKProviderValidation(t *testing.T) {
	t.Parallel()

	_, l := logger.NewTestLogger(t)
	ctx := context.Background()

	_, err := NewSDKProvider(ctx, nil, nil, "key", "model", "")
	assert.Error(t, err)

	_, err = NewSDKProvider(ctx, l, nil, "", "model", "")
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = NewSDKProvider(ctx, l, nil, "key", "", "")
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}
