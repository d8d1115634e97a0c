package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/gardenmate/internal/api/shared"
	"github.com/phrazzld/gardenmate/internal/generation"
)

// Generator is the part of generation.Client the handler needs.
type Generator interface {
	Generate(ctx context.Context, prompt string) generation.Result
}

// GenerateHandler serves POST /api/generate.
type GenerateHandler struct {
	generator Generator
	logger    *slog.Logger
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(generator Generator, logger *slog.Logger) (*GenerateHandler, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &GenerateHandler{generator: generator, logger: logger}, nil
}

// Generate handles POST /api/generate requests. Once the request is valid the
// response is always 200; Source tells the UI whether the text is live or a
// fallback answer.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		err := generation.ErrEmptyPrompt
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	result := h.generator.Generate(r.Context(), req.Prompt)

	h.logger.DebugContext(r.Context(), "generate request served",
		"trace_id", shared.GetTraceID(r.Context()),
		"source", string(result.Source),
		"degraded", result.Degraded())

	shared.RespondWithJSON(w, r, http.StatusOK, resultToResponse(result))
}

func resultToResponse(result generation.Result) GenerateResponse {
	resp := GenerateResponse{
		Text:   result.Text,
		Source: string(result.Source),
	}
	if result.Degraded() {
		resp.Category = string(result.Category)
	}
	return resp
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}
