package main

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/gardenmate/internal/api"
	"github.com/phrazzld/gardenmate/internal/config"
	"github.com/phrazzld/gardenmate/internal/fallback"
	"github.com/phrazzld/gardenmate/internal/generation"
	"github.com/phrazzld/gardenmate/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "debug"},
		LLM: config.LLMConfig{
			Backend:               config.BackendREST,
			GeminiAPIKey:          "test-key",
			Endpoint:              endpoint,
			ModelName:             config.DefaultModelName,
			RequestTimeoutSeconds: 2,
			CooldownMillis:        config.DefaultCooldownMillis,
		},
	}
}

func newTestApp(t *testing.T, endpoint string) (*application, *logger.TestLogBuffer) {
	t.Helper()

	buf, l := logger.NewTestLogger(t)
	app, err := newApplication(context.Background(), testConfig(endpoint), l)
	require.NoError(t, err)
	return app, buf
}

func postGenerate(t *testing.T, h http.Handler, prompt string) (*httptest.ResponseRecorder, api.GenerateResponse) {
	t.Helper()

	body, err := json.Marshal(api.GenerateRequest{Prompt: prompt})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp api.GenerateResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestNewApplicationRejectsMissingKey(t *testing.T) {
	_, l := logger.NewTestLogger(t)
	cfg := testConfig("https://example.com/generate")
	cfg.LLM.GeminiAPIKey = ""

	_, err := newApplication(context.Background(), cfg, l)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestRouterProviderAnswer(t *testing.T) {
	gemini := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"Sure, ask away!"}]}}]}`)
	}))
	defer gemini.Close()

	app, buf := newTestApp(t, gemini.URL+"/generate")
	router := app.setupRouter()

	w, resp := postGenerate(t, router, "hello, I have a question")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, api.GenerateResponse{Text: "Sure, ask away!", Source: "provider"}, resp)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
	logger.AssertLogNotContains(t, buf, "test-key")
}

func TestRouterFallbackWhenProviderDown(t *testing.T) {
	gemini := httptest.NewServer(http.NotFoundHandler())
	endpoint := gemini.URL + "/generate"
	gemini.Close()

	app, buf := newTestApp(t, endpoint)
	router := app.setupRouter()

	w, resp := postGenerate(t, router, "Give me some gardening tips")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fallback", resp.Source)
	assert.Equal(t, "tips", resp.Category)
	assert.Contains(t, fallback.Table(fallback.CategoryTips), resp.Text)

	// The logging handler reports the degraded answer.
	logger.AssertLogContains(t, buf, `"source":"fallback"`)
	logger.AssertLogNotContains(t, buf, "test-key")
}

func TestRouterCooldownSharedAcrossRequests(t *testing.T) {
	var calls int
	gemini := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"live"}]}}]}`)
	}))
	defer gemini.Close()

	app, _ := newTestApp(t, gemini.URL+"/generate")
	router := app.setupRouter()

	_, first := postGenerate(t, router, "daily tips")
	_, second := postGenerate(t, router, "daily tips")

	assert.Equal(t, "provider", first.Source)
	assert.Equal(t, "fallback", second.Source)
	assert.Equal(t, 1, calls)
}

func TestRouterRejectsInvalidBody(t *testing.T) {
	app, _ := newTestApp(t, "https://example.com/generate")
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`not json`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "trace_id")
}

func TestRouterHealth(t *testing.T) {
	app, _ := newTestApp(t, "https://example.com/generate")
	router := app.setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouterMethodNotAllowed(t *testing.T) {
	app, _ := newTestApp(t, "https://example.com/generate")
	router := app.setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/generate", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	app, buf := newTestApp(t, "https://example.com/generate")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, ln, app.setupRouter()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	logger.AssertLogContains(t, buf, "Server shutdown completed")
}

func TestInitializeAppFromFile(t *testing.T) {
	t.Setenv("GARDENMATE_LLM_GEMINI_API_KEY", "")
	require.NoError(t, os.Unsetenv("GARDENMATE_LLM_GEMINI_API_KEY"))
	t.Setenv("GARDENMATE_SERVER_PORT", "")
	require.NoError(t, os.Unsetenv("GARDENMATE_SERVER_PORT"))

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "server:\n  port: 9191\n  log_level: warn\nllm:\n  gemini_api_key: file-key\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, l, err := initializeApp(path)
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "file-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, config.BackendREST, cfg.LLM.Backend)
}

func TestInitializeAppMissingKey(t *testing.T) {
	t.Setenv("GARDENMATE_LLM_GEMINI_API_KEY", "")
	require.NoError(t, os.Unsetenv("GARDENMATE_LLM_GEMINI_API_KEY"))

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9191\n"), 0o600))

	_, _, err := initializeApp(path)
	assert.Error(t, err)
}
