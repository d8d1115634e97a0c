package logger

import (
	"log/slog"
	"testing"

	"github.com/phrazzld/gardenmate/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input  string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"Error", slog.LevelError, true},
		{"fatal", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseLevel(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

// Not parallel: setup replaces the default logger.
func TestSetupLevels(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	t.Run("debug enabled", func(t *testing.T) {
		out := &TestLogBuffer{}
		warn := &TestLogBuffer{}

		l, err := setup(out, warn, config.ServerConfig{LogLevel: "debug"})
		require.NoError(t, err)
		require.NotNil(t, l)

		l.Debug("debug message", "plant", "basil")
		AssertLogContains(t, out, `"msg":"debug message"`)
		AssertLogContains(t, out, `"plant":"basil"`)
		assert.Empty(t, warn.String())
		assert.Same(t, l, slog.Default())
	})

	t.Run("info hides debug", func(t *testing.T) {
		out := &TestLogBuffer{}

		l, err := setup(out, &TestLogBuffer{}, config.ServerConfig{LogLevel: "info"})
		require.NoError(t, err)

		l.Debug("hidden")
		l.Info("visible")
		AssertLogNotContains(t, out, "hidden")
		AssertLogContains(t, out, "visible")
	})

	t.Run("invalid level warns and falls back to info", func(t *testing.T) {
		out := &TestLogBuffer{}
		warn := &TestLogBuffer{}

		l, err := setup(out, warn, config.ServerConfig{LogLevel: "verbose"})
		require.NoError(t, err)

		l.Debug("hidden")
		l.Info("visible")
		AssertLogNotContains(t, out, "hidden")
		AssertLogContains(t, out, "visible")
		AssertLogContains(t, warn, "invalid log level configured")
	})
}

func TestGetLogEntries(t *testing.T) {
	t.Parallel()

	buf, l := NewTestLogger(t)
	l.Info("first", "n", 1)
	l.Warn("second")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0]["msg"])
	assert.Equal(t, float64(1), entries[0]["n"])
	assert.Equal(t, "WARN", entries[1]["level"])
}
