package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/logging"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "WARN", want: zerolog.WarnLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "bogus", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := logging.NewLogger(logging.Config{Level: tt.level}, &bytes.Buffer{})
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{Level: "info", Format: logging.FormatJSON}, &buf)

	componentLogger := logging.ComponentLogger(logger, "catalog")
	componentLogger.Info().Int("items", 3).Msg("loaded")

	out := buf.String()
	assert.Contains(t, out, `"component":"catalog"`)
	assert.Contains(t, out, `"items":3`)
	assert.Contains(t, out, `"message":"loaded"`)
}

func TestNewLoggerWithPath(t *testing.T) {
	t.Run("stderr by default", func(t *testing.T) {
		result := logging.NewLoggerWithPath(logging.Config{Level: "info"})
		assert.False(t, result.UsingFile)
		assert.False(t, result.FallbackUsed)
		assert.NoError(t, result.Close())
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "pagenav.log")
		result := logging.NewLoggerWithPath(logging.Config{
			Level:  "info",
			Output: logging.OutputFile,
			File:   path,
		})
		require.True(t, result.UsingFile)
		assert.Equal(t, path, result.FilePath)

		result.Logger.Info().Msg("hello")
		require.NoError(t, result.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"message":"hello"`)
	})

	t.Run("unwritable file falls back", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "not-a-dir")
		require.NoError(t, os.WriteFile(blocker, nil, 0o600))

		result := logging.NewLoggerWithPath(logging.Config{
			Output: logging.OutputFile,
			File:   filepath.Join(blocker, "pagenav.log"),
		})
		assert.False(t, result.UsingFile)
		assert.True(t, result.FallbackUsed)
		assert.NotEmpty(t, result.FallbackReason)
	})
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, logging.TraceIDFromContext(ctx))

	generated := logging.GetOrGenerateTraceID(ctx)
	_, err := ulid.Parse(generated)
	require.NoError(t, err)

	ctx = logging.ContextWithTraceID(ctx, generated)
	assert.Equal(t, generated, logging.TraceIDFromContext(ctx))
	assert.Equal(t, generated, logging.GetOrGenerateTraceID(ctx))
}

func TestFromContext(t *testing.T) {
	t.Run("no logger is disabled", func(t *testing.T) {
		assert.Equal(t, zerolog.Disabled, logging.FromContext(context.Background()).GetLevel())
	})

	t.Run("stored logger carries trace id", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLogger(logging.Config{Format: logging.FormatJSON}, &buf)

		ctx := logging.ContextWithTraceID(context.Background(), "trace-1")
		ctx = logger.WithContext(ctx)

		logging.FromContext(ctx).Info().Msg("hi")
		assert.Contains(t, buf.String(), `"trace_id":"trace-1"`)
	})
}
