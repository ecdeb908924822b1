package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewLogger(nil, slog.New(handler)), &buf
}

func TestLogger_LocalOnly(t *testing.T) {
	logger, buf := newBufferedLogger()
	ctx := context.Background()

	logger.Info(ctx, "Physics", "Extension registered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Extension registered", entry["msg"])
	assert.Equal(t, "Physics", entry["extension"])
}

func TestLogger_Levels(t *testing.T) {
	logger, buf := newBufferedLogger()
	ctx := context.Background()

	logger.Debug(ctx, "Physics", "inspecting declarations")
	logger.Warn(ctx, "Physics", "declaration problem")
	logger.Error(ctx, "Physics", "registration failed", fmt.Errorf("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)

	levels := make([]string, 0, 3)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		levels = append(levels, entry["level"].(string))
	}
	assert.Equal(t, []string{"DEBUG", "WARN", "ERROR"}, levels)
}

func TestLogger_ErrorDetail(t *testing.T) {
	logger, buf := newBufferedLogger()

	logger.Error(context.Background(), "Physics", "registration failed", fmt.Errorf("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["error"])
}

func TestLogger_NilDestinationsDoNotPanic(t *testing.T) {
	logger := NewLogger(nil, nil)
	ctx := context.Background()

	assert.NotPanics(t, func() {
		logger.Debug(ctx, "Physics", "m")
		logger.Info(ctx, "Physics", "m")
		logger.Warn(ctx, "Physics", "m")
		logger.Error(ctx, "Physics", "m", fmt.Errorf("boom"))
	})
}

func TestLogger_CanceledContext(t *testing.T) {
	logger, buf := newBufferedLogger()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Publishing is skipped on cancellation, local logging still happens
	logger.Info(ctx, "Physics", "Extension registered")
	assert.NotEmpty(t, buf.Bytes())
}

func TestLogEntry_JSONShape(t *testing.T) {
	entry := LogEntry{
		Timestamp: "2026-01-01T00:00:00Z",
		Level:     LogLevelError,
		Extension: "Physics",
		Message:   "registration failed",
		Detail:    "boom",
	}

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var decoded LogEntry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, entry, decoded)

	// Detail is omitted when empty
	entry.Detail = ""
	data, err = json.Marshal(entry)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "detail")
}
