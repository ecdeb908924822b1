package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// LogLevel represents the severity level of a log entry
type LogLevel string

const (
	// LogLevelDebug represents debug-level logs
	LogLevelDebug LogLevel = "DEBUG"
	// LogLevelInfo represents informational logs
	LogLevelInfo LogLevel = "INFO"
	// LogLevelWarn represents warning logs
	LogLevelWarn LogLevel = "WARN"
	// LogLevelError represents error logs
	LogLevelError LogLevel = "ERROR"
)

// LogEntry represents a structured load-phase log entry that can be published
// to NATS and consumed by platform tooling (e.g. an extension diagnostics
// panel).
type LogEntry struct {
	Timestamp string   `json:"timestamp"` // RFC3339 format
	Level     LogLevel `json:"level"`
	Extension string   `json:"extension"`
	Message   string   `json:"message"`
	Detail    string   `json:"detail,omitempty"` // Error details
}

// Logger provides structured logging for the extension loading phase. It
// wraps a standard slog.Logger for local logging while optionally publishing
// entries to NATS for remote consumption. Without a NATS connection it is
// local-only.
type Logger struct {
	nc      *nats.Conn
	logger  *slog.Logger
	enabled bool // whether NATS publishing is enabled
}

// NewLogger creates a new load-phase logger. nc may be nil for local-only
// logging.
func NewLogger(nc *nats.Conn, logger *slog.Logger) *Logger {
	return &Logger{
		nc:      nc,
		logger:  logger,
		enabled: nc != nil,
	}
}

// Debug logs a debug-level message about an extension
func (ll *Logger) Debug(ctx context.Context, extensionName, msg string) {
	ll.publish(ctx, LogLevelDebug, extensionName, msg, "")
	if ll.logger != nil {
		ll.logger.Debug(msg, "extension", extensionName)
	}
}

// Info logs an info-level message about an extension
func (ll *Logger) Info(ctx context.Context, extensionName, msg string) {
	ll.publish(ctx, LogLevelInfo, extensionName, msg, "")
	if ll.logger != nil {
		ll.logger.Info(msg, "extension", extensionName)
	}
}

// Warn logs a warning-level message about an extension
func (ll *Logger) Warn(ctx context.Context, extensionName, msg string) {
	ll.publish(ctx, LogLevelWarn, extensionName, msg, "")
	if ll.logger != nil {
		ll.logger.Warn(msg, "extension", extensionName)
	}
}

// Error logs an error-level message about an extension with optional error
// details
func (ll *Logger) Error(ctx context.Context, extensionName, msg string, err error) {
	detail := ""
	if err != nil {
		detail = fmt.Sprintf("%+v", err)
	}
	ll.publish(ctx, LogLevelError, extensionName, msg, detail)
	if ll.logger != nil {
		ll.logger.Error(msg, "extension", extensionName, "error", err)
	}
}

// publish sends a log entry to NATS with context cancellation support
func (ll *Logger) publish(ctx context.Context, level LogLevel, extensionName, message, detail string) {
	if !ll.enabled {
		return
	}

	// Check context before performing I/O
	select {
	case <-ctx.Done():
		return
	default:
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Extension: extensionName,
		Message:   message,
		Detail:    detail,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		// Failed to marshal - log locally but don't fail
		if ll.logger != nil {
			ll.logger.Error("Failed to marshal log entry", "error", err)
		}
		return
	}

	nc := ll.nc
	if nc == nil {
		return
	}

	// Publish to NATS subject: platform.load.{extension}
	subject := fmt.Sprintf("platform.load.%s", extensionName)
	if err := nc.Publish(subject, data); err != nil {
		// Failed to publish - log locally but don't fail
		if ll.logger != nil {
			ll.logger.Error("Failed to publish log to NATS", "error", err, "subject", subject)
		}
	}
}
