package mesh

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
)

// Logger wraps slog.Logger with registry-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithIndex adds a shape index field to the logger.
func (l *Logger) WithIndex(i shape.Index) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", int32(i)),
	}
}

// WithShape adds the key and type of s to the logger.
func (l *Logger) WithShape(s shape.Shape) *Logger {
	if shape.IsNull(s) {
		return &Logger{Logger: l.Logger.With("shape", "null")}
	}
	return &Logger{
		Logger: l.Logger.With("shape", uint64(s.Key()), "type", s.Type().String()),
	}
}

// LogBuild logs a full index and ancestor build.
func (l *Logger) LogBuild(root shape.Shape, indexed int, took time.Duration, err error) {
	ctx := context.Background()
	if err != nil {
		l.WithShape(root).ErrorContext(ctx, "registry build failed",
			"error", err,
		)
		return
	}
	l.WithShape(root).InfoContext(ctx, "registry built",
		"indexed", indexed,
		"took", took,
	)
}

// LogCompound logs the synthesis of a compound submesh.
func (l *Logger) LogCompound(s shape.Shape, limit shape.Type, i shape.Index, children, fresh int, err error) {
	ctx := context.Background()
	if err != nil {
		l.WithShape(s).ErrorContext(ctx, "compound submesh failed",
			"limit", limit.String(),
			"error", err,
		)
		return
	}
	l.WithShape(s).WithIndex(i).DebugContext(ctx, "compound submesh added",
		"limit", limit.String(),
		"children", children,
		"fresh", fresh,
	)
}

// LogReset logs the registry returning to the empty state.
func (l *Logger) LogReset(dropped int) {
	l.InfoContext(context.Background(), "registry cleared",
		"submeshes", dropped,
	)
}

// LogMiss logs a lookup of a shape that has no index.
func (l *Logger) LogMiss(s shape.Shape) {
	l.WithShape(s).DebugContext(context.Background(), "shape not indexed")
}
