package bitseq

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitseq-specific fields.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithWords adds the storage word width to the logger.
func (l *Logger) WithWords(bits uint) *Logger {
	return &Logger{
		Logger: l.Logger.With("word_bits", bits),
	}
}

// LogAlloc logs a storage allocation.
func (l *Logger) LogAlloc(size uint, words int, external bool) {
	l.Debug("storage allocated",
		"size", size,
		"words", words,
		"external", external,
	)
}

// LogResize logs a size change.
func (l *Logger) LogResize(from, to uint, err error) {
	if err != nil {
		l.Error("resize failed",
			"from", from,
			"to", to,
			"error", err,
		)
		return
	}
	l.Debug("resized",
		"from", from,
		"to", to,
	)
}

// LogRelease logs the release of owned storage.
func (l *Logger) LogRelease(size uint, words int) {
	l.Debug("storage released",
		"size", size,
		"words", words,
	)
}

// LogRejected logs a call rejected by argument validation.
func (l *Logger) LogRejected(op string, err error) {
	l.Debug("call rejected",
		"op", op,
		"error", err,
	)
}

// LogFrame logs the encoding or decoding of a serialized frame.
func (l *Logger) LogFrame(op string, size uint64, codec string, err error) {
	if err != nil {
		l.Warn("frame "+op+" failed",
			"size", size,
			"codec", codec,
			"error", err,
		)
		return
	}
	l.Debug("frame "+op+" completed",
		"size", size,
		"codec", codec,
	)
}
