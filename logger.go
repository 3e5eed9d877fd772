package qsynth

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with qsynth-specific helpers so synthesis
// operations log consistent field names.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output. It is the
// default for a Synthesizer.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithEpsilon adds an epsilon field to the logger.
func (l *Logger) WithEpsilon(epsilon float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("epsilon", epsilon),
	}
}

// LogPrepare logs a state preparation synthesis.
func (l *Logger) LogPrepare(numQubits, ops int, err error) {
	if err != nil {
		l.Error("state preparation failed",
			"qubits", numQubits,
			"error", err,
		)
	} else {
		l.Debug("state preparation synthesized",
			"qubits", numQubits,
			"ops", ops,
		)
	}
}

// LogEncode logs a block encoding synthesis.
func (l *Logger) LogEncode(numQubits, ops int, frobeniusNorm float64, err error) {
	if err != nil {
		l.Error("block encoding failed",
			"qubits", numQubits,
			"error", err,
		)
	} else {
		l.Debug("block encoding synthesized",
			"qubits", numQubits,
			"ops", ops,
			"frobenius_norm", frobeniusNorm,
		)
	}
}
