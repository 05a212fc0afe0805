// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/conspect/conspect/internal/core/ports"
	"github.com/conspect/conspect/internal/ui/style"
)

// messager describes an error that can report its own message without the
// rest of the chain. zerr.Error (go.trai.ch/zerr v0.3.0+) provides this
// method; plain errors fall back to Error().
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing pretty output to stderr.
func New() ports.Logger {
	l := &Logger{output: os.Stderr}
	l.logger = slog.New(l.newHandler())
	return l
}

// newHandler builds the slog handler for the current output and mode.
// Callers must hold l.mu when the logger is shared.
func (l *Logger) newHandler() slog.Handler {
	w := l.output
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

// SetOutput redirects log output to w. Passing nil restores stderr.
// The current JSON mode is preserved.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.newHandler())
}

// SetJSON switches between JSON and pretty logging.
// The output destination set via SetOutput is preserved.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.newHandler())
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error. In pretty mode the error chain is unwound into a
// main message followed by an indented "Caused by:" list.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorChain(err))
}

// formatErrorChain walks the error chain and renders each link on its own
// line. zerr errors contribute their bare message; a plain error ends the
// walk with its full Error() text.
func formatErrorChain(err error) string {
	var messages []string
	current := err

	for current != nil {
		if m, ok := current.(messager); ok {
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			messages = append(messages, current.Error())
			break
		}
	}

	var out []string
	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		switch i {
		case 0:
			out = append(out, "Error: "+lines[0])
			for _, line := range lines[1:] {
				out = append(out, "       "+line)
			}
		default:
			if i == 1 {
				out = append(out, "", "  Caused by:")
			}
			out = append(out, "    "+style.Arrow+" "+lines[0])
			for _, line := range lines[1:] {
				out = append(out, "      "+line)
			}
		}
	}

	return strings.Join(out, "\n")
}
