package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/conspect/conspect/internal/ui/output"
	"github.com/conspect/conspect/internal/ui/style"
)

// PrettyHandler renders slog records as single colored lines: a level
// icon, the message, then any attributes as key=value pairs.
type PrettyHandler struct {
	out      *termenv.Output
	minLevel slog.Level
	attrs    []slog.Attr
	group    string
}

// NewPrettyHandler creates a handler writing to w. A nil writer defaults
// to stderr.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	h := &PrettyHandler{
		out:      output.New(w),
		minLevel: slog.LevelInfo,
	}
	if opts != nil && opts.Level != nil {
		h.minLevel = opts.Level.Level()
	}
	return h
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minLevel
}

// decoration returns the line prefix and color for a record level.
func decoration(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning + " ", termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

// Handle implements slog.Handler.
//
//nolint:gocritic // the interface passes slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	prefix, color := decoration(r.Level)

	var line strings.Builder
	line.WriteString(prefix)
	line.WriteString(r.Message)

	for _, attr := range h.attrs {
		h.writeAttr(&line, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		h.writeAttr(&line, attr)
		return true
	})

	styled := h.out.String(line.String()).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// writeAttr appends one attribute as " key=value", with the group name
// dotted onto the key when set.
func (h *PrettyHandler) writeAttr(line *strings.Builder, attr slog.Attr) {
	line.WriteString(" ")
	if h.group != "" {
		line.WriteString(h.group)
		line.WriteString(".")
	}
	line.WriteString(attr.Key)
	line.WriteString("=")
	line.WriteString(attr.Value.String())
}

// WithAttrs implements slog.Handler.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup implements slog.Handler. Nested groups join with a dot.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	clone.group = name
	return &clone
}
