// Package applog provides the driver's logging output, adapted from a
// slog.Handler written for an interactive emulator into a single-line
// format appropriate for a batch translator's -verbose output.
package applog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LogLevel is the process-wide minimum level; adjustable at runtime by the
// -verbose flag instead of being fixed at startup.
var LogLevel = &slog.LevelVar{}

// DefaultLogger returns the default logger, writing to stderr at LogLevel.
func DefaultLogger() *slog.Logger {
	return NewFormattedLogger(os.Stderr)
}

// NewFormattedLogger returns a logger using Handler to format records.
func NewFormattedLogger(out io.Writer) *slog.Logger {
	return slog.New(NewHandler(out))
}

// Handler implements slog.Handler with one line per record: "LEVEL: message
// key=value ...", matching how this driver's -verbose trace reads best as a
// stream rather than as the multi-line block a debugger screen can afford.
type Handler struct {
	mut   *sync.Mutex
	out   io.Writer
	opts  *slog.HandlerOptions
	attrs []slog.Attr
}

// NewHandler creates a Handler writing to out, gated by LogLevel.
func NewHandler(out io.Writer) *Handler {
	return &Handler{
		out: out,
		mut: new(sync.Mutex),
		opts: &slog.HandlerOptions{
			Level: LogLevel,
		},
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) Handle(_ context.Context, rec slog.Record) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s: %s", rec.Level.String(), rec.Message)

	for _, a := range h.attrs {
		appendAttr(&buf, a)
	}
	rec.Attrs(func(a slog.Attr) bool {
		appendAttr(&buf, a)
		return true
	})

	buf.WriteByte('\n')

	h.mut.Lock()
	defer h.mut.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func appendAttr(buf *bytes.Buffer, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(buf, " %s=%v", strings.ToLower(a.Key), a.Value.Any())
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{out: h.out, mut: h.mut, opts: h.opts, attrs: merged}
}
