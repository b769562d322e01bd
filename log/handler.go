package log

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const termTimeFormat = "01-02|15:04:05.000"

// TerminalHandler writes one human readable line per record:
//
//	INFO [01-02|15:04:05.000] message   module=cli_mod key=value
type TerminalHandler struct {
	mu       *sync.Mutex
	wr       io.Writer
	lvl      slog.Level
	useColor bool
	attrs    []slog.Attr
}

// NewTerminalHandlerWithLevel returns a handler which only emits records at
// or above lvl.
func NewTerminalHandlerWithLevel(wr io.Writer, lvl slog.Level, useColor bool) *TerminalHandler {
	return &TerminalHandler{mu: new(sync.Mutex), wr: wr, lvl: lvl, useColor: useColor}
}

func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lvl
}

func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	lvl := LevelAlignedString(r.Level)
	if h.useColor {
		lvl = colorize(r.Level, lvl)
	}
	b.WriteString(lvl)
	b.WriteString("[")
	b.WriteString(r.Time.Format(termTimeFormat))
	b.WriteString("] ")
	b.WriteString(r.Message)
	if r.NumAttrs() > 0 || len(h.attrs) > 0 {
		b.WriteString(strings.Repeat(" ", max(1, 40-len(r.Message))))
	}
	write := func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%s", a.Key, formatValue(a.Value))
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.wr, b.String())
	return err
}

func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TerminalHandler{
		mu:       h.mu,
		wr:       h.wr,
		lvl:      h.lvl,
		useColor: h.useColor,
		attrs:    append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	panic("not implemented")
}

func colorize(l slog.Level, s string) string {
	var code int
	switch {
	case l >= LevelCrit:
		code = 35
	case l >= slog.LevelError:
		code = 31
	case l >= slog.LevelWarn:
		code = 33
	case l >= slog.LevelInfo:
		code = 32
	case l >= slog.LevelDebug:
		code = 36
	default:
		code = 34
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", code, s)
}

func formatValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\"=") {
			return fmt.Sprintf("%q", s)
		}
		return s
	case slog.KindTime:
		return v.Time().Format(termTimeFormat)
	}
	return v.String()
}

type discardHandler struct{}

// DiscardHandler returns a no-op handler
func DiscardHandler() slog.Handler {
	return &discardHandler{}
}

func (h *discardHandler) Handle(_ context.Context, r slog.Record) error { return nil }

func (h *discardHandler) Enabled(_ context.Context, level slog.Level) bool { return false }

func (h *discardHandler) WithGroup(name string) slog.Handler { panic("not implemented") }

func (h *discardHandler) WithAttrs(attrs []slog.Attr) slog.Handler { return &discardHandler{} }

type recordJSON struct {
	Time    time.Time      `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	Attrs   map[string]any `json:"attrs,omitempty"`
}

func marshalRecords(records []slog.Record) ([]byte, error) {
	out := make([]recordJSON, 0, len(records))
	for _, r := range records {
		rj := recordJSON{Time: r.Time, Level: LevelString(r.Level), Message: r.Message}
		if r.NumAttrs() > 0 {
			rj.Attrs = make(map[string]any, r.NumAttrs())
			r.Attrs(func(a slog.Attr) bool {
				rj.Attrs[a.Key] = a.Value.Resolve().Any()
				return true
			})
		}
		out = append(out, rj)
	}
	return json.Marshal(out)
}
