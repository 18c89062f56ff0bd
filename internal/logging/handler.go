package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Handler renders slog records the way a command-line tool talks to a
// person: a git-style level tag, the message, then key=value
// attributes. No timestamps.
//
//	warning: skipped main.go template=web-api
//
// Info records drop the tag entirely so ordinary narration stays
// clean. Records below Debug are tagged "trace:".
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	prefix []byte   // attributes from WithAttrs, rendered once
	groups []string // open groups, dot-joined into attribute keys

	errColor  *color.Color
	warnColor *color.Color
	dimColor  *color.Color
	keyColor  *color.Color
}

// NewHandler creates a Handler writing to out. A nil opts means Info
// as the minimum level. Color is used only when out supports it, see
// SupportsColor.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{
		out: out,
		mu:  &sync.Mutex{},
	}
	if opts != nil {
		h.opts = *opts
	}
	if SupportsColor(out) {
		h.errColor = color.New(color.FgRed, color.Bold)
		h.warnColor = color.New(color.FgYellow)
		h.dimColor = color.New(color.FgHiBlack)
		h.keyColor = color.New(color.FgCyan)
	}
	return h
}

// Enabled reports whether records at level produce output.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.opts.Level != nil {
		min = h.opts.Level.Level()
	}
	return level >= min
}

// levelTag returns the printed tag for a level. Info returns "".
func levelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "error:"
	case level >= slog.LevelWarn:
		return "warning:"
	case level >= slog.LevelInfo:
		return ""
	case level >= slog.LevelDebug:
		return "debug:"
	default:
		return "trace:"
	}
}

func (h *Handler) tagColor(level slog.Level) *color.Color {
	switch {
	case level >= slog.LevelError:
		return h.errColor
	case level >= slog.LevelWarn:
		return h.warnColor
	default:
		return h.dimColor
	}
}

// Handle renders the record into one line and writes it with a single
// Write call, so concurrent loggers cannot interleave fragments.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if tag := levelTag(r.Level); tag != "" {
		if c := h.tagColor(r.Level); c != nil {
			tag = c.Sprint(tag)
		}
		buf.WriteString(tag)
		buf.WriteByte(' ')
	}
	buf.WriteString(r.Message)
	buf.Write(h.prefix)
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&buf, a, h.groups)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) appendAttr(buf *bytes.Buffer, a slog.Attr, groups []string) {
	a.Value = a.Value.Resolve()
	if a.Key == "" && a.Value.Any() == nil {
		return
	}

	// Group values flatten into dotted keys.
	if a.Value.Kind() == slog.KindGroup {
		members := a.Value.Group()
		if len(members) == 0 {
			return
		}
		if a.Key != "" {
			groups = append(append([]string(nil), groups...), a.Key)
		}
		for _, member := range members {
			h.appendAttr(buf, member, groups)
		}
		return
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	if h.keyColor != nil {
		key = h.keyColor.Sprint(key)
	}
	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteByte('=')
	buf.WriteString(renderValue(a.Value))
}

// renderValue quotes values that would blur the key=value boundaries.
func renderValue(v slog.Value) string {
	s := v.String()
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

// WithAttrs renders the attributes once, against the groups open at
// the time of the call, and appends them to every later record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var buf bytes.Buffer
	for _, a := range attrs {
		h.appendAttr(&buf, a, h.groups)
	}
	nh := *h
	nh.prefix = append(append([]byte(nil), h.prefix...), buf.Bytes()...)
	return &nh
}

// WithGroup opens a group. Group names print as dotted key prefixes.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string(nil), h.groups...), name)
	return &nh
}
