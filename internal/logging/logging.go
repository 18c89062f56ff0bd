package logging

import (
	"io"
	"log/slog"
	"os"
)

// Format selects how records are rendered.
type Format string

const (
	// FormatText renders records for people. The default.
	FormatText Format = "text"
	// FormatJSON renders one JSON object per line.
	FormatJSON Format = "json"
)

// LevelTrace sits one band below Debug and is enabled with -vvv. Text
// output tags these records "trace:"; JSON output names the level
// TRACE.
const LevelTrace = slog.LevelDebug - 4

// Config describes the logger that New builds.
type Config struct {
	// Level is the minimum level that produces output.
	Level slog.Level

	// Format picks the rendering for Output. Anything but FormatJSON
	// means text.
	Format Format

	// Output receives rendered records, os.Stderr when nil.
	Output io.Writer

	// File, when set, receives every record as JSON regardless of
	// Format. Backs --log-file.
	File io.Writer
}

// New builds a logger from cfg. With cfg.File set, records fan out to
// both sinks at the same level.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = newJSONHandler(out, opts)
	} else {
		handler = NewHandler(out, opts)
	}
	if cfg.File != nil {
		handler = fanout{handler, newJSONHandler(cfg.File, opts)}
	}
	return slog.New(handler)
}

// newJSONHandler wraps slog's JSON handler so the trace level reads
// "TRACE" instead of "DEBUG-4".
func newJSONHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	var o slog.HandlerOptions
	if opts != nil {
		o = *opts
	}
	o.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && a.Key == slog.LevelKey {
			if level, ok := a.Value.Any().(slog.Level); ok && level < slog.LevelDebug {
				a.Value = slog.StringValue("TRACE")
			}
		}
		return a
	}
	return slog.NewJSONHandler(w, &o)
}

// LevelFromVerbosity maps the repeated -v count to a level. Zero keeps
// only warnings and errors; each extra -v reveals one more band, down
// to LevelTrace at three.
func LevelFromVerbosity(verbosity int) slog.Level {
	switch verbosity {
	case 0:
		return slog.LevelWarn
	case 1:
		return slog.LevelInfo
	case 2:
		return slog.LevelDebug
	}
	if verbosity < 0 {
		return slog.LevelWarn
	}
	return LevelTrace
}
