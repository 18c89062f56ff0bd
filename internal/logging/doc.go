// Package logging builds the slog loggers used by the skel CLI.
//
// Text output is tuned for a terminal: git-style level tags
// ("warning:", "error:"), no timestamps, and key=value attributes
// after the message. Info records print bare so normal narration reads
// like plain output. JSON output uses slog's standard JSON handler,
// one object per line, and --log-file adds a second JSON sink next to
// stderr.
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Output: os.Stderr,
//	})
//	logger.Debug("rendering tree", "template", "web-api")
//
// The root command installs the configured logger with slog.SetDefault;
// commands log through the package-level slog functions. The core
// packages (config, template, store, generator) return structured
// results instead of logging.
//
// Color honors NO_COLOR, CLICOLOR_FORCE, and TERM=dumb; see
// [SupportsColor].
package logging
