// Package commands implements the CLI commands for skel.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skeltool/skel/internal/cli"
	skelerrors "github.com/skeltool/skel/internal/errors"
	"github.com/skeltool/skel/internal/logging"
)

// Build metadata set via ldflags.
// Defaults cover local builds.
var (
	version = "0.1.0"
	commit  = "none"
	date    = "unknown"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", string(logging.FormatText),
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("skel version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "skel",
	Short: "Template-driven project scaffolding",
	Long: `skel keeps a personal library of project templates and stamps out
directory trees from them.

A template is a single YAML document: a name, default values for
{{ placeholder }} variables, and the directory/file structure to
generate. Templates live under $SKEL_HOME (or the XDG data directory)
and can be archived without deleting them.`,
	Example: `  # Import a template file into the library
  skel create web-api --path ./web-api.yaml

  # Generate a project from it
  skel init web-api --output ./my-service --var module=example.com/my-service

  # See what is in the library
  skel list

  See Also: skel validate, skel edit, skel config`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging wires the default logger from the persistent flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return skelerrors.NewFailure(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		// The flag wins; SKEL_DEBUG covers tools that cannot pass flags.
		if v == 0 {
			switch os.Getenv("SKEL_DEBUG") {
			case "1", "true":
				v = 2 // debug
			case "2":
				v = 3 // trace
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	var fileSink io.Writer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return skelerrors.NewFailure(errors.Wrap(err, "opening log file"), "")
		}
		fileSink = f
	}

	slog.SetDefault(logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
		File:   fileSink,
	}))

	return nil
}

// Execute runs the root command and renders any failure once, to
// stderr. The returned error is non-nil exactly when the process
// should exit non-zero.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	stderr := rootCmd.ErrOrStderr()

	var exitErr *skelerrors.ExitError
	if errors.As(err, &exitErr) {
		// A nil Err means the command already reported the details
		// and only wants the exit code.
		if exitErr.Err != nil {
			cli.Failf(stderr, "%v", exitErr.Err)
		}
		if exitErr.Suggestion != "" {
			cli.Dimf(stderr, "%s", exitErr.Suggestion)
		}
		if exitErr.Code == skelerrors.ExitSuccess {
			return nil
		}
		return err
	}

	cli.Failf(stderr, "%v", err)
	return err
}
