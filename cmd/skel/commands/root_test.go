package commands

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skeltool/skel/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > logging.LevelTrace {
				shouldBeDisabled := tt.wantLevel - 4
				if logger.Enabled(t.Context(), shouldBeDisabled) {
					t.Errorf("expected level %v to be disabled", shouldBeDisabled)
				}
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"SKEL_DEBUG=1", "1", slog.LevelDebug},
		{"SKEL_DEBUG=true", "true", slog.LevelDebug},
		{"SKEL_DEBUG=2", "2", logging.LevelTrace},
		{"SKEL_DEBUG=0", "0", slog.LevelWarn},
		{"SKEL_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv("SKEL_DEBUG", tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
		})
	}
}

func TestSetupLogging_FlagBeatsEnv(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	t.Setenv("SKEL_DEBUG", "2")
	verbosity = 1

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}

	logger := slog.Default()
	if !logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("expected Info level to be enabled")
	}
	if logger.Enabled(t.Context(), logging.LevelTrace) {
		t.Error("expected Trace level to be disabled when the flag wins")
	}
}

func TestSetupLogging_QuietConflictsWithVerbose(t *testing.T) {
	origVerbosity, origQuiet := verbosity, quiet
	defer func() { verbosity, quiet = origVerbosity, origQuiet }()

	verbosity = 1
	quiet = true
	if err := setupLogging(rootCmd); err == nil {
		t.Error("expected an error for --quiet with --verbose")
	}
}

// execute runs the root command with args and captures both streams.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err = Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestExecute_RendersFailureWithSuggestion(t *testing.T) {
	setupHome(t)

	_, stderr, err := execute(t, "source", "ghost", "--raw")
	if err == nil {
		t.Fatal("expected an error for a missing template")
	}
	if !strings.Contains(stderr, "template not found") {
		t.Errorf("stderr = %q, want the failure rendered", stderr)
	}
	if !strings.Contains(stderr, "skel list") {
		t.Errorf("stderr = %q, want the suggestion rendered", stderr)
	}
}

func TestExecute_AlreadyReportedStaysQuiet(t *testing.T) {
	setupHome(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("description: no name\n"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	stdout, stderr, err := execute(t, "validate", path)
	if err == nil {
		t.Fatal("expected a non-zero exit for an invalid document")
	}
	if !strings.Contains(stdout, "name is required") {
		t.Errorf("stdout = %q, want the issues reported there", stdout)
	}
	if strings.Contains(stderr, "name is required") {
		t.Errorf("stderr = %q, issues must not be rendered twice", stderr)
	}
}

func TestExecute_Version(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := strings.TrimSpace(stdout); got != "skel version "+version {
		t.Errorf("stdout = %q", got)
	}
}

func TestRootCmd_Metadata(t *testing.T) {
	if rootCmd.Use != "skel" {
		t.Errorf("Use = %q, want skel", rootCmd.Use)
	}
	if !rootCmd.SilenceErrors || !rootCmd.SilenceUsage {
		t.Error("root command must silence cobra's own error and usage output")
	}
	subs := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		subs[sub.Name()] = true
	}
	for _, name := range []string{
		"create", "init", "list", "source", "edit", "export",
		"duplicate", "delete", "archive", "validate", "config", "version",
	} {
		if !subs[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}
