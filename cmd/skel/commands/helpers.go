package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/skeltool/skel/internal/cli"
	"github.com/skeltool/skel/internal/config"
	skelerrors "github.com/skeltool/skel/internal/errors"
	"github.com/skeltool/skel/internal/store"
)

// openStore opens the template library at the resolved storage root.
func openStore() (*store.Store, error) {
	st, err := store.Open("")
	if err != nil {
		return nil, skelerrors.NewFailure(err, "Check that the storage root is writable, or point SKEL_HOME elsewhere")
	}
	slog.Debug("opened template library", "root", st.Root())
	return st, nil
}

// resolveConfig resolves the effective settings for the current
// directory, turning a malformed config file into a reported failure.
func resolveConfig() (*config.Config, error) {
	cfg, err := config.Resolve("")
	if err != nil {
		var parseErr *config.ParseError
		if errors.As(err, &parseErr) {
			return nil, skelerrors.NewFailure(err, "Fix or remove the file and retry")
		}
		return nil, err
	}
	slog.Debug("resolved configuration",
		"global", cfg.GlobalPath,
		"local", cfg.LocalPath,
		"settings", len(cfg.Settings))
	return cfg, nil
}

// pickOrName returns args[0] when present, otherwise opens the fuzzy
// picker over the chosen partition.
func pickOrName(args []string, st *store.Store, archived bool) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	summaries, err := st.List(archived)
	if err != nil {
		return "", errors.Wrap(err, "listing templates")
	}
	if len(summaries) == 0 {
		return "", skelerrors.NewFailure(errors.New("no templates in the library"),
			"Import one with 'skel create <name> --path <file>'")
	}
	return cli.PickTemplate(summaries)
}

// cancelled reports whether err is a graceful user abort, rendering
// the notice when it is.
func cancelled(w io.Writer, err error) bool {
	if errors.Is(err, skelerrors.ErrAborted) {
		cli.Dimf(w, "cancelled")
		return true
	}
	return false
}

// printWarnings renders non-fatal warnings.
func printWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	cli.Warnf(w, "%d warning(s):", len(warnings))
	for _, warning := range warnings {
		cli.Bulletf(w, "%s", warning)
	}
}

// notFoundFailure maps store.ErrNotFound to a failure with a hint
// about where the template actually is.
func notFoundFailure(err error, name string, st *store.Store) error {
	if st != nil {
		switch {
		case st.Exists(name, true):
			return skelerrors.NewFailure(err,
				fmt.Sprintf("It is archived; pass --archived or run 'skel archive %s --restore'", name))
		case st.Exists(name, false):
			return skelerrors.NewFailure(err, "The template is active, not archived")
		}
	}
	return skelerrors.NewFailure(err, "Run 'skel list' to see available templates")
}

// reported signals a non-zero exit for a failure the command has
// already rendered itself.
func reported() error {
	return skelerrors.NewExitError(nil, skelerrors.ExitFailure)
}
