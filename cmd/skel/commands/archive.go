package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skeltool/skel/internal/cli"
	skelerrors "github.com/skeltool/skel/internal/errors"
	"github.com/skeltool/skel/internal/store"
)

var archiveRestore bool

func init() {
	archiveCmd.Flags().BoolVarP(&archiveRestore, "restore", "r", false, "restore from the archive instead of archiving")
	rootCmd.AddCommand(archiveCmd)
}

var archiveCmd = &cobra.Command{
	Use:   "archive <name>",
	Short: "Archive or restore a template",
	Long: `Move a template into the archive, or back out of it with --restore.

Archived templates are hidden from 'skel list' and cannot be used with
'skel init', but keep their name reserved and can be restored at any
time.

Examples:
  # Put a template aside
  skel archive old-project

  # Bring it back
  skel archive old-project --restore`,
	Args: cobra.ExactArgs(1),
	RunE: runArchive,
}

func runArchive(cmd *cobra.Command, args []string) error {
	return archiveTemplate(cmd.OutOrStdout(), args[0], archiveRestore)
}

func archiveTemplate(w io.Writer, name string, restore bool) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	if restore {
		err = st.Restore(name)
	} else {
		err = st.Archive(name)
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		return notFoundFailure(err, name, st)
	case errors.Is(err, store.ErrDuplicateName):
		if restore {
			return skelerrors.NewFailure(err, "An active template holds the name; delete or rename it first")
		}
		return skelerrors.NewFailure(err,
			fmt.Sprintf("An archived template holds the name; delete it with 'skel delete %s --archived'", name))
	case err != nil:
		return err
	}

	if restore {
		cli.Successf(w, "Template %s restored from archive", name)
		return nil
	}
	cli.Successf(w, "Template %s archived", name)
	cli.Dimf(w, "Restore with 'skel archive %s --restore'", name)
	return nil
}
