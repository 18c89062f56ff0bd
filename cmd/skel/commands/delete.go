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

var (
	deleteForce    bool
	deleteArchived bool
)

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "skip the confirmation prompt")
	deleteCmd.Flags().BoolVarP(&deleteArchived, "archived", "a", false, "delete from the archive instead of the active library")
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a template permanently",
	Long: `Delete a template from the library. This cannot be undone; consider
'skel archive' if you may want the template back later.

A confirmation prompt is shown unless --force is given.

Examples:
  # Delete with confirmation
  skel delete old-project

  # Delete without confirmation
  skel delete old-project --force

  # Delete an archived template
  skel delete retired-stack --archived`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	return deleteTemplate(cmd.OutOrStdout(), cmd.InOrStdin(), args[0], deleteForce, deleteArchived)
}

func deleteTemplate(w io.Writer, r io.Reader, name string, force, archived bool) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	if !st.Exists(name, archived) {
		return notFoundFailure(errors.Wrap(store.ErrNotFound, name), name, st)
	}

	if !force {
		question := fmt.Sprintf("Delete template %s? This cannot be undone.", name)
		ok, err := cli.NewPrompterWithIO(r, w).Confirm(question, false)
		if err != nil && !errors.Is(err, skelerrors.ErrAborted) {
			return err
		}
		if err != nil || !ok {
			cli.Dimf(w, "deletion cancelled")
			return nil
		}
	}

	if err := st.Delete(name, archived); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFoundFailure(err, name, st)
		}
		return err
	}

	cli.Successf(w, "Template %s deleted", name)
	return nil
}
