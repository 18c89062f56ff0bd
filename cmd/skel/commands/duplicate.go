package commands

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skeltool/skel/internal/cli"
	skelerrors "github.com/skeltool/skel/internal/errors"
	"github.com/skeltool/skel/internal/store"
)

var duplicateForce bool

func init() {
	duplicateCmd.Flags().BoolVarP(&duplicateForce, "force", "f", false, "overwrite if the new name already exists")
	rootCmd.AddCommand(duplicateCmd)
}

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <name> <new-name>",
	Short: "Copy a template under a new name",
	Long: `Copy an active template under a new name. The copy is identical to
the source except for the document's name field, which is rewritten to
match the new name.

Examples:
  # Fork a template before experimenting
  skel duplicate web-api web-api-v2

  # Replace an existing copy
  skel duplicate react-app react-app-ts --force`,
	Args: cobra.ExactArgs(2),
	RunE: runDuplicate,
}

func runDuplicate(cmd *cobra.Command, args []string) error {
	return duplicateTemplate(cmd.OutOrStdout(), args[0], args[1], duplicateForce)
}

func duplicateTemplate(w io.Writer, name, newName string, force bool) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	err = st.Duplicate(name, newName, force)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return notFoundFailure(err, name, st)
	case errors.Is(err, store.ErrDuplicateName):
		if st.Exists(newName, true) {
			return skelerrors.NewFailure(err, "The new name is held by an archived template; restore or delete it first")
		}
		return skelerrors.NewFailure(err, "Use --force to overwrite, or choose another name")
	case err != nil:
		return err
	}

	cli.Successf(w, "Template duplicated successfully")
	cli.Bulletf(w, "From: %s", name)
	cli.Bulletf(w, "To:   %s", newName)
	return nil
}
