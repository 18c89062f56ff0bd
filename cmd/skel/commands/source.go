package commands

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skeltool/skel/internal/cli"
	"github.com/skeltool/skel/internal/store"
)

var (
	sourceArchived bool
	sourceRaw      bool
)

func init() {
	sourceCmd.Flags().BoolVarP(&sourceArchived, "archived", "a", false, "look in the archive instead of the active library")
	sourceCmd.Flags().BoolVarP(&sourceRaw, "raw", "r", false, "print the document without highlighting")
	rootCmd.AddCommand(sourceCmd)
}

var sourceCmd = &cobra.Command{
	Use:   "source [name]",
	Short: "Show the stored YAML of a template",
	Long: `Print the stored YAML document of a template, exactly as it was
imported. Without a name, an interactive picker opens.

Output to a terminal is syntax highlighted; use --raw (or pipe the
output) to get the plain bytes.

Examples:
  # Show a template with highlighting
  skel source web-api

  # Show an archived template
  skel source old-stack --archived

  # Plain bytes, e.g. for redirecting to a file
  skel source web-api --raw > template.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSource,
}

func runSource(cmd *cobra.Command, args []string) error {
	return showSource(cmd.OutOrStdout(), args, sourceArchived, sourceRaw)
}

func showSource(w io.Writer, args []string, archived, raw bool) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	name, err := pickOrName(args, st, archived)
	if err != nil {
		if cancelled(w, err) {
			return nil
		}
		return err
	}

	data, err := st.Raw(name, archived)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFoundFailure(err, name, st)
		}
		return err
	}

	if raw {
		_, err := w.Write(data)
		return errors.Wrap(err, "writing output")
	}
	return cli.Highlight(w, string(data), "yaml")
}
