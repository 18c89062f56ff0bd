package commands

import (
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skeltool/skel/internal/cli"
	skelerrors "github.com/skeltool/skel/internal/errors"
	"github.com/skeltool/skel/internal/store"
	"github.com/skeltool/skel/internal/template"
	"github.com/skeltool/skel/pkg/fileutil"
)

var (
	createPath  string
	createForce bool
)

func init() {
	createCmd.Flags().StringVarP(&createPath, "path", "p", "", "path to the YAML template file (required)")
	createCmd.Flags().BoolVarP(&createForce, "force", "f", false, "overwrite if template already exists")
	_ = createCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name> --path <file>",
	Short: "Import a template file into the library",
	Long: `Import a YAML template file and save it to the template library
under the given name.

The document is validated before it is stored; a file with validation
issues is rejected and nothing is written. The stored copy is
byte-for-byte the file you imported.

Examples:
  # Import a template
  skel create web-api --path ./template.yaml

  # Replace an existing template of the same name
  skel create react-app -p ~/templates/react.yaml --force`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	return createTemplate(cmd.OutOrStdout(), args[0], createPath, createForce)
}

func createTemplate(w io.Writer, name, path string, force bool) error {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return skelerrors.NewFailure(errors.Wrap(err, "reading template file"), "")
	}
	slog.Debug("importing template", "name", name, "path", path, "bytes", len(data))

	st, err := openStore()
	if err != nil {
		return err
	}

	tmpl, warnings, err := st.Create(name, data, force)
	switch {
	case errors.Is(err, store.ErrDuplicateName):
		if st.Exists(name, true) {
			return skelerrors.NewFailure(err, "The name is held by an archived template; restore or delete it first")
		}
		return skelerrors.NewFailure(err, "Use --force to overwrite, or choose another name")
	case err != nil:
		var vErr *template.ValidationError
		if errors.As(err, &vErr) {
			return skelerrors.NewFailure(err, "Fix the issues and retry; 'skel validate' checks a file without storing it")
		}
		return err
	}

	printWarnings(w, warnings)
	cli.Successf(w, "Template %s created successfully", name)
	cli.Bulletf(w, "Name: %s", tmpl.Name)
	if tmpl.Description != "" {
		cli.Bulletf(w, "Description: %s", tmpl.Description)
	}
	cli.Bulletf(w, "Stored at: %s", st.Path(name, false))
	return nil
}
