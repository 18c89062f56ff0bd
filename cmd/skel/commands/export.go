package commands

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skeltool/skel/internal/cli"
	skelerrors "github.com/skeltool/skel/internal/errors"
	"github.com/skeltool/skel/internal/store"
	"github.com/skeltool/skel/pkg/fileutil"
)

var (
	exportOutput string
	exportForce  bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file path (required)")
	exportCmd.Flags().BoolVarP(&exportForce, "force", "f", false, "overwrite if the file already exists")
	_ = exportCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <name> --output <file>",
	Short: "Export a template to a file",
	Long: `Write the stored document of a template to an external file, for
sharing or backup. The exported bytes are exactly what 'skel source
--raw' prints.

Examples:
  # Export next to the current directory
  skel export web-api --output ./template.yaml

  # Overwrite an earlier export
  skel export react-app -o ~/backups/react.yaml --force`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	return exportTemplate(cmd.OutOrStdout(), args[0], exportOutput, exportForce)
}

func exportTemplate(w io.Writer, name, output string, force bool) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	data, err := st.Raw(name, false)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFoundFailure(err, name, st)
		}
		return err
	}

	if abs, err := filepath.Abs(output); err == nil {
		output = abs
	}
	if _, err := os.Stat(output); err == nil && !force {
		return skelerrors.NewFailure(errors.Newf("file %s already exists", output),
			"Use --force to overwrite")
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	if err := fileutil.AtomicWriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(err, "writing export")
	}

	cli.Successf(w, "Template %s exported successfully", name)
	cli.Bulletf(w, "Saved to: %s", output)
	return nil
}
