package commands

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skeltool/skel/internal/cli"
	"github.com/skeltool/skel/internal/editor"
	skelerrors "github.com/skeltool/skel/internal/errors"
	"github.com/skeltool/skel/internal/store"
	"github.com/skeltool/skel/internal/template"
	"github.com/skeltool/skel/pkg/fileutil"
)

var editEditor string

func init() {
	editCmd.Flags().StringVarP(&editEditor, "editor", "e", "", "editor command (default: from config, $EDITOR, $VISUAL)")
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Open a template in your editor",
	Long: `Open the stored document of an active template in an editor and
validate it after the editor exits.

A document saved with validation issues is kept as-is; the issues are
reported so you can fix them in a follow-up edit.

Examples:
  # Edit with the configured editor
  skel edit web-api

  # Pick a template interactively
  skel edit

  # One-off editor override
  skel edit react-app --editor vim`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	return editTemplate(cmd.OutOrStdout(), args, editEditor)
}

func editTemplate(w io.Writer, args []string, editorFlag string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	name, err := pickOrName(args, st, false)
	if err != nil {
		if cancelled(w, err) {
			return nil
		}
		return err
	}

	before, err := st.Raw(name, false)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFoundFailure(err, name, st)
		}
		return err
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	preferred := editorFlag
	if preferred == "" {
		preferred = cfg.Editor()
	}
	editorCmd := editor.Detect(preferred)

	path := st.Path(name, false)
	cli.Dimf(w, "Opening %s in %s", path, editorCmd)
	if err := editor.Open(editorCmd, path); err != nil {
		return skelerrors.NewFailure(err, "Set a different editor with 'skel config set editor <command>'")
	}

	after, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return errors.Wrap(err, "re-reading template")
	}
	if bytes.Equal(before, after) {
		cli.Dimf(w, "no changes")
		return nil
	}

	_, warnings, err := template.ParseAndValidate(after, name)
	if err != nil {
		var vErr *template.ValidationError
		if errors.As(err, &vErr) {
			cli.Warnf(w, "the saved document has %d validation issue(s):", len(vErr.Issues))
			for _, issue := range vErr.Issues {
				cli.Bulletf(w, "%s", issue)
			}
		} else {
			cli.Warnf(w, "the saved document no longer parses: %v", err)
		}
		cli.Dimf(w, "The file was kept; run 'skel edit %s' to fix it", name)
		return nil
	}
	printWarnings(w, warnings)

	cli.Successf(w, "Template %s updated and validated", name)
	return nil
}
