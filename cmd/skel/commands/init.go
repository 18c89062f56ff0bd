package commands

import (
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skeltool/skel/internal/cli"
	skelerrors "github.com/skeltool/skel/internal/errors"
	"github.com/skeltool/skel/internal/generator"
	"github.com/skeltool/skel/internal/store"
	"github.com/skeltool/skel/internal/template"
)

// maxListedFiles caps the per-file listing after generation; larger
// trees get a one-line hint instead.
const maxListedFiles = 15

var (
	initOutput string
	initForce  bool
	initVars   []string
)

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "output directory (default from config)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "generate into a non-empty directory")
	initCmd.Flags().StringArrayVar(&initVars, "var", nil, "override a template variable (name=value, repeatable)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Scaffold a project from a template",
	Long: `Create the directory and file structure a template defines.

Without a name, an interactive picker opens over the active templates.
Variable placeholders in file content are filled from --var overrides
first, then from the defaults declared in the template.

The destination must be empty unless --force is given.

Examples:
  # Scaffold into the current directory
  skel init web-api

  # Pick a template interactively
  skel init

  # Scaffold into a new directory, overriding a variable
  skel init react-app --output ./my-app --var project_name=my-app

  # Generate into a directory that already has files in it
  skel init node-api -o ~/projects/my-api --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	return initProject(cmd.OutOrStdout(), args, initOutput, initForce, initVars)
}

func initProject(w io.Writer, args []string, output string, force bool, varFlags []string) error {
	overrides, err := parseVarFlags(varFlags)
	if err != nil {
		return skelerrors.NewFailure(err, "Pass overrides as --var name=value")
	}

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

	if output == "" {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		output = cfg.OutputDir()
	}
	if abs, err := filepath.Abs(output); err == nil {
		output = abs
	}

	tmpl, warnings, err := st.Get(name, false)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFoundFailure(err, name, st)
		}
		return skelerrors.NewFailure(err, "The stored document no longer validates; run 'skel edit' to fix it")
	}
	printWarnings(w, warnings)
	warnUnknownOverrides(w, tmpl, overrides)

	slog.Debug("generating project",
		"template", name,
		"output", output,
		"overrides", len(overrides),
		"force", force)
	res, err := generator.Generate(tmpl, output, overrides, generator.Options{Overwrite: force})
	if err != nil {
		if errors.Is(err, generator.ErrDestinationNotEmpty) {
			return skelerrors.NewFailure(err, "Use --force to generate into a non-empty directory")
		}
		var unsafeErr *generator.UnsafePathError
		if errors.As(err, &unsafeErr) {
			return skelerrors.NewFailure(err, "Fix the structure in the template; nothing was written")
		}
		var collErr *generator.CollisionError
		if errors.As(err, &collErr) && res != nil {
			if len(res.Dirs)+len(res.Files) > 0 {
				cli.Warnf(w, "partial result: %d directories and %d files were written", len(res.Dirs), len(res.Files))
			}
			printWarnings(w, res.Warnings)
			return skelerrors.NewFailure(err, "Resolve the conflicting paths and re-run")
		}
		return err
	}

	cli.Successf(w, "Project initialized from %s", name)
	cli.Bulletf(w, "Directories: %d", len(res.Dirs))
	cli.Bulletf(w, "Files: %d", len(res.Files))
	if len(res.Skipped) > 0 {
		cli.Bulletf(w, "Skipped: %d", len(res.Skipped))
	}
	cli.Bulletf(w, "Location: %s", output)
	switch {
	case len(res.Files) > 0 && len(res.Files) <= maxListedFiles:
		for _, f := range res.Files {
			cli.Dimf(w, "    %s", f)
		}
	case len(res.Files) > maxListedFiles:
		cli.Dimf(w, "Run 'tree %s' to see the full structure.", output)
	}
	printWarnings(w, res.Warnings)
	return nil
}

// warnUnknownOverrides flags --var names the template neither declares
// nor references; their values would otherwise go unused without a word.
func warnUnknownOverrides(w io.Writer, tmpl *template.Template, overrides map[string]string) {
	if len(overrides) == 0 {
		return
	}

	known := make(map[string]struct{}, len(tmpl.Variables))
	for name := range tmpl.Variables {
		known[name] = struct{}{}
	}
	for _, name := range tmpl.Placeholders() {
		known[name] = struct{}{}
	}

	var unknown []string
	for name := range overrides {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	for _, name := range unknown {
		cli.Warnf(w, "override %q matches no variable in the template", name)
	}
}

// parseVarFlags turns repeated name=value flags into an override map.
func parseVarFlags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Newf("malformed variable override %q", pair)
		}
		vars[key] = value
	}
	return vars, nil
}
