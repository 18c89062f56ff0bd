package commands

import (
	"encoding/json"
	"io"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skeltool/skel/internal/cli"
	"github.com/skeltool/skel/internal/template"
	"github.com/skeltool/skel/pkg/fileutil"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a template file",
	Long: `Check a YAML template file without storing it. Every issue in the
document is reported in one pass, not just the first.

Exit codes:
  0 - valid document (warnings allowed)
  1 - parse failure or validation issues

Examples:
  # Check a file before importing it
  skel validate ./template.yaml

  # JSON output for CI
  skel validate ./template.yaml --json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

// validateOutput is the JSON output structure.
type validateOutput struct {
	Valid      bool          `json:"valid"`
	Template   *templateInfo `json:"template,omitempty"`
	Issues     []issueJSON   `json:"issues,omitempty"`
	Warnings   []string      `json:"warnings,omitempty"`
	ParseError string        `json:"parse_error,omitempty"`
	Path       string        `json:"path"`
}

// templateInfo carries document metadata for display.
type templateInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
}

type issueJSON struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	return validateFile(cmd.OutOrStdout(), args[0], validateJSON)
}

func validateFile(w io.Writer, path string, asJSON bool) error {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	out := &validateOutput{Path: path}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		out.ParseError = err.Error()
		return renderValidation(w, out, asJSON)
	}

	tmpl, warnings, err := template.ParseAndValidate(data, path)
	out.Warnings = warnings
	if err != nil {
		var vErr *template.ValidationError
		if errors.As(err, &vErr) {
			for _, issue := range vErr.Issues {
				out.Issues = append(out.Issues, issueJSON{
					Path:    issue.Path,
					Message: issue.Message,
					Value:   issue.Value,
				})
			}
		} else {
			out.ParseError = err.Error()
		}
		return renderValidation(w, out, asJSON)
	}

	out.Valid = true
	out.Template = &templateInfo{
		Name:        tmpl.Name,
		Description: tmpl.Description,
		Version:     tmpl.Version,
	}
	return renderValidation(w, out, asJSON)
}

func renderValidation(w io.Writer, out *validateOutput, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return errors.Wrap(err, "encoding output")
		}
		if !out.Valid {
			return reported()
		}
		return nil
	}

	switch {
	case out.ParseError != "":
		cli.Failf(w, "validation failed: %s", out.ParseError)
		return reported()
	case !out.Valid:
		cli.Failf(w, "%d validation issue(s):", len(out.Issues))
		for _, issue := range out.Issues {
			iss := template.Issue{Path: issue.Path, Message: issue.Message, Value: issue.Value}
			cli.Bulletf(w, "%s", iss.String())
		}
		printWarnings(w, out.Warnings)
		return reported()
	}

	cli.Successf(w, "Validation passed")
	cli.Bulletf(w, "Name: %s", out.Template.Name)
	if out.Template.Description != "" {
		cli.Bulletf(w, "Description: %s", out.Template.Description)
	}
	if out.Template.Version != "" {
		cli.Bulletf(w, "Version: %s", out.Template.Version)
	}
	printWarnings(w, out.Warnings)
	return nil
}
