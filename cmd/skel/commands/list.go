package commands

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skeltool/skel/internal/cli"
	"github.com/skeltool/skel/internal/store"
)

var (
	listArchived bool
	listAll      bool
	listJSON     bool
)

func init() {
	listCmd.Flags().BoolVarP(&listArchived, "archived", "a", false, "list archived templates instead of active ones")
	listCmd.Flags().BoolVar(&listAll, "all", false, "list active and archived templates together")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List templates in the library",
	Long: `List saved templates with their descriptions and versions.

A query argument narrows the listing to matching names and
descriptions, best matches first. Entries that no longer parse are
shown with the failure instead of being dropped.

Examples:
  # List active templates
  skel list

  # Search by name or description
  skel list react

  # List archived templates
  skel list --archived

  # Everything, as JSON
  skel list --all --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

// summaryJSON is the JSON output shape for one template.
type summaryJSON struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
	Archived    bool   `json:"archived"`
	Error       string `json:"error,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	return listTemplates(cmd.OutOrStdout(), query, listArchived, listAll, listJSON)
}

func listTemplates(w io.Writer, query string, archived, all, asJSON bool) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	var summaries []store.Summary
	if all {
		active, err := st.List(false)
		if err != nil {
			return err
		}
		arch, err := st.List(true)
		if err != nil {
			return err
		}
		summaries = append(active, arch...)
	} else {
		summaries, err = st.List(archived)
		if err != nil {
			return err
		}
	}

	if query != "" {
		summaries = store.Search(summaries, query)
	}

	if asJSON {
		out := make([]summaryJSON, len(summaries))
		for i, sum := range summaries {
			out[i] = summaryJSON{
				Name:        sum.Name,
				Description: sum.Description,
				Version:     sum.Version,
				Archived:    sum.Archived,
			}
			if sum.Err != nil {
				out[i].Error = sum.Err.Error()
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(out), "encoding output")
	}

	cli.RenderSummaries(w, summaries, all || archived)
	if len(summaries) == 0 && !archived && query == "" {
		cli.Dimf(w, "Create one with 'skel create <name> --path <file>'")
	}
	return nil
}
