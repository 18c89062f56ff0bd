package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/skeltool/skel/internal/store"
)

// RenderSummaries writes template summaries as a table. Broken entries
// render their load error in place of a description, so one bad file
// cannot hide the rest of the library. withStatus adds an
// active/archived column for mixed listings.
func RenderSummaries(w io.Writer, summaries []store.Summary, withStatus bool) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "(no templates)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := table.Row{"Name", "Description", "Version"}
	if withStatus {
		header = append(header, "Status")
	}
	t.AppendHeader(header)

	for _, s := range summaries {
		desc := s.Description
		if s.Err != nil {
			desc = color.RedString("invalid: %s", firstLine(s.Err.Error()))
		}
		row := table.Row{s.Name, desc, s.Version}
		if withStatus {
			status := "active"
			if s.Archived {
				status = "archived"
			}
			row = append(row, status)
		}
		t.AppendRow(row)
	}

	t.Render()
	fmt.Fprintf(w, "(%d templates)\n", len(summaries))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
