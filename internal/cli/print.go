// Package cli provides shared presentation helpers for the skel
// command: status lines, summary tables, syntax highlighting, the
// interactive picker, and confirmation prompts.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Successf prints a green-checked status line.
func Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.GreenString("✓")+" "+fmt.Sprintf(format, args...))
}

// Failf prints a red-crossed status line.
func Failf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.RedString("✗")+" "+fmt.Sprintf(format, args...))
}

// Warnf prints a yellow warning line.
func Warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.YellowString("!")+" "+fmt.Sprintf(format, args...))
}

// Bulletf prints an indented bullet line for detail under a status line.
func Bulletf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  • %s\n", fmt.Sprintf(format, args...))
}

// Dimf prints secondary detail in muted color.
func Dimf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.New(color.FgHiBlack).Sprintf(format, args...))
}
