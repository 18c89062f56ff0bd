// Package editor provides utilities for launching the user's preferred text editor.
package editor

import (
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"
)

// Detect returns the editor command to use. A non-empty preferred value
// (an --editor flag or the "editor" setting) wins; otherwise the chain
// is $EDITOR, then $VISUAL, then nano if installed, then vi.
func Detect(preferred string) string {
	if preferred != "" {
		return preferred
	}

	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	return "vi"
}

// Open launches editorCmd on path with the terminal attached and blocks
// until the editor exits.
func Open(editorCmd, path string) error {
	cmd := exec.Command(editorCmd, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", editorCmd)
	}

	return nil
}
