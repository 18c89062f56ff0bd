package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/skeltool/skel/internal/paths"
	"github.com/skeltool/skel/internal/store"
)

// sampleDoc is a small valid template document used across command
// tests. It declares one variable and a two-entry structure.
const sampleDoc = `name: sample
description: demo project
version: "1.0"
variables:
  project_name: demo
structure:
  - name: src
    type: directory
    children:
      - name: main.py
        type: file
        content: "print('{{ project_name }}')"
  - name: README.md
    type: file
    content: "# {{ project_name }}"
`

// docNamed returns a minimal valid document whose name field is name.
func docNamed(name string) string {
	return fmt.Sprintf("name: %s\nstructure:\n  - name: notes.txt\n    type: file\n    content: hello\n", name)
}

// setupHome points the storage root at a fresh temp directory.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(paths.EnvHome, home)
	return home
}

// seedTemplate stores doc under name in the active partition.
func seedTemplate(t *testing.T, name, doc string) *store.Store {
	t.Helper()
	st, err := store.Open("")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	if _, _, err := st.Create(name, []byte(doc), false); err != nil {
		t.Fatalf("seeding template %s: %v", name, err)
	}
	return st
}

// breakStoredTemplate drops an unparseable document straight into the
// active partition, bypassing validation.
func breakStoredTemplate(t *testing.T, home, filename string) {
	t.Helper()
	path := filepath.Join(home, "templates", filename)
	if err := os.WriteFile(path, []byte("name: [broken\n"), 0o644); err != nil {
		t.Fatalf("writing broken document: %v", err)
	}
}
