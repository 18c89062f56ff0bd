package generator

import (
	"path/filepath"
	"strings"

	"github.com/skeltool/skel/internal/template"
)

// checkTree walks the declared structure before anything touches the
// filesystem and collects every node whose name would land outside the
// destination. Validation already rejects such names; this scan keeps
// the guarantee for templates that arrive unvalidated.
func checkTree(nodes []template.Node, dest string) *UnsafePathError {
	var offenders []string

	var walk func(nodes []template.Node, rel string)
	walk = func(nodes []template.Node, rel string) {
		for _, node := range nodes {
			label := node.Name
			if rel != "" {
				label = rel + "/" + node.Name
			}
			if template.CheckName(node.Name) != nil || escapes(dest, label) {
				// The subtree under an unsafe node has no usable
				// anchor, so it is not descended into.
				offenders = append(offenders, label)
				continue
			}
			walk(node.Children, label)
		}
	}
	walk(nodes, "")

	if len(offenders) > 0 {
		return &UnsafePathError{Paths: offenders}
	}
	return nil
}

// escapes reports whether label, joined under dest and cleaned, resolves
// anywhere other than strictly below dest.
func escapes(dest, label string) bool {
	target := filepath.Join(dest, filepath.FromSlash(label))
	rel, err := filepath.Rel(dest, target)
	if err != nil {
		return true
	}
	return rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
