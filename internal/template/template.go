// Package template defines the template document model, its YAML
// decoding, and validation. A document describes a named directory/file
// tree plus default values for the {{ placeholder }} markers its file
// contents may carry.
//
// Decoding ([Parse]) and validation ([Document.Validate]) are separate:
// parsing fails only on malformed YAML, while validation checks the
// rules and reports every violation at once.
package template

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/skeltool/skel/pkg/placeholder"
)

// NodeType discriminates the two node kinds a template structure may
// declare. Consumers dispatch with a switch and must treat any other
// value as an error.
type NodeType string

const (
	// NodeDirectory nodes materialize as directories and may carry children.
	NodeDirectory NodeType = "directory"

	// NodeFile nodes materialize as files with optional content and must
	// not carry children.
	NodeFile NodeType = "file"
)

// Template is the validated form of a template document.
type Template struct {
	// Name identifies the template. Case-sensitive, a single path segment.
	Name string

	// Description is free-form text shown in listings.
	Description string

	// Version is informational only; no ordering semantics are attached.
	Version string

	// Variables maps placeholder names to their default values.
	Variables map[string]string

	// Structure is the declared node tree, in declaration order.
	Structure []Node
}

// Node is one entry of a template structure tree.
type Node struct {
	Name     string
	Type     NodeType
	Content  string // file nodes only
	Children []Node // directory nodes only
}

// Placeholders returns the distinct placeholder names referenced by the
// template's file contents, in depth-first declaration order.
func (t *Template) Placeholders() []string {
	var names []string
	seen := make(map[string]struct{})

	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, node := range nodes {
			for _, name := range placeholder.Names(node.Content) {
				if _, dup := seen[name]; dup {
					continue
				}
				seen[name] = struct{}{}
				names = append(names, name)
			}
			walk(node.Children)
		}
	}
	walk(t.Structure)
	return names
}

// CheckName reports whether name is usable as a template name or a
// structure node name: non-empty, free of path separators, and not a
// relative path segment. Both validation and the store key check share
// these rules.
func CheckName(name string) error {
	if name == "" {
		return errors.New("name is required")
	}
	if strings.ContainsAny(name, `/\`) {
		return errors.New("name cannot contain path separators")
	}
	if name == "." || name == ".." {
		return errors.Newf("name cannot be %q", name)
	}
	return nil
}
