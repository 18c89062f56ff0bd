package template

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Validate checks the document against the template rules and builds the
// typed Template. Every violation is collected before returning; the
// error, when non-nil, is a *ValidationError carrying all of them. The
// string slice holds non-fatal warnings (unknown keys, ignored fields)
// and is populated even when validation fails.
func (d *Document) Validate() (*Template, []string, error) {
	v := &docValidator{}
	tmpl := v.run(d)
	if len(v.issues) > 0 {
		return nil, v.warnings, &ValidationError{Issues: v.issues}
	}
	return tmpl, v.warnings, nil
}

type docValidator struct {
	issues   []*Issue
	warnings []string
}

func (v *docValidator) addf(path, value, format string, args ...any) {
	v.issues = append(v.issues, &Issue{
		Path:    path,
		Message: fmt.Sprintf(format, args...),
		Value:   value,
	})
}

func (v *docValidator) warnf(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func (v *docValidator) run(d *Document) *Template {
	tmpl := &Template{Variables: map[string]string{}}
	var hasName, hasStructure bool

	for i := 0; i+1 < len(d.top.Content); i += 2 {
		keyNode := resolved(d.top.Content[i])
		valNode := resolved(d.top.Content[i+1])
		if keyNode.Kind != yaml.ScalarNode {
			v.warnf("ignoring non-scalar top-level key")
			continue
		}

		switch key := keyNode.Value; key {
		case "name":
			hasName = true
			if name, ok := stringScalar(valNode); ok {
				tmpl.Name = name
				if err := CheckName(name); err != nil {
					v.addf("", name, "%s", err)
				}
			} else {
				v.addf("", "", "name must be a string")
			}
		case "description":
			if s, ok := textScalar(valNode); ok {
				tmpl.Description = s
			} else {
				v.addf("", "", "description must be a scalar")
			}
		case "version":
			if s, ok := textScalar(valNode); ok {
				tmpl.Version = s
			} else {
				v.addf("", "", "version must be a scalar")
			}
		case "variables":
			v.collectVariables(valNode, tmpl)
		case "structure":
			hasStructure = true
			if valNode.Kind != yaml.SequenceNode {
				v.addf("", "", "structure must be a sequence, not a %s", kindName(valNode.Kind))
				continue
			}
			tmpl.Structure = v.collectNodes(valNode, "structure")
		default:
			v.warnf("unknown key %q ignored", key)
		}
	}

	if !hasName {
		v.addf("", "", "name is required")
	}
	if !hasStructure {
		v.addf("", "", "structure is required")
	}

	return tmpl
}

func (v *docValidator) collectVariables(n *yaml.Node, tmpl *Template) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return // variables: with no entries
	}
	if n.Kind != yaml.MappingNode {
		v.addf("", "", "variables must be a mapping, not a %s", kindName(n.Kind))
		return
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := resolved(n.Content[i])
		valNode := resolved(n.Content[i+1])

		key, ok := textScalar(keyNode)
		if !ok {
			v.addf("variables", "", "keys must be scalars")
			continue
		}
		value, ok := textScalar(valNode)
		if !ok {
			v.addf("variables."+key, "", "value must be a scalar")
			continue
		}
		tmpl.Variables[key] = value
	}
}

// collectNodes validates one children sequence. path names the sequence
// itself ("structure", "structure[0].children", ...); items are located
// by index below it.
func (v *docValidator) collectNodes(seq *yaml.Node, path string) []Node {
	nodes := make([]Node, 0, len(seq.Content))
	seen := make(map[string]struct{})

	for i, item := range seq.Content {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		node, ok := v.collectNode(resolved(item), itemPath)
		if !ok {
			continue
		}
		if node.Name != "" {
			if _, dup := seen[node.Name]; dup {
				v.addf(path, node.Name, "duplicate sibling name")
			}
			seen[node.Name] = struct{}{}
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func (v *docValidator) collectNode(item *yaml.Node, path string) (Node, bool) {
	if item.Kind != yaml.MappingNode {
		v.addf(path, "", "node must be a mapping, not a %s", kindName(item.Kind))
		return Node{}, false
	}

	var (
		node       Node
		hasName    bool
		hasType    bool
		childCount int
	)

	for i := 0; i+1 < len(item.Content); i += 2 {
		keyNode := resolved(item.Content[i])
		valNode := resolved(item.Content[i+1])
		if keyNode.Kind != yaml.ScalarNode {
			v.warnf("%s: ignoring non-scalar key", path)
			continue
		}

		switch key := keyNode.Value; key {
		case "name":
			hasName = true
			if name, ok := stringScalar(valNode); ok {
				node.Name = name
				if err := CheckName(name); err != nil {
					v.addf(path, name, "%s", err)
				}
			} else {
				v.addf(path, "", "name must be a string")
			}
		case "type":
			hasType = true
			if s, ok := stringScalar(valNode); ok {
				switch NodeType(s) {
				case NodeDirectory, NodeFile:
					node.Type = NodeType(s)
				default:
					v.addf(path, s, "type must be %q or %q", NodeDirectory, NodeFile)
				}
			} else {
				v.addf(path, "", "type must be a string")
			}
		case "content":
			if s, ok := textScalar(valNode); ok {
				node.Content = s
			} else {
				v.addf(path, "", "content must be a scalar")
			}
		case "children":
			if valNode.Kind == yaml.ScalarNode && valNode.Tag == "!!null" {
				break // children: with no entries
			}
			if valNode.Kind != yaml.SequenceNode {
				v.addf(path, "", "children must be a sequence, not a %s", kindName(valNode.Kind))
				break
			}
			childCount = len(valNode.Content)
			node.Children = v.collectNodes(valNode, path+".children")
		default:
			v.warnf("%s: unknown key %q ignored", path, key)
		}
	}

	if !hasName {
		v.addf(path, "", "name is required")
	}
	if !hasType {
		v.addf(path, "", "type is required (%q or %q)", NodeDirectory, NodeFile)
	}
	if node.Type == NodeFile && childCount > 0 {
		v.addf(path, "", "file node cannot have children")
	}
	if node.Type == NodeDirectory && node.Content != "" {
		v.warnf("%s: content is ignored for directory nodes", path)
	}

	return node, true
}

// stringScalar returns the value of a string scalar node.
func stringScalar(n *yaml.Node) (string, bool) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" {
		return n.Value, true
	}
	return "", false
}

// textScalar returns any scalar coerced to its text form; null becomes
// the empty string.
func textScalar(n *yaml.Node) (string, bool) {
	if n.Kind != yaml.ScalarNode {
		return "", false
	}
	if n.Tag == "!!null" {
		return "", true
	}
	return n.Value, true
}
