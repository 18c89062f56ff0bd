package template

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Document is the raw decoded form of a template document. Decoding and
// validation are separate steps so validation can see which fields were
// actually present and collect every problem in a single pass.
type Document struct {
	// Source is the file path or template name the document came from,
	// used for error context only.
	Source string

	top *yaml.Node
}

// Parse decodes data into a raw Document. source is used for error
// context only. Parse fails only on malformed YAML, an empty document,
// or a top level that is not a mapping; all other checks belong to
// [Document.Validate].
func Parse(data []byte, source string) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	if len(root.Content) == 0 {
		return nil, &ParseError{Source: source, Err: errors.New("document is empty")}
	}

	top := resolved(root.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, &ParseError{
			Source: source,
			Err:    errors.Newf("document must be a mapping, not a %s", kindName(top.Kind)),
		}
	}

	// Decoding into a node tree skips the duplicate-key check, so run a
	// throwaway strict decode to get it back.
	var strict map[string]any
	if err := yaml.Unmarshal(data, &strict); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}

	return &Document{Source: source, top: top}, nil
}

// ParseAndValidate decodes and validates data in one call.
func ParseAndValidate(data []byte, source string) (*Template, []string, error) {
	doc, err := Parse(data, source)
	if err != nil {
		return nil, nil, err
	}
	return doc.Validate()
}

// RewriteName returns a copy of data with the top-level name scalar set
// to newName. Comments, key order and every other field survive the
// round trip through the YAML node tree.
func RewriteName(data []byte, newName string) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "decoding document")
	}
	if len(root.Content) == 0 || resolved(root.Content[0]).Kind != yaml.MappingNode {
		return nil, errors.New("document must be a mapping")
	}
	top := resolved(root.Content[0])

	found := false
	for i := 0; i+1 < len(top.Content); i += 2 {
		key := resolved(top.Content[i])
		if key.Kind != yaml.ScalarNode || key.Value != "name" {
			continue
		}
		val := top.Content[i+1]
		val.Kind = yaml.ScalarNode
		val.Tag = "!!str"
		val.Value = newName
		val.Style = 0
		val.Content = nil
		found = true
		break
	}
	if !found {
		top.Content = append(top.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "name"},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: newName},
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return nil, errors.Wrap(err, "encoding document")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encoding document")
	}
	return buf.Bytes(), nil
}

// resolved follows a single alias hop so anchored values behave like
// their targets.
func resolved(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown node"
}
