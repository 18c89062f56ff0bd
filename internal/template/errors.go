package template

import (
	"fmt"
	"strings"
)

// ParseError represents an error that occurred while decoding a template
// document, before validation.
type ParseError struct {
	Source string // file path or template name, for error context
	Err    error  // underlying error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("parsing template: %v", e.Err)
	}
	return fmt.Sprintf("parsing template %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Issue is a single validation failure, located by a path into the
// document such as "name" or "structure[1].children[0]".
type Issue struct {
	Path    string
	Message string
	Value   string
}

func (i *Issue) String() string {
	s := i.Message
	if i.Path != "" {
		s = i.Path + ": " + s
	}
	if i.Value != "" {
		s += fmt.Sprintf(" (got %q)", i.Value)
	}
	return s
}

// ValidationError aggregates every issue found in one validation pass.
// Validation never stops at the first failure, so callers can report the
// full list at once.
type ValidationError struct {
	Issues []*Issue
}

func (e *ValidationError) Error() string {
	switch len(e.Issues) {
	case 0:
		return "template document is invalid"
	case 1:
		return fmt.Sprintf("template document is invalid: %s", e.Issues[0])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "template document has %d validation issues:", len(e.Issues))
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue.String())
	}
	return b.String()
}
