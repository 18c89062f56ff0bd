// Package placeholder provides scanning and expansion of {{ name }}
// markers in text content.
package placeholder

import (
	"regexp"
	"strings"
)

// marker matches a {{ name }} placeholder. Whitespace inside the braces is
// tolerated and trimmed; the name itself is a single token with no spaces
// or braces. A brace pair whose interior is not a single token is not a
// marker and passes through untouched.
var marker = regexp.MustCompile(`\{\{\s*([^\s{}]+)\s*\}\}`)

// Resolver supplies a value for a placeholder name. The boolean reports
// whether the name is defined; an empty value with true substitutes the
// empty string.
type Resolver func(name string) (string, bool)

// FromMaps returns a Resolver that consults the given maps in order and
// answers with the first one that defines the name.
func FromMaps(maps ...map[string]string) Resolver {
	return func(name string) (string, bool) {
		for _, m := range maps {
			if v, ok := m[name]; ok {
				return v, true
			}
		}
		return "", false
	}
}

// Expand replaces every {{ name }} marker in content using resolve.
// Markers whose name the resolver does not define are left byte-verbatim,
// and each such name is reported once, in first-appearance order.
func Expand(content string, resolve Resolver) (string, []string) {
	var unresolved []string
	seen := make(map[string]struct{})

	expanded := marker.ReplaceAllStringFunc(content, func(m string) string {
		name := strings.TrimSpace(m[2 : len(m)-2])
		if value, ok := resolve(name); ok {
			return value
		}
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			unresolved = append(unresolved, name)
		}
		return m
	})

	return expanded, unresolved
}

// Names returns the distinct placeholder names in content, in
// first-appearance order.
func Names(content string) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, m := range marker.FindAllStringSubmatch(content, -1) {
		name := m[1]
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
