package generator

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrDestinationNotEmpty is returned before anything is written when
// the destination holds entries and overwriting was not requested.
var ErrDestinationNotEmpty = errors.New("destination directory is not empty")

// UnsafePathError reports template nodes whose names would resolve
// outside the destination directory (or onto it). It is returned from
// the pre-write scan, so nothing has been created when the caller sees
// one.
type UnsafePathError struct {
	// Paths are the offending node paths in declared order, joined
	// with "/" and left uncleaned so the escape attempt stays visible.
	Paths []string
}

func (e *UnsafePathError) Error() string {
	if len(e.Paths) == 1 {
		return fmt.Sprintf("unsafe path in template: %s", e.Paths[0])
	}
	return fmt.Sprintf("unsafe paths in template: %s", strings.Join(e.Paths, ", "))
}

// Collision is one path the walk could not produce.
type Collision struct {
	// Path is relative to the destination.
	Path string
	Err  error
}

// CollisionError aggregates every path that failed during a best-effort
// walk. The Result returned alongside still reflects everything that
// was created.
type CollisionError struct {
	Collisions []*Collision
}

func (e *CollisionError) Error() string {
	if len(e.Collisions) == 1 {
		c := e.Collisions[0]
		return fmt.Sprintf("generation failed for %s: %v", c.Path, c.Err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "generation failed for %d paths:", len(e.Collisions))
	for _, c := range e.Collisions {
		fmt.Fprintf(&b, "\n  - %s: %v", c.Path, c.Err)
	}
	return b.String()
}
