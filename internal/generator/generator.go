// Package generator materializes a template's declared structure on
// disk.
//
// Generation runs in two phases. A pre-write scan rejects any node
// whose name would resolve outside the destination, so an unsafe
// template never creates a single entry. The walk itself then visits
// nodes depth-first in declared order: directories are created
// idempotently, file content has its placeholders expanded, and
// anything already in the way is collected as a collision while the
// rest of the tree keeps going. The partial Result is returned even
// when collisions force a non-nil error.
package generator

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/skeltool/skel/internal/template"
	"github.com/skeltool/skel/pkg/placeholder"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Options tunes one generation run.
type Options struct {
	// Overwrite lets generation proceed into a non-empty destination
	// and replace existing files whose content differs.
	Overwrite bool
}

// Result summarizes what one run actually did. All paths are relative
// to the destination; counts are the slice lengths.
type Result struct {
	// Dirs lists directories created by this run. Directories that
	// already existed are not listed.
	Dirs []string
	// Files lists files written by this run, including replacements.
	Files []string
	// Skipped lists pre-existing files left alone because their
	// content already matched.
	Skipped []string
	// Warnings carries non-fatal notes: unresolved placeholders and
	// skipped files.
	Warnings []string
}

// Generate writes the structure declared by tmpl beneath outputDir.
// Values in overrides shadow the template's variable defaults during
// placeholder expansion.
//
// When outputDir exists and holds entries, generation refuses with
// ErrDestinationNotEmpty unless opts.Overwrite is set. A destination
// that was empty (or absent) at that check may have its files
// overwritten freely later in the run; otherwise replacing a file
// requires opts.Overwrite, and a refusal is recorded as a collision.
// Collisions do not stop the walk: the remaining nodes are still
// generated and the collected failures come back as a *CollisionError
// next to the partial Result.
func Generate(tmpl *template.Template, outputDir string, overrides map[string]string, opts Options) (*Result, error) {
	if tmpl == nil {
		return nil, errors.New("template is nil")
	}
	if outputDir == "" {
		return nil, errors.New("output directory is required")
	}

	if unsafeErr := checkTree(tmpl.Structure, outputDir); unsafeErr != nil {
		return nil, unsafeErr
	}

	wasEmpty, err := checkDestination(outputDir, opts.Overwrite)
	if err != nil {
		return nil, err
	}

	g := &generator{
		dest:      outputDir,
		resolve:   placeholder.FromMaps(overrides, tmpl.Variables),
		overwrite: opts.Overwrite || wasEmpty,
		result:    &Result{},
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return nil, errors.Wrapf(err, "creating destination %s", outputDir)
	}

	g.walk(tmpl.Structure, "")

	if len(g.collisions) > 0 {
		return g.result, &CollisionError{Collisions: g.collisions}
	}
	return g.result, nil
}

// checkDestination enforces the non-empty precondition and reports
// whether the destination was empty (or absent) when checked.
func checkDestination(dir string, overwrite bool) (wasEmpty bool, err error) {
	entries, err := os.ReadDir(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	case err != nil:
		if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
			return false, errors.Newf("destination %s is not a directory", dir)
		}
		return false, errors.Wrapf(err, "reading destination %s", dir)
	}

	if len(entries) == 0 {
		return true, nil
	}
	if !overwrite {
		return false, errors.Wrap(ErrDestinationNotEmpty, dir)
	}
	return false, nil
}

type generator struct {
	dest       string
	resolve    placeholder.Resolver
	overwrite  bool
	result     *Result
	collisions []*Collision
}

func (g *generator) collide(rel string, err error) {
	g.collisions = append(g.collisions, &Collision{Path: rel, Err: err})
}

func (g *generator) walk(nodes []template.Node, rel string) {
	for _, node := range nodes {
		// Names are single path segments here; checkTree vetted them.
		nodeRel := node.Name
		if rel != "" {
			nodeRel = filepath.Join(rel, node.Name)
		}
		target := filepath.Join(g.dest, nodeRel)

		switch node.Type {
		case template.NodeDirectory:
			if !g.makeDir(nodeRel, target) {
				continue
			}
			g.walk(node.Children, nodeRel)
		case template.NodeFile:
			g.writeFile(nodeRel, target, node.Content)
		default:
			g.collide(nodeRel, errors.Newf("unknown node type %q", node.Type))
		}
	}
}

// makeDir ensures a directory at target and reports whether its
// subtree can be descended into. An existing directory satisfies the
// node without being counted.
func (g *generator) makeDir(rel, target string) bool {
	info, err := os.Stat(target)
	switch {
	case err == nil && info.IsDir():
		return true
	case err == nil:
		g.collide(rel, errors.New("a file is in the way"))
		return false
	case !errors.Is(err, fs.ErrNotExist):
		g.collide(rel, errors.Wrap(err, "checking path"))
		return false
	}

	if err := os.MkdirAll(target, dirPerm); err != nil {
		g.collide(rel, errors.Wrap(err, "creating directory"))
		return false
	}
	g.result.Dirs = append(g.result.Dirs, rel)
	return true
}

func (g *generator) writeFile(rel, target, content string) {
	expanded, unresolved := placeholder.Expand(content, g.resolve)
	warn := func() {
		for _, name := range unresolved {
			g.result.Warnings = append(g.result.Warnings, fmt.Sprintf("unresolved variable %q in %s", name, rel))
		}
	}

	if info, err := os.Stat(target); err == nil {
		if info.IsDir() {
			g.collide(rel, errors.New("a directory is in the way"))
			return
		}
		existing, readErr := os.ReadFile(target)
		if readErr == nil && string(existing) == expanded {
			g.result.Skipped = append(g.result.Skipped, rel)
			g.result.Warnings = append(g.result.Warnings, fmt.Sprintf("skipped %s: already up to date", rel))
			warn()
			return
		}
		if !g.overwrite {
			g.collide(rel, errors.New("file exists with different content"))
			return
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		g.collide(rel, errors.Wrap(err, "checking path"))
		return
	}

	if err := os.WriteFile(target, []byte(expanded), filePerm); err != nil {
		g.collide(rel, errors.Wrap(err, "writing file"))
		return
	}
	g.result.Files = append(g.result.Files, rel)
	warn()
}
