// Package store manages the on-disk template library: a storage root
// holding an active partition (templates/) and an archived partition
// (archive/), with one YAML document per template named <name>.yaml.
//
// A name lives in at most one partition at a time; every mutation that
// could break that rule fails with ErrDuplicateName instead. Writes go
// through temp-file-plus-rename and moves through os.Rename, so a crash
// never leaves a half-written template behind. There is no cross-process
// locking; concurrent skel invocations mutating the same name race.
package store

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/skeltool/skel/internal/paths"
	"github.com/skeltool/skel/internal/template"
)

// Sentinel errors for store lookups and name collisions.
var (
	ErrNotFound      = errors.New("template not found")
	ErrDuplicateName = errors.New("template name already in use")
)

// Ext is the file extension for stored template documents.
const Ext = ".yaml"

// filePerm is the mode for stored template documents.
const filePerm = os.FileMode(0o644)

// Store provides access to one storage root.
type Store struct {
	root         string
	templatesDir string
	archiveDir   string
}

// Open prepares the storage layout under root, creating missing
// directories. An empty root means the resolved default ($SKEL_HOME or
// the XDG data dir).
func Open(root string) (*Store, error) {
	if root == "" {
		root = paths.StorageRoot()
	}

	s := &Store{
		root:         root,
		templatesDir: paths.TemplatesDir(root),
		archiveDir:   paths.ArchiveDir(root),
	}
	for _, dir := range []string{s.root, s.templatesDir, s.archiveDir} {
		if err := paths.EnsureDir(dir); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Root returns the storage root directory.
func (s *Store) Root() string {
	return s.root
}

// Dir returns the directory backing one partition.
func (s *Store) Dir(archived bool) string {
	if archived {
		return s.archiveDir
	}
	return s.templatesDir
}

// Path returns where the named template lives (or would live) in the
// given partition. The name is not checked here; mutating operations
// reject names that are not a single path segment.
func (s *Store) Path(name string, archived bool) string {
	return filepath.Join(s.Dir(archived), name+Ext)
}

// Exists reports whether the named template is present in the partition.
func (s *Store) Exists(name string, archived bool) bool {
	info, err := os.Stat(s.Path(name, archived))
	return err == nil && info.Mode().IsRegular()
}

// checkName guards every operation that touches a caller-supplied name.
func checkName(name string) error {
	return errors.Wrap(template.CheckName(name), "invalid template name")
}
