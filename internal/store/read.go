package store

import (
	"io/fs"

	"github.com/cockroachdb/errors"

	"github.com/skeltool/skel/internal/template"
	"github.com/skeltool/skel/pkg/fileutil"
)

// Raw returns the stored document bytes exactly as written.
func (s *Store) Raw(name string, archived bool) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	data, err := fileutil.ReadFileWithLimit(s.Path(name, archived))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(ErrNotFound, name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading template %s", name)
	}
	return data, nil
}

// Get loads and validates the named template. The returned warnings
// carry non-fatal notes (unknown keys and the like) even on success;
// a stored document that no longer validates fails with the full
// *template.ValidationError.
func (s *Store) Get(name string, archived bool) (*template.Template, []string, error) {
	data, err := s.Raw(name, archived)
	if err != nil {
		return nil, nil, err
	}
	return template.ParseAndValidate(data, name)
}
