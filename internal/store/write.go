package store

import (
	"github.com/cockroachdb/errors"

	"github.com/skeltool/skel/internal/template"
	"github.com/skeltool/skel/pkg/fileutil"
)

// Create validates doc and stores it under name in the active
// partition. The document is written byte-for-byte as given; nothing is
// re-serialized. With overwrite, an existing active template of the
// same name is replaced; an archived one always blocks the name, since
// overwriting would leave the name in both partitions.
func (s *Store) Create(name string, doc []byte, overwrite bool) (*template.Template, []string, error) {
	if err := checkName(name); err != nil {
		return nil, nil, err
	}
	if s.Exists(name, true) {
		return nil, nil, errors.Wrapf(ErrDuplicateName, "%s is archived", name)
	}
	if !overwrite && s.Exists(name, false) {
		return nil, nil, errors.Wrap(ErrDuplicateName, name)
	}

	tmpl, warnings, err := template.ParseAndValidate(doc, name)
	if err != nil {
		return nil, warnings, err
	}

	if err := fileutil.AtomicWriteFile(s.Path(name, false), doc, filePerm); err != nil {
		return nil, warnings, errors.Wrapf(err, "storing template %s", name)
	}
	return tmpl, warnings, nil
}

// Duplicate copies an active template under a new name. The copy is
// verbatim except for the document's top-level name field, which is
// rewritten to match newName so the stored key and the document agree.
// The source is not revalidated; whatever it holds is what the copy
// holds.
func (s *Store) Duplicate(name, newName string, overwrite bool) error {
	if err := checkName(newName); err != nil {
		return err
	}

	data, err := s.Raw(name, false)
	if err != nil {
		return err
	}

	if s.Exists(newName, true) {
		return errors.Wrapf(ErrDuplicateName, "%s is archived", newName)
	}
	if !overwrite && s.Exists(newName, false) {
		return errors.Wrap(ErrDuplicateName, newName)
	}

	rewritten, err := template.RewriteName(data, newName)
	if err != nil {
		return errors.Wrapf(err, "rewriting %s", name)
	}

	if err := fileutil.AtomicWriteFile(s.Path(newName, false), rewritten, filePerm); err != nil {
		return errors.Wrapf(err, "storing template %s", newName)
	}
	return nil
}
