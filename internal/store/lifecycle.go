package store

import (
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
)

// Archive moves an active template into the archive partition. It fails
// with ErrDuplicateName when an archived template already holds the
// name; the active copy is left where it is.
func (s *Store) Archive(name string) error {
	return s.move(name, false, true)
}

// Restore moves an archived template back into the active partition,
// failing with ErrDuplicateName when an active template holds the name.
func (s *Store) Restore(name string) error {
	return s.move(name, true, false)
}

func (s *Store) move(name string, fromArchived, toArchived bool) error {
	if err := checkName(name); err != nil {
		return err
	}
	if !s.Exists(name, fromArchived) {
		return errors.Wrap(ErrNotFound, name)
	}
	if s.Exists(name, toArchived) {
		return errors.Wrapf(ErrDuplicateName, "%s exists in both partitions", name)
	}
	if err := os.Rename(s.Path(name, fromArchived), s.Path(name, toArchived)); err != nil {
		return errors.Wrapf(err, "moving template %s", name)
	}
	return nil
}

// Delete permanently removes a template from the given partition.
func (s *Store) Delete(name string, archived bool) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := os.Remove(s.Path(name, archived)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(ErrNotFound, name)
		}
		return errors.Wrapf(err, "deleting template %s", name)
	}
	return nil
}
