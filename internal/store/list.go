package store

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/skeltool/skel/internal/template"
	"github.com/skeltool/skel/pkg/fileutil"
)

// Summary describes one stored template for listings. When the stored
// document no longer parses or validates, Err carries the failure and
// the descriptive fields stay empty; listing never aborts because one
// entry is broken.
type Summary struct {
	Name        string
	Description string
	Version     string
	Archived    bool
	Err         error
}

// List returns summaries for one partition, sorted by name.
func (s *Store) List(archived bool) ([]Summary, error) {
	dir := s.Dir(archived)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading %s", dir)
	}

	summaries := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), Ext)
		sum := Summary{Name: name, Archived: archived}

		data, err := fileutil.ReadFileWithLimit(filepath.Join(dir, entry.Name()))
		if err != nil {
			sum.Err = err
		} else if tmpl, _, err := template.ParseAndValidate(data, name); err != nil {
			sum.Err = err
		} else {
			sum.Description = tmpl.Description
			sum.Version = tmpl.Version
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}
