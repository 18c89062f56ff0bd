package paths

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// maxWalkDepth bounds the upward search so a pathological directory chain
// (or a symlink cycle the identity check misses) cannot loop forever.
const maxWalkDepth = 256

// FindLocalConfig walks upward from dir looking for LocalConfigName,
// starting at dir itself. It returns the path of the nearest match, or
// an empty string when no ancestor carries one.
//
// Each directory identity is visited at most once: the resolved path of
// every visited directory is tracked so symlinked ancestors cannot cause
// a cycle. The search stops at the filesystem root.
func FindLocalConfig(dir string) (string, error) {
	cur, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", dir)
	}

	seen := make(map[string]struct{})
	for i := 0; i < maxWalkDepth; i++ {
		identity := cur
		if resolved, err := filepath.EvalSymlinks(cur); err == nil {
			identity = resolved
		}
		if _, ok := seen[identity]; ok {
			break
		}
		seen[identity] = struct{}{}

		candidate := filepath.Join(cur, LocalConfigName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}

	return "", nil
}
