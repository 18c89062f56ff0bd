package config

import (
	"io/fs"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/skeltool/skel/internal/paths"
	"github.com/skeltool/skel/pkg/fileutil"
)

// LoadGlobal reads the raw global config file under root for editing.
// A missing file is an empty mapping. Keys are lowercased to match the
// effective view; values keep their decoded types so a rewrite does not
// mangle anything the user wrote by hand.
func LoadGlobal(root string) (map[string]any, error) {
	path := paths.GlobalConfigPath(root)
	data, err := fileutil.ReadFileWithLimit(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading global config %s", path)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	settings := make(map[string]any, len(raw))
	for key, value := range raw {
		settings[strings.ToLower(key)] = value
	}
	return settings, nil
}

// SaveGlobal atomically rewrites the global config file under root,
// creating the storage root when needed.
func SaveGlobal(root string, settings map[string]any) error {
	if err := paths.EnsureDir(root); err != nil {
		return err
	}
	return fileutil.AtomicWriteYAML(paths.GlobalConfigPath(root), settings)
}

// SetGlobal stores one setting in the global config file.
func SetGlobal(root, key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return errors.New("setting key is required")
	}
	settings, err := LoadGlobal(root)
	if err != nil {
		return err
	}
	settings[key] = value
	return SaveGlobal(root, settings)
}

// UnsetGlobal removes one setting from the global config file and
// reports whether it was present.
func UnsetGlobal(root, key string) (bool, error) {
	settings, err := LoadGlobal(root)
	if err != nil {
		return false, err
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if _, ok := settings[key]; !ok {
		return false, nil
	}
	delete(settings, key)
	return true, SaveGlobal(root, settings)
}
