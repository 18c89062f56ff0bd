package config

import (
	"bytes"
	"io/fs"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/skeltool/skel/internal/paths"
	"github.com/skeltool/skel/pkg/fileutil"
)

// EnvPrefix marks environment variables that override settings:
// SKEL_EDITOR overrides "editor", and so on. SKEL_HOME is excluded; it
// relocates the storage root and never appears in Settings.
const EnvPrefix = "SKEL_"

// Setting keys read by skel itself. Any other key is carried through
// untouched for users to define and reference.
const (
	KeyEditor    = "editor"
	KeyOutputDir = "default_output_dir"
)

// DefaultOutputDir is the fallback output directory for `skel init`.
const DefaultOutputDir = "."

// Config is the effective settings snapshot for one invocation.
type Config struct {
	// Settings maps lowercase setting keys to their merged values.
	Settings map[string]string

	// StorageRoot is the resolved storage directory ($SKEL_HOME or the
	// XDG default).
	StorageRoot string

	// GlobalPath is the global config file location; the file may not
	// exist.
	GlobalPath string

	// LocalPath is the discovered .skel.toml, or "" when none was found.
	LocalPath string
}

// Resolve builds the effective configuration as seen from cwd. An empty
// cwd means the process working directory. The result depends only on
// the filesystem and the environment; nothing is created or modified.
func Resolve(cwd string) (*Config, error) {
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "determining working directory")
		}
		cwd = wd
	}

	root := paths.StorageRoot()
	globalPath := paths.GlobalConfigPath(root)

	v := viper.New()
	v.SetDefault(KeyOutputDir, DefaultOutputDir)

	if data, err := fileutil.ReadFileWithLimit(globalPath); err == nil {
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, &ParseError{Path: globalPath, Err: err}
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "reading global config %s", globalPath)
	}

	localPath, err := paths.FindLocalConfig(cwd)
	if err != nil {
		return nil, err
	}
	if localPath != "" {
		data, err := fileutil.ReadFileWithLimit(localPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Vanished between discovery and read.
			localPath = ""
		case err != nil:
			return nil, errors.Wrapf(err, "reading local config %s", localPath)
		default:
			local := map[string]any{}
			if err := toml.Unmarshal(data, &local); err != nil {
				return nil, &ParseError{Path: localPath, Err: err}
			}
			if err := v.MergeConfigMap(local); err != nil {
				return nil, errors.Wrapf(err, "merging local config %s", localPath)
			}
		}
	}

	for key, value := range environOverrides() {
		v.Set(key, value)
	}

	settings := make(map[string]string)
	for _, key := range v.AllKeys() {
		settings[key] = v.GetString(key)
	}

	return &Config{
		Settings:    settings,
		StorageRoot: root,
		GlobalPath:  globalPath,
		LocalPath:   localPath,
	}, nil
}

// environOverrides scans the environment for SKEL_* settings.
func environOverrides() map[string]string {
	overrides := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		if key == paths.EnvHome {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if name == "" {
			continue
		}
		overrides[name] = value
	}
	return overrides
}

// Get returns the value for key, or "" when unset.
func (c *Config) Get(key string) string {
	return c.Settings[strings.ToLower(key)]
}

// Lookup returns the value for key and whether it is set.
func (c *Config) Lookup(key string) (string, bool) {
	value, ok := c.Settings[strings.ToLower(key)]
	return value, ok
}

// Editor returns the configured editor command, or "" when the user has
// not set one; callers fall back to $EDITOR and friends.
func (c *Config) Editor() string {
	return c.Get(KeyEditor)
}

// OutputDir returns the default output directory for generation.
func (c *Config) OutputDir() string {
	return c.Get(KeyOutputDir)
}
