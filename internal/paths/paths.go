package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Storage layout names. The storage root holds one global settings file and
// the two template partitions.
const (
	// EnvHome is the environment variable that overrides the storage root.
	EnvHome = "SKEL_HOME"

	// GlobalConfigName is the settings file kept inside the storage root.
	GlobalConfigName = "config.yaml"

	// LocalConfigName is the per-project settings file discovered by walking
	// up from the working directory.
	LocalConfigName = ".skel.toml"

	// TemplatesDirName holds active templates, one YAML document per name.
	TemplatesDirName = "templates"

	// ArchiveDirName holds archived templates.
	ArchiveDirName = "archive"
)

// DefaultDirPerm keeps newly created storage directories private.
const DefaultDirPerm = 0o700

// EnsureDir creates path and any missing parents with DefaultDirPerm.
// Existing directories are left alone.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DefaultDirPerm)
}

// StorageRoot returns the directory holding the global config and both
// template partitions. SKEL_HOME takes precedence over the XDG default;
// this override is independent of the general settings merge.
//
// Default: <xdg.DataHome>/skel
func StorageRoot() string {
	if root := os.Getenv(EnvHome); root != "" {
		return ExpandHome(root)
	}
	return filepath.Join(xdg.DataHome, "skel")
}

// GlobalConfigPath returns the global settings file inside the storage root.
func GlobalConfigPath(root string) string {
	return filepath.Join(root, GlobalConfigName)
}

// TemplatesDir returns the active template partition inside the storage root.
func TemplatesDir(root string) string {
	return filepath.Join(root, TemplatesDirName)
}

// ArchiveDir returns the archived template partition inside the storage root.
func ArchiveDir(root string) string {
	return filepath.Join(root, ArchiveDirName)
}

// ExpandHome expands a leading ~ to the user's home directory. The
// ~user form and paths without a tilde come back unchanged.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
