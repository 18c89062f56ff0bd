// Package paths resolves the skel storage layout and config file locations.
//
// The storage root holds everything skel persists:
//
//	<root>/config.yaml      global settings
//	<root>/templates/       active templates, one YAML document per name
//	<root>/archive/         archived templates
//
// # Storage Root
//
// The root defaults to <xdg.DataHome>/skel via github.com/adrg/xdg and is
// overridden by the SKEL_HOME environment variable. The override is resolved
// here, independent of the general settings merge in the config package.
//
// # Local Config Discovery
//
// [FindLocalConfig] walks upward from a directory looking for the nearest
// .skel.toml, stopping at the filesystem root. The walk is bounded and
// visits each directory identity at most once, so symlinked ancestors
// cannot cause a cycle.
package paths
