// Package config resolves the effective settings for the skel CLI.
//
// Settings are layered from three sources, lowest to highest precedence:
//
//  1. the global config file (config.yaml in the storage root)
//  2. the nearest .skel.toml found walking up from the working directory
//  3. SKEL_* environment variables (SKEL_EDITOR sets "editor", and so on)
//
// Later layers replace keys from earlier layers; keys absent from a layer
// keep their earlier value. SKEL_HOME is not a setting: it relocates the
// storage root itself and is handled by the paths package before any
// config file is read.
//
// # Resolving
//
// [Resolve] produces an immutable snapshot for one command invocation:
//
//	cfg, err := config.Resolve("")
//	if err != nil {
//	    return err
//	}
//	out := cfg.OutputDir()
//
// A missing or empty config file is an empty layer, never an error. A
// file that exists but cannot be decoded fails with a [*ParseError]
// naming the offending path; defaults are never silently substituted
// for a malformed file.
//
// # Editing
//
// `skel config set` and `skel config unset` rewrite only the global
// file, via [LoadGlobal] and [SaveGlobal]. The local and environment
// layers are read-only.
package config
