package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/skeltool/skel/internal/cli"
	"github.com/skeltool/skel/internal/config"
	"github.com/skeltool/skel/internal/editor"
	skelerrors "github.com/skeltool/skel/internal/errors"
	"github.com/skeltool/skel/internal/paths"
)

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage skel configuration",
	Long: `Manage settings. The global config lives at <storage-root>/config.yaml
and can be overridden per directory tree by a .skel.toml file and by
SKEL_* environment variables.

Without a subcommand, lists the effective configuration for the
current directory.`,
	Example: `  # Show the effective configuration
  skel config

  # Read and write single settings
  skel config get editor
  skel config set editor vim
  skel config unset editor`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effective configuration",
	Long: `List the effective configuration as YAML: global settings, overlaid
with the nearest .skel.toml and SKEL_* environment variables.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a value in the global config",
	Long: `Set a value in the global config file. Local .skel.toml files and
SKEL_* environment variables still override it.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a value from the global config",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the global config in your editor",
	RunE:  runConfigEdit,
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	return configList(cmd.OutOrStdout())
}

func configList(w io.Writer) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg.Settings)
	if err != nil {
		return errors.Wrap(err, "marshaling settings")
	}
	fmt.Fprint(w, string(data))

	if cfg.LocalPath != "" {
		cli.Dimf(w, "local overrides from %s", cfg.LocalPath)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	return configGet(cmd.OutOrStdout(), args[0])
}

func configGet(w io.Writer, key string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	value, ok := cfg.Lookup(key)
	if !ok {
		fmt.Fprintln(w, "not set")
		return nil
	}
	fmt.Fprintln(w, value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	return configSet(cmd.OutOrStdout(), args[0], args[1])
}

func configSet(w io.Writer, key, value string) error {
	if err := config.SetGlobal(paths.StorageRoot(), key, value); err != nil {
		var parseErr *config.ParseError
		if errors.As(err, &parseErr) {
			return skelerrors.NewFailure(err, "Fix or remove the file and retry")
		}
		return err
	}
	cli.Successf(w, "Set %s = %s", key, value)
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	return configUnset(cmd.OutOrStdout(), args[0])
}

func configUnset(w io.Writer, key string) error {
	removed, err := config.UnsetGlobal(paths.StorageRoot(), key)
	if err != nil {
		var parseErr *config.ParseError
		if errors.As(err, &parseErr) {
			return skelerrors.NewFailure(err, "Fix or remove the file and retry")
		}
		return err
	}
	if !removed {
		cli.Dimf(w, "%s was not set", key)
		return nil
	}
	cli.Successf(w, "Unset %s", key)
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	return configEdit(cmd.OutOrStdout())
}

func configEdit(w io.Writer) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	if err := paths.EnsureDir(cfg.StorageRoot); err != nil {
		return err
	}
	editorCmd := editor.Detect(cfg.Editor())
	if err := editor.Open(editorCmd, cfg.GlobalPath); err != nil {
		return skelerrors.NewFailure(err, "Set a different editor with 'skel config set editor <command>'")
	}

	// Surface syntax errors now rather than on the next command.
	if _, err := config.LoadGlobal(cfg.StorageRoot); err != nil {
		var parseErr *config.ParseError
		if errors.As(err, &parseErr) {
			cli.Warnf(w, "the saved config does not parse: %v", parseErr.Err)
			cli.Dimf(w, "The file was kept; run 'skel config edit' to fix it")
			return nil
		}
		return err
	}
	cli.Successf(w, "Configuration updated")
	return nil
}
