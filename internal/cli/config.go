package cli

import (
	"fmt"
	"sort"

	"github.com/scriptsync/scriptsync/internal/branding"
	"github.com/scriptsync/scriptsync/internal/config"
	"github.com/spf13/cobra"
)

// settableKeys are the keys `config set` accepts.
var settableKeys = []string{
	config.KeyRepo,
	config.KeyAPIBase,
	config.KeyConfigPath,
	config.KeyIndent,
	config.KeyTimeout,
	config.KeyMirror,
	config.KeyToken,
	config.KeyMetadataIndex,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings",
	Long: `Read and write settings stored at ~/` + branding.HomeDir() + `/config.yaml.
Every key can also be set through the environment, e.g. ` + branding.EnvVar(config.KeyRepo) + `.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if !isSettable(key) {
			keys := append([]string(nil), settableKeys...)
			sort.Strings(keys)
			return fmt.Errorf("unknown key %q (valid keys: %v)", key, keys)
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file and version document locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		fmt.Fprintf(cmd.OutOrStdout(), "settings: %s\nversions: %s\n", config.FilePath(), config.Current().ConfigPath)
		return nil
	},
}

func isSettable(key string) bool {
	for _, k := range settableKeys {
		if k == key {
			return true
		}
	}
	return false
}
