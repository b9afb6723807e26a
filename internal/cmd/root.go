// Package cmd implements the tracker's command-line interface. Commands
// parse raw arguments into typed requests, hand them to the registry, and
// render the typed results; all task semantics live in the core packages.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tasktracker/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "tasktracker",
	Short: "Track personal tasks from the command line",
	Long: `Tasktracker is a local task tracker for a single user. Tasks are
persisted to a JSON file between invocations; each command loads the
collection, performs one operation, and saves the result.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/tasktracker/config.yaml)")
	rootCmd.PersistentFlags().StringP("file", "f", "", "task file (default is tasks.json in the working directory)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/tasktracker")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TRACKER")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TRACKER_STORAGE_PATH for storage.path
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
