// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jdfalk/isbn-catalog/internal/config"
	"github.com/jdfalk/isbn-catalog/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrReported marks a failure the command has already printed; callers
// should exit non-zero without printing it again.
var ErrReported = errors.New("failure already reported")

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCmd()

// NewRootCmd builds the full command tree. Each call returns fresh flags.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "isbn-catalog",
		Short: "Catalog books by ISBN",
		Long: `isbn-catalog looks up books by ISBN with an online metadata provider
and records them, with their authors, in a local SQLite catalog.

Adding an ISBN that is already catalogued is reported and changes nothing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			bindFlags(cmd)
			return initConfig(cmd, cfgFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.isbn-catalog.yaml)")
	flags.String("db", "", "path to the SQLite catalog (default $HOME/.isbn-catalog/catalog.db)")
	flags.StringSlice("providers", nil, "metadata providers in lookup order: google_books, open_library")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newInitCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

// bindFlags ties persistent flags to their viper keys. Flags only override
// the config file and environment when set explicitly.
func bindFlags(cmd *cobra.Command) {
	for flag, key := range map[string]string{
		"db":        "database_path",
		"providers": "providers",
		"log-level": "log_level",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			_ = viper.BindPFlag(key, f)
		}
	}
}

func initConfig(cmd *cobra.Command, cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".isbn-catalog")
	}

	if err := viper.ReadInConfig(); err == nil {
		logging.Debugf("Using config file: %s", viper.ConfigFileUsed())
	} else {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	config.InitConfig()
	logging.SetLevel(logging.ParseLevel(config.AppConfig.LogLevel))

	if err := config.AppConfig.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
