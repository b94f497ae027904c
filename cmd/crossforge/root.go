package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "crossforge",
	Short: "Cross-target build orchestration for WebAssembly packages",
	Long: `Crossforge composes a reproducible compiler toolchain for a WebAssembly
target, drives the package build pinned to that target, and assembles a
development shell exposing native GUI and webview libraries on the
dynamic-library search path.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.crossforge.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// initConfig loads configuration from the config file and environment.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("failed to find home directory", "error", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".crossforge")
	}

	viper.SetEnvPrefix("CROSSFORGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// channelIndexPath returns the channel index location: the --channels
// flag when set, then the CROSSFORGE_CHANNELS setting, then the default
// under the user's home.
func channelIndexPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := viper.GetString("channels"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "channels.yaml"
	}
	return filepath.Join(home, ".crossforge", "channels.yaml")
}
