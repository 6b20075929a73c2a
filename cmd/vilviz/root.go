package vilviz

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dasdy/vilviz/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	logLevel string
	logCtx   = logging.PackageCtx("cmd")
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vilviz",
	Short: "Render keyboard layouts from VIL files",
	Long: `vilviz reads a Vial layout export (.vil) and draws each of its six layers
as a keyboard picture. Layers can be written to PNG, SVG or PDF files, or browsed
in a small preview server that remembers recently opened layouts.`,
	PersistentPreRun: bindFlags,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vilviz.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
}

func initLogging() {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		slog.Warn("Falling back to info level", "error", err)
	}

	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, level, level == slog.LevelDebug)))
}

func initConfig() {
	initLogging()

	if cfgFile != "" {
		slog.DebugContext(logCtx, "Using config file", "path", cfgFile)
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory and cwd with name ".vilviz" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".vilviz")
	}

	viper.SetEnvPrefix("vilviz")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			slog.ErrorContext(logCtx, "Error reading config file", "error", err)
			os.Exit(1)
		}

		slog.DebugContext(logCtx, "No config file found, using flags only")

		return
	}

	slog.DebugContext(logCtx, "Config loaded", "path", viper.ConfigFileUsed())
}

const exampleConfig = `# vilviz configuration. Keys match command line flags without dashes.
theme = "dark"
format = "png"
port = 8080
db = "./vilviz.sqlite"
`

// createExampleConfig writes a starter config to path unless it already exists.
func createExampleConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	if err := os.WriteFile(path, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("could not create example config %s: %w", path, err)
	}

	slog.InfoContext(logCtx, "Example config file created", "path", path)

	return nil
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Viper compares keys case-insensitively, so only the hyphens need removing.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)

			err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
			if err != nil {
				slog.ErrorContext(logCtx, "Error setting flag from config", "flag", f.Name, "error", err)
				panic(err)
			}

			slog.DebugContext(logCtx, "Flag set to config value", "flag", f.Name, "value", val)
		}
	})
}
