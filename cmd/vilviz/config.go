package vilviz

import "github.com/spf13/cobra"

var configPath string

var configCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write an example .vilviz.toml",
	RunE: func(_ *cobra.Command, _ []string) error {
		return createExampleConfig(configPath)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVarP(&configPath, "out", "o", "./.vilviz.toml", "Where to write the example config")
}
