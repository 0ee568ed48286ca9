package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/config"
)

var (
	cfgFile string
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "postboard",
	Short: "Browse posts from a jsonplaceholder-style REST API",
	Long: `Postboard is a small list/detail client for a posts REST API. It serves
a paginated web front end, browses the same pages in the terminal, and
exports the whole collection as JSON or YAML.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadEnvFile(envFile)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
