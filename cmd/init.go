package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize postboard configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the upstream API and web server, and writes the config file (.postboard.yml unless --config is given).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
