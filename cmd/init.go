package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/fragredirect/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize fragredirect configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure fragredirect for your documentation site and writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
