package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lyra-docs/lyra/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lyra configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose the explainer's AI provider and model, the server port and export settings, and writes them to .lyra.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
