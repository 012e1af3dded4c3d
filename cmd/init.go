package cmd

import (
	"github.com/spf13/cobra"

	"github.com/flowbridge/flowbridge/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize flowbridge configuration with an interactive wizard",
	Long:  `Runs an interactive wizard asking for the Bedrock flow ID, flow alias ID and region, and generates a .flowbridge.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
