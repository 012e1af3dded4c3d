package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowbridge/flowbridge/internal/integration"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke [text]",
	Short: "Send a one-off test input to the configured flow",
	Long:  `Invokes the configured Bedrock flow once with the given text, without starting the HTTP server, and prints the result envelope as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := buildLogger()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync()

		integ, err := integration.New(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		result := integ.TestFlow(cmd.Context(), args[0])

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invokeCmd)
}
