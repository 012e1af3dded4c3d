package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "flowbridge",
	Short: "HTTP bridge for an Amazon Bedrock Flow",
	Long: `Flowbridge forwards user text to a preconfigured Amazon Bedrock Flow,
collects the flow's streamed output events and returns them as a
uniform JSON envelope, either over a small HTTP API with a browser
test page or directly from the command line.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".flowbridge.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
