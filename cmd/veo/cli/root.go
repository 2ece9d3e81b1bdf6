package cli

import (
	"os"

	"github.com/deepnoodle-ai/veo/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "veo",
	Short:        "Generate videos with Google Veo through the Gemini API",
	Long:         "veo submits video generation requests to Google's Veo models, waits for the long-running operation to complete, and saves the resulting MP4 files.",
	SilenceUsage: true,
}

var logLevel string

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds a logger from the global --log-level flag.
func newLogger() log.Logger {
	if logLevel == "none" {
		return log.NewNullLogger()
	}
	return log.New(log.LevelFromString(logLevel))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (none, debug, info, warn, error)")
}
