package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tablesh/tablesh/core"
	"github.com/tablesh/tablesh/core/logger"
)

// runCmd starts an interactive shell on the current terminal.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive shell on this terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		logFd, err := configuration.OpenAppLog()
		if err != nil {
			return err
		}
		defer logFd.Close()

		return core.RunLocal(configuration, logger.NewJSONLinesLogger(logFd))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
