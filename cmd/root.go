package cmd

import (
	"fmt"
	"os"

	"citizen-collect/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "citizen-collect",
	Short: "Citizen Science Collection Server",
	Long: `Citizen Collect is the backend for citizen-science field data collection.
It accepts georeferenced record submissions with photos and survey answers,
reconciles resubmissions without duplicating stored files, and serves the
project questionnaires mobile clients sync against.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level gives readable ISO8601 timestamps
		// for a CLI invocation.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
