package cmd

import (
	"fmt"
	"os"

	"hotwire-demo/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "hotwire-demo",
	Short: "Hotwire demo server",
	Long: `Hotwire demo renders a small item list on the server and lets Turbo
and Stimulus enhance it: Turbo Streams for the add-item form, a lazily
loaded Turbo Frame, and plain redirects when JavaScript is off.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives readable ISO8601 timestamps for CLI users.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
