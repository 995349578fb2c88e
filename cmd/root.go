package cmd

import (
	"fmt"
	"os"

	"games-in-common/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "games-in-common",
	Short: "Steam Games In Common",
	Long: `Games In Common finds the Steam games a group of players can play together.
It resolves Steam IDs and vanity names, caches libraries in Redis and serves
reports over HTTP or on the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
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
