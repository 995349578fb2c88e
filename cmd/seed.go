package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedRefresh bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the app name cache from the Steam app list",
	Long: `Loads the latest app list snapshot from object storage (or fetches a new one) and
writes every app name that is not cached yet.`,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp(cmd)
		defer a.Close()

		if a.storage == nil {
			fmt.Fprintln(os.Stderr, "Object storage is not configured; cannot seed app names")
			a.Close()
			os.Exit(1)
		}

		report, err := a.appnames.Seed(cmd.Context(), seedRefresh)
		if err != nil {
			a.logger.Error("Seeding failed", zap.Error(err))
			a.Close()
			os.Exit(1)
		}

		fmt.Printf("Snapshot: %s\n", report.Snapshot)
		fmt.Printf("Apps:     %d\n", report.Total)
		fmt.Printf("Written:  %d\n", report.Written)
		fmt.Printf("Skipped:  %d\n", report.Skipped)
		fmt.Printf("Failed:   %d\n", report.Failed)
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedRefresh, "refresh", false, "Fetch a new app list snapshot instead of reusing the latest one")
	RootCmd.AddCommand(seedCmd)
}
