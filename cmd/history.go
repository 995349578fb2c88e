package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently looked up players",
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp(cmd)
		defer a.Close()

		if !a.history.IsEnabled() {
			fmt.Fprintln(os.Stderr, "Lookup history is disabled; enable the database to record it")
			a.Close()
			os.Exit(1)
		}

		report, err := a.history.Service().List(cmd.Context(), historyLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list history: %v\n", err)
			a.Close()
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "STEAM ID\tNICKNAME\tLOOKUPS\tLAST SEEN")
		for _, p := range report.Players {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", p.SteamID, p.Nickname, p.LookupCount, p.LastSeenAt.Format(time.RFC3339))
		}
		_ = w.Flush()
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of players to show")
	RootCmd.AddCommand(historyCmd)
}
