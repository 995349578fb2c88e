package cmd

import (
	"fmt"
	"os"
	"strings"

	"games-in-common/core/resolver"

	"github.com/spf13/cobra"
)

var commonCmd = &cobra.Command{
	Use:   "common [player...]",
	Short: "List the games a group of players has in common",
	Long: `Resolves every player (Steam ID, short ID or vanity name) and prints the games owned
by all of them, followed by the games owned by everyone but one player.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp(cmd)
		defer a.Close()

		report, err := a.games.CommonGames(cmd.Context(), resolver.Split(args...))
		if report != nil {
			printReport(report.Text, report.Errors)
		}
		if err != nil {
			if report == nil {
				fmt.Fprintln(os.Stderr, err)
			}
			a.Close()
			os.Exit(1)
		}
	},
}

var friendsCmd = &cobra.Command{
	Use:   "friends [player...]",
	Short: "List the friends of one or more players",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp(cmd)
		defer a.Close()

		report, err := a.friends.FriendsOf(cmd.Context(), resolver.Split(args...))
		if report != nil {
			printReport(report.Text, report.Errors)
		}
		if err != nil && (report == nil || report.Result == nil) {
			if report == nil {
				fmt.Fprintln(os.Stderr, err)
			}
			a.Close()
			os.Exit(1)
		}
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [player...]",
	Short: "Resolve identifiers to canonical Steam IDs",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp(cmd)
		defer a.Close()

		report, err := a.players.Resolve(cmd.Context(), resolver.Split(args...))
		if report != nil {
			for _, p := range report.Players {
				if p.Nickname != "" {
					fmt.Printf("%s = %s (%s, %s)\n", p.Input, p.SteamID, p.Nickname, p.Kind)
				} else {
					fmt.Printf("%s = %s (%s)\n", p.Input, p.SteamID, p.Kind)
				}
			}
			printReport("", report.Errors)
		}
		if err != nil && (report == nil || len(report.Players) == 0) {
			if report == nil {
				fmt.Fprintln(os.Stderr, err)
			}
			a.Close()
			os.Exit(1)
		}
	},
}

func init() {
	RootCmd.AddCommand(commonCmd)
	RootCmd.AddCommand(friendsCmd)
	RootCmd.AddCommand(resolveCmd)
}

func mustApp(cmd *cobra.Command) *app {
	a, err := newApp(cmd.Context())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	return a
}

// printReport writes the report to stdout and one line per failure to stderr.
func printReport(text string, errs []string) {
	if text != "" {
		fmt.Println(strings.TrimRight(text, "\n"))
	}
	for _, line := range errs {
		fmt.Fprintln(os.Stderr, line)
	}
}
