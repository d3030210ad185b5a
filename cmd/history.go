package cmd

import (
	"os"
	"sort"

	"github.com/anisan-cli/seriesdex/color"
	"github.com/anisan-cli/seriesdex/history"
	"github.com/anisan-cli/seriesdex/icon"
	"github.com/anisan-cli/seriesdex/inline"
	"github.com/anisan-cli/seriesdex/style"
	"github.com/anisan-cli/seriesdex/title"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Print the history as JSON")
	historyCmd.Flags().StringP("remove", "r", "", "Forget the series with this name")
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the last episode watched in each series",
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := history.Get()
		handleErr(err)

		if name := lo.Must(cmd.Flags().GetString("remove")); name != "" {
			seriesKey := name
			if _, ok := saved[seriesKey]; !ok {
				seriesKey = title.GenerateKey(name)
			}
			handleErr(history.Remove(seriesKey))
			cmd.Printf("%s forgot %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(name))
			return
		}

		entries := lo.Values(saved)
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].WatchedAt.After(entries[j].WatchedAt)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(inline.WriteJSON(cmd.OutOrStdout(), entries))
			return
		}

		for _, e := range entries {
			cmd.Printf(
				"%s %s %s\n",
				icon.Get(icon.Series),
				style.Bold(e.String()),
				style.Faint(e.WatchedAt.Format("2006-01-02 15:04")+" "+e.ClaimID),
			)
		}
	},
}
