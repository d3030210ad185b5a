package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/anisan-cli/seriesdex/history"
	"github.com/anisan-cli/seriesdex/icon"
	"github.com/anisan-cli/seriesdex/inline"
	"github.com/anisan-cli/seriesdex/key"
	"github.com/anisan-cli/seriesdex/log"
	"github.com/anisan-cli/seriesdex/series"
	"github.com/anisan-cli/seriesdex/style"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type stepper func(series.Episode, *series.SeriesInfo) mo.Option[series.Episode]

func init() {
	for _, c := range []*cobra.Command{nextCmd, prevCmd} {
		rootCmd.AddCommand(c)
		c.Flags().BoolP("continue", "c", false, "Start from the last watched episode")
		c.Flags().BoolP("json", "j", false, "Print the result as JSON")
		c.SetOut(os.Stdout)
	}
}

var nextCmd = &cobra.Command{
	Use:   "next [claim]",
	Short: "Show the episode after the given one, crossing into the next season",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		navigate(cmd, args, series.Next, icon.Next)
	},
}

var prevCmd = &cobra.Command{
	Use:     "prev [claim]",
	Aliases: []string{"previous"},
	Short:   "Show the episode before the given one, crossing into the previous season",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		navigate(cmd, args, series.Previous, icon.Previous)
	},
}

func navigate(cmd *cobra.Command, args []string, step stepper, marker icon.Icon) {
	c := loadCatalog()

	var claimID string
	switch {
	case len(args) == 1:
		claimID = args[0]
	case lo.Must(cmd.Flags().GetBool("continue")):
		last, ok := history.Last().Get()
		if !ok {
			handleErr(errors.New("nothing watched yet"))
		}
		claimID = last.ClaimID
	default:
		handleErr(errors.New("claim is required, or use --continue"))
	}

	s, current, err := findEpisode(c, claimID)
	handleErr(err)

	to, found := step(current, s).Get()

	if lo.Must(cmd.Flags().GetBool("json")) {
		out := &inline.Navigation{Series: s, From: current}
		if found {
			out.To = &to
		}
		handleErr(inline.WriteJSON(cmd.OutOrStdout(), out))
	} else if found {
		cmd.Printf("%s %s\n", icon.Get(marker), episodeLine(to))
	} else {
		cmd.Printf("%s %s\n", icon.Get(icon.Warn), style.Faint(fmt.Sprintf("%s has no episode there", s.Title)))
	}

	if found && viper.GetBool(key.HistorySaveOnWatch) {
		if err := history.Save(s, to); err != nil {
			log.Warn(err)
		}
	}
}
