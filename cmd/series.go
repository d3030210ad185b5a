package cmd

import (
	"fmt"
	"os"

	"github.com/anisan-cli/seriesdex/icon"
	"github.com/anisan-cli/seriesdex/inline"
	"github.com/anisan-cli/seriesdex/series"
	"github.com/anisan-cli/seriesdex/style"
	"github.com/anisan-cli/seriesdex/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(seriesCmd)
	seriesCmd.Flags().BoolP("json", "j", false, "Print the organized series as JSON")
	seriesCmd.Flags().IntP("season", "s", 0, "Only show this season")
	seriesCmd.SetOut(os.Stdout)
}

var seriesCmd = &cobra.Command{
	Use:   "series [name]",
	Short: "List organized series, or the seasons and episodes of one series",
	Long: `Organize the catalog into series and list them.

Seasons built from playlists follow playlist order. Seasons inferred from episode titles
are ordered by episode number and marked as such.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asJson    = lo.Must(cmd.Flags().GetBool("json"))
			seasonNum = lo.Must(cmd.Flags().GetInt("season"))
			organized = loadCatalog().Series()
		)

		if len(args) == 0 {
			all := sortedSeries(organized)
			if asJson {
				handleErr(inline.WriteJSON(cmd.OutOrStdout(), all))
				return
			}

			for _, s := range all {
				cmd.Printf(
					"%s %s %s\n",
					icon.Get(icon.Series),
					style.Bold(s.Title),
					style.Faint(fmt.Sprintf(
						"%s, %s, %s",
						s.Key,
						util.Quantify(len(s.Seasons), "season", "seasons"),
						util.Quantify(s.TotalEpisodes(), "episode", "episodes"),
					)),
				)
			}
			return
		}

		s, err := findSeries(args[0], organized)
		handleErr(err)

		seasons := s.Seasons
		if cmd.Flags().Changed("season") {
			season, ok := s.Season(seasonNum).Get()
			if !ok {
				handleErr(fmt.Errorf("%s has no season %d", s.Title, seasonNum))
			}
			seasons = []series.Season{season}
		}

		if asJson {
			handleErr(inline.WriteJSON(cmd.OutOrStdout(), &series.SeriesInfo{Key: s.Key, Title: s.Title, Seasons: seasons}))
			return
		}

		cmd.Println(style.Title(s.Title))
		for _, season := range seasons {
			cmd.Println()
			cmd.Println(seasonTag(season))
			for _, e := range season.Episodes {
				cmd.Println("  " + episodeLine(e))
			}
		}
		cmd.Println()
		warnInvalid(s)
	},
}
