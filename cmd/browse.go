package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/anisan-cli/seriesdex/history"
	"github.com/anisan-cli/seriesdex/icon"
	"github.com/anisan-cli/seriesdex/key"
	"github.com/anisan-cli/seriesdex/log"
	"github.com/anisan-cli/seriesdex/open"
	"github.com/anisan-cli/seriesdex/series"
	"github.com/anisan-cli/seriesdex/style"
	"github.com/anisan-cli/seriesdex/title"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().BoolP("open", "o", false, "Open the best video of the picked episode")
	browseCmd.SetOut(os.Stdout)
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a series and an episode interactively",
	Run: func(cmd *cobra.Command, args []string) {
		c := loadCatalog()
		all := sortedSeries(c.Series())
		if len(all) == 0 {
			handleErr(errors.New("the catalog has no series"))
		}

		var seriesIndex int
		err := survey.AskOne(&survey.Select{
			Message: "Series",
			Options: lo.Map(all, func(s *series.SeriesInfo, _ int) string {
				return fmt.Sprintf("%s (%d)", s.Title, s.TotalEpisodes())
			}),
			PageSize: 15,
		}, &seriesIndex)
		if errors.Is(err, terminal.InterruptErr) {
			return
		}
		handleErr(err)

		s := all[seriesIndex]
		episodes := lo.FlatMap(s.Seasons, func(season series.Season, _ int) []series.Episode {
			return season.Episodes
		})

		var episodeIndex int
		err = survey.AskOne(&survey.Select{
			Message: s.Title,
			Options: lo.Map(episodes, func(e series.Episode, _ int) string {
				return fmt.Sprintf("%s %s", title.Token{Season: e.Season, Episode: e.Number}, e.Title)
			}),
			PageSize: 20,
		}, &episodeIndex)
		if errors.Is(err, terminal.InterruptErr) {
			return
		}
		handleErr(err)

		episode := episodes[episodeIndex]
		cmd.Println(style.Title(s.Title))
		cmd.Println(episodeLine(episode))
		if item, ok := c.ByClaim()[episode.ClaimID]; ok {
			if item.Description != "" {
				cmd.Println(wrapped(item.Description, 2))
			}
			if video, ok := item.PreferredVideo().Get(); ok {
				cmd.Println(style.Faint(video.String()))
				if lo.Must(cmd.Flags().GetBool("open")) {
					handleErr(open.Start(video.URL))
				}
			}
		}

		if next, ok := series.Next(episode, s).Get(); ok {
			cmd.Printf("%s %s\n", icon.Get(icon.Next), style.Faint(episodeLine(next)))
		}

		if viper.GetBool(key.HistorySaveOnWatch) {
			if err := history.Save(s, episode); err != nil {
				log.Warn(err)
			}
		}
	},
}
