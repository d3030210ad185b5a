package cmd

import (
	"os"
	"strings"

	"github.com/anisan-cli/seriesdex/color"
	"github.com/anisan-cli/seriesdex/icon"
	"github.com/anisan-cli/seriesdex/inline"
	"github.com/anisan-cli/seriesdex/style"
	"github.com/anisan-cli/seriesdex/title"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolP("json", "j", false, "Print the match as JSON, null when the title is not an episode")
	parseCmd.SetOut(os.Stdout)
}

var parseCmd = &cobra.Command{
	Use:   "parse <title>",
	Short: "Parse an episode title into series, season, episode and episode title",
	Example: `  seriesdex parse "Doctor Who S01E01 - Rose"
  seriesdex parse "The Office Season Two Episode 3"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text := strings.Join(args, " ")
		match := title.Parse(text)

		if lo.Must(cmd.Flags().GetBool("json")) {
			var out *title.Match
			if m, ok := match.Get(); ok {
				out = &m
			}
			handleErr(inline.WriteJSON(cmd.OutOrStdout(), out))
			return
		}

		m, ok := match.Get()
		if !ok {
			cmd.Printf("%s %s is not an episode\n", icon.Get(icon.Warn), style.Fg(color.Yellow)(text))
			return
		}

		field := func(name, value string) {
			cmd.Printf("%s %s\n", style.Faint(name), style.Bold(value))
		}
		field("series ", m.SeriesName)
		field("key    ", m.Key())
		field("episode", m.Token().String())
		field("title  ", m.EpisodeTitle)
	},
}
