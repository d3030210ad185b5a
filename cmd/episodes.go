package cmd

import (
	"os"

	"github.com/anisan-cli/seriesdex/filesystem"
	"github.com/anisan-cli/seriesdex/inline"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(episodesCmd)

	episodesCmd.Flags().StringP("query", "q", "", "Only series whose name fuzzily matches")
	episodesCmd.Flags().StringP("series", "s", "", "Series selector: first, last, exact or an index")
	episodesCmd.Flags().StringP("name", "n", "", "Series name used by the exact selector")
	episodesCmd.Flags().StringP("episodes", "e", "", "Episode selector")
	episodesCmd.Flags().BoolP("json", "j", false, "Print the result as JSON")
	episodesCmd.Flags().StringP("output", "o", "", "Write the result to a file")

	episodesCmd.SetOut(os.Stdout)
}

var episodesCmd = &cobra.Command{
	Use:   "episodes",
	Short: "Print episodes of selected series, for scripts",
	Long: `Print one line per episode (series key, designation, claim id, title) or JSON.

Series selectors:
  first - first series by key
  last - last series by key
  exact - the series named by --name
  [number] - series by index (starting from 0)

Episode selectors:
  first, last, all
  [number] - episode by index (starting from 0)
  [from]-[to] - episodes by index range
  @[substring]@ - episodes whose title contains the substring
  S01E02 - episodes with this designation`,
	Run: func(cmd *cobra.Command, args []string) {
		options := &inline.Options{
			Out:     cmd.OutOrStdout(),
			Catalog: loadCatalog(),
			Json:    lo.Must(cmd.Flags().GetBool("json")),
			Query:   lo.Must(cmd.Flags().GetString("query")),
		}

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			options.Out = file
		}

		if selector := lo.Must(cmd.Flags().GetString("series")); selector != "" {
			picker, err := inline.ParseSeriesPicker(selector, lo.Must(cmd.Flags().GetString("name")))
			handleErr(err)
			options.SeriesPicker = mo.Some(picker)
		}

		if selector := lo.Must(cmd.Flags().GetString("episodes")); selector != "" {
			filter, err := inline.ParseEpisodesFilter(selector)
			handleErr(err)
			options.EpisodesFilter = mo.Some(filter)
		}

		handleErr(inline.Run(options))
	},
}
