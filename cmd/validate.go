package cmd

import (
	"fmt"
	"os"

	"github.com/anisan-cli/seriesdex/color"
	"github.com/anisan-cli/seriesdex/icon"
	"github.com/anisan-cli/seriesdex/inline"
	"github.com/anisan-cli/seriesdex/series"
	"github.com/anisan-cli/seriesdex/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolP("json", "j", false, "Print reports as JSON")
	validateCmd.Flags().Bool("strict", false, "Exit with an error when any season is invalid")
	validateCmd.SetOut(os.Stdout)
}

var validateCmd = &cobra.Command{
	Use:   "validate [name]",
	Short: "Report duplicate and missing episode numbers per season",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		organized := loadCatalog().Series()

		all := sortedSeries(organized)
		if len(args) == 1 {
			s, err := findSeries(args[0], organized)
			handleErr(err)
			all = []*series.SeriesInfo{s}
		}

		reports := lo.SliceToMap(all, func(s *series.SeriesInfo) (string, map[int]series.Report) {
			return s.Key, series.ValidateSeries(s)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(inline.WriteJSON(cmd.OutOrStdout(), reports))
		} else {
			for _, s := range all {
				for _, season := range s.Seasons {
					report := reports[s.Key][season.Number]
					status := style.Fg(color.Green)(icon.Get(icon.Success))
					detail := ""
					if !report.Valid {
						status = style.Fg(color.Yellow)(icon.Get(icon.Warn))
						detail = style.Faint(fmt.Sprintf(" duplicates %v, gaps %v", report.Duplicates, report.Gaps))
					}
					cmd.Printf("%s %s %s%s\n", status, style.Bold(s.Title), seasonTag(season), detail)
				}
			}
		}

		invalid := lo.SomeBy(lo.Values(reports), func(r map[int]series.Report) bool {
			return lo.SomeBy(lo.Values(r), func(report series.Report) bool {
				return !report.Valid
			})
		})
		if invalid && lo.Must(cmd.Flags().GetBool("strict")) {
			handleErr(fmt.Errorf("catalog has invalid seasons"))
		}
	},
}
