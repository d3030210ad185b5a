package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anisan-cli/seriesdex/catalog"
	"github.com/anisan-cli/seriesdex/color"
	"github.com/anisan-cli/seriesdex/icon"
	"github.com/anisan-cli/seriesdex/key"
	"github.com/anisan-cli/seriesdex/search"
	"github.com/anisan-cli/seriesdex/series"
	"github.com/anisan-cli/seriesdex/style"
	"github.com/anisan-cli/seriesdex/title"
	"github.com/anisan-cli/seriesdex/util"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

func loadCatalog() *catalog.Catalog {
	path, err := catalog.Path(viper.GetString(key.CatalogPath))
	handleErr(err)

	erase := util.PrintErasable(fmt.Sprintf("%s Loading %s...", icon.Get(icon.Progress), path))
	c, err := catalog.Load(path)
	erase()
	handleErr(err)

	return c
}

// sortedSeries lists organized series by title.
func sortedSeries(organized map[string]*series.SeriesInfo) []*series.SeriesInfo {
	all := lo.Values(organized)
	sort.Slice(all, func(i, j int) bool {
		if a, b := strings.ToLower(all[i].Title), strings.ToLower(all[j].Title); a != b {
			return a < b
		}
		return all[i].Key < all[j].Key
	})
	return all
}

// findSeries resolves a user supplied series name, suggesting the closest one on a miss.
func findSeries(name string, organized map[string]*series.SeriesInfo) (*series.SeriesInfo, error) {
	if s, ok := organized[title.GenerateKey(name)]; ok {
		return s, nil
	}
	if s, ok := organized[name]; ok {
		return s, nil
	}

	if closest, ok := search.Closest(name, organized).Get(); ok {
		return nil, fmt.Errorf(
			"series %s not found, did you mean %s?",
			style.Fg(color.Red)(name),
			style.Fg(color.Yellow)(closest.Title),
		)
	}
	return nil, fmt.Errorf("series %s not found", style.Fg(color.Red)(name))
}

// findEpisode locates a claim in the catalog and organizes its series.
func findEpisode(c *catalog.Catalog, claimID string) (*series.SeriesInfo, series.Episode, error) {
	if _, ok := c.ByClaim()[claimID]; !ok {
		return nil, series.Episode{}, fmt.Errorf("claim %s is not in the catalog", claimID)
	}

	s, ok := c.SeriesFor(claimID)
	if !ok {
		return nil, series.Episode{}, fmt.Errorf("claim %s is not an episode of any series", claimID)
	}

	episode, ok := s.Episode(claimID).Get()
	if !ok {
		return nil, series.Episode{}, fmt.Errorf("claim %s is not an episode of any series", claimID)
	}
	return s, episode, nil
}

func seasonTag(season series.Season) string {
	label := fmt.Sprintf("Season %d", season.Number)
	if season.Inferred {
		return style.Tag(color.Text, color.Guessed)(icon.Get(icon.Inferred) + " " + label)
	}
	return style.Tag(color.Text, color.Confirmed)(icon.Get(icon.Playlist) + " " + label)
}

func episodeLine(e series.Episode) string {
	token := title.Token{Season: e.Season, Episode: e.Number}
	line := fmt.Sprintf("%s %s %s", style.Bold(token.String()), e.Title, style.Faint(e.ClaimID))
	if d, ok := e.Duration.Get(); ok {
		line += style.Faint(fmt.Sprintf(" %dm", d/60))
	}
	return line
}

// wrapped fits text to the terminal, indented by indent spaces.
func wrapped(text string, indent int) string {
	width := util.TerminalWidth(80)
	if width <= indent+20 {
		width = 80
	}

	pad := strings.Repeat(" ", indent)
	lines := strings.Split(wordwrap.String(text, width-indent), "\n")
	return pad + strings.Join(lines, "\n"+pad)
}

// shortened cuts text to a single terminal line.
func shortened(text string, indent int) string {
	width := util.TerminalWidth(80)
	if width <= indent+20 {
		width = 80
	}
	return truncate.StringWithTail(strings.Join(strings.Fields(text), " "), uint(width-indent), "…")
}

func warnInvalid(s *series.SeriesInfo) {
	if !viper.GetBool(key.SeriesWarnInvalid) {
		return
	}

	for _, season := range s.Seasons {
		report := series.Validate(season)
		if report.Valid {
			continue
		}
		fmt.Printf(
			"%s %s season %d: duplicates %v, gaps %v\n",
			style.Fg(color.Yellow)(icon.Get(icon.Warn)),
			s.Title,
			season.Number,
			report.Duplicates,
			report.Gaps,
		)
	}
}
