// Package inline implements the non-interactive mode: series are selected and filtered from flags
// and printed as plain lines or JSON.
package inline

import (
	"fmt"
	"os"
	"sort"

	"github.com/anisan-cli/seriesdex/series"
	"github.com/anisan-cli/seriesdex/title"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Catalog == nil {
		return fmt.Errorf("inline: no catalog")
	}

	candidates := lo.Values(options.Catalog.Series())
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Key < candidates[j].Key
	})

	if options.Query != "" {
		wanted := title.GenerateKey(options.Query)
		candidates = lo.Filter(candidates, func(s *series.SeriesInfo, _ int) bool {
			return fuzzy.MatchFold(wanted, s.Key) || fuzzy.MatchFold(options.Query, s.Title)
		})
	}

	selected := candidates
	if options.SeriesPicker.IsPresent() {
		selected = nil
		if choice := options.SeriesPicker.MustGet()(candidates); choice != nil {
			selected = []*series.SeriesInfo{choice}
		}
	}

	result := make([]*Series, 0, len(selected))
	for _, s := range selected {
		episodes := lo.FlatMap(s.Seasons, func(season series.Season, _ int) []series.Episode {
			return season.Episodes
		})

		if filter, ok := options.EpisodesFilter.Get(); ok {
			filtered, err := filter(episodes)
			if err != nil {
				return err
			}
			episodes = filtered
		}

		result = append(result, &Series{
			Series:   s,
			Episodes: episodes,
			Reports:  series.ValidateSeries(s),
		})
	}

	if options.Json {
		return WriteJSON(options.Out, &Output{
			Catalog: options.Catalog.Digest(),
			Query:   options.Query,
			Result:  result,
		})
	}

	for _, r := range result {
		for _, e := range r.Episodes {
			token := title.Token{Season: e.Season, Episode: e.Number}
			if _, err := fmt.Fprintf(options.Out, "%s\t%s\t%s\t%s\n", r.Series.Key, token, e.ClaimID, e.Title); err != nil {
				return err
			}
		}
	}

	return nil
}
