package search

import (
	"strings"

	"github.com/anisan-cli/seriesdex/series"
	"github.com/anisan-cli/seriesdex/title"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Closest finds the series whose key is nearest to the key of name.
// Matches further than a third of the key length away are rejected.
func Closest(name string, all map[string]*series.SeriesInfo) mo.Option[*series.SeriesInfo] {
	wanted := title.GenerateKey(name)
	if wanted == "" || len(all) == 0 {
		return mo.None[*series.SeriesInfo]()
	}

	if s, ok := all[wanted]; ok {
		return mo.Some(s)
	}

	distance := func(s *series.SeriesInfo) int {
		return min(
			levenshtein.Distance(wanted, s.Key),
			levenshtein.Distance(wanted, title.GenerateKey(s.Title)),
		)
	}

	candidates := lo.Values(all)
	closest := lo.MinBy(candidates, func(a, b *series.SeriesInfo) bool {
		da, db := distance(a), distance(b)
		if da != db {
			return da < db
		}
		return strings.Compare(a.Key, b.Key) < 0
	})

	if distance(closest) > max(1, len(wanted)/3) {
		return mo.None[*series.SeriesInfo]()
	}
	return mo.Some(closest)
}
