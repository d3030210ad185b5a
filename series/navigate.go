package series

import (
	"cmp"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Next returns the episode after current: the following episode of its season,
// else the first episode of the next non-empty season.
// Traversal follows season order, never episode number arithmetic.
func Next(current Episode, s *SeriesInfo) mo.Option[Episode] {
	return step(current, s, 1)
}

// Previous mirrors Next, crossing into the last episode of the previous non-empty season.
func Previous(current Episode, s *SeriesInfo) mo.Option[Episode] {
	return step(current, s, -1)
}

func step(current Episode, s *SeriesInfo, direction int) mo.Option[Episode] {
	if s == nil {
		return mo.None[Episode]()
	}

	si, ei, ok := s.locate(current.ClaimID)
	if !ok {
		return mo.None[Episode]()
	}

	episodes := s.Seasons[si].Episodes
	if next := ei + direction; next >= 0 && next < len(episodes) {
		return mo.Some(episodes[next])
	}

	// Walk seasons by number even when Seasons is unsorted.
	order := lo.Range(len(s.Seasons))
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(s.Seasons[a].Number, s.Seasons[b].Number)
	})
	position := slices.Index(order, si)

	for i := position + direction; i >= 0 && i < len(order); i += direction {
		episodes := s.Seasons[order[i]].Episodes
		if len(episodes) == 0 {
			continue
		}
		if direction > 0 {
			return mo.Some(episodes[0])
		}
		return mo.Some(episodes[len(episodes)-1])
	}

	return mo.None[Episode]()
}
