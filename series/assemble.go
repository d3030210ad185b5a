package series

import (
	"cmp"

	"github.com/anisan-cli/seriesdex/content"
	"github.com/anisan-cli/seriesdex/title"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

func newEpisode(item *content.Item, number, season int) Episode {
	return Episode{
		ClaimID:      item.ClaimID,
		Title:        item.Title,
		Number:       number,
		Season:       season,
		ThumbnailURL: item.ThumbnailURL,
		Duration:     item.Duration,
	}
}

// seasonOf returns the season a playlist designates, explicitly or through its title.
func seasonOf(p *content.Playlist) mo.Option[int] {
	if p.SeasonNumber.IsPresent() {
		return p.SeasonNumber
	}
	_, season := title.StripSeason(p.Title)
	return season
}

// AssembleFromPlaylist resolves a playlist into episodes, in ascending position order.
// Items whose claim is missing from items are skipped.
//
// The episode number comes from the playlist item, else the parsed title, else position+1.
// The season comes from the playlist item, else the playlist, else the parsed title, else 1.
// The output order never depends on the resolved numbers.
func AssembleFromPlaylist(p *content.Playlist, items map[string]*content.Item) []Episode {
	fallbackSeason := seasonOf(p)

	var episodes []Episode
	for _, entry := range p.Ordered() {
		item, ok := items[entry.ClaimID]
		if !ok || item == nil {
			continue
		}

		parsed := title.Parse(item.Title)

		number, ok := entry.EpisodeNumber.Get()
		if !ok {
			if m, parsedOK := parsed.Get(); parsedOK {
				number = m.Episode
			} else {
				number = entry.Position + 1
			}
		}

		season, ok := entry.SeasonNumber.Get()
		if !ok {
			season, ok = fallbackSeason.Get()
		}
		if !ok {
			if m, parsedOK := parsed.Get(); parsedOK {
				season = m.Season
			} else {
				season = 1
			}
		}

		episodes = append(episodes, newEpisode(item, number, season))
	}

	return episodes
}

// AssembleFromParsing infers series from episode titles alone.
// Items whose title is not an episode, or whose series name yields an empty key, are left out.
// Episodes are ordered by episode number; equal numbers keep their input order.
// Every season is inferred.
func AssembleFromParsing(items []*content.Item) map[string]*SeriesInfo {
	type group struct {
		title   string
		seasons map[int][]Episode
	}

	groups := make(map[string]*group)
	for _, item := range items {
		if item == nil {
			continue
		}

		m, ok := title.Parse(item.Title).Get()
		if !ok {
			continue
		}

		key := m.Key()
		if key == "" {
			continue
		}

		g, ok := groups[key]
		if !ok {
			g = &group{title: m.SeriesName, seasons: make(map[int][]Episode)}
			groups[key] = g
		}
		g.seasons[m.Season] = append(g.seasons[m.Season], newEpisode(item, m.Episode, m.Season))
	}

	result := make(map[string]*SeriesInfo, len(groups))
	for key, g := range groups {
		info := &SeriesInfo{Key: key, Title: g.title}
		for number, episodes := range g.seasons {
			slices.SortStableFunc(episodes, func(a, b Episode) int {
				return cmp.Compare(a.Number, b.Number)
			})
			info.Seasons = append(info.Seasons, inferredSeason(number, episodes))
		}
		sortSeasons(info.Seasons)
		result[key] = info
	}

	return result
}

func sortSeasons(seasons []Season) {
	slices.SortFunc(seasons, func(a, b Season) int {
		return cmp.Compare(a.Number, b.Number)
	})
}
