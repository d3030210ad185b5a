package series

import (
	"strings"

	"github.com/anisan-cli/seriesdex/content"
	"github.com/anisan-cli/seriesdex/log"
	"github.com/anisan-cli/seriesdex/title"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// seasonKey addresses one season of one series.
type seasonKey struct {
	series string
	season int
}

// playlistTable holds the seasons built from playlists.
type playlistTable struct {
	titles  map[string]string
	seasons map[seasonKey]*Season
	// placed records every claim a playlist put into a series, so a claim listed
	// by two playlists of one series appears once.
	placed map[string]map[string]bool
}

// identify returns the series key and display name of a playlist.
// An explicit series key wins; otherwise the title, minus any season suffix, is keyed.
// Playlists with neither fall back to the first member whose title parses as an episode.
func identify(p *content.Playlist, items map[string]*content.Item) (key, name string) {
	name, _ = title.StripSeason(p.Title)

	if key = strings.TrimSpace(p.SeriesKey); key != "" {
		return key, name
	}

	if key = title.GenerateKey(name); key != "" {
		return key, name
	}

	for _, entry := range p.Ordered() {
		item, ok := items[entry.ClaimID]
		if !ok || item == nil {
			continue
		}
		if m, ok := title.Parse(item.Title).Get(); ok && m.Key() != "" {
			return m.Key(), m.SeriesName
		}
	}

	return "", ""
}

func buildPlaylistTable(playlists []*content.Playlist, items map[string]*content.Item) playlistTable {
	table := playlistTable{
		titles:  make(map[string]string),
		seasons: make(map[seasonKey]*Season),
		placed:  make(map[string]map[string]bool),
	}

	for _, p := range playlists {
		if p == nil {
			continue
		}

		key, name := identify(p, items)
		if key == "" {
			log.With(log.Fields{"playlist": p.ID}).Debugf("skipping playlist %q without a series", p.Title)
			continue
		}

		if _, ok := table.titles[key]; !ok || table.titles[key] == "" {
			table.titles[key] = name
		}
		if table.placed[key] == nil {
			table.placed[key] = make(map[string]bool)
		}

		// A playlist spanning several seasons contributes one season per resolved number,
		// each keeping playlist order.
		for _, e := range AssembleFromPlaylist(p, items) {
			if table.placed[key][e.ClaimID] {
				continue
			}
			table.placed[key][e.ClaimID] = true

			sk := seasonKey{series: key, season: e.Season}
			season, ok := table.seasons[sk]
			if !ok {
				s := playlistSeason(e.Season, p.ID, nil)
				season = &s
				table.seasons[sk] = season
			}
			season.Episodes = append(season.Episodes, e)
		}
	}

	return table
}

// Merge builds every series present in playlists or in episode titles.
//
// Playlist seasons take precedence over inferred ones for the same series and season number:
// the inferred season is discarded entirely, never interleaved. Seasons of other numbers are
// kept as they are, even when a playlist also holds some of their claims.
// Series left without seasons are omitted.
func Merge(playlists []*content.Playlist, all []*content.Item) map[string]*SeriesInfo {
	index := content.Index(all)
	table := buildPlaylistTable(playlists, index)
	parsed := AssembleFromParsing(all)

	keys := lo.Uniq(append(lo.Keys(table.titles), lo.Keys(parsed)...))

	result := make(map[string]*SeriesInfo, len(keys))
	for _, key := range keys {
		seasons := make(map[int]Season)

		if inferred, ok := parsed[key]; ok {
			for _, season := range inferred.Seasons {
				seasons[season.Number] = season
			}
		}

		for sk, season := range table.seasons {
			if sk.series != key {
				continue
			}
			if replaced, ok := seasons[sk.season]; ok {
				log.With(log.Fields{"series": key, "season": sk.season}).
					Debugf("playlist %s replaces %d inferred episodes", season.PlaylistID.OrEmpty(), len(replaced.Episodes))
			}
			seasons[sk.season] = *season
		}

		if len(seasons) == 0 {
			continue
		}

		info := &SeriesInfo{
			Key:     key,
			Title:   seriesTitle(key, table.titles[key], parsed[key]),
			Seasons: lo.Values(seasons),
		}
		sortSeasons(info.Seasons)
		result[key] = info
	}

	return result
}

func seriesTitle(key, fromPlaylist string, inferred *SeriesInfo) string {
	switch {
	case fromPlaylist != "":
		return fromPlaylist
	case inferred != nil && inferred.Title != "":
		return inferred.Title
	default:
		return key
	}
}

// ForClaim returns the series a claim belongs to.
// Playlist membership decides the series when present; otherwise the claim's title must parse
// as an episode, and the series is assembled from all content sharing its key.
// Claims that are unknown, or whose title is not an episode, belong to no series.
func ForClaim(claimID string, playlists []*content.Playlist, all []*content.Item) mo.Option[*SeriesInfo] {
	index := content.Index(all)
	item, ok := index[claimID]
	if !ok {
		return mo.None[*SeriesInfo]()
	}

	key := ""
	for _, p := range playlists {
		if p != nil && p.Contains(claimID) {
			if key, _ = identify(p, index); key != "" {
				break
			}
		}
	}

	if key == "" {
		m, ok := title.Parse(item.Title).Get()
		if !ok || m.Key() == "" {
			return mo.None[*SeriesInfo]()
		}
		key = m.Key()
	}

	related := lo.Filter(playlists, func(p *content.Playlist, _ int) bool {
		if p == nil {
			return false
		}
		k, _ := identify(p, index)
		return k == key
	})

	members := lo.Filter(all, func(i *content.Item, _ int) bool {
		if i == nil {
			return false
		}
		if lo.ContainsBy(related, func(p *content.Playlist) bool { return p.Contains(i.ClaimID) }) {
			return true
		}
		m, ok := title.Parse(i.Title).Get()
		return ok && m.Key() == key
	})

	info, ok := Merge(related, members)[key]
	if !ok {
		return mo.None[*SeriesInfo]()
	}
	return mo.Some(info)
}
