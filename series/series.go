// Package series organizes content into series, seasons and episodes.
//
// Two sources feed it: playlists, whose positions are the authoritative order,
// and episode titles, from which seasons are inferred when no playlist covers them.
// Everything here is a pure function of its inputs and safe for concurrent use.
package series

import (
	"encoding/json"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Episode is a content item placed within a season.
type Episode struct {
	ClaimID      string         `json:"claim_id"`
	Title        string         `json:"title"`
	Number       int            `json:"episode_number"`
	Season       int            `json:"season_number"`
	ThumbnailURL string         `json:"thumbnail_url,omitempty"`
	Duration     mo.Option[int] `json:"duration_seconds"`
}

// Season is an ordered run of episodes. The order of Episodes is canonical:
// playlist position for playlist seasons, episode number for inferred ones.
type Season struct {
	Number   int       `json:"number"`
	Episodes []Episode `json:"episodes"`
	// Inferred is false iff the season came from a playlist, in which case PlaylistID is set.
	Inferred   bool              `json:"inferred"`
	PlaylistID mo.Option[string] `json:"playlist_id"`
}

func playlistSeason(number int, playlistID string, episodes []Episode) Season {
	return Season{Number: number, Episodes: episodes, PlaylistID: mo.Some(playlistID)}
}

func inferredSeason(number int, episodes []Episode) Season {
	return Season{Number: number, Episodes: episodes, Inferred: true, PlaylistID: mo.None[string]()}
}

// SeriesInfo is the assembled view of one series. Seasons are sorted by ascending number.
type SeriesInfo struct {
	Key     string   `json:"series_key"`
	Title   string   `json:"title"`
	Seasons []Season `json:"seasons"`
}

// TotalEpisodes counts the episodes of every season.
func (s *SeriesInfo) TotalEpisodes() int {
	return lo.SumBy(s.Seasons, func(season Season) int {
		return len(season.Episodes)
	})
}

// Season returns the season numbered n.
func (s *SeriesInfo) Season(n int) mo.Option[Season] {
	season, ok := lo.Find(s.Seasons, func(season Season) bool {
		return season.Number == n
	})
	if !ok {
		return mo.None[Season]()
	}
	return mo.Some(season)
}

// Episode returns the episode for claimID.
func (s *SeriesInfo) Episode(claimID string) mo.Option[Episode] {
	if si, ei, ok := s.locate(claimID); ok {
		return mo.Some(s.Seasons[si].Episodes[ei])
	}
	return mo.None[Episode]()
}

func (s *SeriesInfo) locate(claimID string) (season, episode int, ok bool) {
	for si, season := range s.Seasons {
		for ei, e := range season.Episodes {
			if e.ClaimID == claimID {
				return si, ei, true
			}
		}
	}
	return 0, 0, false
}

// MarshalJSON adds the episode total, computed at encoding time.
func (s SeriesInfo) MarshalJSON() ([]byte, error) {
	type plain SeriesInfo
	return json.Marshal(struct {
		plain
		TotalEpisodes int `json:"total_episodes"`
	}{
		plain:         plain(s),
		TotalEpisodes: s.TotalEpisodes(),
	})
}
