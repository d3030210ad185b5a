package content

import (
	"cmp"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Playlist is an authoritative ordering of items, usually one season of a series.
type Playlist struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// SeriesKey groups the playlist with other seasons; derived from Title when empty.
	SeriesKey    string         `json:"series_key,omitempty"`
	SeasonNumber mo.Option[int] `json:"season_number"`
	Items        []PlaylistItem `json:"items"`
}

// PlaylistItem places a claim at a position within a playlist.
// Position is the only source of ordering and need not be contiguous.
type PlaylistItem struct {
	ClaimID       string         `json:"claim_id"`
	Position      int            `json:"position"`
	EpisodeNumber mo.Option[int] `json:"episode_number"`
	SeasonNumber  mo.Option[int] `json:"season_number"`
}

func (p *Playlist) String() string {
	return p.Title
}

// Ordered returns a copy of the items sorted by ascending position.
// Items sharing a position keep their input order.
func (p *Playlist) Ordered() []PlaylistItem {
	items := slices.Clone(p.Items)
	slices.SortStableFunc(items, func(a, b PlaylistItem) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return items
}

// Contains reports whether the playlist references claimID.
func (p *Playlist) Contains(claimID string) bool {
	return lo.ContainsBy(p.Items, func(item PlaylistItem) bool {
		return item.ClaimID == claimID
	})
}
