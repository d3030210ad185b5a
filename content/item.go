// Package content defines the records supplied by the fetching layer: playable items and the playlists that order them.
package content

import (
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Compatibility describes whether an item can be played without transcoding.
type Compatibility string

const (
	Compatible     Compatibility = "compatible"
	NeedsTranscode Compatibility = "needs_transcode"
	Incompatible   Compatibility = "incompatible"
)

// Item is one playable unit, identified by its claim.
// Items are owned by whoever fetched them and are never mutated here.
type Item struct {
	ClaimID       string              `json:"claim_id"`
	Title         string              `json:"title"`
	Description   string              `json:"description,omitempty"`
	Tags          []string            `json:"tags"`
	ThumbnailURL  string              `json:"thumbnail_url,omitempty"`
	Duration      mo.Option[int]      `json:"duration_seconds"`
	ReleaseTime   time.Time           `json:"release_time"`
	VideoURLs     map[string]VideoURL `json:"video_urls"`
	Compatibility Compatibility       `json:"compatibility"`
}

func (i *Item) String() string {
	return i.Title
}

// HasTag reports whether the item carries tag, ignoring case.
func (i *Item) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return false
	}

	return lo.ContainsBy(i.Tags, func(t string) bool {
		return strings.ToLower(t) == tag
	})
}

// PreferredVideo returns the highest quality stream available for the item.
func (i *Item) PreferredVideo() mo.Option[VideoURL] {
	if len(i.VideoURLs) == 0 {
		return mo.None[VideoURL]()
	}

	best := lo.MaxBy(lo.Values(i.VideoURLs), func(a, b VideoURL) bool {
		if a.Height() != b.Height() {
			return a.Height() > b.Height()
		}
		return a.URL < b.URL
	})
	return mo.Some(best)
}

// Index maps claim ids to their items. Later duplicates do not replace earlier ones.
func Index(items []*Item) map[string]*Item {
	index := make(map[string]*Item, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if _, ok := index[item.ClaimID]; !ok {
			index[item.ClaimID] = item
		}
	}
	return index
}
