// Package history remembers the last episode watched in each series.
package history

import (
	"fmt"

	"github.com/anisan-cli/seriesdex/filesystem"
	"github.com/anisan-cli/seriesdex/series"
	"github.com/anisan-cli/seriesdex/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var cacher = gache.New[map[string]*WatchedEpisode](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the watch history keyed by series key.
func Get() (map[string]*WatchedEpisode, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	if expired || cached == nil {
		return make(map[string]*WatchedEpisode), nil
	}
	return cached, nil
}

// Save records episode as the last one watched in s, replacing the previous entry for the series.
func Save(s *series.SeriesInfo, episode series.Episode) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	saved[s.Key] = newWatchedEpisode(s, episode)
	return cacher.Set(saved)
}

// Last returns the most recently watched entry across all series.
func Last() mo.Option[*WatchedEpisode] {
	saved, err := Get()
	if err != nil || len(saved) == 0 {
		return mo.None[*WatchedEpisode]()
	}

	return mo.Some(lo.MaxBy(lo.Values(saved), func(a, b *WatchedEpisode) bool {
		return a.WatchedAt.After(b.WatchedAt)
	}))
}

// Remove forgets the entry of a series.
func Remove(seriesKey string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, seriesKey)
	return cacher.Set(saved)
}
