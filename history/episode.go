package history

import (
	"fmt"
	"time"

	"github.com/anisan-cli/seriesdex/series"
	"github.com/anisan-cli/seriesdex/title"
)

// WatchedEpisode is the last episode watched in a series.
type WatchedEpisode struct {
	SeriesKey     string    `json:"series_key"`
	SeriesTitle   string    `json:"series_title"`
	ClaimID       string    `json:"claim_id"`
	Title         string    `json:"title"`
	Season        int       `json:"season_number"`
	Episode       int       `json:"episode_number"`
	TotalEpisodes int       `json:"total_episodes"`
	WatchedAt     time.Time `json:"watched_at"`
}

func (w *WatchedEpisode) String() string {
	token := title.Token{Season: w.Season, Episode: w.Episode}
	return fmt.Sprintf("%s %s", w.SeriesTitle, token)
}

func newWatchedEpisode(s *series.SeriesInfo, episode series.Episode) *WatchedEpisode {
	return &WatchedEpisode{
		SeriesKey:     s.Key,
		SeriesTitle:   s.Title,
		ClaimID:       episode.ClaimID,
		Title:         episode.Title,
		Season:        episode.Season,
		Episode:       episode.Number,
		TotalEpisodes: s.TotalEpisodes(),
		WatchedAt:     time.Now(),
	}
}

// Locate finds the watched episode in s, which may have been reorganized since.
func (w *WatchedEpisode) Locate(s *series.SeriesInfo) (series.Episode, bool) {
	return s.Episode(w.ClaimID).Get()
}
