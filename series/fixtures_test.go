package series

import (
	"fmt"

	"github.com/anisan-cli/seriesdex/content"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

func item(claimID, title string) *content.Item {
	return &content.Item{ClaimID: claimID, Title: title}
}

func entry(claimID string, position int) content.PlaylistItem {
	return content.PlaylistItem{ClaimID: claimID, Position: position}
}

func numbered(claimID string, position, episode int) content.PlaylistItem {
	return content.PlaylistItem{ClaimID: claimID, Position: position, EpisodeNumber: mo.Some(episode)}
}

func claims(episodes []Episode) []string {
	return lo.Map(episodes, func(e Episode, _ int) string { return e.ClaimID })
}

func numbers(episodes []Episode) []int {
	return lo.Map(episodes, func(e Episode, _ int) int { return e.Number })
}

func seasonWith(values ...int) Season {
	return inferredSeason(1, lo.Map(values, func(n int, i int) Episode {
		return Episode{ClaimID: fmt.Sprintf("ep-%d", i), Number: n, Season: 1}
	}))
}
