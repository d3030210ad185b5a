package search

import (
	"cmp"
	"strings"

	"github.com/anisan-cli/seriesdex/content"
	"github.com/anisan-cli/seriesdex/query"
	"github.com/anisan-cli/seriesdex/title"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

const (
	weightExactTitle  = 100
	weightPhrase      = 30
	weightToken       = 25
	weightTag         = 15
	weightTitleTerm   = 10
	weightDescription = 3
)

func fold(s string) string {
	return strings.ToLower(title.Fold(strings.Join(strings.Fields(s), " ")))
}

// Score rates how well item answers q. Zero means no match at all.
func Score(item *content.Item, q query.Normalized) int {
	if item == nil || q.NormalizedText == "" {
		return 0
	}

	var (
		score       int
		name        = fold(item.Title)
		description = fold(item.Description)
		text        = fold(q.NormalizedText)
	)

	switch {
	case name == text:
		score += weightExactTitle
	case strings.Contains(name, text):
		score += weightPhrase
	}

	if len(q.Tokens) > 0 {
		matched := lo.ContainsBy(title.Scan(item.Title), func(t title.Token) bool {
			return q.HasToken(t.String())
		})
		if matched {
			score += weightToken
		}
	}

	for _, term := range q.Terms {
		switch {
		case strings.Contains(name, term):
			score += weightTitleTerm
		case strings.Contains(description, term):
			score += weightDescription
		}
	}

	tagged := lo.ContainsBy(item.Tags, func(tag string) bool {
		tag = fold(tag)
		return lo.ContainsBy(q.Terms, func(term string) bool {
			return strings.Contains(tag, term)
		})
	})
	if tagged {
		score += weightTag
	}

	return score
}

// Result is a scored item.
type Result struct {
	Item  *content.Item `json:"item"`
	Score int           `json:"score"`
}

// Rank scores every item against q and returns the matching ones, best first.
// Equal scores are ordered by newer release time, then by input order.
func Rank(items []*content.Item, q query.Normalized) []Result {
	results := lo.FilterMap(items, func(item *content.Item, _ int) (Result, bool) {
		score := Score(item, q)
		return Result{Item: item, Score: score}, score > 0
	})

	slices.SortStableFunc(results, func(a, b Result) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return b.Item.ReleaseTime.Compare(a.Item.ReleaseTime)
	})

	return results
}
