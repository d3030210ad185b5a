package query

import (
	"cmp"
	"fmt"
	"time"

	"github.com/anisan-cli/seriesdex/filesystem"
	"github.com/anisan-cli/seriesdex/key"
	"github.com/anisan-cli/seriesdex/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type record struct {
	Query    string    `json:"query"`
	Uses     int       `json:"uses"`
	LastUsed time.Time `json:"last_used"`
}

var queries = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func load() (map[string]*record, error) {
	cached, expired, err := queries.Get()
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	if expired || cached == nil {
		return make(map[string]*record), nil
	}
	return cached, nil
}

// Remember stores the normalized form of q, bumping its use count if it was seen before.
// Queries without tokens or terms are not stored.
func Remember(q string) error {
	normalized := Normalize(q)
	if normalized.Empty() {
		return nil
	}

	saved, err := load()
	if err != nil {
		return err
	}

	text := normalized.NormalizedText
	r, ok := saved[text]
	if !ok {
		r = &record{Query: text}
		saved[text] = r
	}
	r.Uses++
	r.LastUsed = time.Now()

	return queries.Set(saved)
}

// SuggestMany returns remembered queries fuzzily matching q,
// most used first, then most recent.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	saved, err := load()
	if err != nil {
		return []string{}
	}

	needle := Normalize(q).NormalizedText
	matches := lo.Filter(lo.Values(saved), func(r *record, _ int) bool {
		return r.Query != needle && fuzzy.MatchFold(needle, r.Query)
	})

	slices.SortFunc(matches, func(a, b *record) int {
		if c := cmp.Compare(b.Uses, a.Uses); c != 0 {
			return c
		}
		if c := b.LastUsed.Compare(a.LastUsed); c != 0 {
			return c
		}
		return cmp.Compare(a.Query, b.Query)
	})

	return lo.Map(matches, func(r *record, _ int) string {
		return r.Query
	})
}

// Forget removes every remembered query.
func Forget() error {
	return queries.Set(make(map[string]*record))
}
