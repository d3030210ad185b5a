// Package query turns free-text search input into season/episode tokens and search terms,
// and keeps a history of past queries for suggestions.
package query

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/anisan-cli/seriesdex/title"
	"github.com/samber/lo"
)

// Normalized is a search input broken down for scoring.
type Normalized struct {
	OriginalText string `json:"original_text"`
	// NormalizedText is the input lowercased with whitespace collapsed.
	NormalizedText string `json:"normalized_text"`
	// Tokens are canonical designations such as "S01E01", unique, in order of appearance.
	Tokens []string `json:"season_episode_tokens"`
	// Terms are the remaining words, lowercased and accent-folded, unique, in order of appearance.
	Terms []string `json:"search_terms"`
}

// Empty reports whether the query has nothing to search for.
func (n Normalized) Empty() bool {
	return len(n.Tokens) == 0 && len(n.Terms) == 0
}

// HasToken reports whether the query carries the given designation.
func (n Normalized) HasToken(token string) bool {
	return lo.Contains(n.Tokens, token)
}

// Options tune Normalize.
type Options struct {
	// MinTermLength is exclusive: words must be longer to become terms.
	MinTermLength int
	// MaxQueryLength caps the runes considered. Zero means no limit.
	MaxQueryLength int
}

// DefaultOptions are used by Normalize.
var DefaultOptions = Options{MinTermLength: 2, MaxQueryLength: 512}

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {},
	"season": {}, "episode": {}, "ep": {}, "series": {}, "part": {},
}

// Normalize uses DefaultOptions.
func Normalize(text string) Normalized {
	return NormalizeWith(text, DefaultOptions)
}

// NormalizeWith never fails: empty, whitespace-only or unusual input yields an empty but well-formed result.
func NormalizeWith(text string, options Options) Normalized {
	normalized := Normalized{
		OriginalText: text,
		Tokens:       []string{},
		Terms:        []string{},
	}

	text = truncate(text, options.MaxQueryLength)
	text = strings.Join(strings.Fields(text), " ")
	normalized.NormalizedText = strings.ToLower(text)

	tokens := title.Scan(text)
	normalized.Tokens = lo.Uniq(lo.Map(tokens, func(t title.Token, _ int) string {
		return t.String()
	}))

	// blank out designations so their words do not become terms
	rest := []byte(text)
	for _, t := range tokens {
		for i := t.Start; i < t.End; i++ {
			rest[i] = ' '
		}
	}

	for _, word := range strings.Fields(string(rest)) {
		word = strings.ToLower(title.Fold(word))
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})

		if utf8.RuneCountInString(word) <= options.MinTermLength {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if !lo.Contains(normalized.Terms, word) {
			normalized.Terms = append(normalized.Terms, word)
		}
	}

	return normalized
}

func truncate(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	return string([]rune(text)[:limit])
}
