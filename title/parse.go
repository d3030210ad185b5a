// Package title recognizes episode designations in free-text titles and derives stable series keys.
package title

import (
	"strings"

	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Match is the structured form of an episode title.
type Match struct {
	SeriesName   string `json:"series_name"`
	Season       int    `json:"season_number"`
	Episode      int    `json:"episode_number"`
	EpisodeTitle string `json:"episode_title"`
}

// Token returns the canonical designation of the match.
func (m Match) Token() Token {
	return Token{Season: m.Season, Episode: m.Episode}
}

// Key returns the series key of the match.
func (m Match) Key() string {
	return GenerateKey(m.SeriesName)
}

// Parse extracts series name, season, episode and episode title from an episode title.
// Titles that carry no designation, and malformed ones such as "S01x01" or "1E01", are not episodes.
func Parse(title string) mo.Option[Match] {
	text := collapseSpaces(title)
	if text == "" {
		return mo.None[Match]()
	}

	for _, g := range grammars {
		t, ok := g.first(text)
		if !ok {
			continue
		}

		return mo.Some(Match{
			SeriesName:   cleanName(text[:t.Start]),
			Season:       t.Season,
			Episode:      t.Episode,
			EpisodeTitle: cleanEpisodeTitle(text[t.End:]),
		})
	}

	return mo.None[Match]()
}

// Scan finds every designation in text, in order of appearance.
// Grammars keep their priority: a later grammar cannot claim text already matched by an earlier one.
func Scan(text string) []Token {
	var found []Token
	for _, g := range grammars {
		for _, t := range g.all(text) {
			overlaps := slices.ContainsFunc(found, func(f Token) bool {
				return t.Start < f.End && f.Start < t.End
			})
			if !overlaps {
				found = append(found, t)
			}
		}
	}

	slices.SortFunc(found, func(a, b Token) int {
		return a.Start - b.Start
	})
	return found
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cleanName trims separators around a series name. Scene-style names
// ("Breaking.Bad") have their dots and underscores turned into spaces.
func cleanName(s string) string {
	s = strings.TrimRight(s, " ._-–—:")
	s = strings.TrimLeft(s, " ._-")
	return despace(s)
}

// cleanEpisodeTitle drops the single separator between a designation and the
// episode title. Hyphens inside the title itself are kept.
func cleanEpisodeTitle(s string) string {
	s = strings.TrimLeft(s, " .")
	for _, sep := range []string{"-", "–", "—", ":"} {
		if strings.HasPrefix(s, sep) {
			s = strings.TrimPrefix(s, sep)
			break
		}
	}
	return despace(strings.TrimSpace(s))
}

func despace(s string) string {
	if strings.Contains(s, " ") {
		return s
	}
	return strings.TrimSpace(strings.NewReplacer(".", " ", "_", " ").Replace(s))
}
