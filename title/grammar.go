package title

import (
	"fmt"
	"regexp"
	"strings"
)

// boundary must precede every designation. Go's regexp has no look-behind,
// so the separator is consumed and the designation itself is captured as "token".
const boundary = `(?:^|[\s._\-])`

var numberAlt = `\d{1,3}|` + strings.Join(numberWords, "|")

// grammar is one season/episode notation.
type grammar struct {
	name    string
	pattern *regexp.Regexp
}

// grammars are tried in order; the first one that matches wins.
var grammars = []grammar{
	{
		name:    "SxxExx",
		pattern: regexp.MustCompile(`(?i)` + boundary + `(?P<token>s(?P<season>\d{1,3}) ?e(?P<episode>\d{1,3}))\b`),
	},
	{
		name:    "NxNN",
		pattern: regexp.MustCompile(`(?i)` + boundary + `(?P<token>(?P<season>\d{1,3})x(?P<episode>\d{1,3}))\b`),
	},
	{
		name: "verbose",
		pattern: regexp.MustCompile(`(?i)` + boundary +
			`(?P<token>season[\s._\-]*(?P<season>` + numberAlt + `)[\s._,\-]*episode[\s._\-]*(?P<episode>` + numberAlt + `))\b`),
	},
	{
		name:    "abbreviated",
		pattern: regexp.MustCompile(`(?i)` + boundary + `(?P<token>s(?P<season>\d{1,3})[\s._\-]*ep\.?\s*(?P<episode>\d{1,3}))\b`),
	},
}

// Token is one season/episode designation located in a piece of text.
type Token struct {
	Season  int
	Episode int
	// Start and End are byte offsets of the designation, excluding the separator before it.
	Start int
	End   int
}

// String renders the token in canonical S01E01 form.
func (t Token) String() string {
	return fmt.Sprintf("S%02dE%02d", t.Season, t.Episode)
}

// token builds a Token from a submatch index slice of g.pattern.
func (g grammar) token(text string, loc []int) (Token, bool) {
	group := func(name string) (int, int) {
		i := g.pattern.SubexpIndex(name)
		return loc[2*i], loc[2*i+1]
	}

	start, end := group("token")
	ss, se := group("season")
	es, ee := group("episode")

	season, ok := number(text[ss:se])
	if !ok {
		return Token{}, false
	}
	episode, ok := number(text[es:ee])
	if !ok {
		return Token{}, false
	}

	return Token{Season: season, Episode: episode, Start: start, End: end}, true
}

// first returns the leftmost designation of this grammar in text.
func (g grammar) first(text string) (Token, bool) {
	loc := g.pattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return Token{}, false
	}
	return g.token(text, loc)
}

// all returns every non-overlapping designation of this grammar in text.
func (g grammar) all(text string) []Token {
	var tokens []Token
	for _, loc := range g.pattern.FindAllStringSubmatchIndex(text, -1) {
		if t, ok := g.token(text, loc); ok {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
