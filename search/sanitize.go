// Package search scores catalog content against normalized queries and prepares
// user input for LIKE-style storage queries.
package search

import (
	"strings"

	"github.com/anisan-cli/seriesdex/query"
	"github.com/samber/lo"
)

var (
	stripped = strings.NewReplacer(`'`, "", `"`, "", "`", "", ";", "")
	comments = strings.NewReplacer("--", "", "/*", "", "*/", "")
	escaped  = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
)

// Sanitize makes input safe to embed in a LIKE pattern.
// Quotes, semicolons and comment delimiters are removed; wildcards and backslashes are escaped.
func Sanitize(input string) string {
	s := stripped.Replace(input)

	// removing one delimiter can join the halves of another, e.g. "-/**/-"
	for {
		next := comments.Replace(s)
		if next == s {
			break
		}
		s = next
	}

	return strings.TrimSpace(escaped.Replace(s))
}

// BuildPatterns returns one %term% pattern per search term and designation of text.
func BuildPatterns(text string) []string {
	return BuildPatternsWith(text, query.DefaultOptions)
}

// BuildPatternsWith is BuildPatterns with explicit normalization options.
func BuildPatternsWith(text string, options query.Options) []string {
	q := query.NormalizeWith(text, options)

	patterns := lo.FilterMap(append(q.Tokens, q.Terms...), func(part string, _ int) (string, bool) {
		part = Sanitize(part)
		return "%" + part + "%", part != ""
	})

	return lo.Uniq(patterns)
}
