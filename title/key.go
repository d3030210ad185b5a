package title

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// GenerateKey normalizes a series name into a stable identifier:
// lowercase, accents folded, everything outside [a-z0-9 ] dropped, whitespace runs joined by single hyphens.
// "Grey's Anatomy" and "greys  anatomy" both yield "greys-anatomy".
func GenerateKey(name string) string {
	folded := Fold(name)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		case 'a' <= r && r <= 'z', '0' <= r && r <= '9':
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}

// Fold strips combining marks, so "Pokémon" becomes "Pokemon". Case is kept.
func Fold(s string) string {
	// transform chains are stateful, so each call builds its own.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		return s
	}
	return folded
}
