// Package icon renders the symbols printed next to command output.
package icon

import (
	"github.com/anisan-cli/seriesdex/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Variant is a rendering style, chosen with icons.variant.
type Variant string

const (
	Emoji   Variant = "emoji"
	Nerd    Variant = "nerd"
	Plain   Variant = "plain"
	Kaomoji Variant = "kaomoji"
	Squares Variant = "squares"
)

var variants = []Variant{Emoji, Nerd, Plain, Kaomoji, Squares}

func AvailableVariants() []string {
	return lo.Map(variants, func(v Variant, _ int) string { return string(v) })
}

// Current is the configured variant. It may be one that no icon defines.
func Current() Variant {
	return Variant(viper.GetString(key.IconsVariant))
}

// forms holds one rendering of an icon per variant.
type forms map[Variant]string

// Get renders i in the current variant; unknown variants render nothing.
func Get(i Icon) string {
	return icons[i][Current()]
}

func (i Icon) String() string {
	return Get(i)
}
