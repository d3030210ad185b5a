// Package color names the terminal colors used by seriesdex.
package color

import "github.com/charmbracelet/lipgloss"

func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
)

var (
	HiRed    = New("9")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Season markers: playlist seasons are confirmed, inferred ones were guessed from titles.
var (
	Confirmed = New("#94e2d5")
	Guessed   = New("#fab387")
	Text      = New("#1e1e2e")
)
