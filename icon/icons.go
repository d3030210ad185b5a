package icon

type Icon int

const (
	Fail Icon = iota
	Success
	Warn
	Progress
	Series
	Playlist
	Inferred
	Search
	Next
	Previous
)

var icons = map[Icon]forms{
	Fail: {
		Emoji:   "💀",
		Nerd:    "",
		Plain:   "X",
		Kaomoji: "(×_×)",
		Squares: "🟥",
	},
	Success: {
		Emoji:   "🎉",
		Nerd:    "",
		Plain:   "OK",
		Kaomoji: "(ᵔ◡ᵔ)",
		Squares: "🟩",
	},
	Warn: {
		Emoji:   "⚠️",
		Nerd:    "",
		Plain:   "!",
		Kaomoji: "(・_・;)",
		Squares: "🟨",
	},
	Progress: {
		Emoji:   "⏳",
		Nerd:    "",
		Plain:   "...",
		Kaomoji: "(._.)",
		Squares: "🟦",
	},
	Series: {
		Emoji:   "📺",
		Nerd:    "",
		Plain:   "#",
		Kaomoji: "(⌐■_■)",
		Squares: "🟪",
	},
	Playlist: {
		Emoji:   "📜",
		Nerd:    "",
		Plain:   "P",
		Kaomoji: "(¬‿¬)",
		Squares: "🟫",
	},
	Inferred: {
		Emoji:   "🔮",
		Nerd:    "",
		Plain:   "?",
		Kaomoji: "(・・?)",
		Squares: "⬜",
	},
	Search: {
		Emoji:   "🔍",
		Nerd:    "",
		Plain:   "/",
		Kaomoji: "(◕‿◕)",
		Squares: "🟧",
	},
	Next: {
		Emoji:   "⏭️",
		Nerd:    "",
		Plain:   ">",
		Kaomoji: "(ง'̀-'́)ง",
		Squares: "▶️",
	},
	Previous: {
		Emoji:   "⏮️",
		Nerd:    "",
		Plain:   "<",
		Kaomoji: "ლ(ಠ益ಠლ)",
		Squares: "◀️",
	},
}
