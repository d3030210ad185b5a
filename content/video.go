package content

import (
	"strconv"
	"strings"
)

// VideoURL represents a streamable rendition of an item.
type VideoURL struct {
	// Direct URL to the stream/file.
	URL string `json:"url"`
	// Quality label (e.g. "1080p", "720p").
	Quality string `json:"quality"`
	// Container format (e.g. "mp4", "m3u8").
	Container string `json:"container,omitempty"`
}

// String returns the quality or URL for display.
func (v VideoURL) String() string {
	if v.Quality != "" {
		return v.Quality
	}
	return v.URL
}

// Height returns the vertical resolution encoded in the quality label, or 0 when it carries none.
func (v VideoURL) Height() int {
	q := strings.ToLower(strings.TrimSpace(v.Quality))
	switch q {
	case "4k", "uhd":
		return 2160
	case "hd":
		return 720
	case "sd":
		return 480
	}

	height, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSuffix(q, "p"), "i"))
	if err != nil {
		return 0
	}
	return height
}
