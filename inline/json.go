package inline

import (
	"encoding/json"
	"io"

	"github.com/anisan-cli/seriesdex/query"
	"github.com/anisan-cli/seriesdex/search"
	"github.com/anisan-cli/seriesdex/series"
)

// Series is one selected series with the episodes that passed the filter.
type Series struct {
	Series   *series.SeriesInfo    `json:"series"`
	Episodes []series.Episode      `json:"episodes"`
	Reports  map[int]series.Report `json:"reports"`
}

type Output struct {
	Catalog string    `json:"catalog"`
	Query   string    `json:"query"`
	Result  []*Series `json:"result"`
}

// Navigation is the answer to a next/previous request.
type Navigation struct {
	Series *series.SeriesInfo `json:"series"`
	From   series.Episode     `json:"from"`
	To     *series.Episode    `json:"to"`
}

// SearchOutput is a ranked search answer.
type SearchOutput struct {
	Query       query.Normalized `json:"query"`
	Patterns    []string         `json:"patterns"`
	Suggestions []string         `json:"suggestions"`
	Result      []search.Result  `json:"result"`
}

// WriteJSON encodes v to out followed by a newline.
func WriteJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}
