package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/anisan-cli/seriesdex/catalog"
	"github.com/anisan-cli/seriesdex/query"
	"github.com/anisan-cli/seriesdex/series"
	"github.com/anisan-cli/seriesdex/title"
	"github.com/anisan-cli/seriesdex/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type (
	SeriesPicker   func([]*series.SeriesInfo) *series.SeriesInfo
	EpisodesFilter func([]series.Episode) ([]series.Episode, error)
)

type Options struct {
	Out            io.Writer
	Catalog        *catalog.Catalog
	Json           bool
	Query          string
	SeriesPicker   mo.Option[SeriesPicker]
	EpisodesFilter mo.Option[EpisodesFilter]
}

func ParseSeriesPicker(kind, value string) (SeriesPicker, error) {
	switch kind {
	case "first":
		return func(all []*series.SeriesInfo) *series.SeriesInfo {
			if len(all) == 0 {
				return nil
			}
			return all[0]
		}, nil
	case "last":
		return func(all []*series.SeriesInfo) *series.SeriesInfo {
			if len(all) == 0 {
				return nil
			}
			return all[len(all)-1]
		}, nil
	case "exact":
		wanted := title.GenerateKey(value)
		return func(all []*series.SeriesInfo) *series.SeriesInfo {
			s, _ := lo.Find(all, func(s *series.SeriesInfo) bool {
				return s.Key == wanted
			})
			return s
		}, nil
	default:
		idx, err := strconv.ParseUint(kind, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("unknown series picker: %s", kind)
		}
		return func(all []*series.SeriesInfo) *series.SeriesInfo {
			if len(all) == 0 {
				return nil
			}
			return all[util.Clamp(idx, 0, uint64(len(all)-1))]
		}, nil
	}
}

// ParseEpisodesFilter understands "first", "last", "all", an index, a range "from-to",
// a substring "@text@" and designations such as "S02E03".
func ParseEpisodesFilter(description string) (EpisodesFilter, error) {
	switch description {
	case "first":
		return func(episodes []series.Episode) ([]series.Episode, error) {
			return episodes[:util.Clamp(1, 0, len(episodes))], nil
		}, nil
	case "last":
		return func(episodes []series.Episode) ([]series.Episode, error) {
			return episodes[util.Clamp(len(episodes)-1, 0, len(episodes)):], nil
		}, nil
	case "all":
		return func(episodes []series.Episode) ([]series.Episode, error) {
			return episodes, nil
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		start, err1 := strconv.ParseUint(from, 10, 16)
		end, err2 := strconv.ParseUint(to, 10, 16)
		if err1 == nil && err2 == nil {
			return func(episodes []series.Episode) ([]series.Episode, error) {
				n := uint64(len(episodes))
				start, end := util.Clamp(start, 0, n), util.Clamp(end+1, 0, n)
				if start > end {
					return []series.Episode{}, nil
				}
				return episodes[start:end], nil
			}, nil
		}
	}

	if len(description) > 1 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(episodes []series.Episode) ([]series.Episode, error) {
			return lo.Filter(episodes, func(e series.Episode, _ int) bool {
				return strings.Contains(strings.ToLower(e.Title), sub)
			}), nil
		}, nil
	}

	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(episodes []series.Episode) ([]series.Episode, error) {
			if uint64(len(episodes)) <= idx {
				return []series.Episode{}, nil
			}
			return []series.Episode{episodes[idx]}, nil
		}, nil
	}

	if tokens := query.Normalize(description).Tokens; len(tokens) > 0 {
		return func(episodes []series.Episode) ([]series.Episode, error) {
			return lo.Filter(episodes, func(e series.Episode, _ int) bool {
				return lo.Contains(tokens, title.Token{Season: e.Season, Episode: e.Number}.String())
			}), nil
		}, nil
	}

	return nil, fmt.Errorf("invalid episode filter: %s", description)
}
