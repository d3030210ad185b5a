package series

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Report describes numbering anomalies in a season. It is advisory: an invalid
// season is still fully usable.
type Report struct {
	Valid bool `json:"valid"`
	// Duplicates lists episode numbers used more than once, ascending.
	Duplicates []int `json:"duplicates"`
	// Gaps lists numbers missing between the lowest and highest episode number, ascending.
	Gaps []int `json:"gaps"`
}

// Validate checks the episode numbering of a season without reordering it.
func Validate(season Season) Report {
	report := Report{Duplicates: []int{}, Gaps: []int{}}

	counts := lo.CountValuesBy(season.Episodes, func(e Episode) int {
		return e.Number
	})

	for number, count := range counts {
		if count > 1 {
			report.Duplicates = append(report.Duplicates, number)
		}
	}
	slices.Sort(report.Duplicates)

	if len(counts) > 0 {
		numbers := lo.Keys(counts)
		lowest, highest := lo.Min(numbers), lo.Max(numbers)
		for n := lowest + 1; n < highest; n++ {
			if counts[n] == 0 {
				report.Gaps = append(report.Gaps, n)
			}
		}
	}

	report.Valid = len(report.Duplicates) == 0 && len(report.Gaps) == 0
	return report
}

// ValidateSeries reports on every season of s, keyed by season number.
func ValidateSeries(s *SeriesInfo) map[int]Report {
	return lo.SliceToMap(s.Seasons, func(season Season) (int, Report) {
		return season.Number, Validate(season)
	})
}
