package title

import (
	"regexp"
	"strings"

	"github.com/anisan-cli/seriesdex/util"
	"github.com/samber/mo"
)

// seasonSuffix matches a trailing season designation of a collection title,
// e.g. "Doctor Who - Season 2", "Fargo (Series Three)", "Dark S03".
// The designation must start the title or follow a separator, so "Ocean's 11" has none.
var seasonSuffix = regexp.MustCompile(`(?i)^(?P<name>.*?)(?:^|[\s._:,\-–—(\[]+)(?:season|series|s)[\s._\-]*(?P<season>` + numberAlt + `)[)\]]?$`)

// StripSeason splits a collection title into the series name and the season it designates, if any.
// The name is empty for titles such as "Season 2".
func StripSeason(collection string) (string, mo.Option[int]) {
	text := collapseSpaces(collection)

	groups := util.ReGroups(seasonSuffix, text)
	if len(groups) == 0 {
		return text, mo.None[int]()
	}

	season, ok := number(groups["season"])
	if !ok {
		return text, mo.None[int]()
	}

	return cleanName(strings.TrimSpace(groups["name"])), mo.Some(season)
}
