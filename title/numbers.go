package title

import (
	"strconv"
	"strings"
)

// numberWords lists the spelled-out numbers accepted for seasons and episodes.
// Longer words come first so that alternations prefer "seventeen" over "seven".
var numberWords = []string{
	"twenty", "nineteen", "eighteen", "seventeen", "sixteen", "fifteen",
	"fourteen", "thirteen", "twelve", "eleven", "ten", "nine", "eight",
	"seven", "six", "five", "four", "three", "two", "one",
}

var wordValues = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
}

// number converts a numeric or spelled-out number.
func number(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	n, ok := wordValues[s]
	return n, ok
}
