package scan

import (
	"bytes"
	"regexp"
)

var newline = []byte("\n")

// MatchLines returns the 1-based line number at which each non-overlapping,
// leftmost-first match of re begins in content, in match order. A match at
// offset k lands on line 1 + the number of '\n' bytes before k; carriage
// returns get no special treatment. Two matches starting on the same line
// yield two entries.
func MatchLines(re *regexp.Regexp, content []byte) []int {
	locs := re.FindAllIndex(content, -1)
	if len(locs) == 0 {
		return nil
	}
	lines := make([]int, 0, len(locs))
	line, prev := 1, 0
	for _, loc := range locs {
		line += bytes.Count(content[prev:loc[0]], newline)
		prev = loc[0]
		lines = append(lines, line)
	}
	return lines
}
