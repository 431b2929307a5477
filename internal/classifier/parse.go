package classifier

import (
	"encoding/json"
	"regexp"
)

var indexArrayRe = regexp.MustCompile(`\[[\d,\s]*\]`)

// ParseIndices extracts the first bracketed list of non-negative integers from
// a free-form model reply. Anything it cannot read yields an empty slice.
func ParseIndices(reply string) []int {
	match := indexArrayRe.FindString(reply)
	if match == "" {
		return []int{}
	}

	var indices []int
	if err := json.Unmarshal([]byte(match), &indices); err != nil {
		return []int{}
	}
	if indices == nil {
		return []int{}
	}
	return indices
}
