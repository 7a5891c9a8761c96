package sequence

import (
	"slices"
	"strings"
)

// Contains reports whether query occurs in target. The comparison is exact
// and case-sensitive. The empty query is contained in every target,
// including the empty one.
func Contains(target, query string) bool {
	return strings.Contains(target, query)
}

// FindAll returns the character offset of every occurrence of query in
// target, overlapping matches included. An empty query yields no offsets.
func FindAll(target, query string) []int {
	positions := make([]int, 0)
	t, q := []rune(target), []rune(query)
	if len(q) == 0 || len(q) > len(t) {
		return positions
	}

	for i := 0; i <= len(t)-len(q); i++ {
		if slices.Equal(t[i:i+len(q)], q) {
			positions = append(positions, i)
		}
	}
	return positions
}
