package ui

import (
	"sort"
	"strings"
)

// Suggest returns up to three candidates close to the input, for
// "did you mean" hints on unknown class names.
func Suggest(input string, candidates []string) []string {
	type scored struct {
		name string
		dist int
	}
	lower := strings.ToLower(input)

	var matches []scored
	for _, c := range candidates {
		cl := strings.ToLower(c)
		d := editDistance(lower, cl)
		// Accept prefix matches and names within a small edit distance.
		if strings.HasPrefix(cl, lower) || d <= 2 {
			matches = append(matches, scored{name: c, dist: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return matches[i].name < matches[j].name
	})

	result := make([]string, 0, 3)
	for _, m := range matches {
		if len(result) == 3 {
			break
		}
		result = append(result, m.name)
	}
	return result
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
