// Package fuzzy provides a normalized string similarity score used by the
// entity extractor and inventory search.
package fuzzy

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Ratio returns a similarity score between a and b in the range 0..100.
// 100 means the strings are equal after lowercasing and trimming.
func Ratio(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	dist := levenshtein.ComputeDistance(a, b)
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	score := 100 - (100*dist)/longest
	if score < 0 {
		return 0
	}
	return score
}

// BestMatch returns the candidate with the highest Ratio against query,
// provided the score reaches cutoff. The second return reports whether a
// match was found.
func BestMatch(query string, candidates []string, cutoff int) (string, bool) {
	best := ""
	bestScore := cutoff - 1
	for _, c := range candidates {
		if s := Ratio(query, c); s > bestScore {
			bestScore = s
			best = c
		}
	}
	return best, best != ""
}
