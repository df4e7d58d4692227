// Package util provides common utility functions used across the codebase.
package util

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// SuggestSimilar returns the candidates within maxDistance-1 edits of input,
// closest first. Matching ignores case. Returns nil if nothing is close.
func SuggestSimilar(input string, candidates []string, maxDistance int) []string {
	if input == "" || len(candidates) == 0 {
		return nil
	}

	type match struct {
		name     string
		distance int
	}

	lower := strings.ToLower(input)
	var matches []match
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(c))
		if d < maxDistance {
			matches = append(matches, match{name: c, distance: d})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}
