// Package suggest ranks known names by their similarity to a mistyped one.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score required for a name to be suggested.
const threshold = 0.5

type candidate struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults candidates similar to target, best match first. Leading
// dashes and case are ignored, so "--Last-Onyl" matches "last-only". Candidates are returned as
// given.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	target = normalize(target)
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	var matches []candidate
	for _, name := range candidates {
		if score := similarity(target, normalize(name)); score > threshold {
			matches = append(matches, candidate{name: name, score: score})
		}
	}
	slices.SortFunc(matches, func(a, b candidate) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	result := make([]string, 0, min(len(matches), maxResults))
	for _, m := range matches[:min(len(matches), maxResults)] {
		result = append(result, m.name)
	}
	return result
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimLeft(s, "-"))
}

// similarity scores a against b in [0, 1]. An exact match is 1 and a prefix of b scores 0.9,
// otherwise the score is derived from the edit distance.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	longest := max(len(a), len(b))
	return 1.0 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein returns the edit distance between a and b, keeping only two rows of the table.
func levenshtein(a, b string) int {
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
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
