package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSimilar(t *testing.T) {
	t.Parallel()

	flags := []string{"last-only", "output", "version", "help"}
	tests := []struct {
		name       string
		target     string
		maxResults int
		expected   []string
	}{
		{
			name:       "transposed letters",
			target:     "last-onyl",
			maxResults: 3,
			expected:   []string{"last-only"},
		},
		{
			name:       "leading dashes and case",
			target:     "--Outptu",
			maxResults: 3,
			expected:   []string{"output"},
		},
		{
			name:       "prefix",
			target:     "ver",
			maxResults: 3,
			expected:   []string{"version"},
		},
		{
			name:       "no matches",
			target:     "xyz",
			maxResults: 3,
			expected:   []string{},
		},
		{
			name:       "empty target",
			target:     "--",
			maxResults: 3,
			expected:   []string{},
		},
		{
			name:       "invalid max results",
			target:     "output",
			maxResults: 0,
			expected:   []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := FindSimilar(tt.target, flags, tt.maxResults)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFindSimilarOrdering(t *testing.T) {
	t.Parallel()

	// Equal scores fall back to name order, and results are capped.
	result := FindSimilar("hel", []string{"helm", "help", "hello"}, 2)
	assert.Equal(t, []string{"hello", "helm"}, result)
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b     string
		expected float64
	}{
		{"output", "output", 1.0},
		{"out", "output", 0.9},
		{"hello", "world", 0.2},
		{"outptu", "output", 2.0 / 3.0},
		{"", "", 1.0},
		{"hello", "", 0.0},
	}
	for _, tt := range tests {
		result := similarity(tt.a, tt.b)
		assert.InDelta(t, tt.expected, result, 0.001, "similarity mismatch for %q and %q", tt.a, tt.b)
	}
}

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b     string
		expected int
	}{
		{"hello", "hello", 0},
		{"hello", "hallo", 1},
		{"hello", "hello1", 1},
		{"hello", "hell", 1},
		{"", "hello", 5},
		{"hello", "", 5},
		{"", "", 0},
		{"hello", "world", 4},
		{"last-onyl", "last-only", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, levenshtein(tt.a, tt.b), "distance mismatch for %q and %q", tt.a, tt.b)
	}
}
