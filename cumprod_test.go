package cumprod

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []float64
		want  []float64
	}{
		{
			name:  "empty",
			input: []float64{},
			want:  []float64{},
		},
		{
			name:  "nil",
			input: nil,
			want:  []float64{},
		},
		{
			name:  "single",
			input: []float64{7.5},
			want:  []float64{7.5},
		},
		{
			name:  "counting",
			input: []float64{1, 2, 3, 4, 5},
			want:  []float64{1, 2, 6, 24, 120},
		},
		{
			name:  "zero propagates",
			input: []float64{3, 0, 5, 2},
			want:  []float64{3, 0, 0, 0},
		},
		{
			name:  "negative and fractional",
			input: []float64{-2, 0.5, -4},
			want:  []float64{-2, -1, 4},
		},
		{
			// The last value recurs earlier; every position must still be computed.
			name:  "repeated last value",
			input: []float64{2, 4, 3, 4},
			want:  []float64{2, 8, 24, 96},
		},
		{
			name:  "all equal",
			input: []float64{2, 2, 2, 2},
			want:  []float64{2, 4, 8, 16},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Product(tt.input)
			require.NotNil(t, got)
			assert.Len(t, got, len(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProductPrefixLaw(t *testing.T) {
	t.Parallel()

	input := []float64{1.5, -2, 3, 0.25, 10, -1, 4}
	got := Product(input)
	require.Len(t, got, len(input))
	for i := range input {
		want := 1.0
		for _, v := range input[:i+1] {
			want *= v
		}
		assert.InDelta(t, want, got[i], 1e-9, "position %d", i)
	}
}

func TestProductDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []float64{2, 3, 4}
	before := append([]float64(nil), input...)

	first := Product(input)
	require.Equal(t, before, input)

	second := Product(input)
	require.Equal(t, first, second)

	// The result must not alias the input.
	first[0] = 100
	require.Equal(t, before, input)
}

func TestProductOverflow(t *testing.T) {
	t.Parallel()

	got := Product([]float64{math.MaxFloat64, 2, -1})
	require.Len(t, got, 3)
	assert.True(t, math.IsInf(got[1], 1))
	assert.True(t, math.IsInf(got[2], -1))
}

func TestLast(t *testing.T) {
	t.Parallel()

	_, ok := Last(nil)
	require.False(t, ok)

	v, ok := Last([]float64{1, 2, 6, 24, 120})
	require.True(t, ok)
	require.Equal(t, 120.0, v)
}
