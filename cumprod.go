package cumprod

// Product returns the cumulative product of values: element i of the result is the product of
// values[0] through values[i]. The result always has the same length as values and is freshly
// allocated, values is never modified. A zero propagates to every later position.
//
// Example:
//
//	Product([]float64{1, 2, 3, 4, 5}) // [1 2 6 24 120]
func Product(values []float64) []float64 {
	result := make([]float64, len(values))
	if len(values) == 0 {
		return result
	}
	result[0] = values[0]
	for i := 1; i < len(values); i++ {
		result[i] = result[i-1] * values[i]
	}
	return result
}

// Last returns the final element of values. The boolean is false if values is empty.
func Last(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	return values[len(values)-1], true
}
