package utils

import "math/rand"

// RandomIntn returns a random integer in [0, n). It returns 0 when n <= 0.
func RandomIntn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.Intn(n) //nolint:gosec // evolution rolls are not security sensitive
}

// SumInts returns the sum of the values.
func SumInts(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// WeightedIndex maps a roll in [0, sum(weights)) to the index whose
// cumulative weight first exceeds it. Out-of-range rolls clamp to the ends.
func WeightedIndex(weights []int, roll int) int {
	if len(weights) == 0 {
		return -1
	}
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}
