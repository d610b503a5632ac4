package game

import (
	"math"
	"sort"
)

// Sum ...
func Sum(data []float64) (result float64) {
	for _, v := range data {
		result += v
	}
	return result
}

// Mean ...
func Mean(data []float64) float64 {
	count := float64(len(data))
	if count == 0 {
		return 0
	}
	return Sum(data) / count
}

// Percentile returns the p-th percentile (0-100) of data using nearest-rank. The
// slice passed is not modified.
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	rank := int(math.Ceil(p/100*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	} else if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}
