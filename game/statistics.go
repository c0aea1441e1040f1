package game

import (
	"math"
	"slices"
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

// Median returns the median of the data without reordering it.
func Median(data []float64) (median float64) {
	count := len(data)
	if count == 0 {
		return 0.0
	}

	sorted := slices.Clone(data)
	slices.Sort(sorted)
	if count%2 != 0 {
		return sorted[count/2]
	}
	return (sorted[count/2-1] + sorted[count/2]) * 0.5
}

// Outliers returns the amount of values further than 1.5 interquartile ranges from the quartiles.
func Outliers(data []float64) int {
	if len(data) < 4 {
		return 0
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	half := int(math.Ceil(float64(len(sorted)) * 0.5))
	q1, q3 := Median(sorted[:half]), Median(sorted[half:])
	iqr := math.Abs(q3 - q1)

	var n int
	for _, v := range sorted {
		if v < q1-1.5*iqr || v > q3+1.5*iqr {
			n++
		}
	}
	return n
}
