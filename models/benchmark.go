package models

import (
	"math"
	"strconv"
)

// DefaultBenchmarkThreshold is the absolute difference within which a metric
// counts as equal to its benchmark.
const DefaultBenchmarkThreshold = 0.05

// CompareToBenchmark classifies value against benchmark by the absolute
// difference value - benchmark. Metrics without a benchmark are not compared
// at all, so a zero benchmark is an ordinary value.
func CompareToBenchmark(value, benchmark, threshold float64) ComparisonStatus {
	diff := value - benchmark
	switch {
	case diff > threshold:
		return ComparisonAbove
	case diff < -threshold:
		return ComparisonBelow
	default:
		return ComparisonEqual
	}
}

// FormatDecimal renders v with one decimal place.
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatInteger renders v rounded to the nearest integer.
func FormatInteger(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
}
