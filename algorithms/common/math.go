package common

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Basic statistical functions shared across algorithms, using gonum for robustness

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// Variance calculates the sample variance of a slice using gonum
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return stat.Variance(data, nil)
}

// StandardDeviation calculates the sample standard deviation
func StandardDeviation(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return math.Sqrt(Variance(data))
}

// RootSumOfSquares computes sqrt(sum((x - mean)^2)) without dividing by N
// or N-1. Template matching by normalized correlation uses this convention
// on both sides of the quotient so the missing 1/N factors cancel; it is
// NOT interchangeable with StandardDeviation.
func RootSumOfSquares(data []float64, mean float64) float64 {
	sum := 0.0
	for _, val := range data {
		diff := val - mean
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// Lerp performs linear interpolation between two values
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp constrains a value to a range
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
