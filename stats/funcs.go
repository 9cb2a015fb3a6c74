// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var nan = math.NaN()

// StatsFunc is the function signature for a stats function,
// which reduces a list of values to a single value.
// All stats functions skip over NaN's, as a missing value,
// and return NaN when the stat is not defined for the
// number of remaining values, instead of an error.
type StatsFunc func(vals []float64) float64

// DropNaN returns a new slice with the NaN missing values of vals removed.
func DropNaN(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// CountFunc returns the count of non-NaN values.
func CountFunc(vals []float64) float64 {
	return float64(len(DropNaN(vals)))
}

// SumFunc returns the sum of non-NaN values, which is 0 for no values.
func SumFunc(vals []float64) float64 {
	return floats.Sum(DropNaN(vals))
}

// MeanFunc returns the mean of non-NaN values: sum / count.
// Returns NaN for no values.
func MeanFunc(vals []float64) float64 {
	x := DropNaN(vals)
	if len(x) == 0 {
		return nan
	}
	return stat.Mean(x, nil)
}

// VarFunc returns the sample variance of non-NaN values:
// squared deviations from mean, divided by n-1.
// Returns NaN for fewer than two values.
func VarFunc(vals []float64) float64 {
	x := DropNaN(vals)
	if len(x) < 2 {
		return nan
	}
	return stat.Variance(x, nil)
}

// StdFunc returns the sample standard deviation of non-NaN values
// (sqrt of [VarFunc]). Returns NaN for fewer than two values.
func StdFunc(vals []float64) float64 {
	x := DropNaN(vals)
	if len(x) < 2 {
		return nan
	}
	return stat.StdDev(x, nil)
}

// MinFunc returns the minimum of non-NaN values, NaN for no values.
func MinFunc(vals []float64) float64 {
	x := DropNaN(vals)
	if len(x) == 0 {
		return nan
	}
	return floats.Min(x)
}

// MaxFunc returns the maximum of non-NaN values, NaN for no values.
func MaxFunc(vals []float64) float64 {
	x := DropNaN(vals)
	if len(x) == 0 {
		return nan
	}
	return floats.Max(x)
}
