// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TTestResult is the result of a two-sample t-test.
type TTestResult struct {
	// T is the t statistic: the difference in sample means over
	// its standard error. Positive when the first sample has the larger mean.
	T float64

	// P is the two-sided p-value for the null hypothesis of equal means.
	P float64

	// DoF is the degrees of freedom of the t distribution used for P.
	DoF float64
}

// WelchTTest performs a two-sample t-test for a difference in the means
// of a and b, without assuming that the two populations have equal
// variance (Welch's t-test). NaN missing values are dropped from each sample.
//
// Degenerate samples do not return an error; instead the result values
// are NaN where the test is not defined:
//   - fewer than two values in either sample: T and P are NaN.
//   - zero variance in both samples: T is ±Inf with P = 0 when the means
//     differ, and T and P are NaN when they are equal. DoF is 1.
func WelchTTest(a, b []float64) *TTestResult {
	a, b = DropNaN(a), DropNaN(b)
	n1, n2 := float64(len(a)), float64(len(b))
	if len(a) < 2 || len(b) < 2 {
		return &TTestResult{T: nan, P: nan, DoF: nan}
	}
	m1, v1 := stat.MeanVariance(a, nil)
	m2, v2 := stat.MeanVariance(b, nil)
	vn1, vn2 := v1/n1, v2/n2

	dof := (vn1 + vn2) * (vn1 + vn2) / (vn1*vn1/(n1-1) + vn2*vn2/(n2-1))
	if math.IsNaN(dof) {
		dof = 1
	}
	t := (m1 - m2) / math.Sqrt(vn1+vn2)
	return &TTestResult{T: t, P: twoSidedP(t, dof), DoF: dof}
}

// twoSidedP returns the probability of a t statistic at least as extreme
// as t, in either direction, under Student's t distribution with dof.
func twoSidedP(t, dof float64) float64 {
	switch {
	case math.IsNaN(t):
		return nan
	case math.IsInf(t, 0):
		return 0
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}
	return math.Min(1, 2*dist.Survival(math.Abs(t)))
}
