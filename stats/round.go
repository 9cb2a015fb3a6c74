// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Decimals is the number of decimal places that result values are rounded to.
const Decimals = 2

// Round rounds x to the given number of decimal places, with ties going to
// the even digit. NaN and infinite values are returned unchanged.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow10(places)
	r := math.RoundToEven(x*p) / p
	if math.IsInf(r, 0) || math.IsNaN(r) { // x*p overflowed
		return x
	}
	return r
}
