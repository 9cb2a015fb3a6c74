// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes descriptive statistics and two-group
// comparisons over the columns of a [table.Table].
package stats

import (
	"fmt"
	"strconv"
)

// Funcs is a registry of named stats functions,
// which can then be called by standard enum or
// string name for custom functions.
var Funcs map[string]StatsFunc

func init() {
	Funcs = make(map[string]StatsFunc)
	Funcs[Count.String()] = CountFunc
	Funcs[Sum.String()] = SumFunc
	Funcs[Mean.String()] = MeanFunc
	Funcs[Var.String()] = VarFunc
	Funcs[Std.String()] = StdFunc
	Funcs[Min.String()] = MinFunc
	Funcs[Max.String()] = MaxFunc
}

// Call calls the standard stats function on given values.
func (s Stats) Call(vals []float64) float64 {
	return Funcs[s.String()](vals)
}

// Call calls a registered stats function on given values.
// Returns an error if name not found.
func Call(name string, vals []float64) (float64, error) {
	f, ok := Funcs[name]
	if !ok {
		return nan, fmt.Errorf("stats.Call: function %q not registered", name)
	}
	return f(vals), nil
}

// Stats is a list of different standard aggregation functions, which can be used
// to choose an aggregation function
type Stats int32

const (
	// count of number of elements.
	Count Stats = iota

	// sum of elements.
	Sum

	// mean value = sum / count.
	Mean

	// sample variance (squared deviations from mean, divided by n-1).
	Var

	// sample standard deviation (sqrt of Var).
	Std

	// minimum value.
	Min

	// maximum value.
	Max

	StatsN
)

var statsNames = [...]string{"count", "sum", "mean", "var", "std", "min", "max"}

// String returns the lower-case name of the stat, which is also
// the column name used for it in result tables.
func (s Stats) String() string {
	if s < 0 || s >= StatsN {
		return "Stats(" + strconv.Itoa(int(s)) + ")"
	}
	return statsNames[s]
}
