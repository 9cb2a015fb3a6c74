// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"slices"

	"cogentcore.org/expstats/table"
)

// VariableColumn is the name of the result table column holding
// the variable names, which is the key for each result row.
const VariableColumn = "variable"

// DescriptiveStats are the stats computed by [Describe], in result column order.
var DescriptiveStats = []Stats{Mean, Std, Max, Min}

// Describe returns a new table of descriptive statistics for the given
// variable columns of dt, with one row per variable in the given order,
// keyed by the [VariableColumn], and one column for each of the
// [DescriptiveStats]: mean, std, max, min. NaN missing values are skipped,
// and each value is rounded to [Decimals] places. Stats that are not
// defined for the number of values present are NaN.
// A variable that is listed more than once only appears at its first position.
// The rows of the current view of dt are used. Returns an error wrapping
// [table.ErrUnknownColumn] if a variable is not a column in dt.
func Describe(dt *table.Table, variables ...string) (*table.Table, error) {
	variables = uniqueNames(variables)
	rt := table.New("describe")
	rt.SetPrecision(Decimals)
	rt.AddStringColumn(VariableColumn)
	for _, st := range DescriptiveStats {
		rt.AddFloat64Column(st.String())
	}
	rt.SetNumRows(len(variables))
	for row, v := range variables {
		vals, err := dt.FloatValues(v)
		if err != nil {
			return nil, fmt.Errorf("stats.Describe: %w", err)
		}
		vals = DropNaN(vals)
		rt.Columns.Values[0].SetString1D(v, row)
		for si, st := range DescriptiveStats {
			rt.Columns.Values[si+1].SetFloat1D(Round(st.Call(vals), Decimals), row)
		}
	}
	return rt, nil
}

// DescribeAll runs [Describe] on all numeric columns in the given table,
// in column order.
func DescribeAll(dt *table.Table) (*table.Table, error) {
	return Describe(dt, NumericColumns(dt)...)
}

// NumericColumns returns the names of all the non-string columns of dt.
func NumericColumns(dt *table.Table) []string {
	var cols []string
	for i, cl := range dt.Columns.Values {
		if !cl.IsString() {
			cols = append(cols, dt.ColumnName(i))
		}
	}
	return cols
}

// uniqueNames returns names with any repeated names removed,
// keeping the first occurrence.
func uniqueNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, nm := range names {
		if !slices.Contains(out, nm) {
			out = append(out, nm)
		}
	}
	return out
}
