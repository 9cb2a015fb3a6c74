// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"cogentcore.org/expstats/table"
)

// Result column names for [CompareGroups].
const (
	TColumn = "t"
	PColumn = "p"
)

// Groups specifies how rows are partitioned into the two groups compared
// by [CompareGroups]: rows whose Column value is exactly Group1 or Group2.
type Groups struct {

	// Column is the name of the column holding the group labels.
	Column string

	// Group1 is the label of the first group.
	Group1 string

	// Group2 is the label of the second group.
	Group2 string
}

// DefaultGroups returns the standard treatment groups of the
// randomization experiment.
func DefaultGroups() Groups {
	return Groups{Column: "treatment", Group1: "k1_8_lot_exp", Group2: "k1_8_exp_lot"}
}

// Split returns two views of dt holding the rows of the first and
// second group respectively. Rows with any other label are in neither.
// Returns an error wrapping [table.ErrUnknownColumn] if the group
// column is not present.
func (g Groups) Split(dt *table.Table) (g1, g2 *table.Table, err error) {
	g1 = table.NewView(dt)
	if err = g1.FilterString(g.Column, g.Group1); err != nil {
		return nil, nil, err
	}
	g2 = table.NewView(dt)
	if err = g2.FilterString(g.Column, g.Group2); err != nil {
		return nil, nil, err
	}
	return g1, g2, nil
}

// CompareGroups returns a new table of Welch's t-test results comparing the
// two given groups of rows of dt, for each of the given variable columns,
// with one row per variable in the given order, keyed by the [VariableColumn],
// and [TColumn] and [PColumn] columns for the t statistic and two-sided
// p-value rounded to [Decimals] places. See [WelchTTest] for the results
// when either group has too few values for the test to be defined.
// A variable that is listed more than once only appears at its first position.
// Returns an error wrapping [table.ErrUnknownColumn] if the group column
// or a variable is not a column in dt.
func CompareGroups(dt *table.Table, groups Groups, variables ...string) (*table.Table, error) {
	g1, g2, err := groups.Split(dt)
	if err != nil {
		return nil, fmt.Errorf("stats.CompareGroups: %w", err)
	}
	variables = uniqueNames(variables)
	rt := table.New("compare")
	rt.SetPrecision(Decimals)
	vc := rt.AddStringColumn(VariableColumn)
	tc := rt.AddFloat64Column(TColumn)
	pc := rt.AddFloat64Column(PColumn)
	rt.SetNumRows(len(variables))
	for row, v := range variables {
		a, err := g1.FloatValues(v)
		if err != nil {
			return nil, fmt.Errorf("stats.CompareGroups: %w", err)
		}
		b, err := g2.FloatValues(v)
		if err != nil {
			return nil, fmt.Errorf("stats.CompareGroups: %w", err)
		}
		res := WelchTTest(a, b)
		vc.Values[row] = v
		tc.Values[row] = Round(res.T, Decimals)
		pc.Values[row] = Round(res.P, Decimals)
	}
	return rt, nil
}

// CompareGroupsDefault runs [CompareGroups] with the [DefaultGroups].
func CompareGroupsDefault(dt *table.Table, variables ...string) (*table.Table, error) {
	return CompareGroups(dt, DefaultGroups(), variables...)
}
