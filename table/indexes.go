// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"slices"
)

// RowIndex returns the actual index into underlying column row based on given
// index value.  If Indexes == nil, index is passed through.
func (dt *Table) RowIndex(idx int) int {
	if dt.Indexes == nil {
		return idx
	}
	return dt.Indexes[idx]
}

// NumRows returns the number of rows, which is the number of Indexes if present,
// else actual number of [Columns.Rows].
func (dt *Table) NumRows() int {
	if dt.Indexes == nil {
		return dt.Columns.Rows
	}
	return len(dt.Indexes)
}

// Sequential sets Indexes to nil, resulting in sequential row-wise access.
func (dt *Table) Sequential() {
	dt.Indexes = nil
}

// IndexesNeeded is called prior to an operation that needs actual indexes,
// e.g., Sort, Filter.  If Indexes == nil, they are set to all rows, otherwise
// current indexes are left as is. Use Sequential, then IndexesNeeded to ensure
// all rows are represented.
func (dt *Table) IndexesNeeded() {
	if dt.Indexes != nil {
		return
	}
	dt.Indexes = make([]int, dt.Columns.Rows)
	for i := range dt.Indexes {
		dt.Indexes[i] = i
	}
}

// ValidIndexes deletes all invalid indexes from the list.
// Call this if rows (could) have been deleted from table.
func (dt *Table) ValidIndexes() {
	if dt.Columns.Rows <= 0 || dt.Indexes == nil {
		dt.Indexes = nil
		return
	}
	dt.Indexes = slices.DeleteFunc(dt.Indexes, func(ri int) bool {
		return ri >= dt.Columns.Rows
	})
}

// FilterFunc is a function used for filtering that returns
// true if Table row should be included in the current filtered
// view of the table, and false if it should be removed.
type FilterFunc func(dt *Table, row int) bool

// Filter filters the indexes into our Table using given Filter function.
// The Filter function operates directly on row numbers into the Columns
// as these row numbers have already been projected through the indexes.
func (dt *Table) Filter(filterer FilterFunc) {
	dt.IndexesNeeded()
	sz := len(dt.Indexes)
	for i := sz - 1; i >= 0; i-- { // always go in reverse for filtering
		if !filterer(dt, dt.Indexes[i]) { // delete
			dt.Indexes = append(dt.Indexes[:i], dt.Indexes[i+1:]...)
		}
	}
}

// FilterString filters the indexes to the rows where the string value of
// the given column is exactly equal to str.
// Returns an error wrapping [ErrUnknownColumn] if the column is not found.
func (dt *Table) FilterString(columnName string, str string) error {
	cl, err := dt.ColumnTry(columnName)
	if err != nil {
		return err
	}
	dt.Filter(func(dt *Table, row int) bool {
		return cl.String1D(row) == str
	})
	return nil
}

// New returns a new table with column data organized according to
// the indexes.  If Indexes are nil, a clone of the current table is returned.
func (dt *Table) New() *Table {
	if dt.Indexes == nil {
		return dt.Clone()
	}
	rows := len(dt.Indexes)
	nt := dt.Clone()
	nt.Indexes = nil
	nt.SetNumRows(rows)
	for ci, cl := range nt.Columns.Values {
		scl := dt.Columns.Values[ci]
		for i, srw := range dt.Indexes {
			if cl.IsString() {
				cl.SetString1D(scl.String1D(srw), i)
			} else {
				cl.SetFloat1D(scl.Float1D(srw), i)
			}
		}
	}
	return nt
}
