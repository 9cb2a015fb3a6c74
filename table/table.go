// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"

	"cogentcore.org/expstats/base/errors"
)

// ErrUnknownColumn is returned (wrapped) by accessors that look up
// a column by a name that is not present in the table.
var ErrUnknownColumn = errors.New("unknown column")

// Table is a table of [Column] data aligned by a common row dimension.
// Use the [Table.Column] (by name) and [Table.ColumnTry] methods to obtain
// the column data, and the [Table.Float] and [Table.StringValue] methods
// to access values through the shared [Table.Indexes] of the Table,
// which provide a filtered or sorted view of the rows without copying.
type Table struct {
	// Columns has the list of column data for this table.
	// Different tables can provide different indexed views onto the same Columns.
	Columns *Columns

	// Indexes are the indexes into Column rows, with nil = sequential.
	// Only set if order is different from default sequential order.
	Indexes []int

	// Meta is misc metadata for the table. Use lower-case key names:
	//	- name = name of table
	//	- precision = number of decimal places to write floats in csv.
	Meta map[string]string
}

// New returns a new Table with its own (empty) set of Columns.
// Can pass an optional name which sets metadata.
func New(name ...string) *Table {
	dt := &Table{}
	dt.Columns = NewColumns()
	dt.Meta = make(map[string]string)
	if len(name) > 0 {
		dt.Meta["name"] = name[0]
	}
	return dt
}

// NewView returns a new Table with its own indexed view into the
// same underlying set of Column data as the source table.
// The current Indexes of the source are copied, so the new view
// starts with the same rows and can be filtered independently.
func NewView(src *Table) *Table {
	dt := &Table{Columns: src.Columns}
	dt.Meta = make(map[string]string, len(src.Meta))
	for k, v := range src.Meta {
		dt.Meta[k] = v
	}
	if src.Indexes != nil {
		dt.Indexes = slices.Clone(src.Indexes)
	}
	return dt
}

// Name returns the name of the table from the Meta data.
func (dt *Table) Name() string { return dt.Meta["name"] }

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.Columns.Len() }

// Column returns the column with given name, or nil if not found.
// Values must be accessed through [Table.RowIndex] to respect the
// Indexes of this view.
func (dt *Table) Column(name string) Column {
	return dt.Columns.ValueByKey(name)
}

// ColumnTry is a version of [Table.Column] that also returns an error
// wrapping [ErrUnknownColumn] if the column name is not found.
func (dt *Table) ColumnTry(name string) (Column, error) {
	cl := dt.Column(name)
	if cl != nil {
		return cl, nil
	}
	return nil, fmt.Errorf("table.Table: %w %q", ErrUnknownColumn, name)
}

// ColumnName returns the name of given column.
func (dt *Table) ColumnName(i int) string {
	return dt.Columns.Keys[i]
}

// AddColumn adds the given column to the table,
// returning an error and not adding if the name is not unique.
// Automatically adjusts the column to fit the current number of rows.
func (dt *Table) AddColumn(name string, cl Column) error {
	return dt.Columns.AddColumn(name, cl)
}

// AddFloat64Column adds a new float64 column with given name.
func (dt *Table) AddFloat64Column(name string) *Float64 {
	cl := NewFloat64(dt.Columns.Rows)
	errors.Log(dt.AddColumn(name, cl))
	return cl
}

// AddStringColumn adds a new string column with given name.
func (dt *Table) AddStringColumn(name string) *String {
	cl := NewString(dt.Columns.Rows)
	errors.Log(dt.AddColumn(name, cl))
	return cl
}

// DeleteColumnName deletes column of given name.
// returns false if not found.
func (dt *Table) DeleteColumnName(name string) bool {
	return dt.Columns.DeleteKey(name)
}

// DeleteAll deletes all columns, does full reset.
func (dt *Table) DeleteAll() {
	dt.Columns.Reset()
	dt.Indexes = nil
}

// SetNumRows sets the number of rows in the table, across all columns.
// Any Indexes are extended with the new rows, or trimmed of rows
// that no longer exist.
func (dt *Table) SetNumRows(rows int) *Table {
	strow := dt.Columns.Rows
	dt.Columns.SetNumRows(rows)
	if dt.Indexes == nil {
		return dt
	}
	if rows > strow {
		for i := range rows - strow {
			dt.Indexes = append(dt.Indexes, strow+i)
		}
	} else {
		dt.ValidIndexes()
	}
	return dt
}

// AddRows adds n rows to end of underlying Table, and to the indexes in this view.
func (dt *Table) AddRows(n int) *Table {
	return dt.SetNumRows(dt.Columns.Rows + n)
}

// Clone returns a complete copy of this table, including cloning
// the underlying Columns, and the current [Table.Indexes].
func (dt *Table) Clone() *Table {
	cp := New()
	cp.Columns = dt.Columns.Clone()
	for k, v := range dt.Meta {
		cp.Meta[k] = v
	}
	if dt.Indexes != nil {
		cp.Indexes = slices.Clone(dt.Indexes)
	}
	return cp
}

// Float returns the float64 value of given column at given row of this view.
// Returns NaN if the column is not found.
func (dt *Table) Float(column string, row int) float64 {
	cl := dt.Column(column)
	if cl == nil {
		return nan
	}
	return cl.Float1D(dt.RowIndex(row))
}

// StringValue returns the string value of given column at given row of this view.
// Returns "" if the column is not found.
func (dt *Table) StringValue(column string, row int) string {
	cl := dt.Column(column)
	if cl == nil {
		return ""
	}
	return cl.String1D(dt.RowIndex(row))
}

// SetFloat sets the float64 value of given column at given row of this view.
func (dt *Table) SetFloat(column string, row int, val float64) error {
	cl, err := dt.ColumnTry(column)
	if err != nil {
		return err
	}
	cl.SetFloat1D(val, dt.RowIndex(row))
	return nil
}

// SetString sets the string value of given column at given row of this view.
func (dt *Table) SetString(column string, row int, val string) error {
	cl, err := dt.ColumnTry(column)
	if err != nil {
		return err
	}
	cl.SetString1D(val, dt.RowIndex(row))
	return nil
}

// FloatValues returns the float64 values of the given column for the rows of
// this view, in view order, including any NaN missing values.
// Returns an error wrapping [ErrUnknownColumn] if the column is not found.
func (dt *Table) FloatValues(column string) ([]float64, error) {
	cl, err := dt.ColumnTry(column)
	if err != nil {
		return nil, err
	}
	n := dt.NumRows()
	vals := make([]float64, n)
	for i := range n {
		vals[i] = cl.Float1D(dt.RowIndex(i))
	}
	return vals, nil
}

// RowIndexOf returns the row of this view at which the given column has
// the given string value, or -1 if there is no such row (or column).
// This is the keyed lookup for tables indexed by a name column.
func (dt *Table) RowIndexOf(column, key string) int {
	cl := dt.Column(column)
	if cl == nil {
		return -1
	}
	for i := range dt.NumRows() {
		if cl.String1D(dt.RowIndex(i)) == key {
			return i
		}
	}
	return -1
}
