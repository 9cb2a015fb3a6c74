// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"
)

// Columns is the underlying column list and number of rows for Table.
// Each column is a [Column] with Len() == Rows.
// The Keys are the names of the columns, in the same order as Values,
// with a map from name to index for fast lookup.
type Columns struct {
	// Values is the ordered list of column data.
	Values []Column

	// Keys is the ordered list of column names, in same order as Values.
	Keys []string

	// Rows is the number of rows, which is maintained collectively
	// across all columns.
	Rows int

	indexes map[string]int
}

// NewColumns returns a new Columns.
func NewColumns() *Columns {
	return &Columns{indexes: make(map[string]int)}
}

// Len returns the number of columns.
func (cl *Columns) Len() int { return len(cl.Values) }

// IndexByKey returns the index of the column with given name, or -1.
func (cl *Columns) IndexByKey(name string) int {
	if idx, ok := cl.indexes[name]; ok {
		return idx
	}
	return -1
}

// ValueByKey returns the column with given name, or nil if not found.
func (cl *Columns) ValueByKey(name string) Column {
	idx := cl.IndexByKey(name)
	if idx < 0 {
		return nil
	}
	return cl.Values[idx]
}

// SetNumRows sets the number of rows in all columns.
func (cl *Columns) SetNumRows(rows int) *Columns {
	cl.Rows = rows
	for _, c := range cl.Values {
		c.SetNumRows(rows)
	}
	return cl
}

// AddColumn adds the given column with given name, returning an error
// and not adding if the name is already in use.
// The first column added to an empty Columns sets the number of rows,
// and other columns are resized to that number of rows.
func (cl *Columns) AddColumn(name string, c Column) error {
	if cl.indexes == nil {
		cl.indexes = make(map[string]int)
	}
	if _, has := cl.indexes[name]; has {
		return fmt.Errorf("table.AddColumn: column named %q already exists", name)
	}
	if len(cl.Values) == 0 && cl.Rows == 0 {
		cl.Rows = c.Len()
	}
	c.SetNumRows(cl.Rows)
	cl.indexes[name] = len(cl.Values)
	cl.Values = append(cl.Values, c)
	cl.Keys = append(cl.Keys, name)
	return nil
}

// DeleteKey deletes the column with given name, returning false if not found.
func (cl *Columns) DeleteKey(name string) bool {
	idx := cl.IndexByKey(name)
	if idx < 0 {
		return false
	}
	cl.Values = slices.Delete(cl.Values, idx, idx+1)
	cl.Keys = slices.Delete(cl.Keys, idx, idx+1)
	cl.updateIndexes()
	return true
}

// Reset removes all columns and sets rows to zero.
func (cl *Columns) Reset() {
	cl.Values = nil
	cl.Keys = nil
	cl.Rows = 0
	cl.indexes = make(map[string]int)
}

// Clone returns a deep copy of the columns.
func (cl *Columns) Clone() *Columns {
	cp := NewColumns()
	cp.Rows = cl.Rows
	for i, c := range cl.Values {
		cp.indexes[cl.Keys[i]] = i
		cp.Values = append(cp.Values, c.Clone())
		cp.Keys = append(cp.Keys, cl.Keys[i])
	}
	return cp
}

func (cl *Columns) updateIndexes() {
	cl.indexes = make(map[string]int, len(cl.Keys))
	for i, k := range cl.Keys {
		cl.indexes[k] = i
	}
}
