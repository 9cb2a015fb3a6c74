// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Column is the interface for one column of values in a [Table].
// Values are addressed by raw row number in the underlying storage;
// use the [Table] accessors to go through the table Indexes.
type Column interface {
	// Len returns the number of rows of storage.
	Len() int

	// IsString returns true if the column holds string values.
	IsString() bool

	// Float1D returns the value at given row as a float64.
	// String values are parsed, with NaN for non-numbers.
	Float1D(i int) float64

	// SetFloat1D sets the value at given row from a float64.
	SetFloat1D(val float64, i int)

	// String1D returns the value at given row as a string.
	String1D(i int) string

	// SetString1D sets the value at given row from a string.
	SetString1D(val string, i int)

	// SetNumRows sets the number of rows of storage,
	// preserving existing values.
	SetNumRows(rows int)

	// Clone returns a deep copy of the column.
	Clone() Column
}

// Float64 is a [Column] of float64 values, with NaN as the missing value.
type Float64 struct {
	Values []float64
}

// NewFloat64 returns a new [Float64] column with given number of rows,
// all initialized to zero.
func NewFloat64(rows int) *Float64 {
	return &Float64{Values: make([]float64, rows)}
}

// NewFloat64FromValues returns a new [Float64] column holding a copy of
// the given values.
func NewFloat64FromValues(vals ...float64) *Float64 {
	return &Float64{Values: slices.Clone(vals)}
}

func (cl *Float64) Len() int       { return len(cl.Values) }
func (cl *Float64) IsString() bool { return false }

func (cl *Float64) Float1D(i int) float64 { return cl.Values[i] }

func (cl *Float64) SetFloat1D(val float64, i int) { cl.Values[i] = val }

func (cl *Float64) String1D(i int) string { return Float64ToString(cl.Values[i]) }

func (cl *Float64) SetString1D(val string, i int) { cl.Values[i] = StringToFloat64(val) }

func (cl *Float64) SetNumRows(rows int) {
	cl.Values = setLen(cl.Values, rows, 0)
}

func (cl *Float64) Clone() Column {
	return &Float64{Values: slices.Clone(cl.Values)}
}

// String is a [Column] of string values.
type String struct {
	Values []string
}

// NewString returns a new [String] column with given number of rows.
func NewString(rows int) *String {
	return &String{Values: make([]string, rows)}
}

// NewStringFromValues returns a new [String] column holding a copy of
// the given values.
func NewStringFromValues(vals ...string) *String {
	return &String{Values: slices.Clone(vals)}
}

func (cl *String) Len() int       { return len(cl.Values) }
func (cl *String) IsString() bool { return true }

func (cl *String) Float1D(i int) float64 { return StringToFloat64(cl.Values[i]) }

func (cl *String) SetFloat1D(val float64, i int) { cl.Values[i] = Float64ToString(val) }

func (cl *String) String1D(i int) string { return cl.Values[i] }

func (cl *String) SetString1D(val string, i int) { cl.Values[i] = val }

func (cl *String) SetNumRows(rows int) {
	cl.Values = setLen(cl.Values, rows, "")
}

func (cl *String) Clone() Column {
	return &String{Values: slices.Clone(cl.Values)}
}

// StringToFloat64 converts a string value to float64, returning NaN
// for blank or non-numeric strings.
func StringToFloat64(str string) float64 {
	str = strings.TrimSpace(str)
	if str == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Float64ToString converts a float64 to its shortest string representation.
func Float64ToString(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// setLen resizes vals to n, filling any new elements with fill.
func setLen[T any](vals []T, n int, fill T) []T {
	cur := len(vals)
	if n <= cur {
		return vals[:n]
	}
	vals = slices.Grow(vals, n-cur)
	for range n - cur {
		vals = append(vals, fill)
	}
	return vals
}
