// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"math"
	"testing"

	"cogentcore.org/expstats/base/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTreatmentTable returns a small table in the shape of an experiment:
// a treatment label column and two numeric variables.
func newTreatmentTable() *Table {
	dt := New("exp").SetNumRows(5)
	tr := dt.AddStringColumn("treatment")
	x := dt.AddFloat64Column("x")
	y := dt.AddFloat64Column("y")
	copy(tr.Values, []string{"a", "b", "a", "c", "b"})
	copy(x.Values, []float64{1, 2, 3, 4, 5})
	copy(y.Values, []float64{10, math.NaN(), 30, 40, 50})
	return dt
}

func TestAddColumn(t *testing.T) {
	dt := New().SetNumRows(3)
	cl := dt.AddFloat64Column("x")
	assert.Equal(t, 3, cl.Len())
	assert.Equal(t, 1, dt.NumColumns())
	assert.Error(t, dt.AddColumn("x", NewFloat64(0)))
	assert.Equal(t, 1, dt.NumColumns())

	dt.AddRows(2)
	assert.Equal(t, 5, dt.NumRows())
	assert.Equal(t, 5, cl.Len())

	assert.True(t, dt.DeleteColumnName("x"))
	assert.False(t, dt.DeleteColumnName("x"))
	assert.Nil(t, dt.Column("x"))
}

func TestColumnTry(t *testing.T) {
	dt := newTreatmentTable()
	cl, err := dt.ColumnTry("x")
	require.NoError(t, err)
	assert.False(t, cl.IsString())

	_, err = dt.ColumnTry("z")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownColumn))
	assert.Contains(t, err.Error(), `"z"`)

	_, err = dt.FloatValues("z")
	assert.True(t, errors.Is(err, ErrUnknownColumn))
	assert.True(t, math.IsNaN(dt.Float("z", 0)))
	assert.Equal(t, "", dt.StringValue("z", 0))
}

func TestFilterString(t *testing.T) {
	dt := newTreatmentTable()
	a := NewView(dt)
	require.NoError(t, a.FilterString("treatment", "a"))
	assert.Equal(t, []int{0, 2}, a.Indexes)
	assert.Equal(t, 2, a.NumRows())
	assert.Equal(t, 3.0, a.Float("x", 1))

	b := NewView(dt)
	require.NoError(t, b.FilterString("treatment", "b"))
	ys, err := b.FloatValues("y")
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{math.NaN(), 50}, ys, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("FloatValues mismatch (-want +got):\n%s", diff)
	}

	none := NewView(dt)
	require.NoError(t, none.FilterString("treatment", "A"))
	assert.Equal(t, 0, none.NumRows())

	// source view is untouched
	assert.Nil(t, dt.Indexes)
	assert.Equal(t, 5, dt.NumRows())

	err = NewView(dt).FilterString("group", "a")
	assert.True(t, errors.Is(err, ErrUnknownColumn))
}

func TestNewFromIndexes(t *testing.T) {
	dt := newTreatmentTable()
	ix := NewView(dt)
	ix.Filter(func(dt *Table, row int) bool {
		return dt.Columns.Values[1].Float1D(row) > 2
	})
	nt := ix.New()
	assert.Nil(t, nt.Indexes)
	assert.Equal(t, 3, nt.NumRows())
	xs, err := nt.FloatValues("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5}, xs)
	assert.Equal(t, "c", nt.StringValue("treatment", 1))

	// changing the copy does not affect the source
	require.NoError(t, nt.SetFloat("x", 0, 100))
	assert.Equal(t, 3.0, dt.Float("x", 2))
}

func TestRowIndexOf(t *testing.T) {
	dt := newTreatmentTable()
	assert.Equal(t, 3, dt.RowIndexOf("treatment", "c"))
	assert.Equal(t, 0, dt.RowIndexOf("x", "1"))
	assert.Equal(t, -1, dt.RowIndexOf("treatment", "d"))
	assert.Equal(t, -1, dt.RowIndexOf("nope", "a"))
}

func TestSetNumRowsIndexes(t *testing.T) {
	dt := newTreatmentTable()
	dt.Filter(func(dt *Table, row int) bool { return row%2 == 0 })
	assert.Equal(t, []int{0, 2, 4}, dt.Indexes)
	dt.SetNumRows(3)
	assert.Equal(t, []int{0, 2}, dt.Indexes)
	dt.AddRows(1)
	assert.Equal(t, []int{0, 2, 3}, dt.Indexes)
	dt.Sequential()
	assert.Equal(t, 4, dt.NumRows())
}

func TestClone(t *testing.T) {
	dt := newTreatmentTable()
	cp := dt.Clone()
	require.NoError(t, cp.SetString("treatment", 0, "z"))
	assert.Equal(t, "a", dt.StringValue("treatment", 0))
	assert.Equal(t, "exp", cp.Name())
}

func TestStringFloatConversion(t *testing.T) {
	assert.True(t, math.IsNaN(StringToFloat64("")))
	assert.True(t, math.IsNaN(StringToFloat64("abc")))
	assert.Equal(t, 2.5, StringToFloat64(" 2.5 "))
	assert.Equal(t, "NaN", Float64ToString(math.NaN()))
	assert.Equal(t, "1.58", Float64ToString(1.58))

	s := NewStringFromValues("1", "x")
	assert.Equal(t, 1.0, s.Float1D(0))
	assert.True(t, math.IsNaN(s.Float1D(1)))
	f := NewFloat64FromValues(1, 2)
	f.SetString1D("", 1)
	assert.True(t, math.IsNaN(f.Values[1]))
}

func TestAddColumnValues(t *testing.T) {
	dt := New()
	require.NoError(t, dt.AddColumn("x", NewFloat64FromValues(1, 2, 3)))
	require.NoError(t, dt.AddColumn("g", NewStringFromValues("a")))
	assert.Equal(t, 3, dt.NumRows())
	assert.Equal(t, "a", dt.StringValue("g", 0))
	assert.Equal(t, "", dt.StringValue("g", 2))
	assert.Equal(t, 2.0, dt.Float("x", 1))
}
