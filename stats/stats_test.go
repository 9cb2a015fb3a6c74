// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestFuncs64(t *testing.T) {
	vals := []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}
	results := []float64{11, 5.5, 0.5, 0.11, math.Sqrt(0.11), 0, 1}

	tol := 1.0e-8

	for st := Count; st < StatsN; st++ {
		assert.InDelta(t, results[st], st.Call(vals), tol, st.String())
	}

	withNaN := append([]float64{math.NaN()}, vals...)
	withNaN = append(withNaN, math.NaN())
	for st := Count; st < StatsN; st++ {
		assert.InDelta(t, results[st], st.Call(withNaN), tol, st.String())
	}
}

func TestFuncsDegenerate(t *testing.T) {
	empty := []float64{math.NaN(), math.NaN()}
	assert.Equal(t, 0.0, CountFunc(empty))
	assert.Equal(t, 0.0, SumFunc(empty))
	for _, st := range []Stats{Mean, Var, Std, Min, Max} {
		assert.True(t, math.IsNaN(st.Call(empty)), st.String())
		assert.True(t, math.IsNaN(st.Call(nil)), st.String())
	}

	one := []float64{7}
	assert.Equal(t, 7.0, MeanFunc(one))
	assert.Equal(t, 7.0, MinFunc(one))
	assert.Equal(t, 7.0, MaxFunc(one))
	assert.True(t, math.IsNaN(VarFunc(one)))
	assert.True(t, math.IsNaN(StdFunc(one)))
}

func TestCall(t *testing.T) {
	v, err := Call("mean", []float64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = Call("median", []float64{1, 2, 3})
	assert.Error(t, err)
	assert.Equal(t, "Stats(99)", Stats(99).String())
}

func TestDropNaN(t *testing.T) {
	in := []float64{1, math.NaN(), 3}
	out := DropNaN(in)
	assert.Equal(t, []float64{1, 3}, out)
	if diff := cmp.Diff([]float64{1, math.NaN(), 3}, in, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.58, Round(math.Sqrt(2.5), 2))
	assert.Equal(t, 3.0, Round(3, 2))
	assert.Equal(t, -3.97, Round(-3.9703446152237674, 2))
	assert.Equal(t, 0.01, Round(0.0085128631313781695, 2))

	// ties go to even
	assert.Equal(t, 0.12, Round(0.125, 2))
	assert.Equal(t, 0.38, Round(0.375, 2))
	assert.Equal(t, 2.0, Round(2.5, 0))

	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
	assert.True(t, math.IsInf(Round(math.Inf(-1), 2), -1))
	assert.Equal(t, math.MaxFloat64, Round(math.MaxFloat64, 2))
}
