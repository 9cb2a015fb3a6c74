// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	errs []any
}

func (r *recorder) Error(args ...any) { r.errs = append(r.errs, args...) }

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("bad column")
	assert.Equal(t, err, Log(err))
}

func TestTest(t *testing.T) {
	r := &recorder{}
	assert.NoError(t, Test(r, nil))
	assert.Empty(t, r.errs)
	err := New("x")
	assert.Equal(t, err, Test(r, err))
	assert.Equal(t, []any{err}, r.errs)
}

func TestIs(t *testing.T) {
	base := New("unknown column")
	wrapped := fmt.Errorf("describe: %w", base)
	assert.True(t, Is(wrapped, base))
	assert.False(t, Is(New("other"), base))
	joined := Join(nil, wrapped)
	assert.True(t, Is(joined, base))
}
