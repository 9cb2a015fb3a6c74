// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/expstats/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, "detect", cfg.Delim)
	assert.True(t, cfg.Describe)
	assert.True(t, cfg.Compare)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.CSV)
	assert.Equal(t, 0.05, cfg.Alpha)
	assert.Empty(t, cfg.Variables)
	assert.Equal(t, stats.DefaultGroups(), cfg.Groups)
}

func TestSetFromDefaultsTypes(t *testing.T) {
	type sub struct {
		N int `default:"3"`
	}
	type cfgType struct {
		Names []string `default:"a, b,,c"`
		Sub   sub
		skip  string `default:"x"`
	}
	cfg := &cfgType{}
	require.NoError(t, SetFromDefaults(cfg))
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Names)
	assert.Equal(t, 3, cfg.Sub.N)
	assert.Equal(t, "", cfg.skip)

	type bad struct {
		B bool `default:"maybe"`
	}
	assert.Error(t, SetFromDefaults(&bad{}))
	assert.Error(t, SetFromDefaults(cfgType{}))
}

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "expstats.toml")
	data := `
Input = "exp.csv.gz"
Variables = ["x", "y"]
Compare = false

[Groups]
Group1 = "control"
`
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))

	cfg := New()
	require.NoError(t, Open(cfg, fn))
	assert.Equal(t, "exp.csv.gz", cfg.Input)
	assert.Equal(t, []string{"x", "y"}, cfg.Variables)
	assert.False(t, cfg.Compare)
	assert.True(t, cfg.Describe)
	assert.Equal(t, "treatment", cfg.Groups.Column)
	assert.Equal(t, "control", cfg.Groups.Group1)
	assert.Equal(t, "k1_8_exp_lot", cfg.Groups.Group2)

	require.NoError(t, os.WriteFile(fn, []byte("Unknown = 1\n"), 0o644))
	assert.Error(t, Open(New(), fn))
	assert.Error(t, Open(New(), filepath.Join(t.TempDir(), "none.toml")))
}
