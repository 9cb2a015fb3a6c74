// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/expstats/config"
	"cogentcore.org/expstats/stats"
	"cogentcore.org/expstats/table"
)

// App is the main app type that handles
// the logic for the expstats tool.
type App struct {
	config.Config
}

// Run reads the input table and writes the configured
// result tables to w.
func (a *App) Run(w io.Writer) error {
	delim, err := table.ParseDelims(a.Delim)
	if err != nil {
		return err
	}
	dt := table.New()
	if err := dt.OpenCSV(a.Input, delim); err != nil {
		return err
	}
	slog.Info("read table", "file", a.Input, "rows", dt.NumRows(), "columns", dt.NumColumns())

	vars := a.Variables
	if len(vars) == 0 {
		vars = stats.NumericColumns(dt)
		slog.Debug("using all numeric columns", "variables", vars)
	}

	p := newPrinter(w, a.CSV, a.Color, a.Alpha)
	if a.Describe {
		rt, err := stats.Describe(dt, vars...)
		if err != nil {
			return err
		}
		if err := p.print("Descriptive statistics", rt); err != nil {
			return err
		}
	}
	if a.Compare {
		g1, g2, err := a.Groups.Split(dt)
		if err != nil {
			return err
		}
		slog.Info("groups", a.Groups.Group1, g1.NumRows(), a.Groups.Group2, g2.NumRows())
		if g1.NumRows() == 0 || g2.NumRows() == 0 {
			slog.Warn("group has no rows, t-tests are undefined", "column", a.Groups.Column)
		}
		rt, err := stats.CompareGroups(dt, a.Groups, vars...)
		if err != nil {
			return err
		}
		title := fmt.Sprintf("Welch t-test: %s vs %s", a.Groups.Group1, a.Groups.Group2)
		if err := p.print(title, rt); err != nil {
			return err
		}
	}
	return nil
}
