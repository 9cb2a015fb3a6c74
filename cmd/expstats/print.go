// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/expstats/stats"
	"cogentcore.org/expstats/table"
	"github.com/muesli/termenv"
)

// printer writes result tables as aligned text or CSV.
type printer struct {
	w     io.Writer
	out   *termenv.Output
	csv   bool
	alpha float64

	// n is the number of tables printed so far.
	n int
}

func newPrinter(w io.Writer, csv, color bool, alpha float64) *printer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &printer{w: w, out: termenv.NewOutput(w, opts...), csv: csv, alpha: alpha}
}

func (p *printer) print(title string, dt *table.Table) error {
	defer func() { p.n++ }()
	if p.csv {
		if p.n > 0 {
			if _, err := fmt.Fprintln(p.w); err != nil {
				return err
			}
		}
		return dt.WriteCSV(p.w, table.Comma, table.Headers)
	}
	return p.text(title, dt)
}

// text writes the table with columns padded to a common width,
// numbers right aligned, and significant p-values highlighted.
func (p *printer) text(title string, dt *table.Table) error {
	nc := dt.NumColumns()
	rows := make([][]string, dt.NumRows())
	widths := make([]int, nc)
	for ci, k := range dt.Columns.Keys {
		widths[ci] = len(k)
	}
	for ri := range rows {
		rows[ri] = dt.RowStrings(ri)
		for ci, s := range rows[ri] {
			widths[ci] = max(widths[ci], len(s))
		}
	}
	pad := func(ci int, s string) string {
		if dt.Columns.Values[ci].IsString() {
			return s + strings.Repeat(" ", widths[ci]-len(s))
		}
		return strings.Repeat(" ", widths[ci]-len(s)) + s
	}

	var b strings.Builder
	if p.n > 0 {
		b.WriteString("\n")
	}
	b.WriteString(p.out.String(title).Bold().String())
	b.WriteString("\n")
	for ci, k := range dt.Columns.Keys {
		if ci > 0 {
			b.WriteString("  ")
		}
		b.WriteString(p.out.String(pad(ci, k)).Underline().String())
	}
	b.WriteString("\n")
	pc := dt.Columns.IndexByKey(stats.PColumn)
	for ri, rec := range rows {
		for ci, s := range rec {
			if ci > 0 {
				b.WriteString("  ")
			}
			cell := pad(ci, s)
			if ci == pc && dt.Float(stats.PColumn, ri) < p.alpha {
				cell = p.out.String(cell).Foreground(p.out.Color("2")).Bold().String()
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}
