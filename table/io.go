// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/expstats/base/errors"
	"github.com/klauspost/compress/gzip"
)

var nan = math.NaN()

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value
	Space

	// Detect is used during reading a file -- reads the first line and detects tabs or commas
	Detect
)

// Rune returns the delimiter rune. Detect returns tab.
func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// String returns the name of the delimiter.
func (dl Delims) String() string {
	switch dl {
	case Tab:
		return "Tab"
	case Comma:
		return "Comma"
	case Space:
		return "Space"
	case Detect:
		return "Detect"
	}
	return "Delims(" + strconv.Itoa(int(dl)) + ")"
}

// ParseDelims returns the delimiter for given name (case insensitive),
// also accepting the file-extension style names csv, tsv and ssv.
func ParseDelims(s string) (Delims, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tab", "tsv", `\t`:
		return Tab, nil
	case "comma", "csv", ",":
		return Comma, nil
	case "space", "ssv", " ":
		return Space, nil
	case "detect", "":
		return Detect, nil
	}
	return Detect, fmt.Errorf("table.ParseDelims: unknown delimiter %q", s)
}

const (
	// Headers is passed to CSV methods for the headers arg, to write column names.
	Headers = true

	// NoHeaders is passed to CSV methods for the headers arg, to not write column names.
	NoHeaders = false
)

// OpenCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// Files ending in .gz are decompressed on the fly.
// The name of the table is set to the base file name if not already set.
func (dt *Table) OpenCSV(filename string, delim Delims) error {
	fp, err := os.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.openReader(fp, filename, delim)
}

// OpenFS is the version of [Table.OpenCSV] that uses an [fs.FS] filesystem.
func (dt *Table) OpenFS(fsys fs.FS, filename string, delim Delims) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.openReader(fp, filename, delim)
}

func (dt *Table) openReader(r io.Reader, filename string, delim Delims) error {
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return errors.Log(fmt.Errorf("table.OpenCSV: %s: %w", filename, err))
		}
		defer gz.Close()
		r = gz
		filename = strings.TrimSuffix(filename, ".gz")
	}
	if delim == Detect {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".tsv":
			delim = Tab
		case ".csv":
			delim = Comma
		}
	}
	if dt.Name() == "" {
		dt.Meta["name"] = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	err := dt.ReadCSV(r, delim)
	if err != nil {
		return errors.Log(fmt.Errorf("table.OpenCSV: %s: %w", filename, err))
	}
	return nil
}

// ReadCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming to the official CSV standard.
// Any existing columns are deleted: the first row of the file is the
// column names, and the column types are inferred from the data values,
// with every column whose non-blank values all parse as numbers being
// a [Float64] column. Blank and NaN cells are NaN missing values.
func (dt *Table) ReadCSV(r io.Reader, delim Delims) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if delim == Detect {
		delim = DetectDelim(b)
	}
	cr := csv.NewReader(bytes.NewReader(b))
	cr.Comma = delim.Rune()
	cr.TrimLeadingSpace = delim != Tab
	cr.FieldsPerRecord = -1
	rec, err := cr.ReadAll()
	if err != nil {
		return err
	}
	dt.DeleteAll()
	if len(rec) == 0 {
		return nil
	}
	hdrs, err := ConfigFromDataValues(dt, rec[0], rec[1:])
	if err != nil {
		return err
	}
	rows := len(rec) - 1
	dt.SetNumRows(rows)
	for ri := range rows {
		if err := dt.ReadCSVRow(hdrs, rec[ri+1], ri); err != nil {
			return err
		}
	}
	return nil
}

// DetectDelim returns Tab if the first line of the data contains a tab,
// and Comma otherwise.
func DetectDelim(b []byte) Delims {
	line := b
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		line = b[:i]
	}
	if bytes.IndexByte(line, '\t') >= 0 {
		return Tab
	}
	return Comma
}

// ReadCSVRow reads a record of CSV data into given row in table,
// where hdrs are the column names of the record cells in order.
// Missing trailing cells are missing values, and cells beyond
// the headers are ignored.
func (dt *Table) ReadCSVRow(hdrs, rec []string, row int) error {
	for ci, hd := range hdrs {
		cl, err := dt.ColumnTry(hd)
		if err != nil {
			return err
		}
		str := ""
		if ci < len(rec) {
			str = strings.TrimSpace(rec[ci])
		}
		cl.SetString1D(str, row)
	}
	return nil
}

// ConfigFromDataValues configures a Table based on data types inferred
// from the string representation of given records, using header names.
// It returns the column names in header order: blank names become col_N,
// and a repeated name x becomes x.1, x.2 and so on.
func ConfigFromDataValues(dt *Table, hdrs []string, rec [][]string) ([]string, error) {
	names := UniqueHeaders(hdrs)
	for ci, hd := range names {
		numeric := true
		for _, r := range rec {
			if ci >= len(r) {
				continue
			}
			if !IsNumber(r[ci]) {
				numeric = false
				break
			}
		}
		var cl Column
		if numeric {
			cl = NewFloat64(dt.Columns.Rows)
		} else {
			cl = NewString(dt.Columns.Rows)
		}
		if err := dt.AddColumn(hd, cl); err != nil {
			return nil, err
		}
	}
	return names, nil
}

// UniqueHeaders returns the trimmed header names with blank names
// replaced by col_N (N the column index) and repeats of a name
// suffixed with .1, .2 and so on, skipping names already in use.
func UniqueHeaders(hdrs []string) []string {
	names := make([]string, len(hdrs))
	used := make(map[string]bool, len(hdrs))
	for ci, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			hd = fmt.Sprintf("col_%d", ci)
		}
		names[ci] = hd
	}
	for _, hd := range names {
		used[hd] = true
	}
	seen := make(map[string]int, len(hdrs))
	for ci, hd := range names {
		n := seen[hd]
		seen[hd] = n + 1
		if n == 0 {
			continue
		}
		nm := fmt.Sprintf("%s.%d", hd, n)
		for used[nm] {
			n++
			nm = fmt.Sprintf("%s.%d", hd, n)
		}
		seen[hd] = n + 1
		used[nm] = true
		names[ci] = nm
	}
	return names
}

// IsNumber returns true if the given string is blank, a missing value marker,
// or parses as a floating point number.
func IsNumber(str string) bool {
	str = strings.TrimSpace(str)
	switch str {
	case "", "NaN", "nan", "NA", "-NaN":
		return true
	}
	_, err := strconv.ParseFloat(str, 64)
	return err == nil
}

// WriteCSV writes the rows of this table view to a comma-separated-values
// (CSV) file (where comma = any delimiter, specified in the delim arg).
// If headers = true then the column names are written as the first row.
// If the precision metadata is set, float values are written with that
// many decimal places.
func (dt *Table) WriteCSV(w io.Writer, delim Delims, headers bool) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if headers {
		if err := cw.Write(dt.Columns.Keys); err != nil {
			return err
		}
	}
	for ri := range dt.NumRows() {
		if err := cw.Write(dt.RowStrings(ri)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Precision returns the precision metadata value, or -1 if not set.
func (dt *Table) Precision() int {
	ps, ok := dt.Meta["precision"]
	if !ok {
		return -1
	}
	prec, err := strconv.Atoi(ps)
	if err != nil {
		return -1
	}
	return prec
}

// SetPrecision sets the precision metadata for writing float values.
func (dt *Table) SetPrecision(prec int) {
	dt.Meta["precision"] = strconv.Itoa(prec)
}

// RowStrings returns the string representation of the values in
// given row of this view, using the [Table.Precision] for float values.
func (dt *Table) RowStrings(row int) []string {
	prec := dt.Precision()
	ri := dt.RowIndex(row)
	rec := make([]string, dt.NumColumns())
	for ci, cl := range dt.Columns.Values {
		if prec < 0 || cl.IsString() {
			rec[ci] = cl.String1D(ri)
			continue
		}
		rec[ci] = strconv.FormatFloat(cl.Float1D(ri), 'f', prec, 64)
	}
	return rec
}
