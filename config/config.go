// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the expstats tool, and the functions
// for setting it from defaults and TOML files.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/expstats/base/errors"
	"cogentcore.org/expstats/stats"
	"github.com/pelletier/go-toml/v2"
)

// Config is the main config struct
// that contains all of the configuration
// options for the expstats tool.
type Config struct {

	// Input is the data file to read: CSV or TSV, optionally gzip compressed (.gz).
	Input string

	// Delim is the delimiter of the input file: comma, tab, space or detect.
	Delim string `default:"detect"`

	// Variables are the names of the numeric columns to analyze.
	// If empty, all numeric columns are used.
	Variables []string

	// Describe runs the descriptive stats on the variables.
	Describe bool `default:"true"`

	// Compare runs the two-group t-tests on the variables.
	Compare bool `default:"true"`

	// Groups specifies the group label column and the two group labels to compare.
	// It defaults to [stats.DefaultGroups].
	Groups stats.Groups

	// CSV writes the results as CSV instead of aligned text.
	CSV bool

	// Color highlights the text output when writing to a terminal.
	Color bool `default:"true"`

	// Alpha is the significance level for highlighting p-values in the text output.
	Alpha float64 `default:"0.05"`
}

// New returns a new [Config] with all fields set from their defaults.
func New() *Config {
	cfg := &Config{Groups: stats.DefaultGroups()}
	errors.Log(SetFromDefaults(cfg))
	return cfg
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values, recursing into struct fields.
func SetFromDefaults(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config.SetFromDefaults: expected pointer to struct, got %T", cfg)
	}
	return setFromDefaults(v.Elem())
}

func setFromDefaults(v reflect.Value) error {
	typ := v.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if f.Type.Kind() == reflect.Struct {
			errs = append(errs, setFromDefaults(fv))
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := setString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("config: field %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// setString sets the value from its string representation.
// Slices of strings are comma separated.
func setString(fv reflect.Value, s string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		fv.SetFloat(x)
	case reflect.Slice:
		if fv.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", fv.Type())
		}
		fv.Set(reflect.ValueOf(SplitList(s)))
	default:
		return fmt.Errorf("unsupported type %s", fv.Type())
	}
	return nil
}

// SplitList splits a comma separated list, trimming space
// and dropping empty elements.
func SplitList(s string) []string {
	var out []string
	for _, e := range strings.Split(s, ",") {
		e = strings.TrimSpace(e)
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

// Open reads the given TOML config file into cfg, overwriting any
// values that are set in the file. Unknown keys are an error.
func Open(cfg any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("config.Open: %s: %w", filename, err)
	}
	return nil
}
