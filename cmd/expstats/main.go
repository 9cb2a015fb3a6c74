// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command expstats prints descriptive statistics and two-group
// Welch t-tests for the variables of an experiment data table.
//
//	expstats [flags] data.csv
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/expstats/base/logx"
	"cogentcore.org/expstats/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// run parses the command line args into a config,
// and runs the app writing results to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("expstats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	def := config.New()
	var (
		cfgFile  = fs.String("config", "", "TOML config file; flags override its values")
		vars     = fs.String("vars", "", "comma separated variable columns (default all numeric columns)")
		delim    = fs.String("delim", def.Delim, "input delimiter: comma, tab, space or detect")
		describe = fs.Bool("describe", def.Describe, "compute descriptive stats")
		compare  = fs.Bool("compare", def.Compare, "compare the two groups with Welch t-tests")
		groupCol = fs.String("group-col", def.Groups.Column, "column holding the group labels")
		group1   = fs.String("group1", def.Groups.Group1, "label of the first group")
		group2   = fs.String("group2", def.Groups.Group2, "label of the second group")
		csvOut   = fs.Bool("csv", def.CSV, "write results as CSV")
		color    = fs.Bool("color", def.Color, "highlight output on a terminal")
		alpha    = fs.Float64("alpha", def.Alpha, "significance level to highlight p-values")
		vv       = fs.Bool("vv", false, "debug logging")
		v        = fs.Bool("v", false, "verbose logging")
		q        = fs.Bool("q", false, "only log errors")
	)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: expstats [flags] file")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	logx.SetDefaultLogger(stderr)

	cfg := def
	if *cfgFile != "" {
		if err := config.Open(cfg, *cfgFile); err != nil {
			return err
		}
		slog.Debug("opened config", "file", *cfgFile)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "vars":
			cfg.Variables = config.SplitList(*vars)
		case "delim":
			cfg.Delim = *delim
		case "describe":
			cfg.Describe = *describe
		case "compare":
			cfg.Compare = *compare
		case "group-col":
			cfg.Groups.Column = *groupCol
		case "group1":
			cfg.Groups.Group1 = *group1
		case "group2":
			cfg.Groups.Group2 = *group2
		case "csv":
			cfg.CSV = *csvOut
		case "color":
			cfg.Color = *color
		case "alpha":
			cfg.Alpha = *alpha
		}
	})
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if cfg.Input == "" {
		fs.Usage()
		return fmt.Errorf("expstats: no input file")
	}
	app := &App{Config: *cfg}
	return app.Run(stdout)
}
