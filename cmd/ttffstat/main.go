// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ttffstat computes statistics of time-to-first-fixation measurements.
//
// Usage:
//
//	ttffstat [-config file] [-data dir] [-alpha α] [-log level] [-print] [folder ...]
//
// With no folder arguments, ttffstat analyzes every "<name>_base"
// folder of the data directory, followed by the matching "<name>_TTFF"
// folder if there is one, and writes a results.txt report into each.
//
// Each file of a folder is summarized (mean, standard deviation,
// median, extremes and quartiles) and tested for normality with the
// Shapiro-Wilk test. If a file is not normal, ttffstat reports whether
// a square root, fourth root or logarithm makes it normal. The files
// are then compared as groups. Levene's test checks the groups for
// equal variances and a chi-square test checks them for equal sizes.
// If every group is normal and the variances are equal, the groups are
// compared with one-way ANOVA, and otherwise with the Kruskal-Wallis
// test.
//
// Folder arguments name individual folders to analyze. Their kind is
// taken from their name suffix. The -print flag also writes their
// reports to standard output.
//
// Settings are read from the YAML file named by -config, if it exists.
// The -data and -alpha flags override the file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/goggles-ttff/ttffstat/analysis"
	"github.com/goggles-ttff/ttffstat/internal/config"
	"github.com/goggles-ttff/ttffstat/internal/logx"
	"github.com/goggles-ttff/ttffstat/report"
)

func main() {
	log.SetPrefix("ttffstat: ")
	log.SetFlags(0)
	if err := ttffstat(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err != flag.ErrHelp {
			log.Fatal(err)
		}
		os.Exit(2)
	}
}

func ttffstat(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("ttffstat", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: ttffstat [options] [folder ...]\n")
		fmt.Fprintf(wErr, "options:\n")
		flags.PrintDefaults()
	}
	flagConfig := flags.String("config", "ttff.yaml", "read settings from `file`")
	flagData := flags.String("data", "", "analyze the folders of `dir`")
	flagAlpha := flags.Float64("alpha", 0, "significance level `α` of every test")
	flagLog := flags.String("log", "", "log at `level`: debug, info, warn or error")
	flagPrint := flags.Bool("print", false, "print the reports of folder arguments")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		return err
	}
	if *flagData != "" {
		cfg.Analysis.DataDir = *flagData
	}
	if *flagAlpha != 0 {
		cfg.Analysis.Alpha = *flagAlpha
	}
	if *flagLog != "" {
		cfg.Log.Level = *flagLog
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logx.New(wErr, logx.ParseLevel(cfg.Log.Level))
	defer logger.Sync()
	a := analysis.New(cfg.Analysis, logger)

	if flags.NArg() == 0 {
		return a.Run(cfg.Analysis.DataDir)
	}
	for _, dir := range flags.Args() {
		dir = filepath.Clean(dir)
		var r *report.Report
		switch {
		case strings.HasSuffix(dir, cfg.Analysis.BaseSuffix):
			r, err = a.AnalyzeBase(dir)
		case strings.HasSuffix(dir, cfg.Analysis.TTFFSuffix):
			r, err = a.AnalyzeTTFF(dir)
		default:
			return fmt.Errorf("%s: folder name must end in %s or %s", dir, cfg.Analysis.BaseSuffix, cfg.Analysis.TTFFSuffix)
		}
		if err != nil {
			return err
		}
		if *flagPrint {
			if _, err := r.WriteTo(w); err != nil {
				return err
			}
		}
	}
	return nil
}
