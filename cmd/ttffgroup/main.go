// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ttffgroup splits the participants into groups by attribute and
// exports each group's TTFF measurements for analysis.
//
// Usage:
//
//	ttffgroup [-config file] [-category names] [-noplot]
//
// For each participant attribute (sex, experience, safety test result,
// goggle wearing time and age), ttffgroup joins the per-sheet exports
// of the TTFF measurements with the attribute on the participant
// number. Each distinct attribute value forms a group. If there are
// more values than the configured maximum, consecutive values are
// merged into ranges.
//
// Each group is written to "<category>_TTFF/<group>.csv" in the data
// directory, where ttffstat analyzes it, and a histogram of the TTFF of
// every group is saved to the correlation plot directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/goggles-ttff/ttffstat/chart"
	"github.com/goggles-ttff/ttffstat/cohort"
	"github.com/goggles-ttff/ttffstat/internal/config"
	"github.com/goggles-ttff/ttffstat/internal/logx"
	"go.uber.org/zap"
)

func main() {
	log.SetPrefix("ttffgroup: ")
	log.SetFlags(0)
	if err := ttffgroup(os.Stderr, os.Args[1:]); err != nil {
		if err != flag.ErrHelp {
			log.Fatal(err)
		}
		os.Exit(2)
	}
}

func ttffgroup(wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("ttffgroup", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: ttffgroup [options]\n")
		fmt.Fprintf(wErr, "options:\n")
		flags.PrintDefaults()
	}
	flagConfig := flags.String("config", "ttff.yaml", "read settings from `file`")
	flagCategory := flags.String("category", "", "group only by the comma-separated `names`")
	flagNoPlot := flags.Bool("noplot", false, "don't draw histograms")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 0 {
		flags.Usage()
		return flag.ErrHelp
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		return err
	}
	cats, err := categories(&cfg.Cohort, *flagCategory)
	if err != nil {
		return err
	}
	logger := logx.New(wErr, logx.ParseLevel(cfg.Log.Level))
	defer logger.Sync()

	src := &cohort.Source{Config: cfg.Cohort, Prefixes: cfg.Analysis.Prefixes}
	for _, cat := range cats {
		j, err := src.Load(cat)
		if err != nil {
			return err
		}
		groups := j.Groups(cfg.Cohort.MaxGroups)
		for _, g := range groups {
			logger.Info("group", zap.String("category", cat.Name), zap.Stringer("group", g))
		}
		dir := filepath.Join(cfg.Analysis.DataDir, cat.Name+cfg.Analysis.TTFFSuffix)
		if _, err := cohort.Export(dir, groups); err != nil {
			return err
		}
		if *flagNoPlot {
			continue
		}
		if err := plot(&cfg.Plots, cat, groups); err != nil {
			logger.Warn("no histogram", zap.String("category", cat.Name), zap.Error(err))
		}
	}
	return nil
}

// categories returns the categories named in the comma-separated list
// names, or all categories if names is empty.
func categories(c *config.Cohort, names string) ([]config.Category, error) {
	if names == "" {
		return c.Categories, nil
	}
	var cats []config.Category
	for _, name := range strings.Split(names, ",") {
		cat, ok := c.Category(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown category %q", name)
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

// plot draws the TTFF histogram of each group side by side.
func plot(cfg *config.Plots, cat config.Category, groups []cohort.Group) error {
	panels := make([]chart.Panel, len(groups))
	for i, g := range groups {
		c, err := chart.ParseColor(cfg.GroupColors[i%len(cfg.GroupColors)])
		if err != nil {
			return err
		}
		panels[i] = chart.Panel{Title: g.Title, Values: g.Rows.TTFF(), Color: c}
	}
	fig, err := chart.Histograms(cat.Title, panels)
	if err != nil {
		return err
	}
	fig.XLabel = "Czas do pierwszej fiksacji [s]"
	fig.YLabel = "Liczba wystąpień"
	_, err = fig.Save(cfg.CorrelationDir, cat.Name+"_hist")
	return err
}
