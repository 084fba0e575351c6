// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ttffplot draws overview charts of the experiment data.
//
// Usage:
//
//	ttffplot [-config file] [-category names]
//
// For each participant attribute, ttffplot saves "<category>_hist"
// with a histogram per goggle condition and, for numeric attributes,
// "<category>_box" with a box plot per condition. Attributes with
// non-numeric values, such as sex, get bar charts of value counts
// instead of histograms.
//
// The TTFF measurements get "TTFF_hist" and "TTFF_qqplot", a normal
// Q-Q plot per condition.
//
// Every chart is saved as PNG and EPS in the plot directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/goggles-ttff/ttffstat/chart"
	"github.com/goggles-ttff/ttffstat/cohort"
	"github.com/goggles-ttff/ttffstat/internal/config"
	"github.com/goggles-ttff/ttffstat/internal/logx"
	"go.uber.org/zap"
)

func main() {
	log.SetPrefix("ttffplot: ")
	log.SetFlags(0)
	if err := ttffplot(os.Stderr, os.Args[1:]); err != nil {
		if err != flag.ErrHelp {
			log.Fatal(err)
		}
		os.Exit(2)
	}
}

func ttffplot(wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("ttffplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: ttffplot [options]\n")
		fmt.Fprintf(wErr, "options:\n")
		flags.PrintDefaults()
	}
	flagConfig := flags.String("config", "ttff.yaml", "read settings from `file`")
	flagCategory := flags.String("category", "", "plot only the comma-separated `names`")
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
	logger := logx.New(wErr, logx.ParseLevel(cfg.Log.Level))
	defer logger.Sync()

	p := &plotter{
		src:    &cohort.Source{Config: cfg.Cohort, Prefixes: cfg.Analysis.Prefixes},
		cfg:    &cfg.Plots,
		logger: logger,
	}
	for _, cat := range cfg.Cohort.Categories {
		if !selected(*flagCategory, cat.Name) {
			continue
		}
		if err := p.category(cat); err != nil {
			return err
		}
	}
	if selected(*flagCategory, cfg.Cohort.TTFFSheet) {
		return p.ttff()
	}
	return nil
}

// selected reports whether name is in the comma-separated list names,
// or names is empty.
func selected(names, name string) bool {
	if names == "" {
		return true
	}
	for _, n := range strings.Split(names, ",") {
		if strings.TrimSpace(n) == name {
			return true
		}
	}
	return false
}

type plotter struct {
	src    *cohort.Source
	cfg    *config.Plots
	logger *zap.Logger
}

// panels reads column col of sheet name for every condition. It
// reports whether every value is a number.
func (p *plotter) panels(name, col string) ([]chart.Panel, bool, error) {
	numeric := true
	var panels []chart.Panel
	for i, prefix := range p.src.Prefixes {
		vals, err := p.src.Column(prefix, name, col)
		if err != nil {
			return nil, false, err
		}
		c, err := chart.ParseColor(p.cfg.Colors[i])
		if err != nil {
			return nil, false, err
		}
		panel := chart.Panel{XLabel: p.cfg.Conditions[i], Color: c}
		for _, v := range vals {
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				numeric = false
				break
			}
			panel.Values = append(panel.Values, x)
		}
		panel.Labels = vals
		panels = append(panels, panel)
	}
	if numeric {
		for i := range panels {
			panels[i].Labels = nil
		}
	}
	return panels, numeric, nil
}

func (p *plotter) save(fig *chart.Figure, name string) error {
	paths, err := fig.Save(p.cfg.Dir, name)
	if err != nil {
		return err
	}
	p.logger.Info("saved chart", zap.Strings("files", paths))
	return nil
}

func (p *plotter) category(cat config.Category) error {
	panels, numeric, err := p.panels(cat.Name, cat.Column)
	if err != nil {
		return err
	}
	hist, err := chart.Histograms(cat.Overview, panels)
	if err != nil {
		return err
	}
	hist.YLabel = "Liczba wystąpień"
	if err := p.save(hist, cat.Name+"_hist"); err != nil {
		return err
	}
	if !numeric {
		p.logger.Info("no box plot of non-numeric values", zap.String("category", cat.Name))
		return nil
	}
	box, err := chart.BoxPlots("", panels)
	if err != nil {
		return err
	}
	return p.save(box, cat.Name+"_box")
}

func (p *plotter) ttff() error {
	name := p.src.Config.TTFFSheet
	panels, numeric, err := p.panels(name, p.src.Config.TTFFColumn)
	if err != nil {
		return err
	}
	if !numeric {
		return fmt.Errorf("%s: non-numeric %s values", name, p.src.Config.TTFFColumn)
	}
	hist, err := chart.Histograms(p.cfg.TTFFTitle, panels)
	if err != nil {
		return err
	}
	hist.YLabel = "Liczba wystąpień"
	if err := p.save(hist, name+"_hist"); err != nil {
		return err
	}
	qq, err := chart.QQPlots(p.cfg.TTFFTitle, panels)
	if err != nil {
		return err
	}
	return p.save(qq, name+"_qqplot")
}
