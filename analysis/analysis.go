// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analysis runs the TTFF statistics over folders of CSV files
// and writes one report per folder.
//
// A data directory holds pairs of folders. A "<name>_base" folder has
// one file per experimental condition ("T_", "R_" and "Y_" files) with
// the measured values in the first column. The matching "<name>_TTFF"
// folder has one file per participant group, as exported by package
// cohort, with the TTFF value in column 2 and the group label in
// column 3.
//
// Each file is summarized and tested for normality. The files of a
// folder are then compared as groups: their variances are tested for
// homogeneity, their sizes for balance, and their distributions are
// compared with ANOVA if every group is normal and the variances are
// equal, or with the Kruskal-Wallis test otherwise.
package analysis

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goggles-ttff/ttffstat/csvdata"
	"github.com/goggles-ttff/ttffstat/internal/config"
	"github.com/goggles-ttff/ttffstat/internal/logx"
	"github.com/goggles-ttff/ttffstat/report"
	"github.com/goggles-ttff/ttffstat/statmath"
	"go.uber.org/zap"
)

// A Group is one analyzed file of a folder.
type Group struct {
	// Name identifies the group in reports.
	Name string

	Sample *statmath.Sample

	// Normality is the outcome of the group's normality check.
	Normality statmath.NormalityResult
}

// An Analyzer analyzes data folders.
type Analyzer struct {
	Config config.Analysis

	// Normality checks each group. If its Test is nil,
	// statmath.DefaultNormality is used.
	Normality statmath.NormalityTester

	// Logger receives progress messages. It may be nil.
	Logger *zap.Logger
}

// New returns an Analyzer for cfg.
func New(cfg config.Analysis, logger *zap.Logger) *Analyzer {
	return &Analyzer{Config: cfg, Normality: statmath.DefaultNormality, Logger: logger}
}

func (a *Analyzer) log() *zap.Logger {
	return logx.OrNop(a.Logger)
}

func (a *Analyzer) thresholds() *statmath.Thresholds {
	return &statmath.Thresholds{Alpha: a.Config.Alpha}
}

func (a *Analyzer) normality() statmath.NormalityTester {
	if a.Normality.Test == nil {
		return statmath.DefaultNormality
	}
	return a.Normality
}

// Run analyzes every base folder of dataDir in name order, each
// followed by its TTFF folder if there is one. A failure to write one
// folder's report doesn't stop the others. Run returns the joined
// errors.
func (a *Analyzer) Run(dataDir string) error {
	ents, err := os.ReadDir(dataDir)
	if err != nil {
		return err
	}
	var errs []error
	for _, ent := range ents {
		name := ent.Name()
		if !ent.IsDir() || !strings.HasSuffix(name, a.Config.BaseSuffix) {
			continue
		}
		base := filepath.Join(dataDir, name)
		a.log().Info("analyzing folder", zap.String("folder", base))
		if _, err := a.AnalyzeBase(base); err != nil {
			errs = append(errs, err)
		}

		ttff := filepath.Join(dataDir, strings.TrimSuffix(name, a.Config.BaseSuffix)+a.Config.TTFFSuffix)
		if fi, err := os.Stat(ttff); err != nil || !fi.IsDir() {
			a.log().Warn("no matching TTFF folder", zap.String("folder", base), zap.String("want", ttff))
			continue
		}
		a.log().Info("analyzing folder", zap.String("folder", ttff))
		if _, err := a.AnalyzeTTFF(ttff); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AnalyzeBase analyzes the base folder dir and writes its report. It
// returns the report even if writing it failed.
func (a *Analyzer) AnalyzeBase(dir string) (*report.Report, error) {
	files, err := csvdata.Folder(dir, csvdata.HasPrefix(a.Config.Prefixes...))
	if err != nil {
		return nil, err
	}
	r := report.New()
	var groups []Group
	for files.Scan() {
		f := files.File()
		if !a.loaded(r, f) {
			continue
		}
		s := csvdata.Column(f.Records, a.Config.BaseColumn, a.thresholds())
		if s.Len() == 0 {
			r.Addf("Plik %s: brak poprawnych danych liczbowych do analizy.", f.Name)
			continue
		}
		r.Addf("Plik: %s w folderze %s", f.Name, dir)
		groups = append(groups, a.analyzeFile(r, f, s))
	}
	return r, a.finish(r, dir, groups)
}

// AnalyzeTTFF analyzes the TTFF folder dir and writes its report. It
// returns the report even if writing it failed.
func (a *Analyzer) AnalyzeTTFF(dir string) (*report.Report, error) {
	files, err := csvdata.Folder(dir, nil)
	if err != nil {
		return nil, err
	}
	r := report.New()
	var groups []Group
	for files.Scan() {
		f := files.File()
		if !a.loaded(r, f) {
			continue
		}
		if f.Width() < a.Config.MinColumns {
			r.Addf("Plik %s: zbyt mało kolumn (wymagane min. %d).", f.Name, a.Config.MinColumns)
			continue
		}
		r.Addf("Plik: %s w folderze %s", f.Name, dir)
		s := csvdata.Labeled(f.Records, a.Config.TTFFColumn, a.Config.GroupColumn, a.thresholds())
		if s.Len() == 0 {
			r.Addf("Plik %s: brak poprawnych danych TTFF lub zmiennej grupującej.", f.Name)
			continue
		}
		groups = append(groups, a.analyzeFile(r, f, s))
	}
	return r, a.finish(r, dir, groups)
}

// loaded reports whether f holds data, recording why not in r.
func (a *Analyzer) loaded(r *report.Report, f *csvdata.File) bool {
	switch {
	case f.Err != nil:
		a.log().Warn("cannot read file", zap.String("file", f.Path), zap.Error(f.Err))
		r.Addf("Nie można wczytać pliku %s: %v", f.Name, f.Err)
		return false
	case f.Empty():
		r.Addf("Plik %s jest pusty lub nie zawiera danych.", f.Name)
		return false
	}
	return true
}

// analyzeFile summarizes one file's sample and checks its normality.
func (a *Analyzer) analyzeFile(r *report.Report, f *csvdata.File, s *statmath.Sample) Group {
	a.log().Debug("analyzing file", zap.String("file", f.Path), zap.Int("n", s.Len()), zap.Int("dropped", s.Dropped))
	if s.Dropped > 0 {
		r.Addf("  Pominięto wierszy bez poprawnych danych: %d", s.Dropped)
	}
	WriteSummary(r, statmath.Describe(s))
	g := Group{
		Name:      strings.TrimSuffix(f.Name, filepath.Ext(f.Name)),
		Sample:    s,
		Normality: a.normality().Check(s),
	}
	WriteNormality(r, g.Normality)
	return g
}

// finish compares the groups of folder dir and flushes r.
func (a *Analyzer) finish(r *report.Report, dir string, groups []Group) error {
	if len(groups) == 0 {
		r.Addf("Brak poprawnych danych w folderze %s.", filepath.Base(dir))
	} else {
		a.AnalyzeGroups(r, groups)
		r.Rule()
	}
	path := filepath.Join(dir, a.Config.ResultsFile)
	if err := r.Flush(path); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	a.log().Info("wrote report", zap.String("path", path), zap.Int("lines", r.Len()))
	return nil
}

// AnalyzeGroups compares groups and appends the findings to r.
//
// Variance homogeneity decides, together with the normality of the
// groups, which comparison test runs. If the Levene test fails, the
// variances are treated as unequal. The balance test is informational
// only.
func (a *Analyzer) AnalyzeGroups(r *report.Report, groups []Group) {
	if !enoughGroups(groups) {
		r.Add("  Brak wystarczających grup lub danych do testów porównawczych.")
		return
	}
	t := a.thresholds()
	samples := make([]*statmath.Sample, len(groups))
	counts := make([]int, len(groups))
	for i, g := range groups {
		samples[i] = g.Sample
		counts[i] = g.Sample.Len()
	}

	lev, err := statmath.Levene(samples, t)
	WriteLevene(r, lev, err)
	equalVar := err == nil && lev.Accepted

	bal, err := statmath.Balance(counts, t)
	WriteBalance(r, groups, a.Config.ExpectedGroups, bal, err)

	assume := statmath.ChooseAssumption(AllNormal(groups), equalVar)
	c, err := assume.Compare(samples)
	WriteComparison(r, assume, c, err)
	if err != nil {
		a.log().Warn("group comparison failed", zap.String("test", assume.Label()), zap.Error(err))
	}
}

// enoughGroups reports whether groups can be compared: there must be at
// least two groups, and at least one with two or more values.
func enoughGroups(groups []Group) bool {
	if len(groups) < 2 {
		return false
	}
	for _, g := range groups {
		if g.Sample.Len() >= 2 {
			return true
		}
	}
	return false
}

// AllNormal reports whether every group's raw values were found
// normal. A group that couldn't be tested counts as not normal. The
// verdict pools all groups rather than taking the last group tested,
// so the parametric path is chosen only when no group rejects
// normality.
func AllNormal(groups []Group) bool {
	for _, g := range groups {
		if normal, _ := g.Normality.Normal(); !normal {
			return false
		}
	}
	return len(groups) > 0
}
