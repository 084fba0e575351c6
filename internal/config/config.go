// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings shared by the ttff commands.
//
// Settings start from Default and may be overridden by a YAML file:
//
//	cfg, err := config.Load("ttff.yaml")
//
// A missing file is not an error. Fields absent from the file keep
// their defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the complete configuration.
type Config struct {
	Analysis Analysis `yaml:"analysis"`
	Cohort   Cohort   `yaml:"cohort"`
	Plots    Plots    `yaml:"plots"`
	Log      Log      `yaml:"log"`
}

// Analysis configures the statistical analysis of data folders.
type Analysis struct {
	// Alpha is the significance level of every test.
	Alpha float64 `yaml:"alpha"`

	// ExpectedGroups is the number of experimental conditions. The
	// balance test warns when a folder has a different number of
	// groups.
	ExpectedGroups int `yaml:"expected_groups"`

	// DataDir holds the *_base and *_TTFF folders.
	DataDir string `yaml:"data_dir"`

	// BaseSuffix and TTFFSuffix are the folder name suffixes of
	// the two kinds of folder.
	BaseSuffix string `yaml:"base_suffix"`
	TTFFSuffix string `yaml:"ttff_suffix"`

	// Prefixes select the files of a base folder, one per
	// condition.
	Prefixes []string `yaml:"prefixes"`

	// BaseColumn is the column analyzed in base folder files.
	BaseColumn int `yaml:"base_column"`

	// TTFFColumn and GroupColumn locate the TTFF value and the
	// grouping label in TTFF folder files, which must have at
	// least MinColumns columns.
	TTFFColumn  int `yaml:"ttff_column"`
	GroupColumn int `yaml:"group_column"`
	MinColumns  int `yaml:"min_columns"`

	// ResultsFile is the name of the report written to each
	// folder.
	ResultsFile string `yaml:"results_file"`
}

// Cohort configures the join of TTFF with participant attributes.
type Cohort struct {
	// ExportDir holds the per-sheet CSV exports.
	ExportDir string `yaml:"export_dir"`

	// HeaderRow is the number of lines above the header row in
	// each export.
	HeaderRow int `yaml:"header_row"`

	// IDColumn names the participant id column, and TTFFColumn
	// the TTFF measurement column of the TTFF exports.
	IDColumn   string `yaml:"id_column"`
	TTFFColumn string `yaml:"ttff_column"`

	// TTFFSheet is the sheet name suffix of the TTFF exports.
	TTFFSheet string `yaml:"ttff_sheet"`

	// MaxGroups is the largest number of groups a category is
	// split into. Categories with more labels are chunked.
	MaxGroups int `yaml:"max_groups"`

	Categories []Category `yaml:"categories"`
}

// A Category is one participant attribute.
type Category struct {
	// Name is the sheet name suffix, for example "AGE".
	Name string `yaml:"name"`

	// Column is the attribute's column name in the export.
	Column string `yaml:"column"`

	// Unit, if set, is appended to chunked group titles.
	Unit string `yaml:"unit,omitempty"`

	// Blacklist lists labels left out of the grouping.
	Blacklist []string `yaml:"blacklist,omitempty"`

	// Title is the title of the category's charts.
	Title string `yaml:"title"`

	// Overview is the title of the category's overview charts.
	Overview string `yaml:"overview"`
}

// Plots configures chart output.
type Plots struct {
	// Dir receives the overview charts and CorrelationDir the
	// per-category TTFF histograms.
	Dir            string `yaml:"dir"`
	CorrelationDir string `yaml:"correlation_dir"`

	// Conditions label the conditions, in Prefixes order.
	Conditions []string `yaml:"conditions"`

	// Colors are the condition colors, and GroupColors the
	// colors of category groups, as "#rrggbb".
	Colors      []string `yaml:"colors"`
	GroupColors []string `yaml:"group_colors"`

	// TTFFTitle titles the TTFF overview charts.
	TTFFTitle string `yaml:"ttff_title"`
}

// Log configures progress logging.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Analysis: Analysis{
			Alpha:          0.05,
			ExpectedGroups: 3,
			DataDir:        "data_to_analysis",
			BaseSuffix:     "_base",
			TTFFSuffix:     "_TTFF",
			Prefixes:       []string{"T_", "R_", "Y_"},
			BaseColumn:     0,
			TTFFColumn:     2,
			GroupColumn:    3,
			MinColumns:     4,
			ResultsFile:    "results.txt",
		},
		Cohort: Cohort{
			ExportDir:  "eksport_csv",
			HeaderRow:  1,
			IDColumn:   "participant nr",
			TTFFColumn: "R jacket",
			TTFFSheet:  "TTFF",
			MaxGroups:  3,
			Categories: []Category{
				{Name: "SEX", Column: "sex", Blacklist: []string{"O"},
					Title:    "Histogram TTFF z podziałem na płeć",
					Overview: "Płeć badanych"},
				{Name: "EXPERIENCE", Column: "Experience",
					Title:    "Histogram TTFF z podziałem na doświadczenie zawodowe",
					Overview: "Doświadczenie zawodowe badanych"},
				{Name: "H&STEST_RESULTS", Column: "TEST 0-10 points", Blacklist: []string{"7"},
					Title:    "Histogram TTFF z podziałem na wynik testu BHP 0-10",
					Overview: "Wyniki testu BHP wśród badanych"},
				{Name: "TIME", Column: "T task [s]", Unit: "s",
					Title:    "Histogram TTFF z podziałem na czas noszenia gogli",
					Overview: "Czas noszenia gogli przez badanych"},
				{Name: "AGE", Column: "AGE", Unit: "y",
					Title:    "Histogram TTFF z podziałem na wiek",
					Overview: "Wiek badanych"},
			},
		},
		Plots: Plots{
			Dir:            "plots",
			CorrelationDir: "corelation_plots",
			Conditions:     []string{"Gogle transparentne", "Gogle czerwone", "Gogle żółte"},
			Colors:         []string{"#4F6D7A", "#AE4A4A", "#DE9543"},
			GroupColors:    []string{"#310906", "#3e5168", "#90605e", "#8fb7b0", "#633533", "#597380", "#222e50"},
			TTFFTitle:      "Czas do pierwszej fiksacji",
		},
		Log: Log{Level: "info"},
	}
}

// Load returns the default configuration overridden by the YAML file
// at path. If path is "" or the file doesn't exist, Load returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that can't work.
func (c *Config) Validate() error {
	a := &c.Analysis
	switch {
	case a.Alpha <= 0 || a.Alpha >= 1:
		return fmt.Errorf("analysis.alpha must be in (0, 1), got %v", a.Alpha)
	case a.ExpectedGroups < 2:
		return fmt.Errorf("analysis.expected_groups must be at least 2, got %d", a.ExpectedGroups)
	case len(a.Prefixes) == 0:
		return errors.New("analysis.prefixes is empty")
	case a.BaseColumn < 0 || a.TTFFColumn < 0 || a.GroupColumn < 0:
		return errors.New("analysis column indexes must not be negative")
	case a.MinColumns <= max(a.TTFFColumn, a.GroupColumn):
		return fmt.Errorf("analysis.min_columns (%d) must exceed the TTFF and group columns", a.MinColumns)
	case a.ResultsFile == "":
		return errors.New("analysis.results_file is empty")
	case c.Cohort.MaxGroups < 1:
		return fmt.Errorf("cohort.max_groups must be at least 1, got %d", c.Cohort.MaxGroups)
	case len(c.Plots.Colors) < len(a.Prefixes):
		return fmt.Errorf("plots.colors has %d colors for %d conditions", len(c.Plots.Colors), len(a.Prefixes))
	case len(c.Plots.GroupColors) == 0:
		return errors.New("plots.group_colors is empty")
	case len(c.Plots.Conditions) < len(a.Prefixes):
		return fmt.Errorf("plots.conditions has %d labels for %d conditions", len(c.Plots.Conditions), len(a.Prefixes))
	}
	return nil
}

// Category returns the category named name.
func (c *Cohort) Category(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}
