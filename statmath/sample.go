// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package statmath implements the statistical decision pipeline used to
// analyze TTFF measurements: descriptive summaries, normality testing
// with transformation retries, variance homogeneity, group balance,
// and the choice between parametric and rank-based group comparison.
//
// Like the tests it wraps, this package is opinionated. Callers don't
// pick a comparison test directly. Instead they state what they know
// about the data (normality, equal variances) and ChooseAssumption
// picks the appropriate test.
//
// Tests never panic on bad input. They return an error wrapping one of
// ErrInsufficientData, ErrDomain or ErrNumerical, and callers decide
// whether to record it and continue.
package statmath

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// A Sample is the set of observations of one group, for example the
// TTFF values measured with one goggle color.
type Sample struct {
	// Values are the observed values, in ascending order. All
	// values are finite.
	Values []float64

	// Thresholds stores the significance thresholds used by tests
	// on this sample.
	Thresholds *Thresholds

	// Dropped is the number of input entries that were excluded
	// because they were missing, non-numeric or not finite.
	Dropped int
}

// NewSample constructs a Sample from a set of observations. Non-finite
// values are excluded and counted in Dropped. values is not modified.
func NewSample(values []float64, t *Thresholds) *Sample {
	s := &Sample{Values: make([]float64, 0, len(values)), Thresholds: t}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s.Dropped++
			continue
		}
		s.Values = append(s.Values, v)
	}
	// Sort values for fast order statistics.
	sort.Float64s(s.Values)
	return s
}

// ParseSample constructs a Sample from textual fields, such as one
// column of a CSV file. Fields that are empty or don't parse as a
// finite number are excluded and counted in Dropped.
func ParseSample(fields []string, t *Thresholds) *Sample {
	values := make([]float64, 0, len(fields))
	dropped := 0
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			dropped++
			continue
		}
		values = append(values, v)
	}
	s := NewSample(values, t)
	s.Dropped += dropped
	return s
}

// Len returns the number of values in s.
func (s *Sample) Len() int {
	return len(s.Values)
}

// Map returns a new Sample holding f applied to every value of s.
// Results that are not finite are excluded from the new sample and
// counted in its Dropped field. s is not modified.
func (s *Sample) Map(f func(float64) float64) *Sample {
	out := make([]float64, len(s.Values))
	for i, v := range s.Values {
		out[i] = f(v)
	}
	return NewSample(out, s.Thresholds)
}

// A Thresholds configures the significance thresholds used by
// statistical tests.
//
// This should be initialized to DefaultThresholds because it may be
// extended with other fields in the future.
type Thresholds struct {
	// Alpha is the significance level of every hypothesis test.
	// A test rejects its null hypothesis when p <= Alpha
	// (p < Alpha for the group balance test).
	//
	// This is typically 0.05.
	Alpha float64
}

// DefaultThresholds contains a reasonable set of defaults for Thresholds.
var DefaultThresholds = Thresholds{
	Alpha: 0.05,
}

func (t *Thresholds) alpha() float64 {
	if t == nil {
		return DefaultThresholds.Alpha
	}
	return t.Alpha
}

// A Verdict is the conclusion of one hypothesis test together with
// the statistic and p-value that produced it.
type Verdict struct {
	// Statistic is the test statistic, such as W for the
	// Shapiro-Wilk test or F for Levene's test.
	Statistic float64

	// P is the p-value of the test.
	P float64

	// Accepted reports whether the null hypothesis is retained:
	// the sample is normal, the variances are equal, the groups
	// are balanced, or the groups don't differ.
	Accepted bool
}
