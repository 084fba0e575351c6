// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"errors"

	"github.com/goggles-ttff/ttffstat/report"
	"github.com/goggles-ttff/ttffstat/statmath"
)

// yesNo formats a verdict the way the reports do.
func yesNo(b bool) string {
	if b {
		return "TAK"
	}
	return "NIE"
}

// WriteSummary appends the descriptive statistics of s to r.
func WriteSummary(r *report.Report, s statmath.Summary) {
	r.Addf("  Średnia: %.4f", s.Mean)
	r.Addf("  Odchylenie standardowe: %.4f", s.StdDev)
	r.Addf("  Mediana: %.4f", s.Median)
	r.Addf("  Min: %.4f", s.Min)
	r.Addf("  Max: %.4f", s.Max)
	r.Addf("  Kwartyl 1 (25%%): %.4f", s.Q1)
	r.Addf("  Kwartyl 3 (75%%): %.4f", s.Q3)
}

// WriteNormality appends the outcome of a normality check to r. A
// tested sample's section ends with a rule.
func WriteNormality(r *report.Report, res statmath.NormalityResult) {
	if res.Raw == nil {
		if res.N < statmath.MinNormalitySize {
			r.Add("  Za mało danych do testu Shapiro-Wilka (min. 3 wartości).")
		} else {
			r.Addf("  Błąd w teście Shapiro-Wilka: %v", res.Err)
		}
		return
	}
	r.Addf("  Test Shapiro-Wilka: statystyka=%.4f, p=%.4f", res.Raw.Statistic, res.Raw.P)
	r.Addf("  TTFF normalny? %s", yesNo(res.Raw.Accepted))
	for _, a := range res.Attempts {
		name := a.Transform.Name
		switch {
		case errors.Is(a.Err, statmath.ErrDomain):
			r.Addf("  Pominięto transformację (%s): zawiera wartości <= 0.", name)
		case a.Err != nil:
			r.Addf("  Błąd przy transformacji %s: %v", name, a.Err)
		default:
			r.Addf("  Próba transformacji: %s", name)
			r.Addf("    statystyka=%.4f, p=%.4f", a.Verdict.Statistic, a.Verdict.P)
			r.Addf("    Czy normalne? %s", yesNo(a.Verdict.Accepted))
		}
	}
	r.Rule()
}

// WriteLevene appends the variance homogeneity verdict to r.
func WriteLevene(r *report.Report, v statmath.Verdict, err error) {
	if err != nil {
		r.Addf("  Błąd w teście Levene'a: %v", err)
		return
	}
	r.Addf("  Test Levene'a: statystyka=%.4f, p=%.4f", v.Statistic, v.P)
	r.Addf("  Wariancje równe? %s", yesNo(v.Accepted))
}

// WriteBalance appends the group balance verdict to r. expected is
// the number of groups the experiment was designed with.
func WriteBalance(r *report.Report, groups []Group, expected int, v statmath.Verdict, err error) {
	if len(groups) != expected {
		r.Addf("  Uwaga: oczekiwano %d grup, znaleziono %d.", expected, len(groups))
	}
	r.Add("  Test równoliczności grup (chi-kwadrat):")
	for _, g := range groups {
		r.Addf("    Liczebność grupy %s: %d", g.Name, g.Sample.Len())
	}
	if err != nil {
		r.Addf("  Błąd w teście równoliczności: %v", err)
		return
	}
	r.Addf("    statystyka=%.4f, p=%.4f", v.Statistic, v.P)
	if v.Accepted {
		r.Add("    Brak dowodów na nierówną liczebność grup.")
	} else {
		r.Add("    Liczebności grup różnią się istotnie.")
	}
}

// comparisonNames are the report names of the comparison tests, and
// the symbols of their statistics.
var comparisonNames = map[string]struct{ name, stat string }{
	statmath.AssumeNormal.Label():  {"ANOVA", "F"},
	statmath.AssumeNothing.Label(): {"Kruskala-Wallisa", "H"},
}

// WriteComparison appends the group comparison made under assumption
// a to r.
func WriteComparison(r *report.Report, a statmath.Assumption, c statmath.GroupComparison, err error) {
	n := comparisonNames[a.Label()]
	if err != nil {
		r.Addf("  Błąd w teście %s: %v", n.name, err)
		return
	}
	r.Addf("  Test %s: %s=%.4f, p=%.4f", n.name, n.stat, c.Statistic, c.P)
	r.Addf("  Różnice między grupami istotne? %s", yesNo(!c.Accepted))
}
