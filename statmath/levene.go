// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Levene performs Levene's test of the null hypothesis that all
// groups have equal variances. Deviations are taken from each group's
// median (the Brown-Forsythe variant), which keeps the test robust
// for non-normal data.
//
// The returned Verdict is accepted (variances equal) iff p > alpha.
func Levene(groups []*Sample, t *Thresholds) (Verdict, error) {
	k := len(groups)
	if k < 2 {
		return Verdict{}, fmt.Errorf("%w: Levene's test needs at least 2 groups, got %d", ErrInsufficientData, k)
	}

	// Absolute deviations from the group median.
	devs := make([][]float64, k)
	n := 0
	for i, g := range groups {
		if g.Len() == 0 {
			return Verdict{}, fmt.Errorf("%w: Levene's test got an empty group", ErrInsufficientData)
		}
		med := quantile(g.Values, 0.5)
		devs[i] = make([]float64, g.Len())
		for j, v := range g.Values {
			devs[i][j] = math.Abs(v - med)
		}
		n += g.Len()
	}
	if n <= k {
		return Verdict{}, fmt.Errorf("%w: Levene's test needs more values than groups", ErrInsufficientData)
	}

	var all []float64
	for _, d := range devs {
		all = append(all, d...)
	}
	grand := stat.Mean(all, nil)

	var between, within float64
	for _, d := range devs {
		m := stat.Mean(d, nil)
		between += float64(len(d)) * (m - grand) * (m - grand)
		for _, z := range d {
			within += (z - m) * (z - m)
		}
	}
	if within == 0 {
		return Verdict{}, fmt.Errorf("%w: no spread within groups", ErrNumerical)
	}

	df1, df2 := float64(k-1), float64(n-k)
	w := (df2 / df1) * between / within
	p := distuv.F{D1: df1, D2: df2}.Survival(w)
	return Verdict{Statistic: w, P: p, Accepted: p > t.alpha()}, nil
}
