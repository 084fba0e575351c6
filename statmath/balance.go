// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Balance performs Pearson's chi-square goodness-of-fit test of the
// null hypothesis that group sizes are equal. The expected count of
// every group is the mean of counts.
//
// Unlike the other tests, the Verdict is accepted (no evidence of
// imbalance) iff p >= alpha.
func Balance(counts []int, t *Thresholds) (Verdict, error) {
	k := len(counts)
	if k < 2 {
		return Verdict{}, fmt.Errorf("%w: balance test needs at least 2 groups, got %d", ErrInsufficientData, k)
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return Verdict{}, fmt.Errorf("%w: all groups are empty", ErrNumerical)
	}

	expected := float64(total) / float64(k)
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	p := distuv.ChiSquared{K: float64(k - 1)}.Survival(chi2)
	return Verdict{Statistic: chi2, P: p, Accepted: p >= t.alpha()}, nil
}
