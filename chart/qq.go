// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"slices"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Confidence is the level of the band drawn around a Q-Q fit line.
const Confidence = 0.95

// Quantiles returns the standard normal quantiles at the plotting
// positions (i-0.5)/n and the sorted values of xs.
func Quantiles(xs []float64) (theoretical, sample []float64) {
	sample = slices.Clone(xs)
	slices.Sort(sample)
	n := float64(len(sample))
	theoretical = make([]float64, len(sample))
	for i := range theoretical {
		theoretical[i] = stats.StdNormal.InvCDF((float64(i+1) - 0.5) / n)
	}
	return theoretical, sample
}

// Fit returns the intercept and slope of the least squares line
// through (xs[i], ys[i]).
func Fit(xs, ys []float64) (intercept, slope float64) {
	return stat.LinearRegression(xs, ys, nil, false)
}

// Band returns, at each x in xs, the bounds of the confidence interval
// at level for the mean response of the line a+b*x fitted to
// (xs[i], ys[i]). It returns nil if there are fewer than three points.
func Band(xs, ys []float64, a, b, level float64) (lo, hi []float64) {
	n := len(xs)
	if n < 3 {
		return nil, nil
	}
	mean := stat.Mean(xs, nil)
	var sxx, sse float64
	for i, x := range xs {
		sxx += (x - mean) * (x - mean)
		r := ys[i] - (a + b*x)
		sse += r * r
	}
	s := math.Sqrt(sse / float64(n-2))
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}.Quantile(1 - (1-level)/2)
	lo = make([]float64, n)
	hi = make([]float64, n)
	for i, x := range xs {
		d := t * s * math.Sqrt(1/float64(n)+(x-mean)*(x-mean)/sxx)
		lo[i], hi[i] = a+b*x-d, a+b*x+d
	}
	return lo, hi
}
