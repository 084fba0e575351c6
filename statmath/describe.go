// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import (
	"math"

	"github.com/montanaflynn/stats"
)

// A Summary holds the descriptive statistics of a Sample.
type Summary struct {
	Mean   float64
	StdDev float64 // sample standard deviation (n-1 denominator)
	Median float64
	Min    float64
	Max    float64
	Q1     float64 // 25th percentile
	Q3     float64 // 75th percentile
}

// Describe computes the descriptive statistics of s.
//
// Describe doesn't guard against empty samples: every field of the
// Summary of an empty sample is NaN. A sample of one value has a NaN
// StdDev.
func Describe(s *Sample) Summary {
	xs := s.Values
	return Summary{
		Mean:   orNaN(stats.Mean(xs)),
		StdDev: orNaN(stats.StandardDeviationSample(xs)),
		Median: orNaN(stats.Median(xs)),
		Min:    orNaN(stats.Min(xs)),
		Max:    orNaN(stats.Max(xs)),
		Q1:     quantile(xs, 0.25),
		Q3:     quantile(xs, 0.75),
	}
}

func orNaN(v float64, err error) float64 {
	if err != nil {
		return math.NaN()
	}
	return v
}

// quantile returns the q'th quantile of the ascending values xs,
// interpolating linearly between the two closest order statistics
// (definition 7 of Hyndman and Fan).
func quantile(xs []float64, q float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	h := q * float64(len(xs)-1)
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(xs) {
		return xs[len(xs)-1]
	}
	return xs[i] + (h-lo)*(xs[i+1]-xs[i])
}
