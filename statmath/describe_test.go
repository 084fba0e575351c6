// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import (
	"math"
	"testing"
)

func TestDescribe(t *testing.T) {
	check := func(values []float64, want Summary) {
		t.Helper()
		got := Describe(NewSample(values, &DefaultThresholds))
		if !aeq(got.Mean, want.Mean) || !aeq(got.StdDev, want.StdDev) || !aeq(got.Median, want.Median) ||
			!aeq(got.Min, want.Min) || !aeq(got.Max, want.Max) || !aeq(got.Q1, want.Q1) || !aeq(got.Q3, want.Q3) {
			t.Errorf("Describe(%v) = %+v, want %+v", values, got, want)
		}
	}
	check([]float64{1, 2, 3, 4, 5},
		Summary{Mean: 3, StdDev: math.Sqrt(2.5), Median: 3, Min: 1, Max: 5, Q1: 2, Q3: 4})
	check([]float64{4, 1, 3, 2},
		Summary{Mean: 2.5, StdDev: math.Sqrt(5.0 / 3), Median: 2.5, Min: 1, Max: 4, Q1: 1.75, Q3: 3.25})
	check([]float64{1, 2, 3},
		Summary{Mean: 2, StdDev: 1, Median: 2, Min: 1, Max: 3, Q1: 1.5, Q3: 2.5})
}

func TestDescribeEmpty(t *testing.T) {
	got := Describe(NewSample(nil, &DefaultThresholds))
	for name, v := range map[string]float64{
		"Mean": got.Mean, "StdDev": got.StdDev, "Median": got.Median,
		"Min": got.Min, "Max": got.Max, "Q1": got.Q1, "Q3": got.Q3,
	} {
		if !math.IsNaN(v) {
			t.Errorf("%s of empty sample = %v, want NaN", name, v)
		}
	}
}

func TestDescribeOrder(t *testing.T) {
	samples := [][]float64{
		{1, 2, 3, 4},
		{10, -3, 7.5, 0, 2, 2, 9},
		{0.1, 100, 1000, 0.2, 5},
		{5, 4, 3, 2, 1, 0, -1, -2},
	}
	for _, xs := range samples {
		s := Describe(NewSample(xs, nil))
		if !(s.Min <= s.Q1 && s.Q1 <= s.Median && s.Median <= s.Q3 && s.Q3 <= s.Max) {
			t.Errorf("%v: want min <= Q1 <= median <= Q3 <= max, got %+v", xs, s)
		}
	}
}

// aeq reports whether x and y are equal to 8 digits.
func aeq(x, y float64) bool {
	if x == y {
		return true
	}
	if x < 0 && y < 0 {
		x, y = -x, -y
	}
	const factor = 1 - 1e-7
	return x*factor <= y && y*factor <= x
}

// near reports whether x and y differ by at most eps.
func near(x, y, eps float64) bool {
	return math.Abs(x-y) <= eps
}
