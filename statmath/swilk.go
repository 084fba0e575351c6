// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// Polynomial approximations from Royston (1995), "Remark AS R94: A
// remark on algorithm AS 181: The W-test for normality".
var (
	swG  = []float64{-2.273, 0.459}
	swC1 = []float64{0, 0.221157, -0.147981, -2.07119, 4.434685, -2.706056}
	swC2 = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.544, -0.39978, 0.025054, -6.714e-4}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swC6 = []float64{-0.4803, -0.082676, 0.0030302}
)

const (
	swPi6  = 1.90985931710274 // 6/π
	swStqr = 1.04719755119660 // π/3
	swTiny = 1e-19
)

// ShapiroWilk performs the Shapiro-Wilk test of the null hypothesis
// that xs was drawn from a normal distribution. It returns the W
// statistic and its p-value.
//
// xs need not be sorted and is not modified. ShapiroWilk requires at
// least 3 values and returns an error wrapping ErrNumerical if all
// values are identical.
func ShapiroWilk(xs []float64) (w, p float64, err error) {
	n := len(xs)
	if n < 3 {
		return math.NaN(), math.NaN(), fmt.Errorf("%w: Shapiro-Wilk test needs at least 3 values, got %d", ErrInsufficientData, n)
	}
	x := append([]float64(nil), xs...)
	sort.Float64s(x)
	if x[n-1]-x[0] < swTiny {
		return math.NaN(), math.NaN(), fmt.Errorf("%w: data range is zero", ErrNumerical)
	}

	a := swilkCoefficients(n)

	// W is the squared correlation between the ordered sample and
	// the antisymmetric coefficient vector.
	var mean float64
	for _, v := range x {
		mean += v
	}
	mean /= float64(n)
	var sax, ssa, ssx float64
	for i, v := range x {
		var ai float64
		switch j := n - 1 - i; {
		case i < j:
			ai = -a[i]
		case i > j:
			ai = a[j]
		}
		sax += ai * v
		ssa += ai * ai
		ssx += (v - mean) * (v - mean)
	}
	w = sax * sax / (ssa * ssx)
	if w > 1 {
		w = 1
	}

	return w, swilkPValue(w, n), nil
}

// swilkCoefficients returns the first n/2 coefficients of the
// Shapiro-Wilk statistic. The remaining coefficients follow by
// antisymmetry.
func swilkCoefficients(n int) []float64 {
	nn2 := n / 2
	a := make([]float64, nn2)
	if n == 3 {
		a[0] = math.Sqrt2 / 2
		return a
	}

	an := float64(n)
	m := make([]float64, nn2)
	var summ2 float64
	for i := range m {
		m[i] = stats.StdNormal.InvCDF((float64(i+1) - 0.375) / (an + 0.25))
		summ2 += m[i] * m[i]
	}
	summ2 *= 2
	ssumm2 := math.Sqrt(summ2)
	rsn := 1 / math.Sqrt(an)
	a1 := swPoly(swC1, rsn) - m[0]/ssumm2

	var i1 int
	var fac float64
	if n > 5 {
		i1 = 2
		a2 := -m[1]/ssumm2 + swPoly(swC2, rsn)
		fac = math.Sqrt((summ2 - 2*m[0]*m[0] - 2*m[1]*m[1]) / (1 - 2*a1*a1 - 2*a2*a2))
		a[1] = a2
	} else {
		i1 = 1
		fac = math.Sqrt((summ2 - 2*m[0]*m[0]) / (1 - 2*a1*a1))
	}
	a[0] = a1
	for i := i1; i < nn2; i++ {
		a[i] = -m[i] / fac
	}
	return a
}

// swilkPValue returns the p-value of statistic w for a sample of size n.
func swilkPValue(w float64, n int) float64 {
	if n == 3 {
		// Exact.
		p := swPi6 * (math.Asin(math.Sqrt(w)) - swStqr)
		return math.Max(p, 0)
	}

	an := float64(n)
	y := math.Log(1 - w)
	var m, s float64
	if n <= 11 {
		gamma := swPoly(swG, an)
		if y >= gamma {
			return 1e-99
		}
		y = -math.Log(gamma - y)
		m = swPoly(swC3, an)
		s = math.Exp(swPoly(swC4, an))
	} else {
		xx := math.Log(an)
		m = swPoly(swC5, xx)
		s = math.Exp(swPoly(swC6, xx))
	}
	return stats.StdNormal.CDF((m - y) / s)
}

// swPoly evaluates the polynomial with coefficients cc (constant term
// first) at x.
func swPoly(cc []float64, x float64) float64 {
	res := cc[0]
	if len(cc) == 1 {
		return res
	}
	p := x * cc[len(cc)-1]
	for j := len(cc) - 2; j > 0; j-- {
		p = (p + cc[j]) * x
	}
	return res + p
}
