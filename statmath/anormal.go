// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// AssumeNormal is an assumption that every group is normally
// distributed with a common variance. Groups are compared with a
// one-way analysis of variance.
var AssumeNormal = assumeNormal{}

type assumeNormal struct{}

var _ Assumption = assumeNormal{}

func (assumeNormal) Label() string {
	return "ANOVA"
}

func (a assumeNormal) Compare(groups []*Sample) (GroupComparison, error) {
	sizes, n, err := checkGroups(a.Label(), groups)
	if err != nil {
		return GroupComparison{}, err
	}
	k := len(groups)
	if n <= k {
		return GroupComparison{}, fmt.Errorf("%w: ANOVA needs more values than groups", ErrInsufficientData)
	}

	var all []float64
	for _, g := range groups {
		all = append(all, g.Values...)
	}
	grand := stat.Mean(all, nil)

	var ssb, ssw float64
	for _, g := range groups {
		m := stat.Mean(g.Values, nil)
		ssb += float64(g.Len()) * (m - grand) * (m - grand)
		for _, v := range g.Values {
			ssw += (v - m) * (v - m)
		}
	}
	if ssw == 0 {
		return GroupComparison{}, fmt.Errorf("%w: ANOVA residual variance is zero", ErrNumerical)
	}

	df1, df2 := k-1, n-k
	f := (ssb / float64(df1)) / (ssw / float64(df2))
	p := distuv.F{D1: float64(df1), D2: float64(df2)}.Survival(f)
	return GroupComparison{
		Test:      a.Label(),
		Statistic: f,
		P:         p,
		DF1:       df1,
		DF2:       df2,
		Sizes:     sizes,
		Accepted:  p > groupsAlpha(groups),
	}, nil
}
