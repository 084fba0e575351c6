// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// AssumeNothing is a non-parametric assumption: groups may have any
// distribution. Groups are compared with the Kruskal-Wallis H-test,
// which works on ranks.
var AssumeNothing = assumeNothing{}

type assumeNothing struct{}

var _ Assumption = assumeNothing{}

func (assumeNothing) Label() string {
	return "Kruskal-Wallis"
}

func (a assumeNothing) Compare(groups []*Sample) (GroupComparison, error) {
	sizes, n, err := checkGroups(a.Label(), groups)
	if err != nil {
		return GroupComparison{}, err
	}

	type obs struct {
		v     float64
		group int
	}
	all := make([]obs, 0, n)
	for i, g := range groups {
		for _, v := range g.Values {
			all = append(all, obs{v, i})
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].v < all[j].v })

	// Assign mid-ranks to ties and accumulate the tie correction.
	rankSums := make([]float64, len(groups))
	var ties float64
	for i := 0; i < n; {
		j := i + 1
		for j < n && all[j].v == all[i].v {
			j++
		}
		rank := float64(i+j+1) / 2
		for _, o := range all[i:j] {
			rankSums[o.group] += rank
		}
		t := float64(j - i)
		ties += t*t*t - t
		i = j
	}
	fn := float64(n)
	correction := 1 - ties/(fn*fn*fn-fn)
	if correction == 0 {
		return GroupComparison{}, fmt.Errorf("%w: all numbers are identical", ErrNumerical)
	}

	var h float64
	for i, r := range rankSums {
		h += r * r / float64(sizes[i])
	}
	h = (12/(fn*(fn+1))*h - 3*(fn+1)) / correction

	df := len(groups) - 1
	p := distuv.ChiSquared{K: float64(df)}.Survival(h)
	return GroupComparison{
		Test:      a.Label(),
		Statistic: h,
		P:         p,
		DF1:       df,
		Sizes:     sizes,
		Accepted:  p > groupsAlpha(groups),
	}, nil
}
