// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import (
	"fmt"
	"strings"
)

// An Assumption indicates a distributional assumption about a set of
// groups, and compares groups with the test appropriate under it.
type Assumption interface {
	// Label returns the name of the comparison test used under
	// this assumption, for example "ANOVA".
	Label() string

	// Compare tests the null hypothesis that all groups come from
	// the same distribution (or, for ANOVA, have the same mean).
	Compare(groups []*Sample) (GroupComparison, error)
}

// ChooseAssumption returns the assumption to compare groups under
// given what's known about them. Only normal groups with equal
// variances are compared parametrically.
func ChooseAssumption(normal, equalVar bool) Assumption {
	if normal && equalVar {
		return AssumeNormal
	}
	return AssumeNothing
}

// A GroupComparison is the result of comparing two or more groups.
type GroupComparison struct {
	// Test is the label of the assumption that produced this
	// comparison.
	Test string

	// Statistic is the test statistic (F or H) and P its p-value.
	Statistic, P float64

	// DF1 and DF2 are the degrees of freedom of the reference
	// distribution. DF2 is 0 for chi-square distributed statistics.
	DF1, DF2 int

	// Sizes are the sizes of the compared groups.
	Sizes []int

	// Accepted reports whether the null hypothesis of no
	// difference is retained (p > alpha).
	Accepted bool
}

// String summarizes the comparison in the form
// "test stat=S p=P n=N1+N2+...".
func (c GroupComparison) String() string {
	sizes := make([]string, len(c.Sizes))
	for i, n := range c.Sizes {
		sizes[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("%s stat=%.4f p=%.4f n=%s", c.Test, c.Statistic, c.P, strings.Join(sizes, "+"))
}

// checkGroups reports an error if groups can't be compared: there
// must be at least two groups, none of them empty.
func checkGroups(test string, groups []*Sample) (sizes []int, n int, err error) {
	if len(groups) < 2 {
		return nil, 0, fmt.Errorf("%w: %s needs at least 2 groups, got %d", ErrInsufficientData, test, len(groups))
	}
	sizes = make([]int, len(groups))
	for i, g := range groups {
		if g.Len() == 0 {
			return nil, 0, fmt.Errorf("%w: %s got an empty group", ErrInsufficientData, test)
		}
		sizes[i] = g.Len()
		n += g.Len()
	}
	return sizes, n, nil
}

// groupsAlpha returns the significance level shared by groups.
func groupsAlpha(groups []*Sample) float64 {
	for _, g := range groups {
		if g.Thresholds != nil {
			return g.Thresholds.Alpha
		}
	}
	return DefaultThresholds.Alpha
}
