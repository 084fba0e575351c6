// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import "fmt"

// A NormalityTest tests the null hypothesis that xs was drawn from a
// normal distribution and returns the test statistic and p-value.
type NormalityTest func(xs []float64) (stat, p float64, err error)

// MinNormalitySize is the smallest sample size the normality tester
// will test.
const MinNormalitySize = 3

// A NormalityTester decides whether a sample is plausibly normal. If
// the raw sample is not, it tries each of Transforms in order and
// stops at the first transformation that yields a normal sample.
type NormalityTester struct {
	// Test is the underlying normality test.
	Test NormalityTest

	// Transforms are tried, in order, when the raw sample is not
	// normal.
	Transforms []Transform
}

// DefaultNormality tests normality with the Shapiro-Wilk test and
// the standard transformations.
var DefaultNormality = NormalityTester{
	Test:       ShapiroWilk,
	Transforms: Transforms,
}

// A NormalityResult records everything the normality tester did on a
// sample.
type NormalityResult struct {
	// N is the number of values tested.
	N int

	// Raw is the verdict on the untransformed sample, or nil if
	// the sample could not be tested.
	Raw *Verdict

	// Err is the reason Raw is nil. It wraps ErrInsufficientData
	// or the error returned by the underlying test.
	Err error

	// Attempts lists the transformations that were tried, in
	// order. It is empty if Raw is nil or normal.
	Attempts []TransformAttempt
}

// A TransformAttempt is one transformation tried on a non-normal
// sample.
type TransformAttempt struct {
	Transform Transform

	// Verdict is the test result on the transformed sample. It is
	// nil if Err is set.
	Verdict *Verdict

	// Err is set if the transformation was skipped (wrapping
	// ErrDomain) or the test failed on the transformed sample.
	Err error
}

// Normal returns the verdict on the untransformed sample. tested is
// false if the sample could not be tested, in which case normal is
// also false.
//
// A successful transformation doesn't change this result: later
// tests always run on raw values, so they are gated on the normality
// of the raw values.
func (r NormalityResult) Normal() (normal, tested bool) {
	if r.Raw == nil {
		return false, false
	}
	return r.Raw.Accepted, true
}

// Transformed returns the first attempt that produced a normal
// sample, if any.
func (r NormalityResult) Transformed() (TransformAttempt, bool) {
	for _, a := range r.Attempts {
		if a.Verdict != nil && a.Verdict.Accepted {
			return a, true
		}
	}
	return TransformAttempt{}, false
}

// Check runs the normality test on s and, if s is not normal, on
// transformations of s.
func (nt NormalityTester) Check(s *Sample) NormalityResult {
	res := NormalityResult{N: s.Len()}
	if s.Len() < MinNormalitySize {
		res.Err = fmt.Errorf("%w: need at least %d values for a normality test, got %d", ErrInsufficientData, MinNormalitySize, s.Len())
		return res
	}
	alpha := s.Thresholds.alpha()

	raw, err := nt.verdict(s, alpha)
	if err != nil {
		res.Err = err
		return res
	}
	res.Raw = raw
	if raw.Accepted {
		return res
	}

	for _, t := range nt.Transforms {
		attempt := TransformAttempt{Transform: t}
		ts, err := t.On(s)
		if err == nil {
			attempt.Verdict, err = nt.verdict(ts, alpha)
		}
		attempt.Err = err
		res.Attempts = append(res.Attempts, attempt)
		if attempt.Verdict != nil && attempt.Verdict.Accepted {
			break
		}
	}
	return res
}

func (nt NormalityTester) verdict(s *Sample, alpha float64) (*Verdict, error) {
	stat, p, err := nt.Test(s.Values)
	if err != nil {
		return nil, err
	}
	return &Verdict{Statistic: stat, P: p, Accepted: p > alpha}, nil
}
