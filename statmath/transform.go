// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import (
	"fmt"
	"math"
)

// A Transform is a monotonic re-expression of a sample, tried in order
// to bring non-normal data closer to normality.
type Transform struct {
	// Name is the label used in reports.
	Name string

	// Apply maps one value.
	Apply func(float64) float64
}

// Transforms is the fixed, ordered list of transformations tried by
// the normality tester. Every transformation requires strictly
// positive values.
var Transforms = []Transform{
	{"pierwiastek kwadratowy", math.Sqrt},
	{"pierwiastek czwartego stopnia", func(x float64) float64 { return math.Pow(x, 0.25) }},
	{"log naturalny", math.Log},
	{"log dziesiętny", math.Log10},
}

// On applies t to s and returns the derived sample. It returns an
// error wrapping ErrDomain if s contains a value <= 0.
func (t Transform) On(s *Sample) (*Sample, error) {
	// Values are sorted, so the minimum decides.
	if len(s.Values) > 0 && s.Values[0] <= 0 {
		return nil, fmt.Errorf("%w: %s requires values > 0, got %v", ErrDomain, t.Name, s.Values[0])
	}
	return s.Map(t.Apply), nil
}
