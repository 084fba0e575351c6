// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import (
	"math"
	"reflect"
	"testing"
)

func TestParseSample(t *testing.T) {
	check := func(fields []string, want []float64, wantDropped int) {
		t.Helper()
		s := ParseSample(fields, &DefaultThresholds)
		if !reflect.DeepEqual(s.Values, want) || s.Dropped != wantDropped {
			t.Errorf("ParseSample(%q) = %v dropped %d, want %v dropped %d", fields, s.Values, s.Dropped, want, wantDropped)
		}
	}
	check([]string{"3", " 1.5", "2"}, []float64{1.5, 2, 3}, 0)
	check([]string{"R jacket", "1", "", "x", "2"}, []float64{1, 2}, 3)
	check([]string{"NaN", "Inf", "-inf", "4"}, []float64{4}, 3)
	check([]string{"a", "b"}, []float64{}, 2)
}

func TestNewSampleCopies(t *testing.T) {
	in := []float64{3, 1, 2}
	s := NewSample(in, nil)
	if !reflect.DeepEqual(in, []float64{3, 1, 2}) {
		t.Errorf("NewSample modified its input: %v", in)
	}
	if !reflect.DeepEqual(s.Values, []float64{1, 2, 3}) {
		t.Errorf("want sorted values, got %v", s.Values)
	}
}

func TestMap(t *testing.T) {
	s := NewSample([]float64{0, 1, 4}, &DefaultThresholds)
	got := s.Map(math.Log)
	if !reflect.DeepEqual(got.Values, []float64{0, math.Log(4)}) || got.Dropped != 1 {
		t.Errorf("Map(Log) = %v dropped %d", got.Values, got.Dropped)
	}
	if !reflect.DeepEqual(s.Values, []float64{0, 1, 4}) {
		t.Errorf("Map modified its receiver: %v", s.Values)
	}
	if got.Thresholds != s.Thresholds {
		t.Errorf("Map lost the thresholds")
	}
}
