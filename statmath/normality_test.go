// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import (
	"errors"
	"math"
	"testing"
)

// scriptedTest is a NormalityTest that returns p-values from a script,
// one per call.
type scriptedTest struct {
	ps    []float64
	calls int
}

func (s *scriptedTest) test(xs []float64) (float64, float64, error) {
	p := s.ps[s.calls]
	s.calls++
	return 0.9, p, nil
}

func TestNormalityInsufficient(t *testing.T) {
	st := &scriptedTest{}
	nt := NormalityTester{Test: st.test, Transforms: Transforms}
	res := nt.Check(NewSample([]float64{1, 2}, &DefaultThresholds))
	if st.calls != 0 {
		t.Errorf("test called %d times on 2 values, want 0", st.calls)
	}
	if !errors.Is(res.Err, ErrInsufficientData) || res.Raw != nil {
		t.Errorf("got Raw=%v Err=%v, want absent verdict and ErrInsufficientData", res.Raw, res.Err)
	}
	if normal, tested := res.Normal(); normal || tested {
		t.Errorf("Normal() = %v, %v, want false, false", normal, tested)
	}
}

func TestNormalityRawNormal(t *testing.T) {
	st := &scriptedTest{ps: []float64{0.5}}
	nt := NormalityTester{Test: st.test, Transforms: Transforms}
	res := nt.Check(NewSample([]float64{1, 2, 3, 4}, &DefaultThresholds))
	if normal, tested := res.Normal(); !normal || !tested {
		t.Errorf("Normal() = %v, %v, want true, true", normal, tested)
	}
	if len(res.Attempts) != 0 || st.calls != 1 {
		t.Errorf("got %d attempts and %d calls, want 0 and 1", len(res.Attempts), st.calls)
	}
}

func TestNormalityStopsAtFirstSuccess(t *testing.T) {
	// Raw, sqrt and fourth root fail; natural log succeeds.
	st := &scriptedTest{ps: []float64{0.01, 0.02, 0.03, 0.2, 0.9}}
	nt := NormalityTester{Test: st.test, Transforms: Transforms}
	res := nt.Check(NewSample([]float64{1, 2, 3, 40, 500}, &DefaultThresholds))
	if len(res.Attempts) != 3 {
		t.Fatalf("got %d attempts, want 3", len(res.Attempts))
	}
	if st.calls != 4 {
		t.Errorf("test called %d times, want 4", st.calls)
	}
	for i, want := range []string{"pierwiastek kwadratowy", "pierwiastek czwartego stopnia", "log naturalny"} {
		if got := res.Attempts[i].Transform.Name; got != want {
			t.Errorf("attempt %d is %q, want %q", i, got, want)
		}
	}
	best, ok := res.Transformed()
	if !ok || best.Transform.Name != "log naturalny" || best.Verdict.P != 0.2 {
		t.Errorf("Transformed() = %+v, %v", best, ok)
	}
	// The raw verdict still decides.
	if normal, tested := res.Normal(); normal || !tested {
		t.Errorf("Normal() = %v, %v, want false, true", normal, tested)
	}
}

func TestNormalitySkipsNonPositive(t *testing.T) {
	st := &scriptedTest{ps: []float64{0.01}}
	nt := NormalityTester{Test: st.test, Transforms: Transforms}
	res := nt.Check(NewSample([]float64{0, 1, 2, 3}, &DefaultThresholds))
	if len(res.Attempts) != len(Transforms) {
		t.Fatalf("got %d attempts, want %d", len(res.Attempts), len(Transforms))
	}
	for _, a := range res.Attempts {
		if !errors.Is(a.Err, ErrDomain) || a.Verdict != nil {
			t.Errorf("%s: got verdict %v err %v, want ErrDomain", a.Transform.Name, a.Verdict, a.Err)
		}
	}
	if st.calls != 1 {
		t.Errorf("test called %d times, want 1", st.calls)
	}
}

func TestNormalityTestError(t *testing.T) {
	boom := errors.New("boom")
	nt := NormalityTester{
		Test:       func([]float64) (float64, float64, error) { return 0, 0, boom },
		Transforms: Transforms,
	}
	res := nt.Check(NewSample([]float64{1, 2, 3}, &DefaultThresholds))
	if res.Raw != nil || !errors.Is(res.Err, boom) {
		t.Errorf("got Raw=%v Err=%v, want absent verdict and boom", res.Raw, res.Err)
	}
}

func TestNormalityShapiroWilk(t *testing.T) {
	// A log-normal sample fails raw, fails after a square root and
	// passes after a fourth root.
	scores := normalScores(50)
	xs := make([]float64, len(scores))
	for i, v := range scores {
		xs[i] = math.Exp(v)
	}
	res := DefaultNormality.Check(NewSample(xs, &DefaultThresholds))
	if normal, tested := res.Normal(); normal || !tested {
		t.Fatalf("Normal() = %v, %v, want false, true", normal, tested)
	}
	if len(res.Attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(res.Attempts))
	}
	if v := res.Attempts[0].Verdict; v == nil || v.Accepted {
		t.Errorf("square root: got %+v, want rejected", v)
	}
	if v := res.Attempts[1].Verdict; v == nil || !v.Accepted {
		t.Errorf("fourth root: got %+v, want accepted", v)
	}
}
