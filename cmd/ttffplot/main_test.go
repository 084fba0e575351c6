// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// setup copies the sheet exports used by ttffgroup's tests into a
// fresh working directory.
func setup(t *testing.T) {
	t.Helper()
	src, err := filepath.Abs("../ttffgroup/testdata/eksport_csv")
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := copyFS(filepath.Join(dir, "eksport_csv"), os.DirFS(src)); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
}

func TestPlot(t *testing.T) {
	setup(t)
	var gotErr bytes.Buffer
	if err := ttffplot(&gotErr, []string{"-category", "AGE,SEX,TTFF"}); err != nil {
		t.Fatalf("unexpected error: %s\n%s", err, &gotErr)
	}
	ents, err := os.ReadDir("plots")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range ents {
		got = append(got, e.Name())
	}
	// Sex is not numeric, so it has no box plot.
	want := []string{
		"AGE_box.eps", "AGE_box.png", "AGE_hist.eps", "AGE_hist.png",
		"SEX_hist.eps", "SEX_hist.png",
		"TTFF_hist.eps", "TTFF_hist.png", "TTFF_qqplot.eps", "TTFF_qqplot.png",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("plots holds %q, want %q", got, want)
	}
	if !strings.Contains(gotErr.String(), "no box plot of non-numeric values") {
		t.Errorf("log lacks the skipped box plot:\n%s", &gotErr)
	}
}

func TestSelected(t *testing.T) {
	for _, tc := range []struct {
		names, name string
		want        bool
	}{
		{"", "AGE", true},
		{"AGE", "AGE", true},
		{"SEX, AGE", "AGE", true},
		{"SEX", "AGE", false},
		{"AGEX", "AGE", false},
	} {
		if got := selected(tc.names, tc.name); got != tc.want {
			t.Errorf("selected(%q, %q) = %v, want %v", tc.names, tc.name, got, tc.want)
		}
	}
}

func TestErrors(t *testing.T) {
	setup(t)
	for _, args := range [][]string{
		// There are no experience exports.
		{"-category", "EXPERIENCE"},
		{"extra"},
	} {
		var gotErr bytes.Buffer
		if err := ttffplot(&gotErr, args); err == nil {
			t.Errorf("ttffplot %s succeeded", strings.Join(args, " "))
		}
	}
}
