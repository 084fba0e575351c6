// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReport(t *testing.T) {
	var r Report
	r.Add("Plik: a.csv w folderze x")
	r.Addf("  Średnia: %.4f", 2.0)
	r.Rule()
	r.Add()

	want := "Plik: a.csv w folderze x\n  Średnia: 2.0000\n" + strings.Repeat("-", 40) + "\n"
	if got := r.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}

	// Lines returns a copy.
	lines := r.Lines()
	lines[0] = "changed"
	if r.Lines()[0] == "changed" {
		t.Errorf("Lines aliases the report")
	}
}

func TestFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	r := New()
	r.Add("one", "two")
	if err := r.Flush(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one\ntwo\n" {
		t.Errorf("file contains %q", data)
	}

	r.Add("three")
	if err := r.Flush(path); !errors.Is(err, ErrFlushed) {
		t.Errorf("second Flush: got %v, want ErrFlushed", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "one\ntwo\n" {
		t.Errorf("second Flush changed the file to %q", data)
	}
}

func TestFlushEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	if err := New().Flush(path); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() != 0 {
		t.Errorf("got %v, %v; want an empty file", fi, err)
	}
}
