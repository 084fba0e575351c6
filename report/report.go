// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report accumulates the text findings of one folder analysis.
//
// A Report is created empty, grows by appending lines, and is flushed
// to a file exactly once. Nothing is ever removed from a Report.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// RuleWidth is the width of the dash rule separating report sections.
const RuleWidth = 40

// ErrFlushed is returned by Flush if the report was already flushed.
var ErrFlushed = errors.New("report already flushed")

// A Report is an append-only sequence of text lines.
//
// The zero Report is empty and ready to use.
type Report struct {
	lines   []string
	flushed bool
}

// New returns an empty Report.
func New() *Report {
	return &Report{}
}

// Add appends lines to r. Each line must not contain a newline.
func (r *Report) Add(lines ...string) {
	r.lines = append(r.lines, lines...)
}

// Addf appends a formatted line to r.
func (r *Report) Addf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

// Rule appends a section separator to r.
func (r *Report) Rule() {
	r.lines = append(r.lines, strings.Repeat("-", RuleWidth))
}

// Len returns the number of lines in r.
func (r *Report) Len() int {
	return len(r.lines)
}

// Lines returns a copy of the lines of r.
func (r *Report) Lines() []string {
	return append([]string(nil), r.lines...)
}

// String returns the report text, one line per line of r, each
// terminated by a newline.
func (r *Report) String() string {
	var b strings.Builder
	r.WriteTo(&b)
	return b.String()
}

// WriteTo writes the report text to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, line := range r.lines {
		m, err := bw.WriteString(line)
		n += int64(m)
		if err == nil {
			err = bw.WriteByte('\n')
			if err == nil {
				n++
			}
		}
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Flush writes the report to the file at path, replacing any existing
// file. A Report can be flushed only once; later calls return
// ErrFlushed and leave the file alone.
func (r *Report) Flush(path string) error {
	if r.flushed {
		return fmt.Errorf("%s: %w", path, ErrFlushed)
	}
	r.flushed = true
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = r.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
