// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csvdata

import (
	"strings"

	"github.com/goggles-ttff/ttffstat/statmath"
)

// Column returns column col of records as a sample. Rows that are too
// short, and fields that aren't finite numbers, are counted in the
// sample's Dropped field.
func Column(records [][]string, col int, t *statmath.Thresholds) *statmath.Sample {
	fields := make([]string, len(records))
	for i, rec := range records {
		if col < len(rec) {
			fields[i] = rec[col]
		}
	}
	return statmath.ParseSample(fields, t)
}

// Labeled returns column col of records as a sample, keeping only rows
// whose label column is not empty. Rows without a label or without a
// numeric value are counted in the sample's Dropped field.
func Labeled(records [][]string, col, label int, t *statmath.Thresholds) *statmath.Sample {
	fields := make([]string, 0, len(records))
	unlabeled := 0
	for _, rec := range records {
		if label >= len(rec) || strings.TrimSpace(rec[label]) == "" {
			unlabeled++
			continue
		}
		if col < len(rec) {
			fields = append(fields, rec[col])
		} else {
			fields = append(fields, "")
		}
	}
	s := statmath.ParseSample(fields, t)
	s.Dropped += unlabeled
	return s
}
