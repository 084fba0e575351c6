// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csvdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// ReadTable reads a CSV file whose header row follows skip leading
// lines, as in sheet exports that carry a title row above the column
// names. Data rows are padded or truncated to the width of the header.
func ReadTable(path string, skip int) (header []string, rows [][]string, err error) {
	f := ReadFile(path)
	if f.Err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, f.Err)
	}
	if len(f.Records) <= skip {
		return nil, nil, fmt.Errorf("%s: no header row", path)
	}
	header = f.Records[skip]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	for _, rec := range f.Records[skip+1:] {
		row := make([]string, len(header))
		copy(row, rec)
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// ColumnIndex returns the index of the column named name in header.
func ColumnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("no column %q", name)
}

// WriteFile writes header and rows to a CSV file at path.
func WriteFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if header != nil {
		w.Write(header)
	}
	w.WriteAll(rows)
	err = w.Error()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
