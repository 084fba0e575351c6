// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sheets exports the sheets of the experiment workbook to the
// per-sheet CSV files read by package cohort.
package sheets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goggles-ttff/ttffstat/csvdata"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// FileName returns the CSV file name of sheet, with spaces and slashes
// replaced by underscores.
func FileName(sheet string) string {
	return csvdata.FileName(strings.ReplaceAll(sheet, " ", "_"))
}

// Export writes every sheet of the workbook at path to outDir,
// creating outDir if needed, and returns the paths written. Rows are
// padded to the width of the widest row of their sheet.
func Export(path, outDir string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	if err := os.MkdirAll(outDir, 0777); err != nil {
		return nil, err
	}
	var paths []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return paths, fmt.Errorf("%s: sheet %q: %w", path, sheet, err)
		}
		out := filepath.Join(outDir, FileName(sheet))
		if err := csvdata.WriteFile(out, nil, pad(rows)); err != nil {
			return paths, err
		}
		logger.Info("exported sheet", zap.String("sheet", sheet), zap.String("file", out), zap.Int("rows", len(rows)))
		paths = append(paths, out)
	}
	return paths, nil
}

func pad(rows [][]string) [][]string {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	for i, r := range rows {
		if len(r) < width {
			rows[i] = append(r, make([]string, width-len(r))...)
		}
	}
	return rows
}
