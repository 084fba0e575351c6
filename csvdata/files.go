// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csvdata reads the CSV exports analyzed by ttffstat.
//
// Files are small, so each is decoded in full. A Files iterates over
// the CSV files of a folder in name order, and the Column and Labeled
// functions turn decoded records into samples. ReadTable and WriteFile
// handle files with a header row.
package csvdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Ext is the extension of the files a Files visits.
const Ext = ".csv"

// FileName returns the CSV file name for name. Path separators
// become underscores, so the file stays in its directory.
func FileName(name string) string {
	return strings.NewReplacer("/", "_", `\`, "_").Replace(name) + Ext
}

// A File is one decoded CSV file.
type File struct {
	// Path is the path the file was read from, and Name its base
	// name.
	Path, Name string

	// Records are the decoded rows. Rows may have different
	// lengths.
	Records [][]string

	// Err is set if the file could not be opened or decoded. In
	// that case Records holds whatever was decoded before the
	// error.
	Err error
}

// Empty reports whether f contains no data.
func (f *File) Empty() bool {
	return len(f.Records) == 0
}

// Width returns the number of columns of f, which is the length of
// its longest row.
func (f *File) Width() int {
	w := 0
	for _, rec := range f.Records {
		w = max(w, len(rec))
	}
	return w
}

// A Files reads a sequence of CSV files.
//
// A file that can't be read doesn't stop the iteration. It is
// returned by File with its Err set, so the caller can record the
// failure and move on.
type Files struct {
	// Paths is the list of files to read, in order.
	Paths []string

	cur *File
}

// Folder returns a Files over the CSV files in dir whose names are
// accepted by match, in name order. If match is nil, every CSV file is
// accepted.
func Folder(dir string, match func(name string) bool) (*Files, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	f := &Files{}
	for _, ent := range ents {
		name := ent.Name()
		if ent.IsDir() || !strings.EqualFold(filepath.Ext(name), Ext) {
			continue
		}
		if match != nil && !match(name) {
			continue
		}
		f.Paths = append(f.Paths, filepath.Join(dir, name))
	}
	sort.Strings(f.Paths)
	return f, nil
}

// HasPrefix returns a match function for Folder that accepts names
// beginning with any of prefixes.
func HasPrefix(prefixes ...string) func(string) bool {
	return func(name string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(name, p) {
				return true
			}
		}
		return false
	}
}

// Scan advances to the next file in the sequence and reports whether
// there was one. The caller should use File to get it.
func (f *Files) Scan() bool {
	if len(f.Paths) == 0 {
		f.cur = nil
		return false
	}
	path := f.Paths[0]
	f.Paths = f.Paths[1:]
	f.cur = ReadFile(path)
	return true
}

// File returns the file that was just read by Scan.
func (f *Files) File() *File {
	return f.cur
}

// ReadFile reads and decodes the CSV file at path.
func ReadFile(path string) *File {
	f := &File{Path: path, Name: filepath.Base(path)}
	r, err := os.Open(path)
	if err != nil {
		f.Err = err
		return f
	}
	defer r.Close()
	f.Records, f.Err = readAll(r)
	return f
}

func readAll(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var recs [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return recs, fmt.Errorf("line %d: %w", perr.Line, perr.Err)
			}
			return recs, err
		}
		if blank(rec) {
			continue
		}
		recs = append(recs, rec)
	}
}

// blank reports whether rec is a row of empty fields, which some
// spreadsheet exports emit at the end of a sheet.
func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
