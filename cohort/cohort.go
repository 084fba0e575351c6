// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cohort relates TTFF measurements to participant attributes.
//
// The per-sheet exports of the experiment workbook hold, for each
// condition prefix, one sheet of TTFF values and one sheet per
// participant attribute, all keyed by participant number. Load joins
// the TTFF sheets with the sheets of one attribute and splits the
// participants into at most a few groups by attribute value. Export
// writes each group to the TTFF folder read by package analysis.
package cohort

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/goggles-ttff/ttffstat/csvdata"
	"github.com/goggles-ttff/ttffstat/internal/config"
)

// rowColumn numbers the rows of a joined table.
const rowColumn = "row"

// A Source locates the sheet exports.
type Source struct {
	Config config.Cohort

	// Prefixes are the condition prefixes of the sheet names.
	Prefixes []string
}

// sheetPath returns the path of the export of sheet prefix+name.
func (s *Source) sheetPath(prefix, name string) string {
	return filepath.Join(s.Config.ExportDir, prefix+name+csvdata.Ext)
}

// project reads the export of sheet prefix+name and returns the
// named columns of each row.
func (s *Source) project(prefix, name string, cols ...string) ([][]string, error) {
	path := s.sheetPath(prefix, name)
	header, rows, err := csvdata.ReadTable(path, s.Config.HeaderRow)
	if err != nil {
		return nil, err
	}
	idx := make([]int, len(cols))
	for i, c := range cols {
		if idx[i], err = csvdata.ColumnIndex(header, c); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	proj := make([][]string, len(rows))
	for i, row := range rows {
		proj[i] = make([]string, len(idx))
		for j, k := range idx {
			proj[i][j] = row[k]
		}
	}
	return proj, nil
}

// readSheet reads columns id and col of every condition's export of
// sheet name and concatenates them.
func (s *Source) readSheet(name, col string) (*table.Table, error) {
	var tabs []table.Grouping
	for _, prefix := range s.Prefixes {
		proj, err := s.project(prefix, name, s.Config.IDColumn, col)
		if err != nil {
			return nil, err
		}
		tabs = append(tabs, table.TableFromStrings([]string{s.Config.IDColumn, col}, proj, false))
	}
	return table.Flatten(table.Concat(tabs...)), nil
}

// Column returns the non-empty values of column col of the export of
// sheet prefix+name.
func (s *Source) Column(prefix, name, col string) ([]string, error) {
	proj, err := s.project(prefix, name, col)
	if err != nil {
		return nil, err
	}
	var vals []string
	for _, row := range proj {
		if row[0] != "" {
			vals = append(vals, row[0])
		}
	}
	return vals, nil
}

// Joined is the TTFF of every participant joined with one attribute.
type Joined struct {
	Category config.Category

	idCol, ttffCol string
	tab            *table.Table
}

// Load joins the TTFF sheets with the sheets of category cat on the
// participant number. Participants missing from either side are left
// out.
func (s *Source) Load(cat config.Category) (*Joined, error) {
	ttff, err := s.readSheet(s.Config.TTFFSheet, s.Config.TTFFColumn)
	if err != nil {
		return nil, err
	}
	attr, err := s.readSheet(cat.Name, cat.Column)
	if err != nil {
		return nil, err
	}
	id := s.Config.IDColumn
	joined := table.Flatten(table.Join(ttff, id, attr, id))
	if joined.Len() == 0 {
		return nil, fmt.Errorf("%s: no participants with both TTFF and %s", cat.Name, cat.Column)
	}
	rows := make([]int, joined.Len())
	for i := range rows {
		rows[i] = i
	}
	joined = table.NewBuilder(joined).Add(rowColumn, rows).Done()
	return &Joined{Category: cat, idCol: id, ttffCol: s.Config.TTFFColumn, tab: joined}, nil
}

// Len returns the number of joined participants.
func (j *Joined) Len() int {
	return j.tab.Len()
}

// Labels returns the distinct non-empty attribute values, in order.
func (j *Joined) Labels() []string {
	var labels []string
	for _, gid := range table.GroupBy(j.tab, j.Category.Column).Tables() {
		if l := gid.Label().(string); l != "" {
			labels = append(labels, l)
		}
	}
	sortLabels(labels)
	return labels
}

// Select returns the rows whose attribute value is one of labels.
func (j *Joined) Select(labels []string) *Rows {
	in := make(map[string]bool, len(labels))
	for _, l := range labels {
		in[l] = true
	}
	g := table.Filter(j.tab, func(label string) bool { return in[label] }, j.Category.Column)
	t := table.Flatten(g)
	r := &Rows{Columns: []string{"", j.idCol, j.ttffCol, j.Category.Column}}
	if t.Len() == 0 {
		return r
	}
	num := t.MustColumn(rowColumn).([]int)
	ids := t.MustColumn(j.idCol).([]string)
	ttff := t.MustColumn(j.ttffCol).([]string)
	attr := t.MustColumn(j.Category.Column).([]string)
	for i := range num {
		r.Records = append(r.Records, []string{strconv.Itoa(num[i]), ids[i], ttff[i], attr[i]})
	}
	return r
}

// Rows are joined rows in the layout of the exports: a row number,
// the participant number, the TTFF value and the attribute value.
type Rows struct {
	Columns []string
	Records [][]string
}

// TTFF returns the numeric TTFF values of r.
func (r *Rows) TTFF() []float64 {
	var xs []float64
	for _, rec := range r.Records {
		if v, err := strconv.ParseFloat(rec[2], 64); err == nil {
			xs = append(xs, v)
		}
	}
	return xs
}
