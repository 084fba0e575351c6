// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cohort

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/goggles-ttff/ttffstat/csvdata"
	"github.com/goggles-ttff/ttffstat/internal/config"
)

// A Group is a set of attribute values whose participants are
// analyzed together.
type Group struct {
	// Title names the group. It is the attribute value itself, or
	// "first - last" for a range of values.
	Title string

	Labels []string
	Rows   *Rows
}

// Partition splits labels, in order, into at most maxGroups groups.
// Empty and blacklisted labels are dropped first. If more than
// maxGroups labels remain, consecutive labels are chunked into groups
// of len/maxGroups+1 labels.
func Partition(labels []string, cat config.Category, maxGroups int) [][]string {
	var keep []string
	for _, l := range labels {
		if l != "" && !blacklisted(l, cat.Blacklist) {
			keep = append(keep, l)
		}
	}
	if len(keep) <= maxGroups {
		groups := make([][]string, len(keep))
		for i, l := range keep {
			groups[i] = []string{l}
		}
		return groups
	}
	n := len(keep)/maxGroups + 1
	var groups [][]string
	for i := 0; i < len(keep); i += n {
		groups = append(groups, keep[i:min(i+n, len(keep))])
	}
	return groups
}

// Title returns the title of a group of labels: the label itself, or
// the first and last label followed by unit in brackets if unit is
// set.
func Title(labels []string, unit string) string {
	if len(labels) == 1 {
		return labels[0]
	}
	t := labels[0] + " - " + labels[len(labels)-1]
	if unit != "" {
		t += " [" + unit + "]"
	}
	return t
}

// Groups partitions the joined participants by attribute value.
func (j *Joined) Groups(maxGroups int) []Group {
	var groups []Group
	for _, labels := range Partition(j.Labels(), j.Category, maxGroups) {
		groups = append(groups, Group{
			Title:  Title(labels, j.Category.Unit),
			Labels: labels,
			Rows:   j.Select(labels),
		})
	}
	return groups
}

// Export writes each group to "<title>.csv" in dir, creating dir if
// needed, and returns the paths written. Path separators in a title
// are replaced by underscores.
func Export(dir string, groups []Group) ([]string, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	var paths []string
	for _, g := range groups {
		path := filepath.Join(dir, csvdata.FileName(g.Title))
		if err := csvdata.WriteFile(path, g.Rows.Columns, g.Rows.Records); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// blacklisted reports whether label is in list, comparing numerically
// when both parse as numbers.
func blacklisted(label string, list []string) bool {
	for _, b := range list {
		if b == label {
			return true
		}
		x, err1 := strconv.ParseFloat(label, 64)
		y, err2 := strconv.ParseFloat(b, 64)
		if err1 == nil && err2 == nil && x == y {
			return true
		}
	}
	return false
}

// sortLabels sorts labels numerically if they are all numbers, and
// lexically otherwise.
func sortLabels(labels []string) {
	nums := make([]float64, len(labels))
	for i, l := range labels {
		v, err := strconv.ParseFloat(l, 64)
		if err != nil {
			sort.Strings(labels)
			return
		}
		nums[i] = v
	}
	sort.Sort(byValue{labels, nums})
}

type byValue struct {
	labels []string
	nums   []float64
}

func (b byValue) Len() int           { return len(b.labels) }
func (b byValue) Less(i, j int) bool { return b.nums[i] < b.nums[j] }
func (b byValue) Swap(i, j int) {
	b.labels[i], b.labels[j] = b.labels[j], b.labels[i]
	b.nums[i], b.nums[j] = b.nums[j], b.nums[i]
}

// String returns the group title and size.
func (g Group) String() string {
	return fmt.Sprintf("%s (%d participants)", g.Title, len(g.Rows.Records))
}
