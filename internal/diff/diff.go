// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff compares report text in golden tests.
package diff

import (
	"fmt"
	"os"
	"os/exec"
)

// Lines returns a unified diff of want and got labelled with name, or
// "" if they are equal. It falls back to quoting both texts when no
// diff command is installed.
func Lines(name, want, got string) string {
	if want == got {
		return ""
	}
	if _, err := exec.LookPath("diff"); err != nil {
		return fmt.Sprintf("%s differs (diff command unavailable)\nwant: %q\ngot:  %q", name, want, got)
	}
	wantFile, err := writeTemp(want)
	if err != nil {
		return err.Error()
	}
	defer os.Remove(wantFile)
	gotFile, err := writeTemp(got)
	if err != nil {
		return err.Error()
	}
	defer os.Remove(gotFile)

	data, err := exec.Command("diff", "-u", "--label", name+" (want)", "--label", name+" (got)", wantFile, gotFile).CombinedOutput()
	if len(data) > 0 {
		// diff exits non-zero when the inputs differ.
		err = nil
	}
	if err != nil {
		data = append(data, err.Error()...)
	}
	return string(data)
}

func writeTemp(s string) (string, error) {
	f, err := os.CreateTemp("", "ttffstat_diff")
	if err != nil {
		return "", err
	}
	_, err = f.WriteString(s)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
