// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import "errors"

var (
	// ErrInsufficientData indicates that a sample or a set of
	// groups is too small for a test.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDomain indicates that a transformation's precondition
	// doesn't hold, for example a logarithm of a value <= 0.
	ErrDomain = errors.New("value outside transformation domain")

	// ErrNumerical indicates that a test statistic could not be
	// computed, for example because all values are identical.
	ErrNumerical = errors.New("numerical error")
)
