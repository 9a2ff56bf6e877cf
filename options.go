// Copyright 2026 The floatconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatconv

// Flags controls RenderFloat64's output formatting. The zero value selects
// left-aligned, unsigned, dot-separated "%g"-style general formatting at the
// requested precision.
//
//go:generate stringer -type=Flags
type Flags uint32

const (
	// LeadingPlusSign emits a '+' prefix for non-negative values.
	LeadingPlusSign Flags = 1 << iota
	// AlignRight right-aligns the output within the destination buffer,
	// instead of writing from its start.
	AlignRight
	// DecimalSeparatorIsComma uses ',' instead of '.' as the separator
	// between integral and fractional digits.
	DecimalSeparatorIsComma
	// ExponentAbsent forces fixed-point ("%f"-style) output. Combined with
	// ExponentPresent, fixed-point still wins.
	ExponentAbsent
	// ExponentPresent forces scientific ("%e"-style) output, unless
	// ExponentAbsent is also set.
	ExponentPresent
	// JustEnoughPrecision ignores the requested precision and instead emits
	// the shortest decimal that reparses to the same float64.
	JustEnoughPrecision
)
