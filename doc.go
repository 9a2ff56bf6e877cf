// Copyright 2026 The floatconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floatconv converts between textual decimal representations and
// IEEE 754 binary64 (float64) values.
//
// ParseFloat64 parses decimal notation, scientific notation, and the special
// tokens Inf/Infinity/NaN into a correctly-rounded float64. RenderFloat64
// writes a float64 back out as decimal text, either to an exact precision or
// to the shortest precision that round-trips, into a caller-supplied buffer.
//
// The package is built around two internal numeric kernels:
//
//   - hpd, a high-precision decimal carrying up to 800 decimal digits with a
//     separately tracked decimal point. It supports arbitrary binary
//     left/right shifts and correctly-rounded truncation, and backs both the
//     slow-but-exact parse path and all of rendering.
//   - mpb, a medium-precision binary with a 64-bit mantissa and a 32-bit
//     exponent, multiplied against pre-tabulated 128-bit approximations of
//     powers of ten. This gives a fast parse path with rigorous error
//     tracking; when the tracked error overlaps a rounding boundary, parsing
//     falls back to the hpd path.
//
// Every operation is a pure function of its arguments (aside from the
// caller-provided output buffer): there is no heap allocation other than the
// *SyntaxError returned for unparseable input, no shared mutable state, and no global cache, so the package is trivially safe for
// concurrent use.
package floatconv
