// Copyright 2026 The floatconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatconv

import "math"

// shiftPowers maps the number of decimal digits remaining in an hpd's
// integer part to a binary shift that brings the value closer to [½, 1),
// without overshooting past hpdShiftMaxIncl.
var shiftPowers = [19]uint8{
	0, 3, 6, 9, 13, 16, 19, 23, 26, 29, //
	33, 36, 39, 43, 46, 49, 53, 56, 59,
}

// ParseFloat64 parses s as a float64.
//
// s may be decimal or scientific notation (see hpd.parse for the grammar),
// or one of the special tokens Inf, Infinity, or NaN, each case-insensitive,
// optionally signed, and optionally padded with '_' before the sign, between
// the sign and the token, and after the token (not inside it). The result is correctly rounded: of all float64 values, it returns
// the one closest to the exact mathematical value of s, with ties broken to
// even.
//
// On any syntax error, ParseFloat64 returns 0 and a *SyntaxError.
func ParseFloat64(s []byte) (float64, error) {
	var h hpd
	if err := h.parse(s); err != nil {
		return parseSpecial(s, err)
	}

	// Handle zero and obvious extremes. The largest and smallest positive
	// finite float64 values are approximately 1.8e+308 and 4.9e-324.
	switch {
	case h.numDigits == 0 || h.decimalPoint < -326:
		return signedZero(h.negative), nil
	case h.decimalPoint > 310:
		return signedInf(h.negative), nil
	}

	var m mpb
	if v, ok := parseNumberF64Fast(&m, &h, false); ok {
		return v, nil
	}
	return parseSlow(&h), nil
}

// parseSlow brings h into the range [½, 1) via repeated binary shifts,
// tracking the resulting binary exponent, then extracts a correctly-rounded
// 53-bit mantissa. It is the exact, if slower, fallback from the mpb fast
// path.
func parseSlow(h *hpd) float64 {
	const f64Bias = -1023

	var exp2 int32
	for h.decimalPoint > 0 {
		n := uint32(h.decimalPoint)
		shift := uint32(hpdShiftMaxIncl)
		if n < uint32(len(shiftPowers)) {
			shift = uint32(shiftPowers[n])
		}
		h.smallRshift(shift)
		if h.decimalPoint < -hpdDecimalPointRange {
			return signedZero(h.negative)
		}
		exp2 += int32(shift)
	}
	for h.decimalPoint <= 0 {
		var shift uint32
		if h.decimalPoint == 0 {
			if h.digits[0] >= 5 {
				break
			}
			if h.digits[0] <= 2 {
				shift = 2
			} else {
				shift = 1
			}
		} else {
			n := uint32(-h.decimalPoint)
			shift = uint32(hpdShiftMaxIncl)
			if n < uint32(len(shiftPowers)) {
				shift = uint32(shiftPowers[n])
			}
		}
		h.smallLshift(shift)
		if h.decimalPoint > hpdDecimalPointRange {
			return signedInf(h.negative)
		}
		exp2 -= int32(shift)
	}

	// We're in [½, 1) but float64 uses [1, 2).
	exp2--

	for (f64Bias + 1) > exp2 {
		n := uint32((f64Bias + 1) - exp2)
		if n > hpdShiftMaxIncl {
			n = hpdShiftMaxIncl
		}
		h.smallRshift(n)
		exp2 += int32(n)
	}

	if exp2-f64Bias >= 0x7FF {
		return signedInf(h.negative)
	}

	h.smallLshift(53)
	man2 := h.roundedInteger()

	if man2>>53 != 0 {
		man2 >>= 1
		exp2++
		if exp2-f64Bias >= 0x7FF {
			return signedInf(h.negative)
		}
	}

	if man2>>52 == 0 {
		exp2 = f64Bias
	}

	exp2Bits := uint64(exp2-f64Bias) & 0x7FF
	bitPattern := man2&0x000FFFFFFFFFFFFF | exp2Bits<<52
	if h.negative {
		bitPattern |= 0x8000000000000000
	}
	return math.Float64frombits(bitPattern)
}

func signedZero(negative bool) float64 {
	if negative {
		return math.Float64frombits(0x8000000000000000)
	}
	return 0
}

func signedInf(negative bool) float64 {
	if negative {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// parseSpecial recognizes the case-insensitive tokens Inf, Infinity, and NaN,
// each with an optional sign and optional '_' padding, matching the padding
// rules of the decimal grammar. fallbackErr is wrapped into the returned
// error when s matches none of them.
func parseSpecial(s []byte, fallbackErr error) (float64, error) {
	p, q := 0, len(s)
	for p < q && s[p] == '_' {
		p++
	}
	if p >= q {
		return 0, &SyntaxError{Input: s, Err: fallbackErr}
	}

	negative := false
	switch s[p] {
	case '+':
		p++
	case '-':
		negative = true
		p++
	}
	for p < q && s[p] == '_' {
		p++
	}
	if p >= q {
		return 0, &SyntaxError{Input: s, Err: fallbackErr}
	}

	isNaN := false
	switch s[p] {
	case 'I', 'i':
		if q-p < 3 || !eqFold(s[p+1], 'N') || !eqFold(s[p+2], 'F') {
			return 0, &SyntaxError{Input: s, Err: fallbackErr}
		}
		p += 3
		switch {
		case p >= q || s[p] == '_':
			// "Inf", bare.
		case q-p >= 5 && eqFold(s[p], 'I') && eqFold(s[p+1], 'N') &&
			eqFold(s[p+2], 'I') && eqFold(s[p+3], 'T') && eqFold(s[p+4], 'Y'):
			p += 5
			if p < q && s[p] != '_' {
				return 0, &SyntaxError{Input: s, Err: fallbackErr}
			}
		default:
			return 0, &SyntaxError{Input: s, Err: fallbackErr}
		}
	case 'N', 'n':
		if q-p < 3 || !eqFold(s[p+1], 'A') || !eqFold(s[p+2], 'N') {
			return 0, &SyntaxError{Input: s, Err: fallbackErr}
		}
		p += 3
		if p < q && s[p] != '_' {
			return 0, &SyntaxError{Input: s, Err: fallbackErr}
		}
		isNaN = true
	default:
		return 0, &SyntaxError{Input: s, Err: fallbackErr}
	}

	for p < q && s[p] == '_' {
		p++
	}
	if p != q {
		return 0, &SyntaxError{Input: s, Err: fallbackErr}
	}

	var bitPattern uint64
	if isNaN {
		bitPattern = 0x7FFFFFFFFFFFFFFF
	} else {
		bitPattern = 0x7FF0000000000000
	}
	if negative {
		bitPattern |= 0x8000000000000000
	}
	return math.Float64frombits(bitPattern), nil
}

// eqFold reports whether b, an ASCII letter, equals upper (already
// uppercase) in either case.
func eqFold(b, upper byte) bool {
	return b == upper || b == upper+('a'-'A')
}
