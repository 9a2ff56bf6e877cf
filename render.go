// Copyright 2026 The floatconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatconv

import "math"

// RenderFloat64 writes the decimal representation of x into dst and returns
// the number of bytes written. If the formatted output would not fit in
// dst, RenderFloat64 writes nothing and returns 0.
//
// opts selects alignment, sign, and separator behavior, plus one of three
// format modes: fixed-point (ExponentAbsent), scientific (ExponentPresent),
// or general "%g"-style (neither flag; both flags together also select
// fixed-point). precision is the number of fractional digits for fixed-point
// and scientific modes, or the number of significant digits for general
// mode; it is ignored in favor of the shortest round-tripping
// representation when JustEnoughPrecision is set. precision above 4095 is
// clamped to 4095.
func RenderFloat64(dst []byte, x float64, precision uint32, opts Flags) int {
	bitPattern := math.Float64bits(x)
	neg := bitPattern>>63 != 0
	exp2 := int32(bitPattern>>52) & 0x7FF
	man := bitPattern & 0x000FFFFFFFFFFFFF

	if exp2 == 0x7FF {
		if man != 0 {
			return renderNaN(dst)
		}
		return renderInf(dst, neg, opts)
	} else if exp2 == 0 {
		exp2 = -1022
	} else {
		exp2 -= 1023
		man |= 0x0010000000000000
	}

	if precision > 4095 {
		precision = 4095
	}

	var h hpd
	h.assignUint64(man, neg)
	if h.numDigits > 0 {
		h.lshift(exp2 - 52)
	}

	// Unlike an exact-match switch on opts&(ExponentAbsent|ExponentPresent),
	// ExponentAbsent takes priority so that setting both flags together
	// still selects fixed-point, per the documented option semantics.
	switch {
	case opts&ExponentAbsent != 0:
		if opts&JustEnoughPrecision != 0 {
			h.roundJustEnough(exp2, man)
			p := int32(h.numDigits) - h.decimalPoint
			precision = uint32(max32(0, p))
		} else {
			h.roundNearest(int32(precision) + h.decimalPoint)
		}
		return h.renderExponentAbsent(dst, precision, opts)

	case opts&ExponentPresent != 0:
		if opts&JustEnoughPrecision != 0 {
			h.roundJustEnough(exp2, man)
			precision = 0
			if h.numDigits > 0 {
				precision = h.numDigits - 1
			}
		} else {
			h.roundNearest(int32(precision) + 1)
		}
		return h.renderExponentPresent(dst, precision, opts)
	}

	// General ("%g"-style) mode: precision counts significant digits, not
	// fractional digits. Round first, then decide between fixed-point and
	// scientific based on the resulting exponent.
	var eThreshold int32
	if opts&JustEnoughPrecision != 0 {
		h.roundJustEnough(exp2, man)
		precision = h.numDigits
		eThreshold = 6
	} else {
		if precision == 0 {
			precision = 1
		}
		h.roundNearest(int32(precision))
		eThreshold = int32(precision)
		nd := int32(h.numDigits)
		if eThreshold > nd && nd >= h.decimalPoint {
			eThreshold = nd
		}
	}

	e := h.decimalPoint - 1
	if e < -4 || eThreshold <= e {
		p := min32u(precision, h.numDigits)
		if p > 0 {
			p--
		}
		return h.renderExponentPresent(dst, p, opts)
	}

	p := int32(precision)
	if p > h.decimalPoint {
		p = int32(h.numDigits)
	}
	precision = uint32(max32(0, p-h.decimalPoint))
	return h.renderExponentAbsent(dst, precision, opts)
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32u(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

// renderInf writes "Inf", "-Inf", or "+Inf" (the latter when
// LeadingPlusSign is set) into dst, left-aligned, and returns the byte
// count, or 0 if dst is too small.
func renderInf(dst []byte, neg bool, opts Flags) int {
	switch {
	case neg:
		if len(dst) < 4 {
			return 0
		}
		copy(dst, "-Inf")
		return 4
	case opts&LeadingPlusSign != 0:
		if len(dst) < 4 {
			return 0
		}
		copy(dst, "+Inf")
		return 4
	default:
		if len(dst) < 3 {
			return 0
		}
		copy(dst, "Inf")
		return 3
	}
}

// renderNaN writes "NaN" into dst and returns 3, or 0 if dst is too small.
func renderNaN(dst []byte) int {
	if len(dst) < 3 {
		return 0
	}
	copy(dst, "NaN")
	return 3
}

// renderExponentAbsent renders h as fixed-point notation: an optional sign,
// the integral digits (at least one, even if zero), an optional separator,
// and exactly precision fractional digits.
func (h *hpd) renderExponentAbsent(dst []byte, precision uint32, opts Flags) int {
	n := 0
	if h.negative || opts&LeadingPlusSign != 0 {
		n = 1
	}
	if h.decimalPoint <= 0 {
		n++
	} else {
		n += int(h.decimalPoint)
	}
	if precision > 0 {
		n += int(precision) + 1 // +1 for the separator.
	}

	if n > len(dst) {
		return 0
	}

	buf := dst[:n]
	if opts&AlignRight != 0 {
		buf = dst[len(dst)-n:]
	}
	i := 0

	if h.negative {
		buf[i] = '-'
		i++
	} else if opts&LeadingPlusSign != 0 {
		buf[i] = '+'
		i++
	}

	if h.decimalPoint <= 0 {
		buf[i] = '0'
		i++
	} else {
		m := minU32(h.numDigits, uint32(h.decimalPoint))
		var j uint32
		for ; j < m; j++ {
			buf[i] = '0' | h.digits[j]
			i++
		}
		for ; j < uint32(h.decimalPoint); j++ {
			buf[i] = '0'
			i++
		}
	}

	if precision > 0 {
		if opts&DecimalSeparatorIsComma != 0 {
			buf[i] = ','
		} else {
			buf[i] = '.'
		}
		i++
		for k := uint32(0); k < precision; k++ {
			j := uint32(h.decimalPoint) + k
			var d uint8
			if j < h.numDigits {
				d = h.digits[j]
			}
			buf[i] = '0' | d
			i++
		}
	}

	return n
}

// renderExponentPresent renders h as scientific notation: an optional sign,
// one integral digit, an optional separator and precision fractional
// digits, then 'e', a sign, and a 2- or 3-digit exponent.
func (h *hpd) renderExponentPresent(dst []byte, precision uint32, opts Flags) int {
	var exp int32
	if h.numDigits > 0 {
		exp = h.decimalPoint - 1
	}
	negativeExp := exp < 0
	if negativeExp {
		exp = -exp
	}

	n := 3
	if h.negative || opts&LeadingPlusSign != 0 {
		n = 4
	}
	if precision > 0 {
		n += int(precision) + 1
	}
	if exp < 100 {
		n += 2
	} else {
		n += 3
	}

	if n > len(dst) {
		return 0
	}

	buf := dst[:n]
	if opts&AlignRight != 0 {
		buf = dst[len(dst)-n:]
	}
	i := 0

	if h.negative {
		buf[i] = '-'
		i++
	} else if opts&LeadingPlusSign != 0 {
		buf[i] = '+'
		i++
	}

	if h.numDigits > 0 {
		buf[i] = '0' | h.digits[0]
	} else {
		buf[i] = '0'
	}
	i++

	if precision > 0 {
		if opts&DecimalSeparatorIsComma != 0 {
			buf[i] = ','
		} else {
			buf[i] = '.'
		}
		i++
		j := uint32(1)
		last := minU32(h.numDigits, precision+1)
		for ; j < last; j++ {
			buf[i] = '0' | h.digits[j]
			i++
		}
		for ; j <= precision; j++ {
			buf[i] = '0'
			i++
		}
	}

	buf[i] = 'e'
	i++
	if negativeExp {
		buf[i] = '-'
	} else {
		buf[i] = '+'
	}
	i++
	switch {
	case exp < 10:
		buf[i] = '0'
		buf[i+1] = '0' | uint8(exp)
		i += 2
	case exp < 100:
		buf[i] = '0' | uint8(exp/10)
		buf[i+1] = '0' | uint8(exp%10)
		i += 2
	default:
		e := exp / 100
		exp -= e * 100
		buf[i] = '0' | uint8(e)
		buf[i+1] = '0' | uint8(exp/10)
		buf[i+2] = '0' | uint8(exp%10)
		i += 3
	}

	return n
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
