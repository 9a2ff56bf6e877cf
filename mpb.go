// Copyright 2026 The floatconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatconv

import (
	"math"
	"math/bits"
)

// mpb (medium-precision binary) is a fixed-precision floating-point binary
// number: a 64-bit mantissa and a 32-bit base-2 exponent, with no implicit
// mantissa bit and no sign (sign is carried externally by the caller). It
// cannot represent infinity or NaN.
//
// mpb is normalized iff mantissa is zero or its top bit (1<<63) is set. The
// zero value represents +0.
//
// This is the "Do It Yourself Floating Point" representation from Loitsch,
// "Printing Floating-Point Numbers Quickly and Accurately with Integers"
// (https://www.cs.tufts.edu/~nr/cs257/archive/florian-loitsch/printf.pdf).
type mpb struct {
	mantissa uint64
	exp2     int32
}

// normalize left-shifts m's mantissa so that its top bit is set (unless the
// mantissa is zero), adjusting exp2 to compensate, and returns the shift
// amount so callers can scale an accumulated error estimate by the same
// factor.
func (m *mpb) normalize() uint32 {
	if m.mantissa == 0 {
		return 0
	}
	shift := uint32(bits.LeadingZeros64(m.mantissa))
	m.mantissa <<= shift
	m.exp2 -= int32(shift)
	return shift
}

// mulPow10 sets m to m * the power of ten described by p. The result is
// rounded but not necessarily normalized.
//
// Only the high 64 bits of p's 128-bit mantissa (p.mantHi) take part: m's own
// mantissa is likewise just the top 64 bits of an implicit binary fraction,
// so the product only needs the top half of the full 128x128 multiply.
//
// Preconditions: m.mantissa is non-zero and normalized; p is a normalized
// truncated power-of-ten approximation (see tables.go).
func (m *mpb) mulPow10(p *powerOfTen) {
	hi, lo := bits.Mul64(m.mantissa, p.mantHi)
	// Round the mantissa up by inspecting the top bit of the discarded low
	// word. This cannot overflow because the maximum possible value of hi is
	// 0xFFFFFFFFFFFFFFFE.
	m.mantissa = hi + (lo >> 63)
	m.exp2 = m.exp2 + p.biasedExp2 + 128 - powerOfTenExpBias
}

// asF64 converts m to a float64, applying the given sign.
//
// Preconditions: m.mantissa is non-zero and normalized.
func (m *mpb) asF64(negative bool) float64 {
	mantissa64 := m.mantissa
	// mpb's implicit binary point sits at the right of the mantissa's
	// explicit bits; float64's sits near the left, with an implicit leading
	// 1 bit. Together that difference in convention amounts to adding 63.
	exp2 := m.exp2 + 63

	if exp2 < -1022 {
		n := uint32(-1022 - exp2)
		mantissa64 >>= n
		exp2 += int32(n)
	}

	// Extract the (1 + 52) bits from the 64-bit mantissa64; 52 is the number
	// of explicit mantissa bits in a float64.
	mantissa53 := mantissa64 >> 11

	// Round up if the highest dropped bit (old bit #10) was set, fixing any
	// overflow from the round.
	if mantissa64&1024 != 0 {
		mantissa53++
		if mantissa53>>53 != 0 {
			mantissa53 >>= 1
			exp2++
		}
	}

	// Handle float64 infinity (nominal exponent 1024) and subnormals
	// (exponent -1023, no implicit mantissa bit).
	switch {
	case exp2 >= 1024:
		mantissa53 = 0
		exp2 = 1024
	case mantissa53>>52 == 0:
		exp2 = -1023
	}

	const f64Bias = -1023
	exp2Bits := uint64(exp2-f64Bias) & 0x7FF
	bitPattern := mantissa53&0x000FFFFFFFFFFFFF | exp2Bits<<52
	if negative {
		bitPattern |= 0x8000000000000000
	}
	return math.Float64frombits(bitPattern)
}

// parseNumberF64Fast converts h to a float64 using m as scratch space. It
// returns ok == false if there is any ambiguity in the rounding to a
// float64, signalling the caller to fall back to the slow hpd path.
//
// skipFastPath skips the exact-mantissa shortcut and always goes through the
// general mulPow10-plus-error-bound path, for exercising that path in tests
// even on inputs that would otherwise take the trivial shortcut.
func parseNumberF64Fast(m *mpb, h *hpd, skipFastPath bool) (value float64, ok bool) {
	var error_ uint64

	iEnd := h.numDigits
	if iEnd > 19 {
		iEnd = 19
		error_ = 1
	}
	var mantissa uint64
	for i := uint32(0); i < iEnd; i++ {
		mantissa = 10*mantissa + uint64(h.digits[i])
	}
	m.mantissa = mantissa
	m.exp2 = 0

	exp10 := h.decimalPoint - int32(iEnd)
	if exp10 < -326 || exp10 > 310 {
		return 0, false
	}

	// Exact-float shortcut: mantissa fits in a float64 mantissa exactly.
	if !skipFastPath && mantissa>>52 == 0 {
		d := float64(mantissa)
		switch {
		case exp10 == 0:
			return signedOrZero(d, h.negative), true
		case exp10 > 0:
			e := exp10
			if e > 22 {
				if e > 15+22 {
					goto slow
				}
				d *= exactPowersOfTen[e-22]
				e = 22
				if d >= 1e15 {
					goto slow
				}
			}
			d *= exactPowersOfTen[e]
			return signedOrZero(d, h.negative), true
		default: // exp10 < 0
			if exp10 < -22 {
				goto slow
			}
			d /= exactPowersOfTen[-exp10]
			return signedOrZero(d, h.negative), true
		}
	}

slow:
	error_ <<= m.normalize()

	m.mulPow10(&powersOfTen[exp10+326])
	error_ += 2
	error_ <<= m.normalize()

	// Determine the number of surplus mantissa bits that will be dropped
	// going from m's 64 bits down to float64's 1+52, then check whether the
	// tracked error could flip the rounding decision.
	const f64Bias = -1023
	subnormalExp2 := int32(f64Bias - 63)
	surplusBits := uint32(11)
	if subnormalExp2 >= m.exp2 {
		surplusBits += 1 + uint32(subnormalExp2-m.exp2)
	}

	surplusMask := uint64(1)<<surplusBits - 1
	surplus := m.mantissa & surplusMask
	halfway := uint64(1) << (surplusBits - 1)

	iSurplus := int64(surplus)
	iHalfway := int64(halfway)
	iError := int64(error_)

	if iSurplus > iHalfway-iError && iSurplus < iHalfway+iError {
		return 0, false
	}
	return m.asF64(h.negative), true
}

func signedOrZero(d float64, negative bool) float64 {
	if negative {
		return -d
	}
	return d
}
