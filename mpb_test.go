// Copyright 2026 The floatconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatconv

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMPB_Normalize(t *testing.T) {
	tests := []struct {
		mantissa uint64
		wantExp2 int32
	}{
		{0x8000000000000000, 0},
		{0x4000000000000000, -1},
		{0x0000000000000001, -63},
		{0, 0},
	}
	for _, tc := range tests {
		m := mpb{mantissa: tc.mantissa, exp2: 0}
		shift := m.normalize()
		assert.Equal(t, tc.wantExp2, m.exp2)
		if tc.mantissa != 0 {
			assert.Equal(t, uint32(bits.LeadingZeros64(tc.mantissa)), shift)
			assert.NotZero(t, m.mantissa&0x8000000000000000)
		}
	}
}

func TestMPB_AsF64_Basic(t *testing.T) {
	// 1.0 == 2**63 * 2**-63: a mantissa with only its top bit set and
	// exp2 == -63 (mpb's value is mantissa * 2**exp2).
	m := mpb{mantissa: 0x8000000000000000, exp2: -63}
	got := m.asF64(false)
	assert.Equal(t, float64(1), got)

	m = mpb{mantissa: 0x8000000000000000, exp2: -63}
	got = m.asF64(true)
	assert.Equal(t, float64(-1), got)
}

func TestMPB_AsF64_Subnormal(t *testing.T) {
	// A mantissa normalized with an exponent far enough below -1022 that
	// asF64 must shift right into subnormal range.
	m := mpb{mantissa: 0x8000000000000000, exp2: -1200}
	got := m.asF64(false)
	assert.True(t, got == 0 || (got > 0 && got < math.SmallestNonzeroFloat64*1e10))
}

func TestMPB_MulPow10_OneTimesOne(t *testing.T) {
	var m mpb
	m.mantissa = 1
	m.exp2 = 0
	m.normalize()
	// powersOfTen[326] corresponds to 10^0 per the (exp10 + 326) indexing in
	// tables.go.
	m.mulPow10(&powersOfTen[326])
	m.normalize() // mulPow10 does not guarantee a normalized result.
	got := m.asF64(false)
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestParseNumberF64Fast_ExactShortcuts(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1", 1},
		{"100", 100},
		{"0.5", 0.5},
		{"2.5", 2.5},
		{"12345", 12345},
	}
	for _, tc := range tests {
		var h hpd
		require.NoError(t, h.parse([]byte(tc.in)))
		var m mpb
		got, ok := parseNumberF64Fast(&m, &h, false)
		require.True(t, ok, "expected fast path to succeed for %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseNumberF64Fast_SkipShortcutStillSucceeds(t *testing.T) {
	// skipFastPath only bypasses the trivial exact-mantissa shortcut; the
	// general mulPow10-plus-error-bound path must still resolve an
	// unambiguous value like 1.5 correctly.
	var h hpd
	require.NoError(t, h.parse([]byte("1.5")))
	var m mpb
	got, ok := parseNumberF64Fast(&m, &h, true)
	require.True(t, ok)
	assert.Equal(t, 1.5, got)
}
