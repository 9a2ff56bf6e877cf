// Copyright 2026 The floatconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatconv

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat64_Exact(t *testing.T) {
	tests := []struct {
		name string
		in   string
		bits uint64
	}{
		{"zero", "0", 0},
		{"negative zero", "-0", 0x8000000000000000},
		{"one", "1", 0x3FF0000000000000},
		{"pi", "3.14159265358979323846", 0x400921FB54442D18},
		{"negative pi", "-3.14159265358979323846", 0xC00921FB54442D18},
		{"scientific", "1.5e10", math.Float64bits(1.5e10)},
		{"leading separator digits", "1_234.5", math.Float64bits(1234.5)},
		{"comma separator", "1,5", math.Float64bits(1.5)},
		{"leading plus", "+2.5", math.Float64bits(2.5)},
		{"bare dot fraction", ".5", math.Float64bits(0.5)},
		{"trailing dot", "5.", math.Float64bits(5)},
		{"smallest subnormal", "5e-324", 0x0000000000000001},
		{"below half-subnormal rounds to zero", "1e-324", 0},
		{"huge exponent saturates to zero", "1e-400", 0},
		{"huge exponent saturates to inf", "1e309", math.Float64bits(math.Inf(1))},
		{"absurd exponent clamp still saturates", "1e999999999999", math.Float64bits(math.Inf(1))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFloat64([]byte(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.bits, math.Float64bits(got), "parsing %q", tc.in)
		})
	}
}

func TestParseFloat64_SpecialTokens(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"Inf", math.Inf(1)},
		{"-inf", math.Inf(-1)},
		{"+INFINITY", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"_+_Inf_", math.Inf(1)},
		{"NaN", math.NaN()},
		{"-nan", math.NaN()},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFloat64([]byte(tc.in))
			require.NoError(t, err)
			if math.IsNaN(tc.want) {
				assert.True(t, math.IsNaN(got))
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFloat64_Errors(t *testing.T) {
	tests := []string{
		"",
		"+",
		"-",
		"...",
		"1..2",
		"00.5",
		"007",
		"1e",
		"1e+",
		"_",
		"abc",
		"1.5x",
		"Infi",
		"In_f",
		"NaNaN",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseFloat64([]byte(in))
			require.Error(t, err)
			var synErr *SyntaxError
			require.True(t, errors.As(err, &synErr))
			assert.Equal(t, in, string(synErr.Input))
		})
	}
}

func TestParseFloat64_SlowPathAgreesWithFast(t *testing.T) {
	// The first value sits exactly halfway between two float64s, so the fast
	// path's error check gives up and ParseFloat64 falls back to parseSlow;
	// the other two are boundary values that the fast path resolves. Each is
	// also fed to parseSlow directly, so both paths are checked against the
	// same known-correct bit pattern.
	tests := []struct {
		in   string
		bits uint64
	}{
		{"9007199254740993", 0x4340000000000000}, // 2^53 + 1, rounds to even (down).
		{"1.7976931348623157e308", 0x7FEFFFFFFFFFFFFF},
		{"2.2250738585072014e-308", 0x0010000000000000}, // smallest normal
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFloat64([]byte(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.bits, math.Float64bits(got))

			var h hpd
			require.NoError(t, h.parse([]byte(tc.in)))
			assert.Equal(t, tc.bits, math.Float64bits(parseSlow(&h)))
		})
	}
}
