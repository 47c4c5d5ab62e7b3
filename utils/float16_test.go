// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"

	"github.com/x448/float16"
)

func TestHalf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1, 1},
		{-2, -2},
		{0.5, 0.5},
		{0.884983, 0.884765625},   // 1812/2048
		{0.885200, 0.88525390625}, // 1813/2048
		{65504, 65504},            // largest finite half
	}

	for _, tt := range tests {
		if got := Half(tt.in); got != tt.want {
			t.Errorf("Half(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHalf_Subnormal(t *testing.T) {
	t.Parallel()

	// smallest positive subnormal half is 2^-24
	tiny := math.Ldexp(1, -24)
	if got := Half(tiny); got != tiny {
		t.Errorf("Half(2^-24) = %v, want %v", got, tiny)
	}
	if got := Half(math.Ldexp(1, -30)); got != 0 {
		t.Errorf("Half(2^-30) = %v, want 0", got)
	}
}

func TestHalf_Overflow(t *testing.T) {
	t.Parallel()

	if got := Half(1e6); !math.IsInf(got, 1) {
		t.Errorf("Half(1e6) = %v, want +Inf", got)
	}
	if got := Half(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Half(NaN) = %v, want NaN", got)
	}
}

func TestHalf_TiesToEven(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{1 + math.Ldexp(1, -11), 1},                       // halfway, even neighbour below
		{1 + 3*math.Ldexp(1, -11), 1 + math.Ldexp(1, -9)}, // halfway, even neighbour above
		{-(1 + math.Ldexp(1, -11)), -1},
	}

	for _, tt := range tests {
		if got := Half(tt.in); got != tt.want {
			t.Errorf("Half(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHalf_Idempotent(t *testing.T) {
	t.Parallel()

	// every finite half value is already rounded
	for h := range uint16(0x7c00) {
		v := float64(float16.Frombits(h).Float32())
		if got := Half(v); got != v {
			t.Fatalf("Half(%v) = %v for bits %#04x", v, got, h)
		}
	}
}
