// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float64ToInt16 truncates x toward zero into the int16 range.
// x is already expressed in sample units (not [-1,1]); values outside the
// representable range saturate.
func Float64ToInt16(x float64) int16 {
	if x >= math.MaxInt16 {
		return math.MaxInt16
	}
	if x <= math.MinInt16 {
		return math.MinInt16
	}
	return int16(x)
}

// Float32ToInt16 scales a [-1,1] sample to int16, clamping out of range input.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// AbsInt16 returns |v| widened to int so that -32768 does not overflow.
func AbsInt16(v int16) int {
	if v < 0 {
		return -int(v)
	}
	return int(v)
}
