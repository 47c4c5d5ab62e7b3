// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// RoundHalfAwayFromZero rounds x to the closest integer, choosing the value
// farther from zero when x sits exactly between two integers.
//
// Unlike math.RoundToEven it never rounds 0.5 down, so 0.5 gives 1 and
// -9.5 gives -10.
func RoundHalfAwayFromZero(x float64) int {
	floor := math.Floor(x)

	if x >= 0 {
		if x-floor < 0.5 {
			return int(floor)
		}
		return int(math.Ceil(x))
	}

	// distance measured from the floor, so the boundary is inclusive here
	if x-floor <= 0.5 {
		return int(floor)
	}
	return int(math.Ceil(x))
}
