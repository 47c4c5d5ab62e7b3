// SPDX-License-Identifier: EPL-2.0

package utils

import "github.com/x448/float16"

// Half rounds x to the nearest IEEE 754 binary16 value, ties to even, and
// widens it back. Coefficient tables that were published at half precision
// are rebuilt with it so they match bit for bit.
func Half(x float64) float64 {
	return float64(float16.Fromfloat32(float32(x)).Float32())
}
