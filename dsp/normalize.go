// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/ik5/binaural/utils"
)

// MaxAmplitude is the normalization target for 16-bit output.
const MaxAmplitude = math.MaxInt16

// PeakInt16 returns the largest absolute sample value.
func PeakInt16(samples []int16) int {
	peak := 0
	for _, s := range samples {
		peak = max(peak, utils.AbsInt16(s))
	}
	return peak
}

// PeakFloat returns the largest absolute value over all channels.
func PeakFloat(channels ...[]float64) float64 {
	peak := 0.0
	for _, ch := range channels {
		for _, v := range ch {
			peak = max(peak, math.Abs(v))
		}
	}
	return peak
}

// NormalizeInt16 scales samples in place so that a sample of magnitude
// peak becomes target, truncating toward zero, and returns the new peak.
// A zero peak leaves samples untouched.
func NormalizeInt16(samples []int16, peak, target int) int {
	if peak == 0 {
		return 0
	}

	f := float64(target)
	p := float64(peak)
	for i, s := range samples {
		samples[i] = utils.Float64ToInt16(float64(s) * f / p)
	}

	return PeakInt16(samples)
}

// Normalize scales all channels by one common factor so the loudest value
// maps to target, truncates to int16 and interleaves the result. The
// common factor keeps the level difference between the ears. Silent input
// is converted without scaling.
func Normalize(channels [][]float64, target float64) []int16 {
	return normalize(channels, target, false)
}

// NormalizeEach is Normalize with a separate factor per channel, so every
// channel peaks at target. Level differences between channels are lost.
// A silent channel is converted without scaling.
func NormalizeEach(channels [][]float64, target float64) []int16 {
	return normalize(channels, target, true)
}

func normalize(channels [][]float64, target float64, each bool) []int16 {
	if len(channels) == 0 {
		return nil
	}

	n := len(channels[0])
	for _, ch := range channels {
		if len(ch) != n {
			panic(fmt.Sprintf("dsp: channels of %d and %d samples", n, len(ch)))
		}
	}

	peak := PeakFloat(channels...)
	scratch := make([]float64, n)

	nch := len(channels)
	out := make([]int16, n*nch)
	for c, ch := range channels {
		if each {
			peak = PeakFloat(ch)
		}
		src := ch
		if peak != 0 {
			vecmath.ScaleBlock(scratch, ch, target/peak)
			src = scratch
		}
		for i, v := range src {
			out[i*nch+c] = utils.Float64ToInt16(v)
		}
	}

	return out
}
