// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Accumulator overlap-adds stereo block results into a growing buffer.
// Its length never shrinks.
type Accumulator struct {
	ch [2][]float64
}

// NewAccumulator returns an empty accumulator with room for capacity
// samples per channel.
func NewAccumulator(capacity int) *Accumulator {
	a := &Accumulator{}
	for i := range a.ch {
		a.ch[i] = make([]float64, 0, max(capacity, 0))
	}
	return a
}

// Len is the number of samples per channel.
func (a *Accumulator) Len() int { return len(a.ch[0]) }

// Channels returns the left and right buffers. They alias the accumulator.
func (a *Accumulator) Channels() [][]float64 { return [][]float64{a.ch[0], a.ch[1]} }

// Add sums left and right into the buffer starting at offset and appends
// whatever reaches past the current end. An offset before the start or
// past the end leaves a gap or rewrites history, both scheduler bugs.
func (a *Accumulator) Add(left, right []float64, offset int) {
	if offset < 0 || offset > a.Len() {
		panic(fmt.Sprintf("dsp: accumulator offset %d outside [0, %d]", offset, a.Len()))
	}
	if len(left) != len(right) {
		panic(fmt.Sprintf("dsp: channel results of %d and %d samples", len(left), len(right)))
	}

	for i, res := range [2][]float64{left, right} {
		buf := a.ch[i]

		overlap := min(len(buf)-offset, len(res))
		if overlap > 0 {
			vecmath.AddBlockInPlace(buf[offset:offset+overlap], res[:overlap])
		}

		a.ch[i] = append(buf, res[overlap:]...)
	}
}

// Peak is the largest absolute value over both channels.
func (a *Accumulator) Peak() float64 {
	return PeakFloat(a.ch[0], a.ch[1])
}
