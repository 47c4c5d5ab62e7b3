// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/ik5/binaural/utils"
)

// BuildWindow returns a Hann window of length n,
// w[i] = 0.5 * (1 - cos(2*pi*i/n)). Coefficients are held at half
// precision, the resolution the renderer has always applied them with.
func BuildWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = utils.Half(0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n))))
	}
	return w
}

// Window applies a fixed window to blocks in place. It keeps its own
// scratch buffer, so use one per worker.
type Window struct {
	coeffs  []float64
	scratch []float64
}

func NewWindow(n int) *Window {
	return &Window{
		coeffs:  BuildWindow(n),
		scratch: make([]float64, n),
	}
}

// Apply multiplies samples by the window and truncates back to int16.
// samples must have the window's length.
func (w *Window) Apply(samples []int16) {
	if len(samples) != len(w.coeffs) {
		panic(fmt.Sprintf("dsp: window of %d applied to block of %d", len(w.coeffs), len(samples)))
	}

	for i, s := range samples {
		w.scratch[i] = float64(s)
	}

	vecmath.MulBlockInPlace(w.scratch, w.coeffs)

	for i, v := range w.scratch {
		samples[i] = int16(v)
	}
}
