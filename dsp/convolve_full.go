// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math/bits"
)

// ConvolveFull returns the complete linear convolution of signal and filter,
// len(signal)+len(filter)-1 samples, computed by overlap-add with an FFT
// twice the next power of two of the filter length.
func ConvolveFull(signal, filter []float64) ([]float64, error) {
	if len(filter) == 0 {
		return nil, ErrEmptyKernel
	}
	if len(signal) == 0 {
		return nil, nil
	}

	size := 2 << bits.Len(uint(len(filter)-1))
	eng, err := NewEngine(size)
	if err != nil {
		return nil, err
	}

	k, err := eng.NewKernel(filter)
	if err != nil {
		return nil, fmt.Errorf("inverse filter: %w", err)
	}

	step := size - len(filter) + 1
	out := make([]float64, len(signal)+len(filter)-1)
	res := make([]float64, size)

	for start := 0; start < len(signal); start += step {
		chunk := signal[start:min(start+step, len(signal))]

		eng.load(chunk)
		if err := eng.plan.Forward(eng.spectrum, eng.spectrum); err != nil {
			return nil, fmt.Errorf("dsp: forward FFT failed: %w", err)
		}
		if err := eng.filter(res, k); err != nil {
			return nil, err
		}

		n := min(len(chunk)+len(filter)-1, len(out)-start)
		for i := range n {
			out[start+i] += res[i]
		}
	}

	return out, nil
}
