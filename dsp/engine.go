// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Engine convolves blocks with impulse responses through zero-padded FFTs
// of a fixed size. It owns scratch buffers and is not safe for concurrent
// use.
type Engine struct {
	size     int
	plan     *algofft.Plan[complex128]
	spectrum []complex128
	product  []complex128
}

// Kernel is an impulse response already transformed for one Engine size.
// Kernels are read-only and may be shared between engines of that size.
type Kernel struct {
	spectrum []complex128
	length   int
}

func NewEngine(fftSize int) (*Engine, error) {
	if fftSize <= 0 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("dsp: failed to create FFT plan: %w", err)
	}

	return &Engine{
		size:     fftSize,
		plan:     plan,
		spectrum: make([]complex128, fftSize),
		product:  make([]complex128, fftSize),
	}, nil
}

// Size is the FFT length, which is also the length of every result.
func (e *Engine) Size() int { return e.size }

// NewKernel transforms ir once so it can be reused for every block.
func (e *Engine) NewKernel(ir []float64) (*Kernel, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyKernel
	}
	if len(ir) > e.size {
		panic(fmt.Sprintf("dsp: impulse response of %d exceeds fft size %d", len(ir), e.size))
	}

	padded := make([]complex128, e.size)
	for i, v := range ir {
		padded[i] = complex(v, 0)
	}

	k := &Kernel{spectrum: make([]complex128, e.size), length: len(ir)}
	if err := e.plan.Forward(k.spectrum, padded); err != nil {
		return nil, fmt.Errorf("dsp: kernel FFT failed: %w", err)
	}

	return k, nil
}

// Convolve returns the linear convolution of block and ir, zero padded to
// Size. Both are transformed on every call; use NewKernel and
// ConvolveKernels when ir is reused.
func (e *Engine) Convolve(block, ir []float64) ([]float64, error) {
	k, err := e.NewKernel(ir)
	if err != nil {
		return nil, err
	}

	e.checkFits(len(block), k)
	e.load(block)

	if err := e.plan.Forward(e.spectrum, e.spectrum); err != nil {
		return nil, fmt.Errorf("dsp: forward FFT failed: %w", err)
	}

	out := make([]float64, e.size)
	if err := e.filter(out, k); err != nil {
		return nil, err
	}

	return out, nil
}

// ConvolveKernels transforms block once and filters it with every kernel,
// writing result i into dst[i]. Each dst[i] must hold Size values.
func (e *Engine) ConvolveKernels(dst [][]float64, block []int16, kernels ...*Kernel) error {
	if len(dst) < len(kernels) {
		panic(fmt.Sprintf("dsp: %d destinations for %d kernels", len(dst), len(kernels)))
	}

	for _, k := range kernels {
		e.checkFits(len(block), k)
	}

	clear(e.spectrum)
	for i, s := range block {
		e.spectrum[i] = complex(float64(s), 0)
	}

	if err := e.plan.Forward(e.spectrum, e.spectrum); err != nil {
		return fmt.Errorf("dsp: forward FFT failed: %w", err)
	}

	for i, k := range kernels {
		if err := e.filter(dst[i], k); err != nil {
			return err
		}
	}

	return nil
}

// checkFits panics when a block of n samples convolved with k would wrap
// around the FFT.
func (e *Engine) checkFits(n int, k *Kernel) {
	if len(k.spectrum) != e.size {
		panic(fmt.Sprintf("dsp: kernel built for fft size %d used with %d", len(k.spectrum), e.size))
	}
	if n+k.length-1 > e.size {
		panic(fmt.Sprintf("dsp: block of %d and kernel of %d exceed fft size %d", n, k.length, e.size))
	}
}

func (e *Engine) load(block []float64) {
	clear(e.spectrum)
	for i, v := range block {
		e.spectrum[i] = complex(v, 0)
	}
}

// filter multiplies the loaded spectrum by k and writes the real part of
// the inverse transform to dst. The imaginary part is rounding residue.
func (e *Engine) filter(dst []float64, k *Kernel) error {
	for i := range e.product {
		e.product[i] = e.spectrum[i] * k.spectrum[i]
	}

	if err := e.plan.Inverse(e.product, e.product); err != nil {
		return fmt.Errorf("dsp: inverse FFT failed: %w", err)
	}

	for i := range dst[:e.size] {
		dst[i] = real(e.product[i])
	}

	return nil
}
