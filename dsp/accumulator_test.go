// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestAccumulator_Add(t *testing.T) {
	t.Parallel()

	a := NewAccumulator(0)

	a.Add([]float64{1, 2, 3}, []float64{-1, -2, -3}, 0)
	a.Add([]float64{10, 20, 30}, []float64{0, 0, 0}, 2)
	a.Add([]float64{1}, []float64{1}, 5) // appending right at the end

	wantL := []float64{1, 2, 13, 20, 30, 1}
	wantR := []float64{-1, -2, -3, 0, 0, 1}

	ch := a.Channels()
	if a.Len() != len(wantL) {
		t.Fatalf("Len() = %d, want %d", a.Len(), len(wantL))
	}
	for i := range wantL {
		if ch[0][i] != wantL[i] || ch[1][i] != wantR[i] {
			t.Fatalf("sample %d = (%v, %v), want (%v, %v)", i, ch[0][i], ch[1][i], wantL[i], wantR[i])
		}
	}

	if a.Peak() != 30 {
		t.Errorf("Peak() = %v, want 30", a.Peak())
	}
}

func TestAccumulator_NeverShrinks(t *testing.T) {
	t.Parallel()

	a := NewAccumulator(16)
	a.Add(make([]float64, 10), make([]float64, 10), 0)
	a.Add(make([]float64, 2), make([]float64, 2), 3)

	if a.Len() != 10 {
		t.Errorf("Len() = %d, want 10", a.Len())
	}
}

func TestAccumulator_PanicsOnBadOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		offset int
	}{
		{"negative", -1},
		{"gap", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := NewAccumulator(0)
			a.Add(make([]float64, 3), make([]float64, 3), 0)

			defer func() {
				if recover() == nil {
					t.Errorf("Add() at offset %d did not panic", tt.offset)
				}
			}()

			a.Add([]float64{1}, []float64{1}, tt.offset)
		})
	}
}

// Blocks convolved one by one and overlap-added at their offsets must give
// the same signal as convolving the whole input at once.
func TestAccumulator_OverlapAddMatchesDirect(t *testing.T) {
	t.Parallel()

	const blocks = 6

	p := compactParams(t)
	eng, err := NewEngine(p.FFTSize)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	rng := rand.New(rand.NewPCG(9, 10))
	ir := randomIR(rng, p.IRLength)
	signal := randomBlock(rng, blocks*p.BlockSize)

	k, _ := eng.NewKernel(ir)
	acc := NewAccumulator(0)
	out := [][]float64{make([]float64, p.FFTSize), make([]float64, p.FFTSize)}

	for b := range blocks {
		begin := b * p.BlockSize
		if err := eng.ConvolveKernels(out, signal[begin:begin+p.BlockSize], k, k); err != nil {
			t.Fatalf("ConvolveKernels() error = %v", err)
		}
		acc.Add(out[0], out[1], begin)
	}

	want := directConvolve(toFloat(signal), ir)
	ch := acc.Channels()

	if acc.Len() < len(want) {
		t.Fatalf("Len() = %d, want at least %d", acc.Len(), len(want))
	}
	assertClose(t, "left", ch[0], want, 1e-6)
	assertClose(t, "right", ch[1], want, 1e-6)
}

// hopOverlapAdd schedules blocks of the full database layout every
// HopSize samples, optionally Hann windowed, and overlap-adds them.
func hopOverlapAdd(t *testing.T, signal []int16, ir []float64, windowed bool) (BlockParams, []float64) {
	t.Helper()

	p, err := NewBlockParams(1024, 513)
	if err != nil {
		t.Fatalf("NewBlockParams() error = %v", err)
	}
	eng, err := NewEngine(p.FFTSize)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	k, _ := eng.NewKernel(ir)

	win := NewWindow(p.BlockSize)
	acc := NewAccumulator(0)
	out := [][]float64{make([]float64, p.FFTSize), make([]float64, p.FFTSize)}
	blk := make([]int16, p.BlockSize)

	for begin := 0; begin+p.BlockSize <= len(signal); begin += p.HopSize {
		copy(blk, signal[begin:begin+p.BlockSize])
		if windowed {
			win.Apply(blk)
		}
		if err := eng.ConvolveKernels(out, blk, k); err != nil {
			t.Fatalf("ConvolveKernels() error = %v", err)
		}
		acc.Add(out[0], out[0], begin)
	}

	return p, acc.Channels()[0]
}

// With half block hops the Hann window sums to one, so windowed blocks
// rebuild the direct convolution wherever two blocks cover the input. The
// remaining error comes from half precision coefficients and truncation.
func TestAccumulator_HannAtHopSizeReconstructs(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(21, 22))
	signal := make([]int16, 40*256)
	for i := range signal {
		signal[i] = int16(rng.IntN(20001) - 10000)
	}
	ir := randomIR(rng, 513)

	p, got := hopOverlapAdd(t, signal, ir, true)
	want := directConvolve(toFloat(signal), ir)

	// Output sample i depends on inputs i-512..i; inputs from one hop in
	// to one hop before the end are covered by two blocks.
	lo, hi := p.HopSize+p.IRLength-1, len(signal)-p.HopSize

	peak, maxErr := 0.0, 0.0
	for i := lo; i < hi; i++ {
		peak = max(peak, math.Abs(want[i]))
		maxErr = max(maxErr, math.Abs(got[i]-want[i]))
	}
	if maxErr > 2e-3*peak {
		t.Errorf("max error %.1f on peak %.1f, want within 0.2%%", maxErr, peak)
	}
}

// Without a window every input sample of the full layout lands in two
// blocks, so the result is the direct convolution at twice the level.
func TestAccumulator_UnwindowedHopDoublesLevel(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(23, 24))
	signal := randomBlock(rng, 20*256)
	ir := randomIR(rng, 513)

	p, got := hopOverlapAdd(t, signal, ir, false)
	want := directConvolve(toFloat(signal), ir)

	for i := p.HopSize + p.IRLength - 1; i < len(signal)-p.HopSize; i++ {
		if math.Abs(got[i]-2*want[i]) > 1e-3 {
			t.Fatalf("sample %d = %v, want %v", i, got[i], 2*want[i])
		}
	}
}

func BenchmarkAccumulator_Add(b *testing.B) {
	res := make([]float64, 1024)
	a := NewAccumulator(1 << 20)
	off := 0

	b.ReportAllocs()

	for b.Loop() {
		a.Add(res, res, off)
		off += 784
	}
}
