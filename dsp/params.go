// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"

	"github.com/ik5/binaural/utils"
)

// DefaultFFTSize is used when no output block rate is configured.
const DefaultFFTSize = 1024

// BlockParams is the block arithmetic shared by the scheduler, the engine
// and the accumulator of one render pass.
type BlockParams struct {
	FFTSize   int
	IRLength  int
	BlockSize int
	Overlap   float64
	HopSize   int
}

// NewBlockParams derives the block layout for an FFT of fftSize and impulse
// responses of irLength samples.
func NewBlockParams(fftSize, irLength int) (BlockParams, error) {
	if fftSize <= 0 || irLength <= 0 {
		return BlockParams{}, fmt.Errorf("%w: fft size %d, ir length %d",
			ErrInvalidBlockParams, fftSize, irLength)
	}

	p := BlockParams{
		FFTSize:   fftSize,
		IRLength:  irLength,
		BlockSize: fftSize - irLength + 1,
	}
	if p.BlockSize <= 0 {
		return BlockParams{}, fmt.Errorf("%w: ir length %d does not fit fft size %d",
			ErrInvalidBlockParams, irLength, fftSize)
	}

	p.Overlap = float64(fftSize-p.BlockSize) / float64(fftSize)
	p.HopSize = utils.RoundHalfAwayFromZero((1 - p.Overlap) * float64(p.BlockSize))
	if p.HopSize <= 0 {
		return BlockParams{}, fmt.Errorf("%w: hop size %d", ErrInvalidBlockParams, p.HopSize)
	}

	return p, nil
}

// InitialRange is the range before the first Advance. It lies one hop
// before sample 0 so the first advanced block starts there.
func (p BlockParams) InitialRange() BlockRange {
	begin := -int(float64(p.BlockSize) * (1 - p.Overlap))
	return BlockRange{Begin: begin, End: begin + p.BlockSize}
}

func (p BlockParams) String() string {
	return fmt.Sprintf("fft=%d ir=%d block=%d hop=%d overlap=%.4f",
		p.FFTSize, p.IRLength, p.BlockSize, p.HopSize, p.Overlap)
}
