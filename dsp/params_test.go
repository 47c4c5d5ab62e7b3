// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"errors"
	"testing"
)

func TestNewBlockParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fft, ir  int
		block    int
		hop      int
		overlap  float64
		initial  BlockRange
	}{
		{"compact", 1024, 129, 896, 784, 0.125, BlockRange{-784, 112}},
		{"full", 1024, 513, 512, 256, 0.5, BlockRange{-256, 256}},
		{"compact at 2048", 2048, 129, 1920, 1800, 0.0625, BlockRange{-1800, 120}},
		{"compact at 512", 512, 129, 384, 288, 0.25, BlockRange{-288, 96}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := NewBlockParams(tt.fft, tt.ir)
			if err != nil {
				t.Fatalf("NewBlockParams() error = %v", err)
			}

			if p.BlockSize != tt.block {
				t.Errorf("BlockSize = %d, want %d", p.BlockSize, tt.block)
			}
			if p.HopSize != tt.hop {
				t.Errorf("HopSize = %d, want %d", p.HopSize, tt.hop)
			}
			if p.Overlap != tt.overlap {
				t.Errorf("Overlap = %v, want %v", p.Overlap, tt.overlap)
			}
			if got := p.InitialRange(); got != tt.initial {
				t.Errorf("InitialRange() = %v, want %v", got, tt.initial)
			}
		})
	}
}

func TestBlockParams_InitialRangeSymmetric(t *testing.T) {
	t.Parallel()

	p, err := NewBlockParams(1024, 513)
	if err != nil {
		t.Fatalf("NewBlockParams() error = %v", err)
	}

	r := p.InitialRange()
	if -r.Begin != r.End {
		t.Errorf("InitialRange() = %v, want |Begin| == |End|", r)
	}
}

func TestNewBlockParams_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fft, ir int
	}{
		{"ir longer than fft", 512, 513},
		{"zero fft", 0, 129},
		{"zero ir", 1024, 0},
		{"negative", -1024, 129},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewBlockParams(tt.fft, tt.ir); !errors.Is(err, ErrInvalidBlockParams) {
				t.Errorf("NewBlockParams(%d, %d) error = %v, want ErrInvalidBlockParams", tt.fft, tt.ir, err)
			}
		})
	}
}
