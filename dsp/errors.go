// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	ErrInvalidBlockParams = errors.New("invalid block parameters")
	ErrInvalidFFTSize     = errors.New("fft size must be a positive power of two")
	ErrEmptyKernel        = errors.New("empty impulse response")
)
