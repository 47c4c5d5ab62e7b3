// SPDX-License-Identifier: EPL-2.0

// Package dsp holds the blockwise convolution core of the renderer.
//
// A speaker's mono stream is cut into blocks of BlockSize samples that
// advance by HopSize. Every block is convolved with a head-related impulse
// response of IRLength samples inside a zero-padded FFT of FFTSize, and
// the FFTSize long results are overlap-added at the block's start offset:
//
//	BlockSize = FFTSize - IRLength + 1
//	Overlap   = (FFTSize - BlockSize) / FFTSize
//	HopSize   = round((1 - Overlap) * BlockSize)
//
// Because BlockSize + IRLength - 1 never exceeds FFTSize, each block's
// circular convolution equals its linear convolution. Engine refuses, by
// panicking, any input that would break this.
//
// With the compact database (FFTSize 1024, IRLength 129) blocks are 896
// samples long and advance by 784; with the full database (IRLength 513)
// they are 512 samples long and advance by 256.
//
// # Pipeline
//
//	sched := dsp.NewScheduler(params, stream)
//	for {
//	    blk, ok, err := sched.Next(ctx)
//	    if !ok || err != nil {
//	        break
//	    }
//	    eng.ConvolveKernels(out, blk.Samples, left, right)
//	    acc.Add(out[0], out[1], blk.Begin)
//	}
//	pcm := dsp.Normalize(acc.Channels(), dsp.MaxAmplitude)
//
// All types here are meant for a single goroutine. Run one Engine and one
// Scheduler per worker.
package dsp
