// SPDX-License-Identifier: EPL-2.0

// Package audio provides the speaker input side of the renderer.
//
// It contains:
//   - Source interface for decoded PCM input
//   - MonoMixer for folding multi-channel input to mono
//   - Stream, a forward-only sliding window over a mono source
//   - StreamParams and the checks that reject unsupported inputs
//   - Format registry for decoder registration
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    BitDepth() int
//	    Frames() int
//	    ReadSamples(dst []int16) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are signed 16-bit values. Decoders of 8-bit containers re-center
// and scale their samples into the same range, so everything downstream
// works on int16.
//
// # Streams
//
// The renderer reads overlapping blocks. Stream keeps the samples decoded
// since the last block start, so a block that overlaps its predecessor is
// served from memory:
//
//	s, err := audio.Open("guitar.wav", registry)
//	n, err := s.ReadAt(block, begin)
//
// ReadAt returns io.EOF together with a short count at the end of the
// source. Reading before an already released position fails with
// ErrStreamRewind.
//
// # Accepted Input
//
// Only 44100 Hz, 8 or 16 bits per sample, mono or stereo is rendered.
// Anything else is reported by Open as a *ConfigError that wraps one of
// ErrUnsupportedSampleRate, ErrUnsupportedBitDepth or ErrUnsupportedChannels.
package audio
