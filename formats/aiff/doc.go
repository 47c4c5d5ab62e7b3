// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Integer PCM of 8 to 32 bits is accepted and scaled into the signed
// 16-bit range. AIFF stores samples signed and big-endian, so unlike WAV
// no re-centering of 8-bit data is needed.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	buf := make([]int16, 4096)
//	n, err := src.ReadSamples(buf)
//
// Frames reports the sample frame count from the COMM chunk. The decoder
// does not judge whether the stream can be rendered; that is left to
// audio.StreamParams.Validate.
//
// # Errors
//
//   - ErrNotAiffFile: the input is not a FORM/AIFF file
//   - ErrUnsupportedBitDepth: the sample size is not a whole number of bytes
//   - ErrUnsupportedAiffLayout: the COMM chunk is unusable
package aiff
