// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	buf := make([]int16, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: signed 16-bit, as produced by go-mp3
//   - Channels: always 2, mono files are duplicated by the decoder
//   - Sample rate: that of the file, which must be 44100 Hz to be rendered
//   - Frames: decoded length in frames, known up front from go-mp3
//
// BitDepth always reports 16. The renderer folds the stereo output back to
// mono before convolution.
package mp3
