// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF WAV files.
//
// Decoding is done by github.com/go-audio/wav. Any integer PCM bit depth
// the library understands is decoded and mapped into the signed 16-bit
// range; 8-bit files, which RIFF stores unsigned, are re-centered first.
// The source also reports the frame count and the byte offset of the data
// chunk, so callers can validate a file before reading it.
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf := make([]int16, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Writing
//
// Encode writes 16-bit PCM to an io.WriteSeeker through the go-audio
// encoder:
//
//	f, _ := os.Create("guitar_binaural.wav")
//	err := wav.Encode(f, 44100, 2, interleaved)
//
// WriteWAV16 produces the same canonical file on a plain io.Writer, which
// is what stdout and network sinks need.
//
// # Errors
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrOnlyPCMSupported: the fmt chunk is not integer PCM
//   - ErrUnsupportedWavLayout: the fmt chunk is unusable
//   - ErrUnsupportedWavChunks: no data chunk could be found
package wav
