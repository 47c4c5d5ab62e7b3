// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

const encodeChunkFrames = 8192

// Encode writes interleaved 16-bit samples as a PCM WAV file through the
// go-audio encoder, which patches the RIFF sizes on Close.
func Encode(ws io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels <= 0 {
		return ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrSampleCount, len(samples), channels)
	}

	enc := gowav.NewEncoder(ws, sampleRate, 16, channels, wavFormatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, 0, min(len(samples), encodeChunkFrames*channels)),
	}

	step := encodeChunkFrames * channels
	for i := 0; i == 0 || i < len(samples); i += step {
		chunk := samples[i:min(i+step, len(samples))]

		buf.Data = buf.Data[:len(chunk)]
		for j, s := range chunk {
			buf.Data[j] = int(s)
		}

		// the first Write emits the header, even for an empty file
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("encoding samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav: %w", err)
	}

	return nil
}
