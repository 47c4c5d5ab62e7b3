// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// WAV builds a canonical PCM WAV file in memory. samples are interleaved;
// for 8-bit files each value is written as an unsigned byte (value+128).
// Odd sized data chunks get the RIFF pad byte.
func WAV(sampleRate, channels, bitsPerSample int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	bytesPerSample := bitsPerSample / 8
	numChannels := uint16(channels)
	byteRate := uint32(sampleRate * channels * bytesPerSample)
	blockAlign := uint16(channels * bytesPerSample)
	dataSize := uint32(len(samples) * bytesPerSample)
	pad := dataSize % 2 // odd chunks are followed by a pad byte
	riffSize := 36 + dataSize + pad

	// RIFF header
	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16)) // chunk size
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))  // PCM format
	_ = binary.Write(buf, binary.LittleEndian, numChannels)
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, byteRate)
	_ = binary.Write(buf, binary.LittleEndian, blockAlign)
	_ = binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	// data chunk
	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, dataSize)

	for _, s := range samples {
		if bytesPerSample == 1 {
			buf.WriteByte(uint8(int(s) + 128))
			continue
		}
		_ = binary.Write(buf, binary.LittleEndian, s)
	}
	if pad == 1 {
		buf.WriteByte(0)
	}

	return buf.Bytes()
}
