// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/binaural/audio"
)

// pcmReader is the part of gowav.Decoder a source reads from.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	format     *goaudio.Format
	sampleRate int
	channels   int
	bitDepth   int
	frames     int
	dataOffset int64
	remaining  int // samples left in the data chunk
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int   { return s.sampleRate }
func (s *source) Channels() int     { return s.channels }
func (s *source) BitDepth() int     { return s.bitDepth }
func (s *source) Frames() int       { return s.frames }
func (s *source) DataOffset() int64 { return s.dataOffset }
func (s *source) Close() error      { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.remaining <= 0 {
		return 0, io.EOF
	}
	dst = dst[:min(len(dst), s.remaining)]

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("reading pcm: %w", err)
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = ToInt16(s.intBuf.Data[i], s.bitDepth)
	}
	s.remaining -= n

	return n, nil
}

// ToInt16 maps a raw RIFF PCM sample of the given bit depth into the signed
// 16-bit range. 8-bit RIFF samples are unsigned and get re-centered first.
func ToInt16(v, bitDepth int) int16 {
	switch {
	case bitDepth == 8:
		return int16((v - 128) << 8)
	case bitDepth <= 16:
		return int16(v << (16 - bitDepth))
	default:
		return int16(v >> (bitDepth - 16))
	}
}

// Decoder reads integer PCM WAV files of any bit depth go-audio supports.
// Whether the depth is acceptable for rendering is decided by the caller.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	if dec.NumChans == 0 || dec.BitDepth == 0 || dec.BitDepth%8 != 0 {
		return nil, ErrUnsupportedWavLayout
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	offset, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		offset = 0
	}

	frameSize := int(dec.NumChans) * int(dec.BitDepth) / 8
	frames := dataSize(rs, offset, dec.PCMSize) / frameSize

	return &source{
		dec:        dec,
		format:     dec.Format(),
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
		frames:     frames,
		dataOffset: offset,
		remaining:  frames * int(dec.NumChans),
	}, nil
}

// dataSize reads the size field of the data chunk header, which ends at
// offset. go-audio reports the chunk size rounded up to an even count,
// so an odd sized chunk would otherwise include its RIFF pad byte.
func dataSize(rs io.ReadSeeker, offset int64, padded int) int {
	if offset < 4 {
		return padded
	}

	var field [4]byte
	if _, err := rs.Seek(offset-4, io.SeekStart); err != nil {
		return padded
	}
	_, err := io.ReadFull(rs, field[:])
	if _, serr := rs.Seek(offset, io.SeekStart); serr != nil || err != nil {
		return padded
	}

	return min(int(binary.LittleEndian.Uint32(field[:])), padded)
}
