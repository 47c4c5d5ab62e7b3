// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/binaural/audio"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels       = 2
	bytesPerSample = 2
	bytesPerFrame  = channels * bytesPerSample
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec        mp3Reader
	sampleRate int
	frames     int
	buf        []byte
	carry      []byte // odd trailing byte of the previous read
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) BitDepth() int   { return 16 }
func (s *source) Frames() int     { return s.frames }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample } // sample capacity, not bytes

func (s *source) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * bytesPerSample
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	have := copy(s.buf, s.carry)
	s.carry = s.carry[:0]

	n, err := s.dec.Read(s.buf[have:])
	n += have

	samples := n / bytesPerSample
	for i := range samples {
		dst[i] = int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
	}
	if n%bytesPerSample != 0 {
		s.carry = append(s.carry, s.buf[n-1])
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return samples, fmt.Errorf("decoding mp3: %w", err)
	}
	if samples == 0 && err != nil {
		return 0, io.EOF
	}

	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	frames := 0
	if l := dec.Length(); l > 0 {
		frames = int(l / bytesPerFrame)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		frames:     frames,
		buf:        make([]byte, 8192),
	}, nil
}
