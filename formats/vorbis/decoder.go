// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/binaural/audio"
	"github.com/ik5/binaural/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frames     int
	pcm        []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BitDepth() int   { return 16 }
func (s *source) Frames() int     { return s.frames }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.pcm) }

func (s *source) ReadSamples(dst []int16) (int, error) {
	// whole frames only, Read never splits one
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.pcm) < want {
		s.pcm = make([]float32, want)
	}
	s.pcm = s.pcm[:want]

	// Read returns interleaved values, always a multiple of Channels
	n, err := s.dec.Read(s.pcm)
	for i := range n {
		dst[i] = utils.Float32ToInt16(s.pcm[i])
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}
	if n == 0 && err != nil {
		return 0, io.EOF
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		frames:     int(dec.Length()),
		pcm:        make([]float32, 4096),
	}, nil
}
