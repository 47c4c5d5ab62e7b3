// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const minStreamChunk = 4096

// Stream is a mono, forward-only cursor over a Source. It keeps the samples
// decoded since the last requested start position so that overlapping
// reads never decode twice, and it knows how many samples remain.
type Stream struct {
	src    Source
	params StreamParams
	closer io.Closer

	total int
	buf   []int16 // decoded samples, buf[0] is sample number base
	base  int
	chunk []int16
	eof   bool
}

// NewStream wraps src (downmixing to mono when needed). When params does not
// announce a sample count the whole source is decoded up front so that
// Len and Remaining are exact.
func NewStream(src Source, params StreamParams) (*Stream, error) {
	if src.Channels() != 1 {
		src = NewMonoMixer(src)
	}

	s := &Stream{
		src:    src,
		params: params,
		total:  params.TotalSamples,
		chunk:  make([]int16, max(minStreamChunk, src.BufSize())),
	}

	if s.total <= 0 {
		if err := s.fill(-1); err != nil {
			return nil, err
		}
		s.total = len(s.buf)
		s.params.TotalSamples = s.total
	}

	return s, nil
}

// Params returns the parameters the stream was opened with. TotalSamples is
// corrected if the source turned out to be shorter than announced.
func (s *Stream) Params() StreamParams { return s.params }

// Len is the total number of mono samples.
func (s *Stream) Len() int { return s.total }

// Remaining reports how many samples exist at or after pos.
func (s *Stream) Remaining(pos int) int {
	return max(0, s.total-max(pos, 0))
}

// ReadAt copies samples [start, start+len(dst)) into dst and returns how
// many were available. Fewer than len(dst) samples come with io.EOF.
// Samples before start are released, so start must never move backwards.
func (s *Stream) ReadAt(dst []int16, start int) (int, error) {
	if start < s.base {
		return 0, fmt.Errorf("read at %d, released up to %d: %w", start, s.base, ErrStreamRewind)
	}

	end := min(start+len(dst), s.total)
	if err := s.fill(end); err != nil {
		return 0, err
	}

	// A source shorter than announced ends the stream where it stops.
	if have := s.base + len(s.buf); have < end {
		end = have
		s.total = have
		s.params.TotalSamples = have
	}

	n := 0
	if end > start {
		n = copy(dst, s.buf[start-s.base:end-s.base])
	}

	s.release(start)

	if n < len(dst) {
		return n, io.EOF
	}

	return n, nil
}

// fill decodes until the buffer covers sample end (exclusive), or until the
// source is exhausted when end is negative.
func (s *Stream) fill(end int) error {
	for !s.eof && (end < 0 || s.base+len(s.buf) < end) {
		n, err := s.src.ReadSamples(s.chunk)
		if n > 0 {
			s.buf = append(s.buf, s.chunk[:n]...)
		}

		if errors.Is(err, io.EOF) {
			s.eof = true
			break
		}
		if err != nil {
			return fmt.Errorf("reading source: %w", err)
		}
		if n == 0 {
			// a decoder that returns nothing without error has nothing left
			s.eof = true
		}
	}

	return nil
}

// release drops decoded samples before pos.
func (s *Stream) release(pos int) {
	drop := min(pos-s.base, len(s.buf))
	if drop <= 0 {
		return
	}

	kept := copy(s.buf, s.buf[drop:])
	s.buf = s.buf[:kept]
	s.base += drop
}

// Close closes the source and the underlying file, if any.
func (s *Stream) Close() error {
	err := s.src.Close()

	if s.closer != nil {
		err = errors.Join(err, s.closer.Close())
	}

	if err != nil {
		return fmt.Errorf("closing stream: %w", err)
	}

	return nil
}
