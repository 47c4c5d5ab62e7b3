// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// State of a Scheduler.
type State int

const (
	Streaming State = iota
	FinalBlock
	Exhausted
)

func (s State) String() string {
	switch s {
	case Streaming:
		return "streaming"
	case FinalBlock:
		return "final block"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// BlockRange is a half-open range [Begin, End) of sample indices.
type BlockRange struct {
	Begin int
	End   int
}

func (r BlockRange) Len() int { return r.End - r.Begin }

// SampleReader is the mono stream a Scheduler cuts into blocks.
// *audio.Stream implements it.
type SampleReader interface {
	// ReadAt copies samples starting at start into dst. A short count
	// comes with io.EOF.
	ReadAt(dst []int16, start int) (int, error)
	// Remaining reports how many samples exist at or after pos.
	Remaining(pos int) int
}

// Block is one scheduled piece of a speaker stream.
type Block struct {
	Samples []int16
	Begin   int  // index of Samples[0] in the stream
	Peak    int  // largest absolute sample value
	Final   bool // zero padded, nothing follows
}

// Scheduler walks a stream block by block.
type Scheduler struct {
	params BlockParams
	src    SampleReader
	rng    BlockRange
	state  State
	blocks int
}

func NewScheduler(params BlockParams, src SampleReader) *Scheduler {
	return &Scheduler{
		params: params,
		src:    src,
		rng:    params.InitialRange(),
	}
}

func (s *Scheduler) Range() BlockRange { return s.rng }
func (s *Scheduler) State() State      { return s.state }

// Blocks is the number of blocks fetched so far.
func (s *Scheduler) Blocks() int { return s.blocks }

// Advance moves the range forward by one hop.
func (s *Scheduler) Advance() {
	s.rng.Begin += s.params.HopSize
	s.rng.End += s.params.HopSize

	if s.rng.Len() != s.params.BlockSize {
		panic(fmt.Sprintf("dsp: block range %v has length %d, want %d",
			s.rng, s.rng.Len(), s.params.BlockSize))
	}
}

// Fetch reads the block for the current range. While the range lies inside
// the stream the block is complete. The first range that reaches past the
// end yields the zero padded remainder with Final set; after that Fetch
// reports ok == false.
func (s *Scheduler) Fetch(ctx context.Context) (Block, bool, error) {
	if s.state != Streaming {
		s.state = Exhausted
		return Block{}, false, nil
	}

	if err := ctx.Err(); err != nil {
		return Block{}, false, err
	}

	blk := Block{
		Samples: make([]int16, s.params.BlockSize),
		Begin:   s.rng.Begin,
	}

	// Samples before the stream start stay zero.
	lead := max(0, -s.rng.Begin)
	start := s.rng.Begin + lead
	dst := blk.Samples[lead:]

	if _, err := s.src.ReadAt(dst, start); err != nil && !errors.Is(err, io.EOF) {
		return Block{}, false, fmt.Errorf("reading block at %d: %w", start, err)
	}

	// Checked after the read, which settles the length of streams that
	// end early.
	if s.src.Remaining(start) < len(dst) {
		blk.Final = true
		s.state = FinalBlock
	}

	blk.Peak = PeakInt16(blk.Samples)
	s.blocks++

	return blk, true, nil
}

// Next advances and fetches in one step.
func (s *Scheduler) Next(ctx context.Context) (Block, bool, error) {
	if s.state == Streaming {
		s.Advance()
	}
	return s.Fetch(ctx)
}
