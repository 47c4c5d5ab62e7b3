// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds an interleaved source down to one channel. Each output
// sample is the integer average of the frame's channel samples, truncated
// toward zero. Sources may return partial frames; the leftover samples
// are carried into the next read.
type MonoMixer struct {
	src   Source
	tmp   []int16
	carry []int16
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]int16, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BitDepth() int   { return m.src.BitDepth() }
func (m *MonoMixer) Frames() int     { return m.src.Frames() }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }
func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *MonoMixer) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if m.src.Channels() == 1 {
		// Pass-through: read mono directly
		return m.src.ReadSamples(dst)
	}

	channels := m.src.Channels()
	samplesNeeded := len(dst) * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]int16, max(samplesNeeded, 8192))
	}
	m.tmp = m.tmp[:samplesNeeded]

	have := copy(m.tmp, m.carry)
	m.carry = m.carry[:0]

	var err error
	for have < channels {
		var n int
		n, err = m.src.ReadSamples(m.tmp[have:])
		have += n
		if err != nil || n == 0 {
			break
		}
	}

	frames := have / channels
	m.carry = append(m.carry, m.tmp[frames*channels:have]...)
	if frames == 0 {
		return 0, err
	}

	switch channels {
	case 2: // Stereo (most common)
		for f := range frames {
			idx := f << 1
			dst[f] = int16((int(m.tmp[idx]) + int(m.tmp[idx+1])) / 2)
		}
	default:
		for f := range frames {
			sum := 0
			base := f * channels
			for c := range channels {
				sum += int(m.tmp[base+c])
			}
			dst[f] = int16(sum / channels)
		}
	}

	return frames, err
}
