// SPDX-License-Identifier: EPL-2.0

package hrtf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"

	"github.com/ik5/binaural/formats/wav"
)

// Entry holds the impulse responses of both ears for one selection.
// Entries are shared between speakers and must not be modified.
type Entry struct {
	Selection Selection
	IR        [2][]float64 // left, right; IRLength samples each
	Peak      [2]float64   // largest absolute value per ear
}

// Loader reads impulse responses of one database from a file system laid
// out like the KEMAR distribution (compact/, full/).
type Loader struct {
	fsys fs.FS
	db   Database
}

func NewLoader(fsys fs.FS, db Database) *Loader {
	return &Loader{fsys: fsys, db: db}
}

func (l *Loader) Database() Database { return l.db }

// Load reads the files named by sel. Any failure is a *LookupError.
func (l *Loader) Load(sel Selection) (*Entry, error) {
	e := &Entry{Selection: sel}

	if sel.Stereo {
		samples, channels, err := readPCM(l.fsys, sel.Files[0])
		if err == nil && channels != 2 {
			err = fmt.Errorf("%w: %d, want 2", ErrChannelLayout, channels)
		}
		if err != nil {
			return nil, l.lookupError(sel, sel.Files[0], err)
		}

		left, right := 0, 1
		if sel.Swap {
			left, right = 1, 0
		}
		e.IR[0] = l.pad(samples, left, 2)
		e.IR[1] = l.pad(samples, right, 2)
	} else {
		for ear, path := range sel.Files {
			samples, channels, err := readPCM(l.fsys, path)
			if err == nil && channels != 1 {
				err = fmt.Errorf("%w: %d, want 1", ErrChannelLayout, channels)
			}
			if err != nil {
				return nil, l.lookupError(sel, path, err)
			}
			e.IR[ear] = l.pad(samples, 0, 1)
		}
	}

	for ear, ir := range e.IR {
		for _, v := range ir {
			e.Peak[ear] = max(e.Peak[ear], math.Abs(v))
		}
	}

	return e, nil
}

// InverseFilter reads the loudspeaker inverse filter, keeping at most n
// samples.
func (l *Loader) InverseFilter(n int) ([]float64, error) {
	if !l.db.Full() {
		return nil, ErrNoInverseFilter
	}

	samples, channels, err := readPCM(l.fsys, InverseFilterPath)
	if err != nil {
		return nil, fmt.Errorf("loading inverse filter %s: %w", InverseFilterPath, err)
	}

	frames := len(samples) / channels
	out := make([]float64, min(frames, n))
	for i := range out {
		out[i] = float64(samples[i*channels])
	}

	return out, nil
}

// pad extracts one channel of interleaved samples into a slice of IRLength
// values. Files longer than the raw measurement are cut.
func (l *Loader) pad(samples []int16, channel, channels int) []float64 {
	ir := make([]float64, l.db.IRLength())
	frames := min(len(samples)/channels, l.db.RawLength())
	for i := range frames {
		ir[i] = float64(samples[i*channels+channel])
	}
	return ir
}

func (l *Loader) lookupError(sel Selection, path string, err error) error {
	return &LookupError{Database: l.db, Angle: sel.Quantized, Path: path, Err: err}
}

func readPCM(fsys fs.FS, path string) ([]int16, int, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, 0, err
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	channels := src.Channels()
	samples := make([]int16, 0, src.Frames()*channels)
	buf := make([]int16, 1024*channels)

	for {
		n, err := src.ReadSamples(buf)
		samples = append(samples, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}
	}

	if len(samples) < channels {
		return nil, 0, ErrEmptyResponse
	}

	return samples, channels, nil
}
