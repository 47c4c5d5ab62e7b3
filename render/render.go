// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/binaural/audio"
	"github.com/ik5/binaural/dsp"
	"github.com/ik5/binaural/hrtf"
)

// Speaker is one virtual loudspeaker of a render pass.
type Speaker struct {
	ID        string
	Angle     float64 // azimuth in degrees, clockwise from the front
	Distance  float64 // carried through, not rendered
	Path      string
	Normalize bool // scale every input block to full range before filtering
}

// Settings apply to every speaker of a pass.
type Settings struct {
	Database      hrtf.Database
	FFTSize       int  // 0 selects dsp.DefaultFFTSize
	InverseFilter bool // full database only, ignored for the compact one
	Window        bool // Hann window on every input block

	// PerEarNormalize scales each ear to full range on its own instead of
	// sharing one factor, which drops the level difference between them.
	PerEarNormalize bool
}

// Output is the rendered signal of one speaker. When Err is set the other
// fields are zero apart from Speaker.
type Output struct {
	Speaker    Speaker
	Samples    []int16 // interleaved left, right
	SampleRate int
	Frames     int
	Blocks     int
	Err        error
}

// Renderer turns speaker sources into binaural stereo signals.
type Renderer struct {
	settings Settings
	params   dsp.BlockParams
	cache    *hrtf.Cache
	inverse  []float64

	registry *audio.Registry
	logger   *log.Logger
	workers  int
}

// New prepares a renderer reading impulse responses from database, a file
// system laid out like the KEMAR distribution.
func New(database fs.FS, settings Settings, opts ...Option) (*Renderer, error) {
	if settings.FFTSize == 0 {
		settings.FFTSize = dsp.DefaultFFTSize
	}

	params, err := dsp.NewBlockParams(settings.FFTSize, settings.Database.IRLength())
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		settings: settings,
		params:   params,
		registry: DefaultRegistry(),
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(r)
	}

	loader := hrtf.NewLoader(database, settings.Database)
	r.cache = hrtf.NewCache(loader)

	if settings.InverseFilter {
		if !settings.Database.Full() {
			r.logger.Printf("inverse filter ignored: %s has the loudspeaker response removed", settings.Database)
		} else if r.inverse, err = loader.InverseFilter(params.FFTSize); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Params returns the block layout used for every speaker.
func (r *Renderer) Params() dsp.BlockParams { return r.params }

// speakerState is owned by exactly one worker during a pass.
type speakerState struct {
	speaker Speaker
	out     Output
}

// Render processes all speakers and returns their outputs in the same
// order. A speaker that fails is reported in its Output and does not stop
// the others. The returned error is set only for invalid input or when ctx
// ends the pass.
func (r *Renderer) Render(ctx context.Context, speakers []Speaker) ([]Output, error) {
	if len(speakers) == 0 {
		return nil, ErrNoSpeakers
	}

	states := make(map[string]*speakerState, len(speakers))
	for _, sp := range speakers {
		if _, ok := states[sp.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSpeaker, sp.ID)
		}
		states[sp.ID] = &speakerState{speaker: sp, out: Output{Speaker: sp}}
	}

	g, gctx := errgroup.WithContext(ctx)
	if r.workers > 0 {
		g.SetLimit(r.workers)
	}

	for _, sp := range speakers {
		st := states[sp.ID]
		g.Go(func() error {
			err := r.renderSpeaker(gctx, st)
			if err == nil {
				return nil
			}
			if gctx.Err() != nil && errors.Is(err, gctx.Err()) {
				return err
			}

			st.out = Output{
				Speaker: st.speaker,
				Err:     &SpeakerError{ID: st.speaker.ID, Path: st.speaker.Path, Err: err},
			}
			r.logger.Printf("speaker %s: %v", st.speaker.ID, err)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	outputs := make([]Output, len(speakers))
	for i, sp := range speakers {
		outputs[i] = states[sp.ID].out
	}

	return outputs, nil
}

func (r *Renderer) renderSpeaker(ctx context.Context, st *speakerState) error {
	sp := st.speaker
	r.logger.Printf("speaker %s: rendering %s at %.1f°", sp.ID, sp.Path, sp.Angle)

	stream, err := audio.Open(sp.Path, r.registry)
	if err != nil {
		return err
	}
	defer stream.Close()

	entry, err := r.cache.Get(sp.Angle)
	if err != nil {
		return err
	}

	engine, err := dsp.NewEngine(r.params.FFTSize)
	if err != nil {
		return err
	}

	kernels := make([]*dsp.Kernel, 2)
	for ear, ir := range entry.IR {
		if kernels[ear], err = engine.NewKernel(ir); err != nil {
			return err
		}
	}

	var window *dsp.Window
	if r.settings.Window {
		window = dsp.NewWindow(r.params.BlockSize)
	}

	sched := dsp.NewScheduler(r.params, stream)
	acc := dsp.NewAccumulator(stream.Len() + r.params.FFTSize)
	conv := [][]float64{make([]float64, r.params.FFTSize), make([]float64, r.params.FFTSize)}

	for {
		blk, ok, err := sched.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		if sp.Normalize {
			blk.Peak = dsp.NormalizeInt16(blk.Samples, blk.Peak, dsp.MaxAmplitude)
		}
		if window != nil {
			window.Apply(blk.Samples)
		}

		if err := engine.ConvolveKernels(conv, blk.Samples, kernels...); err != nil {
			return err
		}
		acc.Add(conv[0], conv[1], blk.Begin)
	}

	peak := acc.Peak()
	channels := acc.Channels()
	if r.inverse != nil {
		for i, ch := range channels {
			if channels[i], err = dsp.ConvolveFull(ch, r.inverse); err != nil {
				return err
			}
		}
	}

	normalize := dsp.Normalize
	if r.settings.PerEarNormalize {
		normalize = dsp.NormalizeEach
	}
	samples := normalize(channels, dsp.MaxAmplitude)
	st.out = Output{
		Speaker:    sp,
		Samples:    samples,
		SampleRate: audio.ReferenceRate,
		Frames:     len(samples) / 2,
		Blocks:     sched.Blocks(),
	}

	r.logger.Printf("speaker %s: %d blocks, %d frames, peak %.0f", sp.ID, st.out.Blocks, st.out.Frames, peak)

	return nil
}

// Mix sums the successful outputs into one stereo signal and scales it
// back to full range. Outputs of different length are aligned at their
// start. It returns nil when no output succeeded.
func Mix(outputs []Output) []int16 {
	frames := 0
	for _, o := range outputs {
		if o.Err == nil {
			frames = max(frames, len(o.Samples)/2)
		}
	}
	if frames == 0 {
		return nil
	}

	left := make([]float64, frames)
	right := make([]float64, frames)
	for _, o := range outputs {
		if o.Err != nil {
			continue
		}
		for i := range len(o.Samples) / 2 {
			left[i] += float64(o.Samples[2*i])
			right[i] += float64(o.Samples[2*i+1])
		}
	}

	return dsp.Normalize([][]float64{left, right}, dsp.MaxAmplitude)
}
