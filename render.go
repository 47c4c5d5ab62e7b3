// SPDX-License-Identifier: EPL-2.0

package binaural

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/binaural/audio"
	"github.com/ik5/binaural/config"
	"github.com/ik5/binaural/formats/wav"
	"github.com/ik5/binaural/render"
)

// OutputSuffix is appended to the speaker id to name its output file.
const OutputSuffix = "_binaural.wav"

// Render runs one render pass for cfg with the HRTF database found under
// cfg.HRTFRoot and writes every successful speaker to
// <cfg.OutputDir>/<id>_binaural.wav.
//
// Speakers that fail keep their error in the returned outputs. The error
// result reports an invalid configuration, a cancelled ctx or files that
// could not be written.
func Render(ctx context.Context, cfg config.Config, opts ...render.Option) ([]render.Output, error) {
	db, err := cfg.Database()
	if err != nil {
		return nil, err
	}

	settings := render.Settings{
		Database:      db,
		FFTSize:       cfg.FFTSize(),
		InverseFilter: cfg.InverseFilter,
		Window:        cfg.Window,

		PerEarNormalize: cfg.NormalizePerEar,
	}

	opts = append([]render.Option{render.WithWorkers(cfg.Workers)}, opts...)

	r, err := render.New(os.DirFS(cfg.HRTFRoot), settings, opts...)
	if err != nil {
		return nil, err
	}

	outs, err := r.Render(ctx, Speakers(cfg))
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return outs, fmt.Errorf("creating output directory: %w", err)
	}

	var errs []error
	for _, out := range outs {
		if out.Err != nil {
			continue
		}
		if err := WriteOutput(OutputPath(cfg.OutputDir, out.Speaker.ID), out); err != nil {
			errs = append(errs, err)
		}
	}

	return outs, errors.Join(errs...)
}

// Speakers converts the configured speakers for the renderer.
func Speakers(cfg config.Config) []render.Speaker {
	speakers := make([]render.Speaker, len(cfg.Speakers))
	for i, sp := range cfg.Speakers {
		speakers[i] = render.Speaker{
			ID:        sp.ID,
			Angle:     sp.Angle,
			Distance:  sp.Distance,
			Path:      sp.Path,
			Normalize: sp.Normalize,
		}
	}
	return speakers
}

// OutputPath names the output file of speaker id inside dir.
func OutputPath(dir, id string) string {
	return filepath.Join(dir, id+OutputSuffix)
}

// WriteOutput stores a rendered speaker as a stereo 16-bit WAV file.
func WriteOutput(path string, out render.Output) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if err := wav.Encode(f, out.SampleRate, 2, out.Samples); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}

// WriteMix sums the successful outputs with render.Mix and writes the
// result as one stereo WAV file. Nothing is written when no speaker
// succeeded.
func WriteMix(path string, outs []render.Output) (bool, error) {
	mix := render.Mix(outs)
	if mix == nil {
		return false, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("writing mix: %w", err)
	}

	if err := wav.WriteWAV16(f, audio.ReferenceRate, 2, mix); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("writing %s: %w", path, err)
	}

	return true, f.Close()
}
