// SPDX-License-Identifier: EPL-2.0

// Package binaural renders mono loudspeaker signals to headphone stereo by
// filtering them with head related impulse responses of the MIT KEMAR
// measurements.
//
// # Quick Start
//
// Describe the speakers in a JSON file and render them:
//
//	cfg, err := config.Load("render.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	outs, err := binaural.Render(ctx, cfg)
//
// Every speaker that renders is written to <output_dir>/<id>_binaural.wav.
// A speaker whose source or impulse response cannot be read keeps its
// error in the returned render.Output and the others continue.
//
// # Pipeline
//
// Each speaker runs through the same stages:
//
//   - audio.Open decodes the source (WAV, AIFF, MP3 or Ogg Vorbis),
//     checks that it is 44.1 kHz, 8 or 16 bit and mono or stereo, and
//     downmixes stereo.
//   - dsp.Scheduler cuts the stream into overlapping blocks.
//   - Blocks are optionally normalized and Hann windowed.
//   - dsp.Engine convolves each block with the impulse responses of both
//     ears, selected by hrtf for the speaker azimuth.
//   - dsp.Accumulator adds the results at their block offsets.
//   - The full database can apply the loudspeaker inverse filter, and
//     dsp.Normalize scales the result to 16-bit full range.
//
// # Databases
//
// kemar_compact uses 128 sample responses with the measurement loudspeaker
// removed. kemar_normal_ear and kemar_big_ear use the 512 sample
// responses of the full set. The files are read from the hrtf_root setting,
// laid out as in the KEMAR distribution (compact/elev0, full/elev0).
//
// See the subpackages for the individual stages.
package binaural
