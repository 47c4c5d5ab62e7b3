// SPDX-License-Identifier: EPL-2.0

// Package render runs a binaural render pass over a set of speakers.
//
// Every speaker is rendered by its own goroutine, limited by WithWorkers.
// A speaker reads its source block by block, filters each block with the
// impulse responses selected for its azimuth and accumulates the result:
//
//	r, err := render.New(os.DirFS("kemar"), render.Settings{Database: hrtf.Compact},
//	    render.WithLogger(log.Default()))
//	if err != nil {
//	    return err
//	}
//	outs, err := r.Render(ctx, []render.Speaker{
//	    {ID: "front-left", Angle: 330, Path: "fl.wav"},
//	    {ID: "front-right", Angle: 30, Path: "fr.wav"},
//	})
//
// Per speaker failures are returned in Output.Err as *SpeakerError; Render
// itself only fails on invalid input or when ctx is cancelled. Mix combines
// the outputs into a single stereo signal.
package render
