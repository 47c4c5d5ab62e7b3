// SPDX-License-Identifier: EPL-2.0

package render

import (
	"github.com/ik5/binaural/audio"
	"github.com/ik5/binaural/formats/aiff"
	"github.com/ik5/binaural/formats/mp3"
	"github.com/ik5/binaural/formats/vorbis"
	"github.com/ik5/binaural/formats/wav"
)

// DefaultRegistry returns a registry with every bundled source decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}
