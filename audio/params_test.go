// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/ik5/binaural/internal/audiotest"
)

// offsetSource reports a data offset like a PCM container would.
type offsetSource struct {
	*audiotest.MockSource
}

func (offsetSource) DataOffset() int64 { return 44 }

func TestParamsOf(t *testing.T) {
	t.Parallel()

	src := offsetSource{audiotest.NewSilentSource(ReferenceRate, 2, 1000).WithBitDepth(8)}

	p := ParamsOf(src)
	want := StreamParams{
		TotalSamples:   1000,
		SampleRate:     ReferenceRate,
		BitsPerSample:  8,
		Channels:       2,
		DataOffset:     44,
		DataLength:     2000,
		BytesPerSample: 1,
	}

	if p != want {
		t.Errorf("ParamsOf() = %+v, want %+v", p, want)
	}
}

func TestStreamParams_Validate(t *testing.T) {
	t.Parallel()

	valid := StreamParams{SampleRate: ReferenceRate, BitsPerSample: 16, Channels: 1}

	tests := []struct {
		name    string
		mutate  func(p *StreamParams)
		wantErr error
	}{
		{"mono 16 bit", func(p *StreamParams) {}, nil},
		{"stereo 8 bit", func(p *StreamParams) { p.Channels = 2; p.BitsPerSample = 8 }, nil},
		{"48k", func(p *StreamParams) { p.SampleRate = 48000 }, ErrUnsupportedSampleRate},
		{"22k", func(p *StreamParams) { p.SampleRate = 22050 }, ErrUnsupportedSampleRate},
		{"24 bit", func(p *StreamParams) { p.BitsPerSample = 24 }, ErrUnsupportedBitDepth},
		{"32 bit", func(p *StreamParams) { p.BitsPerSample = 32 }, ErrUnsupportedBitDepth},
		{"no channels", func(p *StreamParams) { p.Channels = 0 }, ErrUnsupportedChannels},
		{"surround", func(p *StreamParams) { p.Channels = 6 }, ErrUnsupportedChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := valid
			tt.mutate(&p)

			err := p.Validate("in.wav")
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Path != "in.wav" {
				t.Errorf("Validate() error = %#v, want *ConfigError for in.wav", err)
			}
		})
	}
}
