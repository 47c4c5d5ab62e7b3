// SPDX-License-Identifier: EPL-2.0

package audio

// StreamParams describes one speaker source as read from its container.
type StreamParams struct {
	TotalSamples   int   // frames per channel
	SampleRate     int   // Hz
	BitsPerSample  int   // 8 or 16
	Channels       int   // 1 or 2
	DataOffset     int64 // byte offset of the first sample, 0 if unknown
	DataLength     int64 // bytes of sample data
	BytesPerSample int   // BitsPerSample / 8
}

// ParamsOf reads the stream parameters announced by src.
func ParamsOf(src Source) StreamParams {
	p := StreamParams{
		TotalSamples:   src.Frames(),
		SampleRate:     src.SampleRate(),
		BitsPerSample:  src.BitDepth(),
		Channels:       src.Channels(),
		BytesPerSample: src.BitDepth() / 8,
	}
	p.DataLength = int64(p.TotalSamples) * int64(p.Channels) * int64(p.BytesPerSample)

	if l, ok := src.(DataLayout); ok {
		p.DataOffset = l.DataOffset()
	}

	return p
}

// Validate checks p against what the renderer can process. path is only
// used to give the returned *ConfigError context.
func (p StreamParams) Validate(path string) error {
	if p.SampleRate != ReferenceRate {
		return &ConfigError{
			Path: path, Param: "sample rate", Got: p.SampleRate, Want: "44100",
			Err: ErrUnsupportedSampleRate,
		}
	}

	if p.BitsPerSample != 8 && p.BitsPerSample != 16 {
		return &ConfigError{
			Path: path, Param: "bits per sample", Got: p.BitsPerSample, Want: "8 or 16",
			Err: ErrUnsupportedBitDepth,
		}
	}

	if p.Channels != 1 && p.Channels != 2 {
		return &ConfigError{
			Path: path, Param: "channels", Got: p.Channels, Want: "1 or 2",
			Err: ErrUnsupportedChannels,
		}
	}

	return nil
}
