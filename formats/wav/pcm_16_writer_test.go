// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rate       int
		channels   int
		samples    []int16
		byteRate   uint32
		blockAlign uint16
	}{
		{"mono", 44100, 1, []int16{1, 2, 3}, 88200, 2},
		{"stereo", 44100, 2, []int16{1, 2, 3, 4}, 176400, 4},
		{"empty stereo", 8000, 2, nil, 32000, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			if err := WriteWAV16(buf, tt.rate, tt.channels, tt.samples); err != nil {
				t.Fatalf("WriteWAV16() error = %v", err)
			}

			data := buf.Bytes()
			dataSize := uint32(len(tt.samples) * 2)

			if len(data) != headerSize+int(dataSize) {
				t.Fatalf("file size = %d, want %d", len(data), headerSize+int(dataSize))
			}
			if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
				t.Errorf("markers = %q %q, want RIFF WAVE", data[0:4], data[8:12])
			}
			if got := binary.LittleEndian.Uint32(data[4:8]); got != 36+dataSize {
				t.Errorf("RIFF size = %d, want %d", got, 36+dataSize)
			}
			if got := binary.LittleEndian.Uint16(data[22:24]); int(got) != tt.channels {
				t.Errorf("channels = %d, want %d", got, tt.channels)
			}
			if got := binary.LittleEndian.Uint32(data[28:32]); got != tt.byteRate {
				t.Errorf("byte rate = %d, want %d", got, tt.byteRate)
			}
			if got := binary.LittleEndian.Uint16(data[32:34]); got != tt.blockAlign {
				t.Errorf("block align = %d, want %d", got, tt.blockAlign)
			}
			if got := binary.LittleEndian.Uint32(data[40:44]); got != dataSize {
				t.Errorf("data size = %d, want %d", got, dataSize)
			}
		})
	}
}

func TestWriteWAV16_SampleData(t *testing.T) {
	t.Parallel()

	samples := []int16{0x0102, -1, 32767, -32768}
	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 44100, 2, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	want := []byte{0x02, 0x01, 0xff, 0xff, 0xff, 0x7f, 0x00, 0x80}
	if got := buf.Bytes()[headerSize:]; !bytes.Equal(got, want) {
		t.Errorf("data = % x, want % x", got, want)
	}
}

func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	// spans several write chunks
	samples := make([]int16, 20000)
	for i := range samples {
		samples[i] = int16(i*7 - 30000)
	}

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 44100, 2, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Frames() != 10000 {
		t.Errorf("Frames() = %d, want 10000", src.Frames())
	}

	if got := readAll(t, src, 1000); !equal(got, samples) {
		t.Error("decoded samples differ from written samples")
	}
}

func TestWriteWAV16_Errors(t *testing.T) {
	t.Parallel()

	if err := WriteWAV16(new(bytes.Buffer), 44100, 0, nil); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("WriteWAV16(0 channels) error = %v, want ErrInvalidChannels", err)
	}
	if err := WriteWAV16(new(bytes.Buffer), 44100, 2, []int16{1, 2, 3}); !errors.Is(err, ErrSampleCount) {
		t.Errorf("WriteWAV16(odd stereo) error = %v, want ErrSampleCount", err)
	}
}

func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 44100*2)
	buf := new(bytes.Buffer)

	b.ReportAllocs()

	for b.Loop() {
		buf.Reset()
		_ = WriteWAV16(buf, 44100, 2, samples)
	}
}
