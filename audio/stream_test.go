// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/binaural/internal/audiotest"
)

func newRampStream(t *testing.T, n int) *Stream {
	t.Helper()

	src := audiotest.NewRampSource(ReferenceRate, n)
	s, err := NewStream(src, ParamsOf(src))
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	return s
}

func checkRamp(t *testing.T, got []int16, start int) {
	t.Helper()

	for i, v := range got {
		if int(v) != start+i {
			t.Fatalf("sample %d = %d, want %d", start+i, v, start+i)
		}
	}
}

func TestStream_OverlappingReads(t *testing.T) {
	t.Parallel()

	s := newRampStream(t, 20000)

	// blocks of 896 advanced by 784, crossing several decode chunks
	buf := make([]int16, 896)
	for start := 0; start+len(buf) <= 20000; start += 784 {
		n, err := s.ReadAt(buf, start)
		if err != nil {
			t.Fatalf("ReadAt(%d) error = %v", start, err)
		}
		if n != len(buf) {
			t.Fatalf("ReadAt(%d) n = %d, want %d", start, n, len(buf))
		}
		checkRamp(t, buf, start)
	}
}

func TestStream_ShortReadAtEnd(t *testing.T) {
	t.Parallel()

	s := newRampStream(t, 1000)

	buf := make([]int16, 300)
	n, err := s.ReadAt(buf, 900)
	if n != 100 {
		t.Errorf("ReadAt() n = %d, want 100", n)
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("ReadAt() error = %v, want io.EOF", err)
	}
	checkRamp(t, buf[:n], 900)

	n, err = s.ReadAt(buf, 1000)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadAt(end) = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestStream_Rewind(t *testing.T) {
	t.Parallel()

	s := newRampStream(t, 5000)

	buf := make([]int16, 100)
	if _, err := s.ReadAt(buf, 1000); err != nil {
		t.Fatalf("ReadAt() error = %v", err)
	}

	if _, err := s.ReadAt(buf, 999); !errors.Is(err, ErrStreamRewind) {
		t.Errorf("ReadAt() before released position error = %v, want ErrStreamRewind", err)
	}

	// same position is still available
	if _, err := s.ReadAt(buf, 1000); err != nil {
		t.Errorf("ReadAt() at released position error = %v", err)
	}
}

func TestStream_Remaining(t *testing.T) {
	t.Parallel()

	s := newRampStream(t, 1000)

	tests := []struct {
		pos  int
		want int
	}{
		{-50, 1000},
		{0, 1000},
		{1, 999},
		{999, 1},
		{1000, 0},
		{5000, 0},
	}

	for _, tt := range tests {
		if got := s.Remaining(tt.pos); got != tt.want {
			t.Errorf("Remaining(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestStream_UnknownLength(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(ReferenceRate, 12345).WithUnknownLength()
	s, err := NewStream(src, ParamsOf(src))
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	if s.Len() != 12345 {
		t.Errorf("Len() = %d, want 12345", s.Len())
	}
	if s.Params().TotalSamples != 12345 {
		t.Errorf("Params().TotalSamples = %d, want 12345", s.Params().TotalSamples)
	}

	buf := make([]int16, 45)
	if n, _ := s.ReadAt(buf, 12300); n != 45 {
		t.Errorf("ReadAt() n = %d, want 45", n)
	}
	checkRamp(t, buf, 12300)
}

func TestStream_SourceShorterThanAnnounced(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(ReferenceRate, 500)
	params := ParamsOf(src)
	params.TotalSamples = 800

	s, err := NewStream(src, params)
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	buf := make([]int16, 1000)
	n, err := s.ReadAt(buf, 0)
	if n != 500 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadAt() = (%d, %v), want (500, io.EOF)", n, err)
	}
	if s.Len() != 500 {
		t.Errorf("Len() = %d, want 500 after short source", s.Len())
	}
}

func TestStream_StereoIsDownmixed(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSliceSource(ReferenceRate, 2, []int16{10, 20, -10, -21, 0, 4})
	s, err := NewStream(src, ParamsOf(src))
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	buf := make([]int16, 3)
	if _, err := s.ReadAt(buf, 0); err != nil {
		t.Fatalf("ReadAt() error = %v", err)
	}

	want := []int16{15, -15, 2}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}

func BenchmarkStream_ReadAt(b *testing.B) {
	src := audiotest.NewRampSource(ReferenceRate, 1<<30)
	s, _ := NewStream(src, ParamsOf(src))
	buf := make([]int16, 896)
	pos := 0

	b.ReportAllocs()

	for b.Loop() {
		_, _ = s.ReadAt(buf, pos)
		pos += 784
	}
}
