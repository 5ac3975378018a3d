package audioin

import (
	"io"
	"testing"
)

// sliceSource serves a fixed interleaved sample slice.
type sliceSource struct {
	rate     int
	channels int
	data     []float32
	off      int
	closed   bool
}

func (s *sliceSource) SampleRate() int { return s.rate }
func (s *sliceSource) Channels() int   { return s.channels }

func (s *sliceSource) Close() error {
	s.closed = true
	return nil
}

func (s *sliceSource) ReadSamples(dst []float32) (int, error) {
	if s.off >= len(s.data) {
		return 0, io.EOF
	}

	n := copy(dst, s.data[s.off:])
	s.off += n
	return n, nil
}

func TestMono_StereoAverage(t *testing.T) {
	src := &sliceSource{rate: 44100, channels: 2, data: []float32{
		0.5, 0.5, // -> 0.5
		1, 0, // -> 0.5
		-0.5, 0.5, // -> 0
		-1, -1, // -> -1
	}}
	m := Mono(src)

	if m.Channels() != 1 {
		t.Fatalf("channels: got %d, want 1", m.Channels())
	}
	if m.SampleRate() != 44100 {
		t.Fatalf("sample rate: got %d, want 44100", m.SampleRate())
	}

	dst := make([]float32, 4)
	n, err := m.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("read %d frames, want 4", n)
	}

	want := []float32{0.5, 0.5, 0, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("frame %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestMono_GenericChannelCount(t *testing.T) {
	src := &sliceSource{rate: 22050, channels: 4, data: []float32{
		0.25, 0.25, 0.25, 0.25, // -> 0.25
		1, -1, 1, -1, // -> 0
	}}
	m := Mono(src)

	dst := make([]float32, 2)
	n, err := m.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("read %d frames, want 2", n)
	}
	if dst[0] != 0.25 || dst[1] != 0 {
		t.Errorf("got %v, want [0.25 0]", dst)
	}
}

func TestMono_PassthroughForMono(t *testing.T) {
	src := &sliceSource{rate: 44100, channels: 1, data: []float32{0.1, 0.2}}

	if Mono(src) != Source(src) {
		t.Error("mono source should pass through unchanged")
	}
}

func TestMono_EOF(t *testing.T) {
	src := &sliceSource{rate: 44100, channels: 2, data: []float32{0.5, 0.5}}
	m := Mono(src)

	dst := make([]float32, 4)
	n, err := m.ReadSamples(dst)
	if n != 1 || err != nil {
		t.Fatalf("first read: n=%d err=%v, want n=1 err=nil", n, err)
	}

	n, err = m.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Fatalf("drained read: n=%d err=%v, want n=0 err=EOF", n, err)
	}
}

func TestMono_CloseDelegates(t *testing.T) {
	src := &sliceSource{rate: 44100, channels: 2}
	m := Mono(src)

	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if !src.closed {
		t.Error("Close did not reach the underlying source")
	}
}
