package audioin

import (
	"bytes"
	"io"
	"testing"
)

// mockVorbisStream plays back interleaved float32 the way oggvorbis does.
type mockVorbisStream struct {
	rate     int
	channels int
	data     []float32
	off      int
}

func (m *mockVorbisStream) SampleRate() int { return m.rate }
func (m *mockVorbisStream) Channels() int   { return m.channels }

func (m *mockVorbisStream) Read(p []float32) (int, error) {
	if m.off >= len(m.data) {
		return 0, io.EOF
	}

	n := copy(p, m.data[m.off:])
	m.off += n
	return n, nil
}

func TestVorbisSource_Passthrough(t *testing.T) {
	data := []float32{0.25, -0.25, 0.5, -0.5, 1, -1}
	mock := &mockVorbisStream{rate: 44100, channels: 2, data: data}
	src := &vorbisSource{dec: mock, sampleRate: mock.rate, channels: mock.channels}

	if src.SampleRate() != 44100 || src.Channels() != 2 {
		t.Fatalf("metadata: rate=%d channels=%d", src.SampleRate(), src.Channels())
	}

	dst := make([]float32, 6)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Fatalf("read %d samples, want 6", n)
	}

	for i := range data {
		if dst[i] != data[i] {
			t.Errorf("sample %d: got %v, want %v", i, dst[i], data[i])
		}
	}
}

func TestVorbisSource_FrameAlignedReads(t *testing.T) {
	mock := &mockVorbisStream{rate: 44100, channels: 2, data: make([]float32, 10)}
	src := &vorbisSource{dec: mock, sampleRate: mock.rate, channels: mock.channels}

	// An odd-length dst is trimmed to whole frames.
	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("read %d samples, want 4 (frame-aligned)", n)
	}

	// A dst shorter than one frame reads nothing.
	n, err = src.ReadSamples(make([]float32, 1))
	if n != 0 || err != nil {
		t.Errorf("sub-frame read: n=%d err=%v, want n=0 err=nil", n, err)
	}
}

func TestVorbisSource_EOF(t *testing.T) {
	mock := &mockVorbisStream{rate: 48000, channels: 1, data: []float32{0.1, 0.2}}
	src := &vorbisSource{dec: mock, sampleRate: mock.rate, channels: mock.channels}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 2 || err != nil {
		t.Fatalf("first read: n=%d err=%v, want n=2 err=nil", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Fatalf("drained read: n=%d err=%v, want n=0 err=EOF", n, err)
	}
}

func TestVorbisDecoder_InvalidData(t *testing.T) {
	if _, err := VorbisDecoder{}.Decode(bytes.NewReader([]byte("OggS but not really"))); err == nil {
		t.Error("expected an error for invalid data")
	}
}
