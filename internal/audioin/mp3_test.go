package audioin

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/cwbudde/algo-tuner/internal/testutil"
)

// mockMP3Stream plays back int16 PCM the way go-mp3 does: 16-bit
// little-endian bytes, io.EOF alongside the final chunk.
type mockMP3Stream struct {
	rate    int
	samples []int16
	off     int
}

func (m *mockMP3Stream) SampleRate() int { return m.rate }

func (m *mockMP3Stream) Read(buf []byte) (int, error) {
	if m.off >= len(m.samples) {
		return 0, io.EOF
	}

	n := min(len(buf)/2, len(m.samples)-m.off)
	for i := range n {
		binary.LittleEndian.PutUint16(buf[2*i:2*i+2], uint16(m.samples[m.off+i]))
	}
	m.off += n

	if m.off >= len(m.samples) {
		return n * 2, io.EOF
	}
	return n * 2, nil
}

func TestMP3Source_Conversion(t *testing.T) {
	mock := &mockMP3Stream{rate: 44100, samples: []int16{0, 16384, 32767, -16384, -32768, 8192}}
	src := &mp3Source{dec: mock, sampleRate: mock.rate}

	if src.SampleRate() != 44100 {
		t.Errorf("sample rate: got %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("channels: got %d, want 2", src.Channels())
	}

	dst := make([]float32, 6)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatal(err)
	}
	if n != 6 {
		t.Fatalf("read %d samples, want 6", n)
	}

	want := []float32{0, 0.5, 32767.0 / 32768.0, -0.5, -1, 0.25}
	testutil.RequireSliceNearlyEqual32(t, dst, want, 1e-7)
}

func TestMP3Source_EOFSequence(t *testing.T) {
	mock := &mockMP3Stream{rate: 44100, samples: []int16{1, 2, 3, 4}}
	src := &mp3Source{dec: mock, sampleRate: mock.rate}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if n != 4 || err != nil {
		t.Fatalf("first read: n=%d err=%v, want n=4 err=nil", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Fatalf("drained read: n=%d err=%v, want n=0 err=EOF", n, err)
	}
}

func TestMP3Source_ChunkedReads(t *testing.T) {
	samples := make([]int16, 100)
	for i := range samples {
		samples[i] = int16(50 * i)
	}
	mock := &mockMP3Stream{rate: 22050, samples: samples}
	src := &mp3Source{dec: mock, sampleRate: mock.rate}

	total := 0
	dst := make([]float32, 7)
	for {
		n, err := src.ReadSamples(dst)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}

	if total != len(samples) {
		t.Errorf("drained %d samples, want %d", total, len(samples))
	}
}

func TestMP3Source_EmptyDst(t *testing.T) {
	src := &mp3Source{dec: &mockMP3Stream{rate: 44100}, sampleRate: 44100}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Fatalf("got n=%d err=%v, want n=0 err=nil", n, err)
	}
}

func TestMP3Decoder_InvalidData(t *testing.T) {
	if _, err := MP3Decoder{}.Decode(bytes.NewReader([]byte("not an mp3 frame"))); err == nil {
		t.Error("expected an error for invalid data")
	}
}
