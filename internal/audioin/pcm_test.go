package audioin

import (
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// scriptedPCM plays back integer samples through the go-audio buffer
// protocol the way wav/aiff decoders deliver them.
type scriptedPCM struct {
	samples []int
	off     int
	eofErr  error // error to return once drained
}

func (s *scriptedPCM) read(buf *goaudio.IntBuffer) (int, error) {
	if s.off >= len(s.samples) {
		return 0, s.eofErr
	}

	n := copy(buf.Data, s.samples[s.off:])
	s.off += n
	buf.Data = buf.Data[:n]
	return n, nil
}

func pcmFormat() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: 44100}
}

func TestPCMSource_Scale24Bit(t *testing.T) {
	script := &scriptedPCM{samples: []int{0, 1 << 22, -(1 << 23), (1 << 23) - 1}}
	src := newPCMSource(script.read, pcmFormat(), 24)

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("read %d samples, want 4", n)
	}

	want := []float32{0, 0.5, -1, float32(1<<23-1) / float32(1<<23)}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("sample %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestPCMSource_Scale32Bit(t *testing.T) {
	script := &scriptedPCM{samples: []int{1 << 30, -(1 << 31)}}
	src := newPCMSource(script.read, pcmFormat(), 32)

	dst := make([]float32, 2)
	if _, err := src.ReadSamples(dst); err != nil {
		t.Fatal(err)
	}
	if dst[0] != 0.5 || dst[1] != -1 {
		t.Errorf("got %v, want [0.5 -1]", dst)
	}
}

func TestPCMSource_ShortReadThenEOF(t *testing.T) {
	script := &scriptedPCM{samples: []int{100, 200, 300}}
	src := newPCMSource(script.read, pcmFormat(), 16)

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 3 || err != nil {
		t.Fatalf("first read: n=%d err=%v, want n=3 err=nil", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Fatalf("drained read: n=%d err=%v, want n=0 err=EOF", n, err)
	}
}

func TestPCMSource_LibraryEOFBecomesEOF(t *testing.T) {
	// Some container readers report io.EOF themselves; either way the
	// source settles on (0, io.EOF).
	script := &scriptedPCM{samples: nil, eofErr: io.EOF}
	src := newPCMSource(script.read, pcmFormat(), 16)

	n, err := src.ReadSamples(make([]float32, 4))
	if n != 0 || err != io.EOF {
		t.Fatalf("got n=%d err=%v, want n=0 err=EOF", n, err)
	}
}

func TestPCMSource_EmptyDst(t *testing.T) {
	src := newPCMSource((&scriptedPCM{}).read, pcmFormat(), 16)

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Fatalf("got n=%d err=%v, want n=0 err=nil", n, err)
	}
}

func TestPCMSource_BufferReuseAfterShrink(t *testing.T) {
	// go-audio shrinks buf.Data on short reads; the next call must still
	// see the full requested length.
	script := &scriptedPCM{samples: []int{1, 2, 3, 4, 5, 6, 7}}
	src := newPCMSource(script.read, pcmFormat(), 16)

	first := make([]float32, 4)
	if n, _ := src.ReadSamples(first); n != 4 {
		t.Fatalf("first read n=%d, want 4", n)
	}

	second := make([]float32, 4)
	n, err := src.ReadSamples(second)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("second read n=%d, want 3", n)
	}
	if second[0] != 5.0/32768 {
		t.Errorf("second read starts at %v, want %v", second[0], 5.0/32768)
	}
}
