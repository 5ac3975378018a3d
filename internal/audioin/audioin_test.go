package audioin

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestRegistry_RegisterLookup(t *testing.T) {
	r := NewRegistry()
	r.Register("WAV", WAVDecoder{})

	if _, ok := r.Lookup("wav"); !ok {
		t.Error("lookup is not case-insensitive on register")
	}
	if _, ok := r.Lookup("Wav"); !ok {
		t.Error("lookup is not case-insensitive on lookup")
	}
	if _, ok := r.Lookup("flac"); ok {
		t.Error("unexpected decoder for unregistered format")
	}
}

func TestDefaultRegistry_Formats(t *testing.T) {
	r := DefaultRegistry()
	for _, format := range []string{"wav", "wave", "aif", "aiff", "mp3", "ogg", "oga"} {
		if _, ok := r.Lookup(format); !ok {
			t.Errorf("format %q not registered", format)
		}
	}
}

func TestOpen_UnknownFormat(t *testing.T) {
	if _, err := Open("song.xyz"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("got %v, want ErrUnknownFormat", err)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestOpen_WAVFile(t *testing.T) {
	samples := []int16{8192, -8192, 16384, -16384}
	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := os.WriteFile(path, wavBytes(44100, 1, samples), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if src.SampleRate() != 44100 || src.Channels() != 1 {
		t.Fatalf("metadata: rate=%d channels=%d", src.SampleRate(), src.Channels())
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("read %d samples, want 4", n)
	}
	if dst[0] != 0.25 || dst[1] != -0.25 {
		t.Errorf("first frame: got %v %v, want 0.25 -0.25", dst[0], dst[1])
	}

	if err := src.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOpen_DecodeFailureClosesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	if err := os.WriteFile(path, []byte("not a riff container"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); !errors.Is(err, ErrNotWAV) {
		t.Errorf("got %v, want ErrNotWAV", err)
	}
}

func TestOpen_StereoThroughMono(t *testing.T) {
	// L=0.5, R=0.25 per frame after normalization.
	samples := []int16{16384, 8192, 16384, 8192}
	path := filepath.Join(t.TempDir(), "stereo.wav")
	if err := os.WriteFile(path, wavBytes(22050, 2, samples), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	m := Mono(src)
	dst := make([]float32, 2)
	n, err := m.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("read %d frames, want 2", n)
	}
	if dst[0] != 0.375 || dst[1] != 0.375 {
		t.Errorf("got %v, want [0.375 0.375]", dst)
	}
}
