package audioin

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/cwbudde/algo-tuner/internal/testutil"
)

// wavBytes builds a canonical 44-byte-header PCM WAV with 16-bit
// little-endian samples, interleaved when channels > 1.
func wavBytes(sampleRate, channels int, samples []int16) []byte {
	numChannels := uint16(channels)
	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * 2
	blockAlign := numChannels * 2
	dataSize := uint32(len(samples) * 2)

	out := make([]byte, 44+len(samples)*2)
	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], 36+dataSize)
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 1)
	binary.LittleEndian.PutUint16(out[22:24], numChannels)
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], byteRate)
	binary.LittleEndian.PutUint16(out[32:34], blockAlign)
	binary.LittleEndian.PutUint16(out[34:36], bitsPerSample)
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], dataSize)

	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[44+2*i:46+2*i], uint16(s))
	}
	return out
}

func TestWAVDecoder_Mono16(t *testing.T) {
	samples := []int16{0, 16384, -16384, 32767, -32768, 8192}

	src, err := WAVDecoder{}.Decode(bytes.NewReader(wavBytes(44100, 1, samples)))
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	if src.SampleRate() != 44100 {
		t.Errorf("sample rate: got %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("channels: got %d, want 1", src.Channels())
	}

	dst := make([]float32, len(samples))
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatal(err)
	}
	if n != len(samples) {
		t.Fatalf("read %d samples, want %d", n, len(samples))
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0, -1, 0.25}
	testutil.RequireSliceNearlyEqual32(t, dst[:n], want, 1e-7)
}

func TestWAVDecoder_DrainsToEOF(t *testing.T) {
	samples := make([]int16, 10)
	for i := range samples {
		samples[i] = int16(100 * i)
	}

	src, err := WAVDecoder{}.Decode(bytes.NewReader(wavBytes(22050, 1, samples)))
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]float32, 4)
	total := 0
	for {
		n, err := src.ReadSamples(dst)
		total += n
		if err == io.EOF {
			if n != 0 {
				t.Fatalf("EOF with %d samples, want 0", n)
			}
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

func TestWAVDecoder_StereoLayout(t *testing.T) {
	// L, R interleaved frames survive decoding in order.
	samples := []int16{1000, 2000, 3000, 4000}

	src, err := WAVDecoder{}.Decode(bytes.NewReader(wavBytes(44100, 2, samples)))
	if err != nil {
		t.Fatal(err)
	}

	if src.Channels() != 2 {
		t.Fatalf("channels: got %d, want 2", src.Channels())
	}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("read %d samples, want 4", n)
	}

	for i := range n {
		want := float32(samples[i]) / 32768
		if dst[i] != want {
			t.Errorf("sample %d: got %v, want %v", i, dst[i], want)
		}
	}
}

func TestWAVDecoder_NotWAV(t *testing.T) {
	_, err := WAVDecoder{}.Decode(bytes.NewReader([]byte("definitely not audio")))
	if !errors.Is(err, ErrNotWAV) {
		t.Errorf("got %v, want ErrNotWAV", err)
	}
}

func TestWAVDecoder_UnsupportedDepth(t *testing.T) {
	b := wavBytes(8000, 1, []int16{0, 0})
	binary.LittleEndian.PutUint16(b[34:36], 8) // rewrite bits-per-sample

	_, err := WAVDecoder{}.Decode(bytes.NewReader(b))
	if !errors.Is(err, ErrUnsupportedDepth) {
		t.Errorf("got %v, want ErrUnsupportedDepth", err)
	}
}

func TestWAVDecoder_PlainReader(t *testing.T) {
	// A non-seekable reader gets buffered into memory transparently.
	data := wavBytes(11025, 1, []int16{512, -512})
	src, err := WAVDecoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]float32, 2)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatal(err)
	}
	if n != 2 || dst[0] != 512.0/32768 || dst[1] != -512.0/32768 {
		t.Errorf("got n=%d dst=%v", n, dst)
	}
}
