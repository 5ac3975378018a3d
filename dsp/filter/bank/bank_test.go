package bank

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tuner/dsp/filter/iir"
	"github.com/cwbudde/algo-tuner/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestMidi_UnsupportedRate(t *testing.T) {
	for _, rate := range []float64{48000, 96000, 8000, 0, -44100, 44101} {
		if _, err := Midi(rate, 0, 127); !errors.Is(err, ErrUnsupportedRate) {
			t.Errorf("rate %g: got %v, want ErrUnsupportedRate", rate, err)
		}
	}
}

func TestMidi_PitchRangeErrors(t *testing.T) {
	cases := []struct {
		min, max int
	}{
		{10, 5},
		{127, 0},
		{-1, 60},
		{0, 128},
		{-5, 200},
	}
	for _, tc := range cases {
		if _, err := Midi(44100, tc.min, tc.max); !errors.Is(err, ErrPitchRange) {
			t.Errorf("Midi(44100, %d, %d): got %v, want ErrPitchRange", tc.min, tc.max, err)
		}
	}
}

func TestMidi_Range(t *testing.T) {
	b, err := Midi(44100, 60, 72)
	if err != nil {
		t.Fatal(err)
	}
	if b.NumFilters() != 13 {
		t.Errorf("NumFilters: got %d, want 13", b.NumFilters())
	}
	if b.MinPitch() != 60 || b.MaxPitch() != 72 {
		t.Errorf("pitch range: got [%d, %d], want [60, 72]", b.MinPitch(), b.MaxPitch())
	}
	if b.SampleRate() != 44100 {
		t.Errorf("SampleRate: got %g, want 44100", b.SampleRate())
	}
	if len(b.Filters()) != 13 {
		t.Errorf("Filters length: got %d, want 13", len(b.Filters()))
	}
	if b.Filter(60) == nil || b.Filter(72) == nil {
		t.Error("in-range pitches must have filters")
	}
	if b.Filter(59) != nil || b.Filter(73) != nil {
		t.Error("out-of-range pitches must return nil")
	}

	single, err := Midi(44100, 69, 69)
	if err != nil {
		t.Fatal(err)
	}
	if single.NumFilters() != 1 {
		t.Errorf("single pitch bank: got %d filters, want 1", single.NumFilters())
	}
}

func TestMidi_FreshFilters(t *testing.T) {
	b1, err := Midi(44100, 69, 69)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := Midi(44100, 69, 69)
	if err != nil {
		t.Fatal(err)
	}

	f1, f2 := b1.Filter(69), b2.Filter(69)
	if f1 == f2 {
		t.Fatal("banks must not share filter instances")
	}
	if !f1.Equal(f2) {
		t.Fatal("same pitch and rate must yield equal configurations")
	}

	// Warming one bank's filter must leave the other cold: its first
	// sample still passes through unchanged.
	f1.ProcessSample(0.25)
	f1.ProcessSample(-0.5)
	if y := f2.ProcessSample(0.75); y != 0.75 {
		t.Errorf("second bank's filter was not cold: got %v, want 0.75", y)
	}
}

func TestMidi_DeterministicConstruction(t *testing.T) {
	first, err := Midi(88200, 40, 52)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Midi(88200, 40, 52)
	if err != nil {
		t.Fatal(err)
	}

	// Same rate and range must read identical table rows; the filter
	// copies have to match bit for bit.
	for pitch := 40; pitch <= 52; pitch++ {
		want := [][]float64{first.Filter(pitch).InputCoefficients(), first.Filter(pitch).OutputCoefficients()}
		got := [][]float64{second.Filter(pitch).InputCoefficients(), second.Filter(pitch).OutputCoefficients()}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("pitch %d coefficients got diff (-want +got):\n%s", pitch, diff)
		}
	}
}

func TestMidi_TableShape(t *testing.T) {
	for _, rate := range SupportedRates() {
		b, err := Midi(rate, 0, 127)
		if err != nil {
			t.Fatalf("rate %g: %v", rate, err)
		}
		if b.NumFilters() != 128 {
			t.Fatalf("rate %g: got %d filters, want 128", rate, b.NumFilters())
		}
		for pitch := 0; pitch <= 127; pitch++ {
			f := b.Filter(pitch)
			if f.Len() != 9 {
				t.Fatalf("rate %g pitch %d: got %d taps, want 9", rate, pitch, f.Len())
			}
			num := f.InputCoefficients()
			den := f.OutputCoefficients()
			if den[0] != 1.0 {
				t.Errorf("rate %g pitch %d: a[0]=%v, want exactly 1", rate, pitch, den[0])
			}
			for i, c := range append(num, den...) {
				if math.IsNaN(c) || math.IsInf(c, 0) {
					t.Fatalf("rate %g pitch %d: coefficient %d not finite", rate, pitch, i)
				}
			}
		}
	}
}

func TestMidi_DistinctNeighbors(t *testing.T) {
	// Neighboring pitches carry distinct designs throughout the mid range.
	// (The lowest pitches at high rates share a clamped cutoff.)
	for _, rate := range SupportedRates() {
		b, err := Midi(rate, 60, 96)
		if err != nil {
			t.Fatalf("rate %g: %v", rate, err)
		}
		for pitch := 60; pitch < 96; pitch++ {
			if b.Filter(pitch).Equal(b.Filter(pitch + 1)) {
				t.Errorf("rate %g: pitches %d and %d share a design", rate, pitch, pitch+1)
			}
		}
	}
}

func TestSupportedRates(t *testing.T) {
	want := []float64{11025, 17640, 22050, 35280, 44100, 88200, 176400}
	got := SupportedRates()
	if len(got) != len(want) {
		t.Fatalf("got %d rates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rate %d: got %g, want %g", i, got[i], want[i])
		}
		if !Supported(want[i]) {
			t.Errorf("Supported(%g) = false", want[i])
		}
	}
	if Supported(48000) || Supported(22049) {
		t.Error("unsupported rates must not report as supported")
	}
}

func TestPitchFrequency(t *testing.T) {
	if f := PitchFrequency(69); f != 440 {
		t.Errorf("A4: got %v, want 440", f)
	}
	cases := []struct {
		pitch int
		want  float64
	}{
		{57, 220},
		{81, 880},
		{60, 261.6256},
		{0, 8.1758},
	}
	for _, tc := range cases {
		if f := PitchFrequency(tc.pitch); math.Abs(f-tc.want) > 1e-3 {
			t.Errorf("pitch %d: got %v, want %v", tc.pitch, f, tc.want)
		}
	}
}

func TestCutoffFrequency(t *testing.T) {
	if c := CutoffFrequency(69); math.Abs(c-484) > 1e-9 {
		t.Errorf("A4 cutoff: got %v, want 484", c)
	}
}

func TestBank_ProcessSampleMatchesFilters(t *testing.T) {
	b, err := Midi(44100, 68, 70)
	if err != nil {
		t.Fatal(err)
	}

	refs := make([]*iir.Filter, 3)
	for i := range refs {
		taps := &midi44100[68+i]
		refs[i] = iir.New(taps[0][:], taps[1][:])
	}

	input := []float32{0.5, -0.25, 1, 0.125, -1, 0.75, 0, 0.5}
	for n, x := range input {
		out := b.ProcessSample(x)
		if len(out) != 3 {
			t.Fatalf("sample %d: got %d outputs, want 3", n, len(out))
		}
		for i, ref := range refs {
			if want := ref.ProcessSample(x); out[i] != want {
				t.Errorf("sample %d filter %d: got %v, want %v", n, i, out[i], want)
			}
		}
	}
}

func TestBank_ProcessBlockMatchesProcessSample(t *testing.T) {
	input := []float32{0.5, -0.25, 1, 0.125, -1, 0.75, 0, 0.5}

	b1, err := Midi(22050, 60, 64)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := Midi(22050, 60, 64)
	if err != nil {
		t.Fatal(err)
	}

	blocks := b1.ProcessBlock(input)
	if len(blocks) != 5 {
		t.Fatalf("got %d blocks, want 5", len(blocks))
	}
	for n, x := range input {
		out := b2.ProcessSample(x)
		for i := range out {
			if blocks[i][n] != out[i] {
				t.Errorf("filter %d sample %d: block=%v, sample=%v", i, n, blocks[i][n], out[i])
			}
		}
	}
}

func TestBank_Reset(t *testing.T) {
	b, err := Midi(44100, 69, 71)
	if err != nil {
		t.Fatal(err)
	}

	input := []float32{0.5, -0.25, 1, 0.125, -1, 0.75}
	first := b.ProcessBlock(input)
	b.Reset()
	second := b.ProcessBlock(input)

	for i := range first {
		for n := range first[i] {
			if first[i][n] != second[i][n] {
				t.Errorf("filter %d sample %d after reset: got %v, want %v",
					i, n, second[i][n], first[i][n])
			}
		}
	}
}

func TestBank_SineSeparation(t *testing.T) {
	// A 440 Hz tone sits inside the passband of the pitch 72 lowpass
	// (cutoff 575.6 Hz) and deep in the stopband of the pitch 57 lowpass
	// (cutoff 242 Hz) at 11025 Hz.
	const (
		rate = 11025.0
		freq = 440.0
		n    = 4096
		tail = 1024
	)

	b, err := Midi(rate, 57, 72)
	if err != nil {
		t.Fatal(err)
	}

	input := testutil.DeterministicSine(freq, rate, 0.5, n)
	blocks := b.ProcessBlock(input)

	energy := func(buf []float32) float64 {
		var sum float64
		for _, v := range buf[len(buf)-tail:] {
			sum += float64(v) * float64(v)
		}
		return sum
	}

	pass := energy(blocks[b.MaxPitch()-b.MinPitch()])
	stop := energy(blocks[0])
	if pass < 1000*stop {
		t.Errorf("passband/stopband energy ratio too low: pass=%v, stop=%v", pass, stop)
	}
	if pass < 1 {
		t.Errorf("passband energy implausibly low: %v", pass)
	}
}
