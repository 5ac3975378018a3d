package bank

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tuner/internal/testutil"
)

func TestNewMidiAnalyzer_Errors(t *testing.T) {
	if _, err := NewMidiAnalyzer(48000); !errors.Is(err, ErrUnsupportedRate) {
		t.Errorf("rate 48000: got %v, want ErrUnsupportedRate", err)
	}
	if _, err := NewMidiAnalyzer(44100, WithAnalyzerPitchRange(80, 60)); !errors.Is(err, ErrPitchRange) {
		t.Errorf("inverted range: got %v, want ErrPitchRange", err)
	}
}

func TestNewMidiAnalyzer_Defaults(t *testing.T) {
	an, err := NewMidiAnalyzer(44100)
	if err != nil {
		t.Fatal(err)
	}
	if an.MinPitch() != 0 || an.MaxPitch() != 127 {
		t.Errorf("default range: got [%d, %d], want [0, 127]", an.MinPitch(), an.MaxPitch())
	}
	if an.SampleRate() != 44100 {
		t.Errorf("SampleRate: got %g, want 44100", an.SampleRate())
	}
	if an.Bank() == nil || an.Bank().NumFilters() != 128 {
		t.Error("analyzer must own a full-range bank")
	}
	for i, e := range an.Energies() {
		if e != 0 {
			t.Fatalf("initial energy %d: got %v, want 0", i, e)
		}
	}
}

func TestAnalyzer_EnergiesOwnedSlice(t *testing.T) {
	an, err := NewMidiAnalyzer(11025, WithAnalyzerPitchRange(60, 72))
	if err != nil {
		t.Fatal(err)
	}
	first := an.ProcessBlock(make([]float32, 256))
	second := an.ProcessBlock(make([]float32, 256))
	if &first[0] != &second[0] {
		t.Error("ProcessBlock must reuse the analyzer-owned energies slice")
	}
	if &first[0] != &an.Energies()[0] {
		t.Error("Energies must expose the same slice ProcessBlock returns")
	}
}

func TestAnalyzer_EnergyContrast(t *testing.T) {
	an, err := NewMidiAnalyzer(11025, WithAnalyzerPitchRange(57, 72))
	if err != nil {
		t.Fatal(err)
	}

	sig := testutil.DeterministicSine(440, 11025, 0.5, 4096)
	var energies []float64
	for start := 0; start < len(sig); start += 512 {
		energies = an.ProcessBlock(sig[start : start+512])
	}

	pass := energies[len(energies)-1] // pitch 72, tone in passband
	stop := energies[0]               // pitch 57, tone in stopband
	if pass < 100*stop {
		t.Errorf("energy contrast too low: pass=%v, stop=%v", pass, stop)
	}
	// Half-amplitude sine power is -9 dB; allow for passband ripple.
	if db := an.EnergyDB(72); db < -10 || db > -8 {
		t.Errorf("passband energy: got %v dB, want near -9", db)
	}
	if an.EnergyDB(57) >= an.EnergyDB(72) {
		t.Error("stopband pitch must carry less energy than passband pitch")
	}
	if !math.IsNaN(an.EnergyDB(40)) {
		t.Error("pitch outside the analyzed range must report NaN")
	}
}

func TestAnalyzer_DominantPitch(t *testing.T) {
	// A 60 Hz tone lies below every cutoff in the range, so the whole
	// energy lands in the lowest pitch's band.
	an, err := NewMidiAnalyzer(11025, WithAnalyzerPitchRange(57, 72))
	if err != nil {
		t.Fatal(err)
	}

	sig := testutil.DeterministicSine(60, 11025, 0.5, 4096)
	for start := 0; start < len(sig); start += 512 {
		an.ProcessBlock(sig[start : start+512])
	}
	testutil.RequireFinite(t, an.Energies())

	pitch, energy := an.DominantPitch()
	if pitch != 57 {
		t.Errorf("dominant pitch: got %d, want 57", pitch)
	}
	if energy < 0.05 {
		t.Errorf("dominant band energy implausibly low: %v", energy)
	}
}

func TestAnalyzer_Reset(t *testing.T) {
	an, err := NewMidiAnalyzer(11025, WithAnalyzerPitchRange(60, 64))
	if err != nil {
		t.Fatal(err)
	}

	sig := testutil.DeterministicSine(440, 11025, 0.5, 1024)
	var first []float64
	for start := 0; start < len(sig); start += 256 {
		first = an.ProcessBlock(sig[start : start+256])
	}
	snapshot := make([]float64, len(first))
	copy(snapshot, first)

	an.Reset()
	for i, e := range an.Energies() {
		if e != 0 {
			t.Fatalf("energy %d after reset: got %v, want 0", i, e)
		}
	}

	var second []float64
	for start := 0; start < len(sig); start += 256 {
		second = an.ProcessBlock(sig[start : start+256])
	}
	for i := range snapshot {
		if second[i] != snapshot[i] {
			t.Errorf("energy %d after reset replay: got %v, want %v", i, second[i], snapshot[i])
		}
	}
}

func TestAnalyzer_Smoothing(t *testing.T) {
	newPair := func() (smoothed, raw *Analyzer) {
		var err error
		smoothed, err = NewMidiAnalyzer(11025,
			WithAnalyzerPitchRange(72, 72), WithAnalyzerSmoothing(0.5))
		if err != nil {
			t.Fatal(err)
		}
		raw, err = NewMidiAnalyzer(11025, WithAnalyzerPitchRange(72, 72))
		if err != nil {
			t.Fatal(err)
		}
		return smoothed, raw
	}
	smoothed, raw := newPair()

	tone := testutil.DeterministicSine(440, 11025, 0.5, 512)
	silence := make([]float32, 512)

	sm := smoothed.ProcessBlock(tone)[0]
	rw := raw.ProcessBlock(tone)[0]
	if math.Abs(sm-0.5*rw) > 1e-12 {
		t.Errorf("first smoothed block: got %v, want half of %v", sm, rw)
	}

	// Once the filter ring-down has died away, the raw analyzer reads
	// near-zero while the smoothed one still holds tone energy.
	for range 4 {
		sm = smoothed.ProcessBlock(silence)[0]
		rw = raw.ProcessBlock(silence)[0]
	}
	if sm < 1e-4 {
		t.Errorf("smoothed energy decayed too far: %v", sm)
	}
	if sm < 100*rw {
		t.Errorf("smoothing must hold energy across silence: smoothed=%v, raw=%v", sm, rw)
	}
}

func TestAnalyzer_EmptyBlock(t *testing.T) {
	an, err := NewMidiAnalyzer(11025, WithAnalyzerPitchRange(60, 64))
	if err != nil {
		t.Fatal(err)
	}
	an.ProcessBlock(testutil.DeterministicSine(440, 11025, 0.5, 256))
	before := make([]float64, len(an.Energies()))
	copy(before, an.Energies())

	out := an.ProcessBlock(nil)
	for i := range before {
		if out[i] != before[i] {
			t.Fatalf("empty block changed energy %d: got %v, want %v", i, out[i], before[i])
		}
	}
}

func TestAnalyzer_NilReceiver(t *testing.T) {
	var an *Analyzer
	if an.Energies() != nil || an.Bank() != nil {
		t.Error("nil analyzer accessors must return zero values")
	}
	if out := an.ProcessBlock([]float32{1}); out != nil {
		t.Error("nil analyzer ProcessBlock must return nil")
	}
	if pitch, energy := an.DominantPitch(); pitch != 0 || energy != 0 {
		t.Error("nil analyzer DominantPitch must return zeros")
	}
	an.Reset()
}
