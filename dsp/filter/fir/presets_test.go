package fir

import (
	"errors"
	"testing"
)

func TestFir1Lowpass_Identity(t *testing.T) {
	f, err := Fir1Lowpass(1)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Equal(NewIdentity()) {
		t.Fatal("factor 1 must yield the identity configuration")
	}
	input := []float32{1, -0.5, 0.25, 0.75}
	out := f.Map(input)
	for i := range input {
		if out[i] != input[i] {
			t.Errorf("sample %d: got %v, want %v", i, out[i], input[i])
		}
	}
}

func TestFir1Lowpass_SupportedFactors(t *testing.T) {
	for _, factor := range []int{2, 3, 4, 5, 7, 8, 160} {
		f, err := Fir1Lowpass(factor)
		if err != nil {
			t.Fatalf("factor %d: %v", factor, err)
		}
		if f.Len() != 17 {
			t.Errorf("factor %d: got %d taps, want 17", factor, f.Len())
		}
		sum := 0.0
		for _, c := range f.Coefficients() {
			sum += c
		}
		if !almostEqual(sum, 1, 1e-12) {
			t.Errorf("factor %d: coefficient sum %v, want 1", factor, sum)
		}
	}
}

func TestFir1Lowpass_UnsupportedFactor(t *testing.T) {
	for _, factor := range []int{0, -1, 6, 9, 16, 100} {
		if _, err := Fir1Lowpass(factor); !errors.Is(err, ErrUnsupportedFactor) {
			t.Errorf("factor %d: got %v, want ErrUnsupportedFactor", factor, err)
		}
	}
}

func TestFir1Lowpass_Response(t *testing.T) {
	const sr = 44100.0
	nyquist := sr / 2

	// Half-band design: unity at DC, strong rejection well past cutoff.
	half, err := Fir1Lowpass(2)
	if err != nil {
		t.Fatal(err)
	}
	if db := half.MagnitudeDB(0, sr); !almostEqual(db, 0, 1e-9) {
		t.Errorf("factor 2 DC: got %v dB, want 0", db)
	}
	if db := half.MagnitudeDB(0.75*nyquist, sr); db > -50 {
		t.Errorf("factor 2 at 0.75 Nyquist: got %v dB, want < -50", db)
	}

	// Eighth-band design is far down by mid-band.
	eighth, err := Fir1Lowpass(8)
	if err != nil {
		t.Fatal(err)
	}
	if db := eighth.MagnitudeDB(0.5*nyquist, sr); db > -75 {
		t.Errorf("factor 8 at 0.5 Nyquist: got %v dB, want < -75", db)
	}
}
