package iir

import (
	"errors"
	"math"
	"testing"
)

func TestPresets_Shape(t *testing.T) {
	for _, factor := range []int{2, 4, 8} {
		for name, newFilter := range map[string]func(int) (*Filter, error){
			"butterworth": ButterworthLowpass,
			"elliptic":    EllipticLowpass,
		} {
			f, err := newFilter(factor)
			if err != nil {
				t.Fatalf("%s factor %d: %v", name, factor, err)
			}
			if f.Len() != 9 || f.Order() != 8 {
				t.Errorf("%s factor %d: Len=%d Order=%d, want 9/8", name, factor, f.Len(), f.Order())
			}
			a := f.OutputCoefficients()
			if a[0] != 1.0 {
				t.Errorf("%s factor %d: a[0]=%v, want exactly 1", name, factor, a[0])
			}
			for i, c := range append(f.InputCoefficients(), a...) {
				if math.IsNaN(c) || math.IsInf(c, 0) {
					t.Fatalf("%s factor %d: coefficient %d not finite: %v", name, factor, i, c)
				}
			}
		}
	}
}

func TestPresets_UnsupportedFactor(t *testing.T) {
	for _, factor := range []int{-1, 0, 1, 3, 6, 16} {
		if _, err := ButterworthLowpass(factor); !errors.Is(err, ErrUnsupportedFactor) {
			t.Errorf("butterworth factor %d: got %v, want ErrUnsupportedFactor", factor, err)
		}
		if _, err := EllipticLowpass(factor); !errors.Is(err, ErrUnsupportedFactor) {
			t.Errorf("elliptic factor %d: got %v, want ErrUnsupportedFactor", factor, err)
		}
	}
}

func TestButterworthLowpass_Response(t *testing.T) {
	const sr = 44100.0
	nyquist := sr / 2
	for _, factor := range []int{2, 4, 8} {
		f, err := ButterworthLowpass(factor)
		if err != nil {
			t.Fatal(err)
		}
		cutoff := nyquist / float64(factor)

		if db := f.MagnitudeDB(0, sr); !almostEqual(db, 0, 1e-6) {
			t.Errorf("factor %d DC: got %v dB, want 0", factor, db)
		}
		// Butterworth cutoff sits at the half-power point.
		if db := f.MagnitudeDB(cutoff, sr); !almostEqual(db, -3.0103, 0.01) {
			t.Errorf("factor %d cutoff: got %v dB, want -3.01", factor, db)
		}
		if factor > 2 {
			if db := f.MagnitudeDB(2*cutoff, sr); db > -45 {
				t.Errorf("factor %d at 2x cutoff: got %v dB, want < -45", factor, db)
			}
		}
	}
}

func TestEllipticLowpass_Response(t *testing.T) {
	const sr = 44100.0
	nyquist := sr / 2
	for _, factor := range []int{2, 4, 8} {
		f, err := EllipticLowpass(factor)
		if err != nil {
			t.Fatal(err)
		}
		cutoff := nyquist / float64(factor)

		// Equiripple passband: within the 0.5 dB ripple band, never above
		// unity.
		for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1} {
			db := f.MagnitudeDB(frac*cutoff, sr)
			if db < -0.51 || db > 0.01 {
				t.Errorf("factor %d passband at %.2fx cutoff: got %v dB", factor, frac, db)
			}
		}
		if db := f.MagnitudeDB(1.5*cutoff, sr); db > -78 {
			t.Errorf("factor %d at 1.5x cutoff: got %v dB, want < -78", factor, db)
		}
		if factor > 2 {
			if db := f.MagnitudeDB(nyquist, sr); db > -78 {
				t.Errorf("factor %d at Nyquist: got %v dB, want < -78", factor, db)
			}
		}
	}
}

func TestPresets_Distinct(t *testing.T) {
	bw, err := ButterworthLowpass(4)
	if err != nil {
		t.Fatal(err)
	}
	el, err := EllipticLowpass(4)
	if err != nil {
		t.Fatal(err)
	}
	if bw.Equal(el) {
		t.Error("Butterworth and elliptic designs must differ")
	}

	// Repeated construction yields a fresh, configuration-equal filter.
	el2, err := EllipticLowpass(4)
	if err != nil {
		t.Fatal(err)
	}
	if el == el2 {
		t.Error("presets must not share filter instances")
	}
	if !el.Equal(el2) {
		t.Error("same preset must yield equal configurations")
	}
}

func TestEllipticLowpass_ImpulseDecays(t *testing.T) {
	f, err := EllipticLowpass(4)
	if err != nil {
		t.Fatal(err)
	}
	// Seed with zero, then run an impulse through.
	f.ProcessSample(0)
	f.ProcessSample(1)

	var tail float64
	for i := range 8192 {
		y := float64(f.ProcessSample(0))
		if math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatalf("sample %d not finite: %v", i, y)
		}
		if i >= 7168 && math.Abs(y) > tail {
			tail = math.Abs(y)
		}
	}
	if tail > 1e-3 {
		t.Errorf("impulse response tail: max |y| = %v, want decay below 1e-3", tail)
	}
}
