package response_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tuner/dsp/filter/iir"
	"github.com/cwbudde/algo-tuner/dsp/response"
	"github.com/cwbudde/algo-tuner/internal/testutil"
)

func TestRational_Passthrough(t *testing.T) {
	b := []float64{1}
	a := []float64{1}
	for _, freq := range []float64{0, 100, 1000, 10000, 22050} {
		if db := response.MagnitudeDB(b, a, freq, 44100); math.Abs(db) > 1e-10 {
			t.Errorf("freq=%v: got %v dB, want 0", freq, db)
		}
	}
}

func TestMagnitudeDB_MatchesFilter(t *testing.T) {
	f, err := iir.EllipticLowpass(4)
	if err != nil {
		t.Fatal(err)
	}
	b := f.InputCoefficients()
	a := f.OutputCoefficients()

	const sr = 44100.0
	for _, freq := range []float64{100, 1000, 2756.25, 5000, 10000} {
		fromCoeffs := response.MagnitudeDB(b, a, freq, sr)
		fromFilter := f.MagnitudeDB(freq, sr)
		if math.Abs(fromCoeffs-fromFilter) > 1e-9 {
			t.Errorf("freq=%v: coeffs=%v, filter=%v", freq, fromCoeffs, fromFilter)
		}
	}
}

func TestMagnitudeGrid_Passthrough(t *testing.T) {
	freqs, mags, err := response.MagnitudeGrid([]float64{1}, []float64{1}, 16, 44100)
	if err != nil {
		t.Fatal(err)
	}
	if len(freqs) != 9 || len(mags) != 9 {
		t.Fatalf("got %d/%d points, want 9", len(freqs), len(mags))
	}
	if freqs[0] != 0 || freqs[8] != 22050 {
		t.Errorf("grid endpoints: got %v and %v, want 0 and 22050", freqs[0], freqs[8])
	}
	for k, db := range mags {
		if math.Abs(db) > 1e-9 {
			t.Errorf("bin %d: got %v dB, want 0", k, db)
		}
	}
}

func TestMagnitudeGrid_MatchesRational(t *testing.T) {
	f, err := iir.EllipticLowpass(2)
	if err != nil {
		t.Fatal(err)
	}
	b := f.InputCoefficients()
	a := f.OutputCoefficients()

	const sr = 44100.0
	freqs, mags, err := response.MagnitudeGrid(b, a, 512, sr)
	if err != nil {
		t.Fatal(err)
	}
	for k := range freqs {
		want := response.MagnitudeDB(b, a, freqs[k], sr)
		// Skip bins near transmission zeros, where tiny rounding moves
		// the dB value wildly.
		if want < -100 {
			continue
		}
		if math.Abs(mags[k]-want) > 1e-5 {
			t.Errorf("bin %d (%.1f Hz): grid=%v, direct=%v", k, freqs[k], mags[k], want)
		}
	}
}

func TestImpulseResponse_FIROnly(t *testing.T) {
	got, err := response.ImpulseResponse([]float64{0.5, 0.25}, []float64{1}, 5)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0.5, 0.25, 0, 0, 0}, 0)
}

func TestImpulseResponse_OnePole(t *testing.T) {
	got, err := response.ImpulseResponse([]float64{1, 0}, []float64{1, -0.5}, 6)
	if err != nil {
		t.Fatal(err)
	}
	// Halving is exact in binary, so zero tolerance holds.
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 0.5, 0.25, 0.125, 0.0625, 0.03125}, 0)
}

func TestImpulseResponse_SkipsLeadingDenominator(t *testing.T) {
	// a[0] never participates in the recurrence, whatever its value.
	ref, err := response.ImpulseResponse([]float64{1, 0}, []float64{1, -0.5}, 8)
	if err != nil {
		t.Fatal(err)
	}
	got, err := response.ImpulseResponse([]float64{1, 0}, []float64{999, -0.5}, 8)
	if err != nil {
		t.Fatal(err)
	}
	d, err := testutil.MaxAbsDiff(got, ref)
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("responses diverge by %v, want identical", d)
	}
}

func TestErrors(t *testing.T) {
	if _, err := response.ImpulseResponse(nil, []float64{1}, 4); !errors.Is(err, response.ErrNoCoefficients) {
		t.Errorf("empty numerator: got %v, want ErrNoCoefficients", err)
	}
	if _, err := response.ImpulseResponse([]float64{1}, nil, 4); !errors.Is(err, response.ErrNoCoefficients) {
		t.Errorf("empty denominator: got %v, want ErrNoCoefficients", err)
	}
	if _, err := response.ImpulseResponse([]float64{1}, []float64{1}, 0); !errors.Is(err, response.ErrLength) {
		t.Errorf("zero length: got %v, want ErrLength", err)
	}
	if _, _, err := response.MagnitudeGrid(nil, []float64{1}, 64, 44100); !errors.Is(err, response.ErrNoCoefficients) {
		t.Errorf("grid empty numerator: got %v, want ErrNoCoefficients", err)
	}
	if _, _, err := response.MagnitudeGrid(make([]float64, 9), make([]float64, 9), 8, 44100); !errors.Is(err, response.ErrGridSize) {
		t.Errorf("small grid: got %v, want ErrGridSize", err)
	}
}
