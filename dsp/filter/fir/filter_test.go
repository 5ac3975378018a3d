package fir

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

const eps = 1e-6

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func mustNew(t *testing.T, coeffs []float64) *Filter {
	t.Helper()
	f, err := New(coeffs)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestNew(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	f := mustNew(t, coeffs)
	if f.Order() != 2 {
		t.Fatalf("Order: got %d, want 2", f.Order())
	}
	if f.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", f.Len())
	}
	got := f.Coefficients()
	for i := range coeffs {
		if got[i] != coeffs[i] {
			t.Errorf("coeffs[%d]: got %v, want %v", i, got[i], coeffs[i])
		}
	}
	// Verify it's a copy.
	coeffs[0] = 999
	if f.coeffs[0] == 999 {
		t.Error("New did not copy coefficients")
	}
}

func TestNew_Empty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoCoefficients) {
		t.Fatalf("New(nil): got %v, want ErrNoCoefficients", err)
	}
	if _, err := New([]float64{}); !errors.Is(err, ErrNoCoefficients) {
		t.Fatal("expected error for empty coefficients")
	}
}

func TestProcessSample_Impulse(t *testing.T) {
	// Impulse response of FIR should equal the coefficients.
	coeffs := []float64{0.25, 0.5, 0.25}
	f := mustNew(t, coeffs)

	for i, want := range coeffs {
		var x float32
		if i == 0 {
			x = 1
		}
		y := f.ProcessSample(x)
		if !almostEqual(float64(y), want, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want)
		}
	}
	// After the impulse response, output should be zero.
	for i := range 5 {
		y := f.ProcessSample(0)
		if y != 0 {
			t.Errorf("post-IR sample %d: got %v, want 0", i, y)
		}
	}
}

func TestProcessSample_MovingAverage(t *testing.T) {
	// 3-tap moving average: h = [1/3, 1/3, 1/3]
	f := mustNew(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
	input := []float32{1, 1, 1, 1, 1}
	// y[0] = 1/3, y[1] = 2/3, y[2..4] = 1
	want := []float64{1.0 / 3, 2.0 / 3, 1, 1, 1}
	for i, x := range input {
		y := f.ProcessSample(x)
		if !almostEqual(float64(y), want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}

func TestProcessSample_Differentiator(t *testing.T) {
	// Simple differentiator: h = [1, -1]
	f := mustNew(t, []float64{1, -1})
	input := []float32{0, 1, 3, 6, 10}
	// y[n] = x[n] - x[n-1], with x[-1] = 0
	want := []float64{0, 1, 2, 3, 4}
	for i, x := range input {
		y := f.ProcessSample(x)
		if !almostEqual(float64(y), want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}

func TestMap_MatchesSample(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	input := []float32{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}

	f1 := mustNew(t, coeffs)
	ref := make([]float32, len(input))
	for i, x := range input {
		ref[i] = f1.ProcessSample(x)
	}

	f2 := mustNew(t, coeffs)
	got := f2.Map(input)
	if len(got) != len(input) {
		t.Fatalf("Map length: got %d, want %d", len(got), len(input))
	}
	for i := range got {
		if got[i] != ref[i] {
			t.Errorf("sample %d: map=%v, ref=%v", i, got[i], ref[i])
		}
	}
}

func TestMap_StreamContinuity(t *testing.T) {
	// Splitting the stream into buffers must not change the output.
	coeffs := []float64{0.25, 0.5, 0.25}
	input := []float32{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}

	whole := mustNew(t, coeffs).Map(input)

	f := mustNew(t, coeffs)
	var split []float32
	split = append(split, f.Map(input[:3])...)
	split = append(split, f.Map(input[3:5])...)
	split = append(split, f.Map(input[5:])...)

	for i := range whole {
		if split[i] != whole[i] {
			t.Errorf("sample %d: split=%v, whole=%v", i, split[i], whole[i])
		}
	}
}

func TestMap_Empty(t *testing.T) {
	f := mustNew(t, []float64{0.25, 0.5, 0.25})
	if out := f.Map(nil); len(out) != 0 {
		t.Fatalf("Map(nil): got %d samples", len(out))
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	input := []float32{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}

	f1 := mustNew(t, coeffs)
	ref := make([]float32, len(input))
	for i, x := range input {
		ref[i] = f1.ProcessSample(x)
	}

	f2 := mustNew(t, coeffs)
	block := make([]float32, len(input))
	copy(block, input)
	f2.ProcessBlock(block)

	for i := range block {
		if block[i] != ref[i] {
			t.Errorf("sample %d: block=%v, ref=%v", i, block[i], ref[i])
		}
	}
}

func TestProcessBlockTo_MatchesSample(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	input := []float32{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}

	f1 := mustNew(t, coeffs)
	ref := make([]float32, len(input))
	for i, x := range input {
		ref[i] = f1.ProcessSample(x)
	}

	f2 := mustNew(t, coeffs)
	dst := make([]float32, len(input))
	f2.ProcessBlockTo(dst, input)

	for i := range dst {
		if dst[i] != ref[i] {
			t.Errorf("sample %d: dst=%v, ref=%v", i, dst[i], ref[i])
		}
	}
}

func TestReset_MatchesFresh(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	input := []float32{1, 0.5, -0.3, 0.7, 0, -1}

	f := mustNew(t, coeffs)
	f.Map(input)
	f.Reset()
	got := f.Map(input)

	want := mustNew(t, coeffs).Map(input)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d after reset: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIdentity_MapReturnsInput(t *testing.T) {
	f := NewIdentity()
	input := []float32{1, -0.5, 0.25, 0, 0.75, -1}
	out := f.Map(input)
	if len(out) != len(input) {
		t.Fatalf("length: got %d, want %d", len(out), len(input))
	}
	for i := range input {
		if out[i] != input[i] {
			t.Errorf("sample %d: got %v, want %v", i, out[i], input[i])
		}
	}
	// The output must be a fresh buffer, not an alias.
	out[0] = 42
	if input[0] == 42 {
		t.Error("Map aliased its input")
	}
}

func TestIdentity_MatchesGeneralPath(t *testing.T) {
	// The identity fast path must be observationally identical to the
	// general convolution over the same single-tap configuration.
	fast := NewIdentity()
	slow := &Filter{
		coeffs: []float64{1},
		delay:  make([]float64, 1),
		pos:    -1,
	}
	input := []float32{0.5, -0.25, 1, 0, -1, 0.125}

	a := fast.Map(input[:4])
	b := slow.Map(input[:4])
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("sample %d: fast=%v, slow=%v", i, a[i], b[i])
		}
	}
	// Per-sample behavior and internal state line up as well.
	for _, x := range input[4:] {
		if ya, yb := fast.ProcessSample(x), slow.ProcessSample(x); ya != yb {
			t.Errorf("ProcessSample(%v): fast=%v, slow=%v", x, ya, yb)
		}
	}
	if fast.pos != slow.pos || fast.delay[0] != slow.delay[0] {
		t.Errorf("state diverged: fast=(%d,%v), slow=(%d,%v)",
			fast.pos, fast.delay[0], slow.pos, slow.delay[0])
	}
}

func TestEqual(t *testing.T) {
	a := mustNew(t, []float64{0.25, 0.5, 0.25})
	b := mustNew(t, []float64{0.25, 0.5, 0.25})
	c := mustNew(t, []float64{0.25, 0.5, 0.125})
	d := mustNew(t, []float64{0.25, 0.5})

	if !a.Equal(b) {
		t.Error("filters with equal coefficients must be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal filters must hash identically")
	}
	if a.Equal(c) || a.Equal(d) || a.Equal(nil) {
		t.Error("filters with differing coefficients must not be equal")
	}
	if a.Hash() == c.Hash() {
		t.Error("differing configurations should not collide")
	}
}

func TestEqual_IgnoresRuntimeState(t *testing.T) {
	a := mustNew(t, []float64{0.25, 0.5, 0.25})
	b := mustNew(t, []float64{0.25, 0.5, 0.25})
	a.Map([]float32{1, 2, 3, 4})

	if !a.Equal(b) {
		t.Error("delay-line progress must not affect equality")
	}
	if a.Hash() != b.Hash() {
		t.Error("delay-line progress must not affect the hash")
	}
}

func TestResponse_DCGain(t *testing.T) {
	// DC gain of FIR = sum of coefficients.
	coeffs := []float64{0.25, 0.5, 0.25}
	f := mustNew(t, coeffs)
	h := f.Response(0, 44100)
	dcGain := cmplx.Abs(h)
	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}
	if !almostEqual(dcGain, sum, 1e-12) {
		t.Errorf("DC gain: got %v, want %v", dcGain, sum)
	}
}

func TestMagnitudeDB_MatchesResponse(t *testing.T) {
	f := mustNew(t, []float64{0.25, 0.5, 0.25})
	sr := 44100.0
	for _, freq := range []float64{100, 1000, 10000} {
		h := f.Response(freq, sr)
		fromResponse := 20 * math.Log10(cmplx.Abs(h))
		fromMethod := f.MagnitudeDB(freq, sr)
		if !almostEqual(fromMethod, fromResponse, 1e-10) {
			t.Errorf("freq=%v: MagnitudeDB=%.15f, ref=%.15f", freq, fromMethod, fromResponse)
		}
	}
}

func TestSingleTapGain(t *testing.T) {
	// Single-tap FIR with a non-unit tap takes the general path.
	f := mustNew(t, []float64{0.5})
	if f.identity {
		t.Fatal("gain tap must not be tagged as identity")
	}
	input := []float32{1, 2, 3}
	for i, x := range input {
		y := f.ProcessSample(x)
		if !almostEqual(float64(y), float64(x)*0.5, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, float64(x)*0.5)
		}
	}
}
