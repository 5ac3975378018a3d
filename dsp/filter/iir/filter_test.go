package iir

import (
	"math"
	"testing"
)

const eps = 1e-6

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNew(t *testing.T) {
	b := []float64{0.4, 0.2}
	a := []float64{1.0, -0.5}
	f := New(b, a)
	if f.Order() != 1 {
		t.Fatalf("Order: got %d, want 1", f.Order())
	}
	if f.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", f.Len())
	}
	// Mutating caller slices or accessor results must not reach the filter.
	b[0] = 999
	a[0] = 999
	if f.b[0] == 999 || f.a[0] == 999 {
		t.Error("New did not copy coefficients")
	}
	in := f.InputCoefficients()
	out := f.OutputCoefficients()
	in[0] = -1
	out[0] = -1
	if f.b[0] == -1 || f.a[0] == -1 {
		t.Error("accessors did not copy coefficients")
	}
}

func TestColdStart_PassesThrough(t *testing.T) {
	f := New([]float64{0.4, 0.2}, []float64{1.0, -0.5})
	if f.x != nil || f.y != nil {
		t.Fatal("fresh filter must be cold")
	}

	const first = float32(0.625)
	if y := f.ProcessSample(first); y != first {
		t.Fatalf("first sample: got %v, want %v unchanged", y, first)
	}
	if f.pos != 0 {
		t.Errorf("position after seeding: got %d, want 0", f.pos)
	}
	for i := range f.x {
		if f.x[i] != float64(first) || f.y[i] != float64(first) {
			t.Fatalf("history slot %d: x=%v y=%v, want both %v", i, f.x[i], f.y[i], first)
		}
	}
}

func TestProcessSample_TwoTap(t *testing.T) {
	f := New([]float64{0.4, 0.2}, []float64{1.0, -0.5})
	input := []float32{0.5, 1.0, 0.25, -0.75, 0.0, 0.5, 0.5, 0.0}
	want := []float64{
		0.5,
		0.75,
		0.6749999999999999,
		0.08749999999999991,
		-0.10625000000000007,
		0.14687499999999998,
		0.3734375,
		0.28671875,
	}
	for i, x := range input {
		y := f.ProcessSample(x)
		if !almostEqual(float64(y), want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}

func TestProcessSample_ThreeTap(t *testing.T) {
	f := New([]float64{0.25, 0.125, 0.0625}, []float64{1.0, -0.25, 0.125})
	input := []float32{1, 0, 0, 0, 0, 0, 0.5, -0.5}
	want := []float64{
		1.0,
		0.3125,
		0.015625,
		-0.03515625,
		-0.0107421875,
		0.001708984375,
		0.12677001953125,
		-0.0310211181640625,
	}
	for i, x := range input {
		y := f.ProcessSample(x)
		if !almostEqual(float64(y), want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}

func TestPassthrough_Exact(t *testing.T) {
	// Unity numerator and denominator leave every sample untouched.
	f := New([]float64{1}, []float64{1})
	input := []float32{0.5, -0.25, 1, 0, 0.125, -1, 0.75}
	for i, x := range input {
		if y := f.ProcessSample(x); y != x {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestMap_MatchesSample(t *testing.T) {
	b := []float64{0.4, 0.2}
	a := []float64{1.0, -0.5}
	input := []float32{0.5, 1.0, 0.25, -0.75, 0.0, 0.5, 0.5, 0.0}

	f1 := New(b, a)
	ref := make([]float32, len(input))
	for i, x := range input {
		ref[i] = f1.ProcessSample(x)
	}

	f2 := New(b, a)
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
	b := []float64{0.25, 0.125, 0.0625}
	a := []float64{1.0, -0.25, 0.125}
	input := []float32{1, 0, 0.5, -0.5, 0.25, 0, -1, 0.75}

	whole := New(b, a).Map(input)

	f := New(b, a)
	var split []float32
	split = append(split, f.Map(input[:2])...)
	split = append(split, f.Map(input[2:7])...)
	split = append(split, f.Map(input[7:])...)

	for i := range whole {
		if split[i] != whole[i] {
			t.Errorf("sample %d: split=%v, whole=%v", i, split[i], whole[i])
		}
	}
}

func TestMap_LeavesInputUntouched(t *testing.T) {
	f := New([]float64{0.4, 0.2}, []float64{1.0, -0.5})
	input := []float32{0.5, 1.0, 0.25}
	orig := make([]float32, len(input))
	copy(orig, input)
	f.Map(input)
	for i := range input {
		if input[i] != orig[i] {
			t.Fatalf("input[%d] modified: got %v, want %v", i, input[i], orig[i])
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	b := []float64{0.4, 0.2}
	a := []float64{1.0, -0.5}
	input := []float32{0.5, 1.0, 0.25, -0.75, 0.0, 0.5}

	f1 := New(b, a)
	ref := make([]float32, len(input))
	for i, x := range input {
		ref[i] = f1.ProcessSample(x)
	}

	f2 := New(b, a)
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
	b := []float64{0.4, 0.2}
	a := []float64{1.0, -0.5}
	input := []float32{0.5, 1.0, 0.25, -0.75, 0.0, 0.5}

	f1 := New(b, a)
	ref := make([]float32, len(input))
	for i, x := range input {
		ref[i] = f1.ProcessSample(x)
	}

	f2 := New(b, a)
	dst := make([]float32, len(input))
	f2.ProcessBlockTo(dst, input)

	for i := range dst {
		if dst[i] != ref[i] {
			t.Errorf("sample %d: dst=%v, ref=%v", i, dst[i], ref[i])
		}
	}
}

func TestReset_ReturnsToCold(t *testing.T) {
	b := []float64{0.4, 0.2}
	a := []float64{1.0, -0.5}
	input := []float32{0.5, 1.0, 0.25, -0.75}

	f := New(b, a)
	first := f.Map(input)
	f.Reset()
	if f.x != nil || f.y != nil {
		t.Fatal("Reset must drop both histories")
	}
	second := f.Map(input)

	// Replay includes the cold-start pass-through of the first sample.
	for i := range first {
		if second[i] != first[i] {
			t.Errorf("sample %d after reset: got %v, want %v", i, second[i], first[i])
		}
	}
}

func TestHistoriesOutOfSync_Panics(t *testing.T) {
	f := New([]float64{0.4, 0.2}, []float64{1.0, -0.5})
	f.ProcessSample(1)
	f.y = nil

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for inconsistent histories")
		}
	}()
	f.ProcessSample(1)
}

func TestEqual(t *testing.T) {
	a := New([]float64{0.4, 0.2}, []float64{1.0, -0.5})
	b := New([]float64{0.4, 0.2}, []float64{1.0, -0.5})
	c := New([]float64{0.4, 0.2}, []float64{1.0, -0.25})
	d := New([]float64{0.4, 0.1}, []float64{1.0, -0.5})

	if !a.Equal(b) {
		t.Error("filters with equal coefficients must be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal filters must hash identically")
	}
	if a.Equal(c) || a.Equal(d) || a.Equal(nil) {
		t.Error("filters with differing coefficients must not be equal")
	}
	if a.Hash() == c.Hash() || a.Hash() == d.Hash() {
		t.Error("differing configurations should not collide")
	}
}

func TestEqual_IgnoresRuntimeState(t *testing.T) {
	a := New([]float64{0.4, 0.2}, []float64{1.0, -0.5})
	b := New([]float64{0.4, 0.2}, []float64{1.0, -0.5})
	a.Map([]float32{1, 2, 3, 4})

	if !a.Equal(b) {
		t.Error("history progress must not affect equality")
	}
	if a.Hash() != b.Hash() {
		t.Error("history progress must not affect the hash")
	}
}

func TestHash_SeparatesCoefficientSets(t *testing.T) {
	// Same flattened values split differently between numerator and
	// denominator must not collide.
	a := New([]float64{1, 2}, []float64{3})
	b := New([]float64{1}, []float64{2, 3})
	if a.Hash() == b.Hash() {
		t.Error("numerator/denominator split must be part of the hash")
	}
	if a.Equal(b) {
		t.Error("differing splits must not be equal")
	}
}

func TestResponse_Passthrough(t *testing.T) {
	f := New([]float64{1}, []float64{1})
	for _, freq := range []float64{0, 100, 1000, 10000, 22050} {
		if db := f.MagnitudeDB(freq, 44100); !almostEqual(db, 0, 1e-10) {
			t.Errorf("freq=%v: got %v dB, want 0", freq, db)
		}
	}
}
