package iir

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-tuner/internal/ring"
)

// Filter is a direct-form recursive filter over single-precision samples.
// It keeps float64 histories of the last len(b) inputs and outputs, so each
// output sample pays exactly one narrowing conversion.
//
// A freshly constructed (or Reset) Filter is cold: the first sample it sees
// seeds both histories with that value and passes through unchanged. Only
// from the second sample on does the recurrence run.
type Filter struct {
	b []float64 // input (numerator) coefficients
	a []float64 // output (denominator) coefficients

	x   []float64 // input history, nil while cold
	y   []float64 // output history, nil while cold
	pos int
}

// New returns a Filter with the given input and output coefficients.
// The coefficient sets are not validated; both must have the same length
// with a[0] = 1. The output slot of the current sample is zeroed before the
// accumulation, so a[0] never contributes regardless of its value.
func New(b, a []float64) *Filter {
	bc := make([]float64, len(b))
	copy(bc, b)
	ac := make([]float64, len(a))
	copy(ac, a)
	return &Filter{b: bc, a: ac}
}

// ProcessSample filters one input sample and returns the output.
func (f *Filter) ProcessSample(x float32) float32 {
	if f.x == nil || f.y == nil {
		if (f.x == nil) != (f.y == nil) {
			panic("iir: filter histories out of sync")
		}
		n := len(f.b)
		f.x = make([]float64, n)
		f.y = make([]float64, n)
		v := float64(x)
		for i := range n {
			f.x[i] = v
			f.y[i] = v
		}
		f.pos = 0
		return x
	}

	n := len(f.b)
	f.pos = ring.Next(f.pos, n)
	f.x[f.pos] = float64(x)
	f.y[f.pos] = 0

	var acc float64
	j := f.pos
	for i := range n {
		acc += f.b[i]*f.x[j] - f.a[i]*f.y[j]
		j = ring.Prev(j, n)
	}
	f.y[f.pos] = acc

	return float32(acc)
}

// Map filters samples into a freshly allocated output slice, leaving the
// input untouched. State carries over between calls, so consecutive buffers
// of a stream can be mapped independently.
func (f *Filter) Map(samples []float32) []float32 {
	out := make([]float32, len(samples))
	for i, x := range samples {
		out[i] = f.ProcessSample(x)
	}
	return out
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float32) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float32) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset drops both histories, returning the filter to its cold state. The
// next sample seeds the histories again.
func (f *Filter) Reset() {
	f.x = nil
	f.y = nil
	f.pos = 0
}

// Order returns the filter order (number of input coefficients minus one).
func (f *Filter) Order() int {
	return len(f.b) - 1
}

// Len returns the number of input coefficients.
func (f *Filter) Len() int {
	return len(f.b)
}

// InputCoefficients returns a copy of the numerator coefficients.
func (f *Filter) InputCoefficients() []float64 {
	out := make([]float64, len(f.b))
	copy(out, f.b)
	return out
}

// OutputCoefficients returns a copy of the denominator coefficients.
func (f *Filter) OutputCoefficients() []float64 {
	out := make([]float64, len(f.a))
	copy(out, f.a)
	return out
}

// Equal reports whether f and g share the same coefficient configuration.
// Comparison is bitwise per coefficient; history contents and position are
// excluded.
func (f *Filter) Equal(g *Filter) bool {
	if g == nil {
		return false
	}
	if len(f.b) != len(g.b) || len(f.a) != len(g.a) {
		return false
	}
	for i := range f.b {
		if math.Float64bits(f.b[i]) != math.Float64bits(g.b[i]) {
			return false
		}
	}
	for i := range f.a {
		if math.Float64bits(f.a[i]) != math.Float64bits(g.a[i]) {
			return false
		}
	}
	return true
}

// Hash returns a configuration hash consistent with Equal: equal filters
// hash identically.
func (f *Filter) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(f.b)))
	h.Write(buf[:])
	for _, c := range f.b {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(c))
		h.Write(buf[:])
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(len(f.a)))
	h.Write(buf[:])
	for _, c := range f.a {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(c))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Response returns the complex frequency response at freqHz for the given
// sample rate.
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	omega := 2 * math.Pi * freqHz / sampleRate
	var num, den complex128
	for k, c := range f.b {
		num += complex(c, 0) * cmplx.Exp(complex(0, -omega*float64(k)))
	}
	for k, c := range f.a {
		den += complex(c, 0) * cmplx.Exp(complex(0, -omega*float64(k)))
	}
	return num / den
}

// MagnitudeDB returns the magnitude response in dB at freqHz for the given
// sample rate.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
