package fir

import (
	"encoding/binary"
	"errors"
	"hash/fnv"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-tuner/internal/ring"
)

// ErrNoCoefficients is returned when a filter is constructed from an empty
// coefficient slice.
var ErrNoCoefficients = errors.New("fir: coefficients must not be empty")

// Filter implements a direct-form FIR filter using a circular-buffer delay
// line. Input and output samples are single precision; the delay line and
// the accumulation run in float64.
//
// A Filter carries its delay line across calls, so feeding a stream in
// buffers of any size produces the same output as feeding it sample by
// sample. It must not be shared between streams.
type Filter struct {
	coeffs   []float64
	delay    []float64
	pos      int
	identity bool
}

// New creates a FIR filter from the given coefficient slice.
// The coefficients are copied. The filter order is len(coeffs)-1.
func New(coeffs []float64) (*Filter, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &Filter{
		coeffs:   c,
		delay:    make([]float64, len(c)),
		pos:      -1,
		identity: len(c) == 1 && c[0] == 1,
	}, nil
}

// NewIdentity returns the single-tap pass-through filter.
func NewIdentity() *Filter {
	f, _ := New([]float64{1})
	return f
}

// ProcessSample filters one input sample using direct convolution
// with a circular delay line.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float32) float32 {
	n := len(f.coeffs)
	f.pos = ring.Next(f.pos, n)
	f.delay[f.pos] = float64(x)
	if f.identity {
		return x
	}
	var y float64
	p := f.pos
	for k := range n {
		y += f.coeffs[k] * f.delay[p]
		p = ring.Prev(p, n)
	}
	return float32(y)
}

// Map filters one buffer and returns a freshly allocated output buffer of
// the same length. State carries over from the previous call, so buffer
// boundaries are invisible to the stream.
func (f *Filter) Map(samples []float32) []float32 {
	out := make([]float32, len(samples))
	if f.identity {
		copy(out, samples)
		if n := len(samples); n > 0 {
			f.delay[0] = float64(samples[n-1])
			f.pos = 0
		}
		return out
	}
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

// Reset clears the delay line and rewinds the write index, returning the
// filter to its just-constructed state. The coefficients are untouched.
func (f *Filter) Reset() {
	for i := range f.delay {
		f.delay[i] = 0
	}
	f.pos = -1
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// Len returns the number of coefficients.
func (f *Filter) Len() int {
	return len(f.coeffs)
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// Equal reports whether g is configured with the same coefficients.
// Coefficients compare by their IEEE 754 bit patterns, so a filter always
// equals itself and equal filters hash identically. Delay-line contents and
// the write index never take part in the comparison.
func (f *Filter) Equal(g *Filter) bool {
	if g == nil || len(f.coeffs) != len(g.coeffs) {
		return false
	}
	for i, c := range f.coeffs {
		if math.Float64bits(c) != math.Float64bits(g.coeffs[i]) {
			return false
		}
	}
	return true
}

// Hash returns an FNV-1a digest of the coefficient configuration.
// Filters that are Equal hash to the same value.
func (f *Filter) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(f.coeffs)))
	h.Write(buf[:])
	for _, c := range f.coeffs {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(c))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Response computes the complex frequency response H(e^{-jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
