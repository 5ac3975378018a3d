package fir

import "testing"

// BenchmarkMap_Identity benchmarks the tagged single-tap fast path.
func BenchmarkMap_Identity(b *testing.B) {
	f := NewIdentity()
	buf := make([]float32, 1024)
	for i := range buf {
		buf[i] = float32(i) * 0.001
	}
	b.SetBytes(1024 * 4)
	b.ResetTimer()
	for range b.N {
		_ = f.Map(buf)
	}
}

// BenchmarkMap_GeneralSingleTap benchmarks the same configuration running
// through the general convolution loop.
func BenchmarkMap_GeneralSingleTap(b *testing.B) {
	f := &Filter{coeffs: []float64{1}, delay: make([]float64, 1), pos: -1}
	buf := make([]float32, 1024)
	for i := range buf {
		buf[i] = float32(i) * 0.001
	}
	b.SetBytes(1024 * 4)
	b.ResetTimer()
	for range b.N {
		_ = f.Map(buf)
	}
}
