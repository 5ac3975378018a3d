package fir

import (
	"fmt"
	"testing"
)

func BenchmarkProcessSample(b *testing.B) {
	for _, taps := range []int{8, 17, 128, 512} {
		b.Run(fmt.Sprintf("taps=%d", taps), func(b *testing.B) {
			coeffs := make([]float64, taps)
			for i := range coeffs {
				coeffs[i] = 1.0 / float64(taps)
			}

			f, err := New(coeffs)
			if err != nil {
				b.Fatal(err)
			}

			x := float32(1.0)
			for b.Loop() {
				x = f.ProcessSample(x)
			}

			_ = x
		})
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	for _, taps := range []int{8, 17, 128, 512} {
		b.Run(fmt.Sprintf("taps=%d", taps), func(b *testing.B) {
			coeffs := make([]float64, taps)
			for i := range coeffs {
				coeffs[i] = 1.0 / float64(taps)
			}

			f, err := New(coeffs)
			if err != nil {
				b.Fatal(err)
			}

			buf := make([]float32, 1024)
			for i := range buf {
				buf[i] = float32(i) * 0.001
			}

			b.SetBytes(1024 * 4)
			b.ResetTimer()

			for range b.N {
				f.ProcessBlock(buf)
			}
		})
	}
}
