package iir

import (
	"fmt"
	"testing"
)

func BenchmarkProcessSample(b *testing.B) {
	for _, factor := range []int{2, 4, 8} {
		b.Run(fmt.Sprintf("elliptic/factor=%d", factor), func(b *testing.B) {
			f, err := EllipticLowpass(factor)
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
	for _, factor := range []int{2, 4, 8} {
		b.Run(fmt.Sprintf("elliptic/factor=%d", factor), func(b *testing.B) {
			f, err := EllipticLowpass(factor)
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
