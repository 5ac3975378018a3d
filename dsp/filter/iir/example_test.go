package iir_test

import (
	"fmt"

	"github.com/cwbudde/algo-tuner/dsp/filter/iir"
)

func ExampleFilter_ProcessSample() {
	// One-pole lowpass: y[n] = 0.25*x[n] + 0.75*y[n-1].
	// The numerator is padded so both histories span two samples.
	f := iir.New([]float64{0.25, 0}, []float64{1, -0.75})

	input := []float32{0, 1, 1, 1, 1, 1}
	for i, x := range input {
		fmt.Printf("y[%d] = %.4f\n", i, f.ProcessSample(x))
	}
	// Output:
	// y[0] = 0.0000
	// y[1] = 0.2500
	// y[2] = 0.4375
	// y[3] = 0.5781
	// y[4] = 0.6836
	// y[5] = 0.7627
}

func ExampleFilter_coldStart() {
	// The first sample seeds both histories and passes through unchanged,
	// regardless of the coefficients.
	f := iir.New([]float64{0.25, 0}, []float64{1, -0.75})
	fmt.Println(f.ProcessSample(0.5))
	// Output:
	// 0.5
}
