package fir_test

import (
	"fmt"

	"github.com/cwbudde/algo-tuner/dsp/filter/fir"
)

func ExampleFilter_ProcessSample() {
	// 3-tap moving average filter.
	f, err := fir.New([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
	if err != nil {
		panic(err)
	}

	input := []float32{0, 1, 2, 3, 3, 3}
	for i, x := range input {
		y := f.ProcessSample(x)
		fmt.Printf("y[%d] = %.4f\n", i, y)
	}
	// Output:
	// y[0] = 0.0000
	// y[1] = 0.3333
	// y[2] = 1.0000
	// y[3] = 2.0000
	// y[4] = 2.6667
	// y[5] = 3.0000
}

func ExampleFir1Lowpass() {
	// Factor 1 keeps the stream untouched.
	f, err := fir.Fir1Lowpass(1)
	if err != nil {
		panic(err)
	}

	out := f.Map([]float32{0.5, -0.25, 1})
	fmt.Println(out)
	// Output:
	// [0.5 -0.25 1]
}
