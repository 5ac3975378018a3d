package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-tuner/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(11025),
		core.WithBlockSize(512),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)

	// Output:
	// sampleRate=11025 blockSize=512
}

func ExampleSampleToInt16() {
	for _, v := range []float32{0, 0.5, 1, -1, 1.5} {
		fmt.Println(core.SampleToInt16(v))
	}

	// Output:
	// 0
	// 16383
	// 32767
	// -32767
	// 32767
}

func ExampleEnsureLen() {
	buf := make([]float64, 2, 4)
	buf[0], buf[1] = 1, 2
	buf = core.EnsureLen(buf, 4)

	copied := core.CopyInto(buf[2:], []float64{3, 4})
	fmt.Println(copied, buf)

	core.Zero(buf[:2])
	fmt.Println(buf)

	// Output:
	// 2 [1 2 3 4]
	// [0 0 3 4]
}
