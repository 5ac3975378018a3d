package bank_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tuner/dsp/filter/bank"
)

func ExampleMidi() {
	// One filter per pitch from A4 up to C5, at 44.1 kHz.
	b, err := bank.Midi(44100, 69, 72)
	if err != nil {
		panic(err)
	}
	fmt.Printf("filters: %d\n", b.NumFilters())
	for pitch := b.MinPitch(); pitch <= b.MaxPitch(); pitch++ {
		fmt.Printf("  pitch %d: %.1f Hz, cutoff %.1f Hz\n",
			pitch, bank.PitchFrequency(pitch), bank.CutoffFrequency(pitch))
	}
	// Output:
	// filters: 4
	//   pitch 69: 440.0 Hz, cutoff 484.0 Hz
	//   pitch 70: 466.2 Hz, cutoff 512.8 Hz
	//   pitch 71: 493.9 Hz, cutoff 543.3 Hz
	//   pitch 72: 523.3 Hz, cutoff 575.6 Hz
}

func ExampleAnalyzer_DominantPitch() {
	an, err := bank.NewMidiAnalyzer(11025, bank.WithAnalyzerPitchRange(57, 72))
	if err != nil {
		panic(err)
	}

	// A 220 Hz tone (A3) lands in the lowest band of this range.
	input := make([]float32, 4096)
	for i := range input {
		input[i] = float32(0.5 * math.Sin(2*math.Pi*220*float64(i)/11025))
	}
	an.ProcessBlock(input)

	pitch, _ := an.DominantPitch()
	fmt.Println(pitch)
	// Output:
	// 57
}
