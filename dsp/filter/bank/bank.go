package bank

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-tuner/dsp/filter/iir"
)

var (
	// ErrUnsupportedRate is returned for sample rates without a shipped
	// pitch table.
	ErrUnsupportedRate = errors.New("bank: unsupported sample rate")

	// ErrPitchRange is returned for pitch ranges outside MIDI 0-127 or
	// with max below min.
	ErrPitchRange = errors.New("bank: invalid pitch range")
)

// cutoffRatio places each pitch filter's cutoff above the pitch fundamental,
// leaving the fundamental inside the passband ripple.
const cutoffRatio = 1.1

// midiTables maps each supported sample rate to its generated table of
// per-pitch elliptic lowpass coefficients: numerator row then denominator
// row, nine taps each.
var midiTables = map[float64]*[128][2][9]float64{
	11025:  &midi11025,
	17640:  &midi17640,
	22050:  &midi22050,
	35280:  &midi35280,
	44100:  &midi44100,
	88200:  &midi88200,
	176400: &midi176400,
}

// Bank runs one recursive lowpass per MIDI pitch over a shared input stream.
type Bank struct {
	filters    []*iir.Filter
	minPitch   int
	maxPitch   int
	sampleRate float64
}

// Midi builds a bank of 8th-order elliptic lowpass filters, one per MIDI
// pitch in [minPitch, maxPitch] inclusive, from the coefficient table for
// the given sample rate. Every call constructs fresh filters; banks never
// share state.
//
// Supported rates are the seven listed by [SupportedRates]; any other rate
// fails with [ErrUnsupportedRate]. Pitches must lie in MIDI 0-127 with
// maxPitch >= minPitch, otherwise [ErrPitchRange] is returned.
func Midi(sampleRate float64, minPitch, maxPitch int) (*Bank, error) {
	table, ok := midiTables[sampleRate]
	if !ok {
		return nil, fmt.Errorf("%w: %g", ErrUnsupportedRate, sampleRate)
	}
	if maxPitch < minPitch {
		return nil, fmt.Errorf("%w: min %d above max %d", ErrPitchRange, minPitch, maxPitch)
	}
	if minPitch < 0 || maxPitch > 127 {
		return nil, fmt.Errorf("%w: [%d, %d] outside MIDI 0-127", ErrPitchRange, minPitch, maxPitch)
	}

	filters := make([]*iir.Filter, 0, maxPitch-minPitch+1)
	for pitch := minPitch; pitch <= maxPitch; pitch++ {
		taps := &table[pitch]
		filters = append(filters, iir.New(taps[0][:], taps[1][:]))
	}

	return &Bank{
		filters:    filters,
		minPitch:   minPitch,
		maxPitch:   maxPitch,
		sampleRate: sampleRate,
	}, nil
}

// SupportedRates returns the sample rates with shipped pitch tables,
// ascending.
func SupportedRates() []float64 {
	rates := make([]float64, 0, len(midiTables))
	for rate := range midiTables {
		rates = append(rates, rate)
	}
	sort.Float64s(rates)
	return rates
}

// Supported reports whether a pitch table ships for the given sample rate.
func Supported(sampleRate float64) bool {
	_, ok := midiTables[sampleRate]
	return ok
}

// PitchFrequency returns the equal-temperament frequency in Hz for a MIDI
// pitch, with A4 (pitch 69) at 440 Hz.
func PitchFrequency(pitch int) float64 {
	return 440 * math.Pow(2, float64(pitch-69)/12)
}

// CutoffFrequency returns the lowpass cutoff in Hz used for a MIDI pitch.
func CutoffFrequency(pitch int) float64 {
	return cutoffRatio * PitchFrequency(pitch)
}

// Filters returns the per-pitch filters, ordered by ascending pitch.
func (b *Bank) Filters() []*iir.Filter { return b.filters }

// Filter returns the filter for the given MIDI pitch, or nil when the pitch
// lies outside the bank's range.
func (b *Bank) Filter(pitch int) *iir.Filter {
	if pitch < b.minPitch || pitch > b.maxPitch {
		return nil
	}
	return b.filters[pitch-b.minPitch]
}

// MinPitch returns the lowest MIDI pitch in the bank.
func (b *Bank) MinPitch() int { return b.minPitch }

// MaxPitch returns the highest MIDI pitch in the bank.
func (b *Bank) MaxPitch() int { return b.maxPitch }

// NumFilters returns the number of per-pitch filters.
func (b *Bank) NumFilters() int { return len(b.filters) }

// SampleRate returns the sample rate the bank was built for.
func (b *Bank) SampleRate() float64 { return b.sampleRate }

// ProcessSample feeds one input sample to every filter in parallel,
// returning per-pitch output values ordered by ascending pitch.
func (b *Bank) ProcessSample(x float32) []float32 {
	out := make([]float32, len(b.filters))
	for i, f := range b.filters {
		out[i] = f.ProcessSample(x)
	}
	return out
}

// ProcessBlock feeds a block of input samples to every filter.
// Returns per-pitch output blocks: result[pitch-minPitch][sample].
func (b *Bank) ProcessBlock(input []float32) [][]float32 {
	result := make([][]float32, len(b.filters))
	for i, f := range b.filters {
		result[i] = f.Map(input)
	}
	return result
}

// Reset returns every filter to its cold state.
func (b *Bank) Reset() {
	for _, f := range b.filters {
		f.Reset()
	}
}
