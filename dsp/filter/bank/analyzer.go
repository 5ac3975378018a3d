package bank

import (
	"github.com/cwbudde/algo-tuner/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultAnalyzerMinPitch = 0
	defaultAnalyzerMaxPitch = 127
)

// Analyzer estimates per-pitch signal energy by running a block through a
// MIDI filter bank and measuring the power of each filter output.
//
// The bank filters are lowpasses, so the energy at pitch p covers everything
// below that pitch's cutoff. The difference between neighboring pitches
// isolates one semitone band; [Analyzer.DominantPitch] works on those
// differences.
type Analyzer struct {
	bank     *Bank
	energies []float64

	out32 []float32
	wide  []float64

	smoothing float64
}

type analyzerConfig struct {
	minPitch  int
	maxPitch  int
	smoothing float64
}

func defaultAnalyzerConfig() analyzerConfig {
	return analyzerConfig{
		minPitch: defaultAnalyzerMinPitch,
		maxPitch: defaultAnalyzerMaxPitch,
	}
}

// AnalyzerOption configures a pitch analyzer.
type AnalyzerOption func(*analyzerConfig)

// WithAnalyzerPitchRange restricts the analyzer to MIDI pitches in
// [min, max]. Defaults to the full 0-127 table range.
func WithAnalyzerPitchRange(min, max int) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		cfg.minPitch = min
		cfg.maxPitch = max
	}
}

// WithAnalyzerSmoothing blends each block's energies into the previous
// values: e = alpha*old + (1-alpha)*new. Alpha must lie in [0, 1); values
// outside are ignored. Defaults to 0 (no smoothing, energies track the
// latest block).
func WithAnalyzerSmoothing(alpha float64) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		if alpha >= 0 && alpha < 1 {
			cfg.smoothing = alpha
		}
	}
}

// NewMidiAnalyzer builds an analyzer over a fresh MIDI filter bank for the
// given sample rate. Rate and pitch-range validation follow [Midi].
func NewMidiAnalyzer(sampleRate float64, opts ...AnalyzerOption) (*Analyzer, error) {
	cfg := defaultAnalyzerConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	bk, err := Midi(sampleRate, cfg.minPitch, cfg.maxPitch)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		bank:      bk,
		energies:  make([]float64, bk.NumFilters()),
		smoothing: cfg.smoothing,
	}, nil
}

// Bank returns the underlying filter bank.
func (a *Analyzer) Bank() *Bank {
	if a == nil {
		return nil
	}

	return a.bank
}

// MinPitch returns the lowest analyzed MIDI pitch.
func (a *Analyzer) MinPitch() int {
	if a == nil {
		return 0
	}

	return a.bank.minPitch
}

// MaxPitch returns the highest analyzed MIDI pitch.
func (a *Analyzer) MaxPitch() int {
	if a == nil {
		return 0
	}

	return a.bank.maxPitch
}

// SampleRate returns the input sample rate for the analyzer.
func (a *Analyzer) SampleRate() float64 {
	if a == nil {
		return 0
	}

	return a.bank.sampleRate
}

// Energies returns the current per-pitch energy values (linear power),
// ordered by ascending pitch. The returned slice is owned by the analyzer
// and is updated on each call to ProcessBlock.
func (a *Analyzer) Energies() []float64 {
	if a == nil {
		return nil
	}

	return a.energies
}

// EnergyDB returns the energy at the given MIDI pitch in dB power.
// Silent bands report -Inf; pitches outside the analyzed range report NaN.
func (a *Analyzer) EnergyDB(pitch int) float64 {
	if a == nil || pitch < a.bank.minPitch || pitch > a.bank.maxPitch {
		return core.LinearPowerToDB(-1)
	}

	return core.LinearPowerToDB(a.energies[pitch-a.bank.minPitch])
}

// DominantPitch returns the pitch whose semitone band carries the most
// energy, along with that band energy. Band energies are the first
// differences of the per-pitch values; the lowest analyzed pitch's band
// spans everything below its cutoff. Meaningful only after ProcessBlock.
func (a *Analyzer) DominantPitch() (int, float64) {
	if a == nil || len(a.energies) == 0 {
		return 0, 0
	}

	best := 0
	bestVal := a.energies[0]
	for i := 1; i < len(a.energies); i++ {
		if d := a.energies[i] - a.energies[i-1]; d > bestVal {
			best = i
			bestVal = d
		}
	}

	return a.bank.minPitch + best, bestVal
}

// Reset clears all filter states and energies.
func (a *Analyzer) Reset() {
	if a == nil {
		return
	}

	a.bank.Reset()
	core.Zero(a.energies)
}

// ProcessBlock runs the analyzer on an input block and returns per-pitch
// energy values (linear power). The returned slice is owned by the analyzer.
func (a *Analyzer) ProcessBlock(input []float32) []float64 {
	if a == nil {
		return nil
	}

	if len(input) == 0 {
		return a.energies
	}

	a.out32 = core.EnsureLen32(a.out32, len(input))
	a.wide = core.EnsureLen(a.wide, len(input))

	out := a.out32
	wide := a.wide
	inv := 1 / float64(len(input))

	for i, f := range a.bank.filters {
		f.ProcessBlockTo(out, input)

		for j, v := range out {
			wide[j] = float64(v)
		}

		e := vecmath.DotProduct(wide, wide) * inv
		if a.smoothing > 0 {
			a.energies[i] = core.FlushDenormals(a.smoothing*a.energies[i] + (1-a.smoothing)*e)
		} else {
			a.energies[i] = e
		}
	}

	return a.energies
}
