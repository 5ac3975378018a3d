// Package response evaluates transfer-function frequency responses from raw
// coefficient sets, without constructing a filter.
//
// The denominator convention matches the filter packages: a[0] pairs with
// the current output sample and is assumed to be 1; [ImpulseResponse] skips
// it outright.
package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by response functions.
var (
	ErrNoCoefficients = errors.New("response: coefficients must not be empty")
	ErrLength         = errors.New("response: length must be positive")
	ErrGridSize       = errors.New("response: grid size must be at least the coefficient count")
)

// Rational returns the complex response of the transfer function b/a at
// freqHz for the given sample rate.
func Rational(b, a []float64, freqHz, sampleRate float64) complex128 {
	omega := 2 * math.Pi * freqHz / sampleRate

	var num, den complex128
	for k, c := range b {
		num += complex(c, 0) * cmplx.Exp(complex(0, -omega*float64(k)))
	}
	for k, c := range a {
		den += complex(c, 0) * cmplx.Exp(complex(0, -omega*float64(k)))
	}

	return num / den
}

// MagnitudeDB returns the magnitude response of b/a in dB at freqHz for the
// given sample rate.
func MagnitudeDB(b, a []float64, freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(Rational(b, a, freqHz, sampleRate)))
}

// ImpulseResponse simulates n samples of the zero-state impulse response of
// b/a with the direct-form recurrence in float64. a[0] is skipped, matching
// the filter runtime.
func ImpulseResponse(b, a []float64, n int) ([]float64, error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, ErrNoCoefficients
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrLength, n)
	}

	out := make([]float64, n)
	for i := range out {
		var acc float64
		if i < len(b) {
			acc = b[i]
		}
		for k := 1; k < len(a); k++ {
			if j := i - k; j >= 0 {
				acc -= a[k] * out[j]
			}
		}
		out[i] = acc
	}

	return out, nil
}

// MagnitudeGrid evaluates the magnitude response of b/a on a uniform
// frequency grid by transforming both coefficient sets. It returns
// gridSize/2+1 points from DC to Nyquist inclusive: freqs[k] is
// k*sampleRate/gridSize and magsDB[k] the response there in dB.
//
// gridSize must cover both coefficient sets; power-of-two sizes transform
// fastest.
func MagnitudeGrid(b, a []float64, gridSize int, sampleRate float64) (freqs, magsDB []float64, err error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, nil, ErrNoCoefficients
	}
	if gridSize < len(b) || gridSize < len(a) {
		return nil, nil, fmt.Errorf("%w: %d", ErrGridSize, gridSize)
	}

	plan, err := algofft.NewPlan64(gridSize)
	if err != nil {
		return nil, nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	numPadded := make([]complex128, gridSize)
	for i, v := range b {
		numPadded[i] = complex(v, 0)
	}

	numFreq := make([]complex128, gridSize)
	if err := plan.Forward(numFreq, numPadded); err != nil {
		return nil, nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	denPadded := make([]complex128, gridSize)
	for i, v := range a {
		denPadded[i] = complex(v, 0)
	}

	denFreq := make([]complex128, gridSize)
	if err := plan.Forward(denFreq, denPadded); err != nil {
		return nil, nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	half := gridSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for k := range half {
		h := numFreq[k] / denFreq[k]
		re[k] = real(h)
		im[k] = imag(h)
	}

	magsDB = make([]float64, half)
	vecmath.Magnitude(magsDB, re, im)

	freqs = make([]float64, half)
	for k := range half {
		freqs[k] = float64(k) * sampleRate / float64(gridSize)
		magsDB[k] = 20 * math.Log10(magsDB[k])
	}

	return freqs, magsDB, nil
}
