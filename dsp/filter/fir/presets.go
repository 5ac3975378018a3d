package fir

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFactor is returned for cutoff divisors with no precomputed
// design.
var ErrUnsupportedFactor = errors.New("fir: unsupported cutoff divisor")

// Fir1Lowpass returns a 16th-order (17-tap) Hamming windowed-sinc lowpass
// filter with its cutoff at Nyquist/factor. The taps come from tables
// generated offline; factor 1 degenerates to the identity filter.
//
// Supported factors are 1, 2, 3, 4, 5, 7, 8 and 160. Any other factor
// returns an error wrapping [ErrUnsupportedFactor].
func Fir1Lowpass(factor int) (*Filter, error) {
	if factor == 1 {
		return NewIdentity(), nil
	}
	taps, ok := fir1Taps[factor]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFactor, factor)
	}
	return New(taps[:])
}
