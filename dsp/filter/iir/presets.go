package iir

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFactor is returned for cutoff divisors without a shipped
// design.
var ErrUnsupportedFactor = errors.New("iir: unsupported cutoff divisor")

// ButterworthLowpass returns an 8th-order Butterworth lowpass with its
// cutoff at Nyquist/factor. Supported factors are 2, 4 and 8.
func ButterworthLowpass(factor int) (*Filter, error) {
	taps, ok := butterworthTaps[factor]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFactor, factor)
	}
	return New(taps[0][:], taps[1][:]), nil
}

// EllipticLowpass returns an 8th-order elliptic lowpass (0.5 dB passband
// ripple, 80 dB stopband) with its cutoff at Nyquist/factor. Supported
// factors are 2, 4 and 8.
func EllipticLowpass(factor int) (*Filter, error) {
	taps, ok := ellipticTaps[factor]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFactor, factor)
	}
	return New(taps[0][:], taps[1][:]), nil
}
