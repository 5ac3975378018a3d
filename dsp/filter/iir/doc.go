// Package iir provides a direct-form recursive filter runtime.
//
// A [Filter] runs a recurrence over the last len(b) input and output
// samples, both kept as float64 histories behind a single-precision stream
// surface. Construction is cheap and never fails; the first sample after
// construction or [Filter.Reset] seeds both histories and passes through
// unchanged, which avoids the startup transient of zero-initialized state.
//
// Coefficients are taken as-is. Callers are responsible for passing
// equal-length numerator and denominator sets normalized to a[0] = 1;
// [ButterworthLowpass] and [EllipticLowpass] dispense designs shipped in
// that form.
package iir
