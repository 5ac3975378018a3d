// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] applies a set of pre-computed coefficients to a
// single-precision sample stream using a circular-buffer delay line.
// Internal state is kept in float64, so each output sample pays exactly one
// narrowing conversion. The single-tap [1] configuration is recognized at
// construction and served by a copy fast path that is observationally
// identical to the general convolution.
//
// This package provides the processing runtime only. Coefficient design is
// a separate concern: [Fir1Lowpass] dispenses the fixed windowed-sinc
// designs shipped with this module, anything else comes from offline tools.
package fir
