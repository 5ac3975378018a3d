// Package bank builds per-pitch filter banks from pre-computed coefficient
// tables.
//
// [Midi] dispenses one 8th-order elliptic lowpass per MIDI pitch, with the
// cutoff placed 10% above the pitch's equal-temperament frequency so the
// fundamental sits inside the 0.5 dB passband ripple. The coefficients are
// not designed at runtime: they come from tables generated offline by
// tools/design_tables.py, one table per supported sample rate.
//
// Tables ship for the seven decimations of the 352.8 kHz design master
// (176400, 88200, 44100, 35280, 22050, 17640 and 11025 Hz). Any other rate,
// including 48 kHz, is rejected with [ErrUnsupportedRate]; resample first.
//
// Basic usage:
//
//	b, err := bank.Midi(44100, 60, 72)  // one octave around middle C
//	if err != nil {
//	    log.Fatal(err)
//	}
//	outputs := b.ProcessSample(sample)
//	for i, f := range b.Filters() {
//	    _ = f // outputs[i] is the lowpass for pitch 60+i
//	}
//
// [NewMidiAnalyzer] wraps a bank with per-pitch energy tracking for pitch
// detection over streamed blocks.
package bank
