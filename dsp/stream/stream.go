// Package stream defines the contract between sample processors and the
// pipelines that drive them.
//
// No pipeline lives here; the package only names the interface so that
// transports and processors can depend on it without depending on each
// other.
package stream

// Mapper transforms a buffer of samples into a new buffer of the same
// length, carrying whatever state it needs between calls. Map leaves its
// input untouched and returns freshly allocated output, so consecutive
// buffers of one stream can be mapped as if the stream were unbroken.
//
// Reset returns the Mapper to its initial state, as if no samples had been
// seen.
type Mapper interface {
	Map(samples []float32) []float32
	Reset()
}
