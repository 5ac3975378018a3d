// Package audioin decodes audio files into float32 sample streams.
//
// Four containers are supported: WAV and AIFF through go-audio, MP3 through
// go-mp3 and Ogg/Vorbis through oggvorbis. Decoders normalize everything to
// interleaved float32 in [-1, 1]; Mono collapses multi-channel sources by
// averaging. The package backs offline tooling; it keeps no global state.
package audioin

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	ErrUnknownFormat    = errors.New("audioin: unknown format")
	ErrNotWAV           = errors.New("audioin: not a wav file")
	ErrNotAIFF          = errors.New("audioin: not an aiff file")
	ErrUnsupportedDepth = errors.New("audioin: unsupported bit depth")
)

// Source is a stream of interleaved float32 samples in [-1, 1].
type Source interface {
	// SampleRate reports the stream rate in Hz.
	SampleRate() int
	// Channels reports the interleaved channel count.
	Channels() int
	// ReadSamples fills dst and returns the number of values written.
	// A return of 0 with io.EOF marks the end of the stream.
	ReadSamples(dst []float32) (int, error)
	// Close releases decoder resources.
	Close() error
}

// Decoder builds a Source from an encoded stream.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format names (file extensions without the dot) to decoders.
type Registry struct {
	mu     sync.Mutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// Register binds a decoder to a format name, replacing any previous binding.
func (r *Registry) Register(format string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

// Lookup returns the decoder registered for a format name.
func (r *Registry) Lookup(format string) (Decoder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// DefaultRegistry returns a fresh registry with all built-in decoders bound
// to their usual file extensions.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("wav", WAVDecoder{})
	r.Register("wave", WAVDecoder{})
	r.Register("aif", AIFFDecoder{})
	r.Register("aiff", AIFFDecoder{})
	r.Register("mp3", MP3Decoder{})
	r.Register("ogg", VorbisDecoder{})
	r.Register("oga", VorbisDecoder{})
	return r
}

// Open decodes the file at path, picking the decoder by file extension.
// The returned source owns the file handle and releases it on Close.
func Open(path string) (Source, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	dec, ok := DefaultRegistry().Lookup(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audioin: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &fileSource{Source: src, f: f}, nil
}

// fileSource couples a decoded source with the file it reads from.
type fileSource struct {
	Source
	f *os.File
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// readSeeker upgrades r for container parsers that need random access.
func readSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
