package audioin

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// vorbisStream matches the oggvorbis reader surface so tests can fake it.
type vorbisStream interface {
	Read([]float32) (int, error)
	SampleRate() int
	Channels() int
}

// VorbisDecoder decodes Ogg/Vorbis streams via oggvorbis.
type VorbisDecoder struct{}

func (VorbisDecoder) Decode(r io.Reader) (Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("audioin: vorbis: %w", err)
	}

	return &vorbisSource{dec: dec, sampleRate: dec.SampleRate(), channels: dec.Channels()}, nil
}

type vorbisSource struct {
	dec        vorbisStream
	sampleRate int
	channels   int
}

func (s *vorbisSource) SampleRate() int { return s.sampleRate }
func (s *vorbisSource) Channels() int   { return s.channels }
func (s *vorbisSource) Close() error    { return nil }

func (s *vorbisSource) ReadSamples(dst []float32) (int, error) {
	// oggvorbis hands back interleaved float32 directly; keep reads
	// frame-aligned so no partial frame is left behind.
	n := len(dst) - len(dst)%s.channels
	if n == 0 {
		return 0, nil
	}

	read, err := s.dec.Read(dst[:n])
	if read == 0 && err != nil {
		return 0, err
	}

	if err == io.EOF {
		err = nil
	}
	return read, err
}
