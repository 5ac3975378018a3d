package audioin

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// pcmSource adapts go-audio's integer PCM reads (WAV and AIFF share the
// same buffer protocol) to the float32 Source surface. Only signed sample
// layouts are handled, so 8-bit WAV is rejected at decode time.
type pcmSource struct {
	read       func(*goaudio.IntBuffer) (int, error)
	format     *goaudio.Format
	sampleRate int
	channels   int
	scale      float32

	buf *goaudio.IntBuffer
}

func newPCMSource(read func(*goaudio.IntBuffer) (int, error), format *goaudio.Format, bitDepth int) *pcmSource {
	return &pcmSource{
		read:       read,
		format:     format,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      float32(1) / float32(int64(1)<<(bitDepth-1)),
	}
}

func (s *pcmSource) SampleRate() int { return s.sampleRate }
func (s *pcmSource) Channels() int   { return s.channels }
func (s *pcmSource) Close() error    { return nil }

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// go-audio may shrink buf.Data on short reads; re-slice up each call.
	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{Data: make([]int, len(dst)), Format: s.format}
	} else {
		s.buf.Data = s.buf.Data[:len(dst)]
	}

	n, err := s.read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) * s.scale
	}

	if err == io.EOF {
		err = nil
	}
	return n, err
}
