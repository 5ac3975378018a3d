package audioin

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// mp3Stream matches the go-mp3 decoder surface so tests can fake it.
type mp3Stream interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// MP3Decoder decodes MPEG layer 3 streams via go-mp3. Output is always
// 16-bit stereo at the source rate; go-mp3 fixes that regardless of the
// encoded channel layout.
type MP3Decoder struct{}

func (MP3Decoder) Decode(r io.Reader) (Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("audioin: mp3: %w", err)
	}

	return &mp3Source{dec: dec, sampleRate: dec.SampleRate()}, nil
}

type mp3Source struct {
	dec        mp3Stream
	sampleRate int
	buf        []byte
}

func (s *mp3Source) SampleRate() int { return s.sampleRate }
func (s *mp3Source) Channels() int   { return 2 }
func (s *mp3Source) Close() error    { return nil }

func (s *mp3Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf)
	samples := n / 2
	if samples == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	const scale = 1.0 / 32768.0
	for i := range samples {
		v := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = float32(v) * scale
	}

	if err == io.EOF {
		err = nil
	}
	return samples, err
}
