package audioin

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// WAVDecoder decodes RIFF/WAVE PCM streams via go-audio. 16-, 24- and
// 32-bit integer PCM are accepted.
type WAVDecoder struct{}

func (WAVDecoder) Decode(r io.Reader) (Source, error) {
	rs, err := readSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("audioin: read wav: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWAV
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("audioin: wav pcm chunk: %w", err)
	}

	switch dec.BitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit wav", ErrUnsupportedDepth, dec.BitDepth)
	}

	return newPCMSource(dec.PCMBuffer, dec.Format(), int(dec.BitDepth)), nil
}
