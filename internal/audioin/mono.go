package audioin

import "github.com/cwbudde/algo-tuner/dsp/core"

// Mono averages a multi-channel source down to one channel. Mono sources
// pass through unchanged.
func Mono(src Source) Source {
	if src.Channels() <= 1 {
		return src
	}
	return &monoSource{src: src}
}

type monoSource struct {
	src Source
	tmp []float32
}

func (m *monoSource) SampleRate() int { return m.src.SampleRate() }
func (m *monoSource) Channels() int   { return 1 }
func (m *monoSource) Close() error    { return m.src.Close() }

func (m *monoSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	m.tmp = core.EnsureLen32(m.tmp, len(dst)*channels)

	n, err := m.src.ReadSamples(m.tmp)
	frames := n / channels
	if frames == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	switch channels {
	case 2:
		for f := range frames {
			dst[f] = (m.tmp[2*f] + m.tmp[2*f+1]) * 0.5
		}
	default:
		inv := 1 / float32(channels)
		for f := range frames {
			var sum float32
			for c := range channels {
				sum += m.tmp[f*channels+c]
			}
			dst[f] = sum * inv
		}
	}

	return frames, err
}
