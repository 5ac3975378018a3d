package stream_test

import (
	"testing"

	"github.com/cwbudde/algo-tuner/dsp/filter/fir"
	"github.com/cwbudde/algo-tuner/dsp/filter/iir"
	"github.com/cwbudde/algo-tuner/dsp/stream"
)

var (
	_ stream.Mapper = (*fir.Filter)(nil)
	_ stream.Mapper = (*iir.Filter)(nil)
)

func TestMapperContract(t *testing.T) {
	mappers := map[string]func(t *testing.T) stream.Mapper{
		"fir": func(t *testing.T) stream.Mapper {
			f, err := fir.New([]float64{0.25, 0.5, 0.25})
			if err != nil {
				t.Fatal(err)
			}
			return f
		},
		"fir-identity": func(*testing.T) stream.Mapper {
			return fir.NewIdentity()
		},
		"iir": func(*testing.T) stream.Mapper {
			return iir.New([]float64{0.4, 0.2}, []float64{1, -0.5})
		},
	}

	input := []float32{0.5, -0.25, 1, 0.125, -1, 0.75}

	for name, newMapper := range mappers {
		t.Run(name, func(t *testing.T) {
			m := newMapper(t)

			orig := make([]float32, len(input))
			copy(orig, input)

			first := m.Map(input)
			if len(first) != len(input) {
				t.Fatalf("output length: got %d, want %d", len(first), len(input))
			}
			for i := range input {
				if input[i] != orig[i] {
					t.Fatalf("Map modified its input at %d", i)
				}
			}

			// Reset must make a replay indistinguishable from the first run.
			m.Reset()
			second := m.Map(input)
			for i := range first {
				if second[i] != first[i] {
					t.Errorf("sample %d after reset: got %v, want %v", i, second[i], first[i])
				}
			}

			// Each call must return a fresh buffer.
			if &first[0] == &second[0] {
				t.Error("Map returned an aliased buffer")
			}
		})
	}
}
