// Command pitchscan measures per-pitch band energy in an audio file.
//
// Usage:
//
//	pitchscan [flags] file
//
// The input is decoded (WAV, AIFF, MP3 or Ogg/Vorbis), mixed down to mono
// and run through a per-pitch filter bank. The file's sample rate must be
// one of the supported analysis rates; use -rates to list them.
//
// Examples:
//
//	pitchscan take.wav
//	pitchscan -min 48 -max 84 -top 5 voice.mp3
//	pitchscan -prefilter fir:2 -smooth 0.5 noisy.ogg
//	pitchscan -response 69 -rate 44100
//	pitchscan -play 69 take.wav
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-tuner/dsp/core"
	"github.com/cwbudde/algo-tuner/dsp/filter/bank"
	"github.com/cwbudde/algo-tuner/dsp/filter/fir"
	"github.com/cwbudde/algo-tuner/dsp/filter/iir"
	"github.com/cwbudde/algo-tuner/dsp/response"
	"github.com/cwbudde/algo-tuner/dsp/stream"
	"github.com/cwbudde/algo-tuner/internal/audioin"
	"github.com/ebitengine/oto/v3"
)

type scanConfig struct {
	minPitch  int
	maxPitch  int
	block     int
	smooth    float64
	gainDB    float64
	floorDB   float64
	top       int
	prefilter string
}

func main() {
	minPitch := flag.Int("min", 0, "lowest MIDI pitch to analyze")
	maxPitch := flag.Int("max", 127, "highest MIDI pitch to analyze")
	block := flag.Int("block", 1024, "processing block size in samples")
	smooth := flag.Float64("smooth", 0, "energy smoothing factor in [0, 1)")
	top := flag.Int("top", 0, "print only the strongest N semitone bands")
	floor := flag.Float64("floor", -90, "hide bands below this level in dB")
	gain := flag.Float64("gain", 0, "input gain in dB (clamped to +/-60)")
	prefilter := flag.String("prefilter", "", "lowpass ahead of analysis: fir:N, elliptic:N or butterworth:N")
	respPitch := flag.Int("response", -1, "print the filter magnitude response for a MIDI pitch and exit")
	respRate := flag.Float64("rate", 44100, "sample rate for -response mode")
	grid := flag.Int("grid", 512, "FFT grid size for -response mode")
	playPitch := flag.Int("play", -1, "audition one pitch's filtered output instead of printing the table")
	rates := flag.Bool("rates", false, "list supported sample rates")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pitchscan [flags] file\n\n")
		fmt.Fprintf(os.Stderr, "Measures per-pitch band energy of an audio file through a MIDI filter bank.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pitchscan take.wav\n")
		fmt.Fprintf(os.Stderr, "  pitchscan -min 48 -max 84 -top 5 voice.mp3\n")
		fmt.Fprintf(os.Stderr, "  pitchscan -response 69 -rate 44100\n")
		fmt.Fprintf(os.Stderr, "  pitchscan -play 69 take.wav\n")
	}
	flag.Parse()

	if *rates {
		fmt.Println(ratesLine())
		return
	}

	if *respPitch >= 0 {
		if err := runResponse(*respPitch, *respRate, *grid); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	file := flag.Arg(0)
	if file == "" {
		fmt.Fprintf(os.Stderr, "error: missing input file\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gainDB := core.Clamp(*gain, -60, 60)

	if *playPitch >= 0 {
		if err := runPlay(file, *playPitch, *block, gainDB); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg := scanConfig{
		minPitch:  *minPitch,
		maxPitch:  *maxPitch,
		block:     *block,
		smooth:    *smooth,
		gainDB:    gainDB,
		floorDB:   *floor,
		top:       *top,
		prefilter: *prefilter,
	}
	if err := runScan(file, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runScan(path string, cfg scanConfig) error {
	src, err := audioin.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	mono := audioin.Mono(src)
	rate := float64(mono.SampleRate())
	if !bank.Supported(rate) {
		return fmt.Errorf("unsupported sample rate %g Hz (supported: %s)", rate, ratesLine())
	}

	pre, err := buildPrefilter(cfg.prefilter)
	if err != nil {
		return err
	}

	an, err := bank.NewMidiAnalyzer(rate,
		bank.WithAnalyzerPitchRange(cfg.minPitch, cfg.maxPitch),
		bank.WithAnalyzerSmoothing(cfg.smooth))
	if err != nil {
		return err
	}

	proc := core.ApplyProcessorOptions(core.WithSampleRate(rate), core.WithBlockSize(cfg.block))
	gain := float32(core.DBToLinear(cfg.gainDB))

	buf := make([]float32, proc.BlockSize)
	var total int64
	for {
		n, rerr := mono.ReadSamples(buf)
		if n > 0 {
			samples := buf[:n]
			if cfg.gainDB != 0 {
				for i := range samples {
					samples[i] *= gain
				}
			}
			if pre != nil {
				samples = pre.Map(samples)
			}
			an.ProcessBlock(samples)
			total += int64(n)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}

	if total == 0 {
		return errors.New("no samples decoded")
	}

	fmt.Printf("%s: %.2f s at %g Hz, pitches %d-%d\n\n",
		filepath.Base(path), float64(total)/proc.SampleRate, proc.SampleRate,
		an.MinPitch(), an.MaxPitch())
	printEnergies(an, cfg.floorDB, cfg.top)
	return nil
}

type bandRow struct {
	pitch   int
	bandDB  float64
	belowDB float64
}

func printEnergies(an *bank.Analyzer, floorDB float64, top int) {
	energies := an.Energies()

	rows := make([]bandRow, 0, len(energies))
	for i := range energies {
		band := energies[i]
		if i > 0 {
			band = energies[i] - energies[i-1]
		}
		if band < 0 {
			band = 0
		}

		pitch := an.MinPitch() + i
		row := bandRow{pitch: pitch, bandDB: core.LinearPowerToDB(band), belowDB: an.EnergyDB(pitch)}
		if row.bandDB < floorDB {
			continue
		}
		rows = append(rows, row)
	}

	if top > 0 {
		sort.Slice(rows, func(i, j int) bool { return rows[i].bandDB > rows[j].bandDB })
		if len(rows) > top {
			rows = rows[:top]
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].pitch < rows[j].pitch })
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pitch\tNote\tFreq [Hz]\tCutoff [Hz]\tBand [dB]\tBelow [dB]\n")
	fmt.Fprintf(tw, "-----\t----\t---------\t-----------\t---------\t----------\n")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%.1f\t%s\t%s\n",
			r.pitch, noteName(r.pitch),
			bank.PitchFrequency(r.pitch), bank.CutoffFrequency(r.pitch),
			formatDB(r.bandDB), formatDB(r.belowDB))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	pitch, energy := an.DominantPitch()
	fmt.Printf("\ndominant: %d (%s, %.1f Hz), band energy %.3g\n",
		pitch, noteName(pitch), bank.PitchFrequency(pitch), energy)
}

func runResponse(pitch int, rate float64, grid int) error {
	b, err := bank.Midi(rate, pitch, pitch)
	if err != nil {
		return err
	}

	f := b.Filter(pitch)
	freqs, mags, err := response.MagnitudeGrid(f.InputCoefficients(), f.OutputCoefficients(), grid, rate)
	if err != nil {
		return err
	}

	fmt.Printf("pitch %d (%s): fundamental %.1f Hz, cutoff %.1f Hz at %g Hz\n\n",
		pitch, noteName(pitch), bank.PitchFrequency(pitch), bank.CutoffFrequency(pitch), rate)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tMag [dB]\n")
	fmt.Fprintf(tw, "---------\t--------\n")
	for k := range freqs {
		fmt.Fprintf(tw, "%.1f\t%s\n", freqs[k], formatDB(mags[k]))
	}
	return tw.Flush()
}

func runPlay(path string, pitch, blockSize int, gainDB float64) error {
	src, err := audioin.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	mono := audioin.Mono(src)
	rate := float64(mono.SampleRate())
	if !bank.Supported(rate) {
		return fmt.Errorf("unsupported sample rate %g Hz (supported: %s)", rate, ratesLine())
	}

	b, err := bank.Midi(rate, pitch, pitch)
	if err != nil {
		return err
	}
	f := b.Filter(pitch)

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   mono.SampleRate(),
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("audio output: %w", err)
	}
	<-ready

	reader, writer := io.Pipe()
	player := ctx.NewPlayer(reader)
	defer player.Close()
	player.Play()

	proc := core.ApplyProcessorOptions(core.WithSampleRate(rate), core.WithBlockSize(blockSize))
	gain := float32(core.DBToLinear(gainDB))

	buf := make([]float32, proc.BlockSize)
	out := make([]byte, 2*proc.BlockSize)
	for {
		n, rerr := mono.ReadSamples(buf)
		if n > 0 {
			samples := buf[:n]
			if gainDB != 0 {
				for i := range samples {
					samples[i] *= gain
				}
			}
			f.ProcessBlock(samples)

			for i, v := range samples {
				binary.LittleEndian.PutUint16(out[2*i:2*i+2], uint16(core.SampleToInt16(v)))
			}
			if _, werr := writer.Write(out[:2*n]); werr != nil {
				return werr
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return player.Err()
}

// buildPrefilter turns "kind:N" into a lowpass applied ahead of the bank.
func buildPrefilter(spec string) (stream.Mapper, error) {
	if spec == "" {
		return nil, nil
	}

	kind, num, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("bad prefilter %q (want kind:divisor, e.g. fir:2)", spec)
	}
	factor, err := strconv.Atoi(num)
	if err != nil {
		return nil, fmt.Errorf("bad prefilter divisor %q", num)
	}

	switch kind {
	case "fir":
		f, err := fir.Fir1Lowpass(factor)
		if err != nil {
			return nil, err
		}
		return f, nil
	case "elliptic":
		f, err := iir.EllipticLowpass(factor)
		if err != nil {
			return nil, err
		}
		return f, nil
	case "butterworth":
		f, err := iir.ButterworthLowpass(factor)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unknown prefilter kind %q", kind)
	}
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func noteName(pitch int) string {
	return fmt.Sprintf("%s%d", noteNames[pitch%12], pitch/12-1)
}

func formatDB(db float64) string {
	if math.IsInf(db, -1) {
		return "-inf"
	}
	return fmt.Sprintf("%.1f", db)
}

func ratesLine() string {
	rates := bank.SupportedRates()
	parts := make([]string, len(rates))
	for i, r := range rates {
		parts[i] = strconv.FormatFloat(r, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
