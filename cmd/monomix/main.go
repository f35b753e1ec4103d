// Command monomix converts a mono WAV file to interleaved stereo with
// independent per-channel gains.
//
// Usage:
//
//	monomix [flags] input.wav output.wav
//
// Examples:
//
//	monomix in.wav out.wav
//	monomix -gain-l 0.8 -gain-r 0.6 voice.wav panned.wav
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-mix/dsp/mix"
)

func main() {
	gainL := flag.Float64("gain-l", 1.0, "left channel gain")
	gainR := flag.Float64("gain-r", 1.0, "right channel gain")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: monomix [flags] input.wav output.wav\n\n")
		fmt.Fprintf(os.Stderr, "Converts a mono WAV file to stereo with per-channel gains.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Arg(1), float32(*gainL), float32(*gainR)); err != nil {
		fmt.Fprintln(os.Stderr, "monomix:", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string, gainL, gainR float32) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	dec := wav.NewDecoder(in)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	if buf.Format.NumChannels != 1 {
		return fmt.Errorf("%s: expected mono input, got %d channels", inPath, buf.Format.NumChannels)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}

	src := monoFromPCM(buf.Data, bitDepth)
	dst := make([]mix.StereoSample, len(src))
	mix.MonoToStereoSamples(dst, src, gainL, gainR)

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := wav.NewEncoder(out, buf.Format.SampleRate, 16, 2, 1)
	if err := enc.Write(stereoToPCM16(dst, buf.Format.SampleRate)); err != nil {
		return fmt.Errorf("encoding %s: %w", outPath, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing %s: %w", outPath, err)
	}
	return out.Close()
}

// monoFromPCM normalizes integer PCM samples to [-1, 1) mono samples
// based on the source bit depth.
func monoFromPCM(data []int, bitDepth int) []mix.MonoSample {
	scale := float32(int64(1) << (bitDepth - 1))
	src := make([]mix.MonoSample, len(data))
	for i, v := range data {
		src[i] = mix.MonoSample(float32(v) / scale)
	}
	return src
}

// stereoToPCM16 converts mixed stereo samples to an interleaved 16-bit
// PCM buffer, clamping out-of-range values.
func stereoToPCM16(samples []mix.StereoSample, sampleRate int) *audio.IntBuffer {
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		Data:           make([]int, 2*len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[2*i+0] = int(clampToInt16(s.L))
		buf.Data[2*i+1] = int(clampToInt16(s.R))
	}
	return buf
}

func clampToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	// 32767 on the positive side avoids int16 overflow
	return int16(x * 32767.0)
}
