// Command mixbench compares the throughput of the mono-to-stereo mix
// kernel variants.
//
// Usage:
//
//	mixbench [flags]
//
// Examples:
//
//	mixbench
//	mixbench -samples 1000000 -iters 500
//	mixbench -gain-l 0.5 -gain-r 0.5
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-mix/dsp/mix"
	"github.com/cwbudde/algo-mix/internal/cpu"
)

type variant struct {
	name string
	fn   func(dst, src []float32, gainL, gainR float32)
}

// flatVariants operate on flat interleaved buffers. The cgo variant is
// appended by variants_cgo.go when built in; the structured variant has
// its own buffer types and is timed separately in main.
var flatVariants = []variant{
	{"scalar", mix.MonoToStereo},
	{"bounded", mix.MonoToStereoBounded},
	{"simd", mix.MonoToStereoSIMD},
}

func main() {
	samples := flag.Int("samples", 100000, "mono samples per call (rounded up to a multiple of 4)")
	iters := flag.Int("iters", 200, "timed calls per variant")
	gainL := flag.Float64("gain-l", 0.25, "left channel gain")
	gainR := flag.Float64("gain-r", 2.0, "right channel gain")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mixbench [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Compares the throughput of the mono-to-stereo mix kernel variants.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	n := *samples
	if rem := n % 4; rem != 0 {
		n += 4 - rem
	}
	if n <= 0 || *iters <= 0 {
		fmt.Fprintln(os.Stderr, "mixbench: -samples and -iters must be positive")
		os.Exit(2)
	}
	gl, gr := float32(*gainL), float32(*gainR)

	fmt.Printf("cpu: %s\n", cpu.DetectFeatures().Summary())
	fmt.Printf("samples per call: %d, calls per variant: %d\n\n", n, *iters)

	src := make([]float32, n)
	dst := make([]float32, 2*n)
	for i := range src {
		src[i] = float32(i%256)/128 - 1
	}

	monoSrc := make([]mix.MonoSample, n)
	stereoDst := make([]mix.StereoSample, n)
	for i := range src {
		monoSrc[i] = mix.MonoSample(src[i])
	}

	// 12 bytes move per mixed sample: one float32 read, two written.
	bytesPerCall := float64(n * 12)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "variant\tns/call\tMB/s\t")

	report := func(name string, run func()) {
		run() // warm up
		start := time.Now()
		for i := 0; i < *iters; i++ {
			run()
		}
		elapsed := time.Since(start)
		perCall := elapsed / time.Duration(*iters)
		mbps := bytesPerCall * float64(*iters) / elapsed.Seconds() / 1e6
		fmt.Fprintf(w, "%s\t%d\t%.0f\t\n", name, perCall.Nanoseconds(), mbps)
	}

	for _, v := range flatVariants {
		fn := v.fn
		report(v.name, func() { fn(dst, src, gl, gr) })
	}
	report("samples", func() { mix.MonoToStereoSamples(stereoDst, monoSrc, gl, gr) })

	w.Flush()
}
