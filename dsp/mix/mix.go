package mix

import "github.com/cwbudde/algo-mix/internal/vecmath"

// MonoToStereo mixes src into the interleaved stereo buffer dst using an
// ordinary element-by-element loop: dst[2i] = src[i]*gainL and
// dst[2i+1] = src[i]*gainR.
// Panics unless len(dst) == 2*len(src). This is the reference
// implementation the other variants are tested against; the strided
// stores defeat auto-vectorization and it is intentionally left that way.
func MonoToStereo(dst, src []float32, gainL, gainR float32) {
	if len(dst) != 2*len(src) {
		panic("mix: destination length must be twice the source length")
	}
	for i := 0; i < len(src); i++ {
		dst[i*2+0] = src[i] * gainL
		dst[i*2+1] = src[i] * gainR
	}
}

// MonoToStereoBounded is MonoToStereo with the destination re-sliced to
// its exact extent before the loop, so every store is provably in bounds.
// Panics unless len(dst) == 2*len(src).
func MonoToStereoBounded(dst, src []float32, gainL, gainR float32) {
	if len(dst) != 2*len(src) {
		panic("mix: destination length must be twice the source length")
	}
	dst = dst[:2*len(src)]
	for i := 0; i < len(src); i++ {
		dst[i*2+0] = src[i] * gainL
		dst[i*2+1] = src[i] * gainR
	}
}

// MonoToStereoSamples mixes src into the first len(src) elements of dst;
// elements past len(src) are left untouched. Panics if dst is shorter
// than src.
//
// Operating on whole StereoSample values turns the two strided stores of
// the flat variants into one unit-stride store per element, which the
// compiler can vectorize reliably. Prefer this variant in production: it
// needs no assembly and no cgo.
func MonoToStereoSamples(dst []StereoSample, src []MonoSample, gainL, gainR float32) {
	if len(dst) < len(src) {
		panic("mix: destination shorter than source")
	}
	dst = dst[:len(src)]
	for i := 0; i < len(src); i++ {
		dst[i].L = float32(src[i]) * gainL
		dst[i].R = float32(src[i]) * gainR
	}
}

// MonoToStereoSIMD mixes src into dst in blocks of 4 samples using
// explicit 128-bit vector operations (SSE on amd64, an equivalent pure-Go
// block loop on other targets). Results are float-exact identical to
// MonoToStereo.
// Panics unless len(dst) == 2*len(src) and len(src) is a multiple of 4;
// no scalar tail is processed.
func MonoToStereoSIMD(dst, src []float32, gainL, gainR float32) {
	if len(dst) != 2*len(src) {
		panic("mix: destination length must be twice the source length")
	}
	if len(src)%4 != 0 {
		panic("mix: source length must be a multiple of 4")
	}
	vecmath.MixStereoBlock(dst, src, gainL, gainR)
}
