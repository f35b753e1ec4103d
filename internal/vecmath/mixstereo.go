//go:build !purego && amd64

package vecmath

import "github.com/cwbudde/algo-mix/internal/vecmath/arch/amd64/sse"

// MixStereoBlock writes src[i]*gainL and src[i]*gainR to dst[2i] and
// dst[2i+1], processing 4 mono samples per iteration.
// len(src) must be a multiple of 4 and len(dst) exactly twice len(src);
// panics otherwise.
// SSE is part of the amd64 baseline, so the vector kernel is selected at
// build time with no runtime feature probe.
func MixStereoBlock(dst, src []float32, gainL, gainR float32) {
	sse.MixStereoBlock(dst, src, gainL, gainR)
}
