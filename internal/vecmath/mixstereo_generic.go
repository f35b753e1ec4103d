//go:build purego || !amd64

package vecmath

import "github.com/cwbudde/algo-mix/internal/vecmath/arch/generic"

// MixStereoBlock writes src[i]*gainL and src[i]*gainR to dst[2i] and
// dst[2i+1], processing 4 mono samples per iteration.
// len(src) must be a multiple of 4 and len(dst) exactly twice len(src);
// panics otherwise.
// This is the pure Go fallback for targets without the SSE kernel.
func MixStereoBlock(dst, src []float32, gainL, gainR float32) {
	generic.MixStereoBlock(dst, src, gainL, gainR)
}
