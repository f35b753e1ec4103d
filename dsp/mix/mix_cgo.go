//go:build cgo && amd64

package mix

import "github.com/cwbudde/algo-mix/internal/cmix"

// MonoToStereoC mixes src into dst through the externally compiled SSE
// kernel in internal/cmix. The algorithm and results are identical to
// MonoToStereoSIMD; the variant exists to compare an external C kernel
// and the cost of crossing the cgo boundary against the in-Go assembly.
//
// This wrapper is the safety boundary: past it the C routine operates on
// raw pointers with no bounds checking, so the same preconditions as
// MonoToStereoSIMD are enforced here. Panics unless len(dst) == 2*len(src)
// and len(src) is a multiple of 4.
func MonoToStereoC(dst, src []float32, gainL, gainR float32) {
	if len(dst) != 2*len(src) {
		panic("mix: destination length must be twice the source length")
	}
	if len(src)%4 != 0 {
		panic("mix: source length must be a multiple of 4")
	}
	cmix.MixMonoToStereo(dst, src, gainL, gainR)
}
