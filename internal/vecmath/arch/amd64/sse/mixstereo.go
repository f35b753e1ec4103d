//go:build !purego && amd64

package sse

// MixStereoBlock writes the interleaved stereo products of src and the two
// gains into dst: dst[2i] = src[i]*gainL, dst[2i+1] = src[i]*gainR.
// len(src) must be a multiple of 4 and len(dst) exactly twice len(src);
// panics otherwise.
// Uses 128-bit SSE instructions to process 4 float32 samples at once:
// both gains are broadcast across a register, each block of 4 source
// samples is multiplied by both, and the two product registers are
// unpacked pairwise into interleaved L,R order before storing.
func MixStereoBlock(dst, src []float32, gainL, gainR float32) {
	if len(src)%4 != 0 {
		panic("vecmath: source length not a multiple of 4")
	}
	if len(dst) != 2*len(src) {
		panic("vecmath: destination length must be twice the source length")
	}
	if len(src) == 0 {
		return
	}
	mixStereoBlockSSE(dst, src, gainL, gainR)
}

// Assembly function declaration (implemented in mixstereo.s)

//go:noescape
func mixStereoBlockSSE(dst, src []float32, gainL, gainR float32)
