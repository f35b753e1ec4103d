package generic

// MixStereoBlock writes the interleaved stereo products of src and the two
// gains into dst, 4 mono samples per iteration: dst[2i] = src[i]*gainL,
// dst[2i+1] = src[i]*gainR.
// len(src) must be a multiple of 4 and len(dst) exactly twice len(src);
// panics otherwise. This is the pure Go block implementation; it mirrors
// the SSE kernel lane for lane so results are float-exact identical.
func MixStereoBlock(dst, src []float32, gainL, gainR float32) {
	if len(src)%4 != 0 {
		panic("vecmath: source length not a multiple of 4")
	}
	if len(dst) != 2*len(src) {
		panic("vecmath: destination length must be twice the source length")
	}
	for i := 0; i < len(src); i += 4 {
		s0, s1, s2, s3 := src[i], src[i+1], src[i+2], src[i+3]
		d := dst[2*i : 2*i+8 : 2*i+8]
		d[0] = s0 * gainL
		d[1] = s0 * gainR
		d[2] = s1 * gainL
		d[3] = s1 * gainR
		d[4] = s2 * gainL
		d[5] = s2 * gainR
		d[6] = s3 * gainL
		d[7] = s3 * gainR
	}
}
