//go:build cgo && amd64

package cmix

/*
#cgo CFLAGS: -O2

#include <stdint.h>

void mix_mono_to_stereo(int32_t num_samples, float *dst, const float *src, float gain_l, float gain_r);
*/
import "C"

import "unsafe"

// MixMonoToStereo writes src[i]*gainL and src[i]*gainR to dst[2i] and
// dst[2i+1] using the C SSE kernel in mix_amd64.c.
//
// The C routine trusts the pointers and count it is given: the caller
// must guarantee len(dst) == 2*len(src), len(src)%4 == 0 and that the
// buffers do not overlap, or behavior is undefined. dsp/mix.MonoToStereoC
// is the checked entry point.
func MixMonoToStereo(dst, src []float32, gainL, gainR float32) {
	if len(src) == 0 {
		return
	}
	C.mix_mono_to_stereo(
		C.int32_t(len(src)),
		(*C.float)(unsafe.Pointer(&dst[0])),
		(*C.float)(unsafe.Pointer(&src[0])),
		C.float(gainL),
		C.float(gainR),
	)
}
