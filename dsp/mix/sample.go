package mix

// MonoSample is a single-channel amplitude value. It has the same memory
// layout as a bare float32; the named type only gives mono buffers a
// distinct identity from flat interleaved ones.
type MonoSample float32

// StereoSample is one instant of two-channel audio, left then right,
// packed contiguously. A []StereoSample is binary-compatible with an
// interleaved L,R,L,R,... float32 buffer of twice the length, which is
// the layout audio output APIs expect.
type StereoSample struct {
	L, R float32
}
