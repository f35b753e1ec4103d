// Package mix provides mono-to-stereo gain mixing kernels.
//
// All entry points implement the same transformation: each mono input
// sample is multiplied by independent left and right gain factors and the
// two products are written as one interleaved stereo frame, so a source of
// N samples produces L,R,L,R,... output of 2N values.
//
// The package deliberately offers several equivalent implementations of
// this one kernel:
//
//   - MonoToStereo: plain scalar loop over flat buffers, the correctness
//     reference.
//   - MonoToStereoBounded: same loop with the destination re-sliced to its
//     exact extent up front, which lets the compiler hoist bounds checks.
//   - MonoToStereoSamples: loop over MonoSample/StereoSample values. The
//     recommended default; the per-element stereo write gives the compiler
//     a unit-stride store it can vectorize without unsafe code.
//   - MonoToStereoSIMD: explicit 4-wide SSE kernel (hand-written assembly
//     on amd64, equivalent pure-Go block loop elsewhere).
//   - MonoToStereoC: the same SSE kernel compiled from C and reached
//     through cgo, available when built with cgo on amd64.
//
// Every variant produces float-exact identical output. Buffer-shape
// violations are programming errors and panic; no recoverable error
// domain exists here.
package mix
