// Package cpu reports SIMD instruction set extensions available on the
// current processor.
//
// The mix kernels select their implementation at build time, never at
// run time, so nothing here influences dispatch; the information is
// surfaced by cmd/mixbench so benchmark output records what the machine
// supports.
//
// Detection runs lazily on the first call to DetectFeatures() and is
// cached with sync.Once.
package cpu

import (
	"strings"
	"sync"
)

// Features describes the SIMD capabilities of the current processor.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2   bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX    bool // Advanced Vector Extensions
	HasAVX2   bool // Advanced Vector Extensions 2
	HasAVX512 bool // Advanced Vector Extensions 512

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// Architecture is runtime.GOARCH (e.g. "amd64", "arm64").
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
)

// DetectFeatures returns the CPU features available on the current system.
// Detection is performed once on the first call and cached; the function
// is safe for concurrent use.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	return detectedFeatures
}

// Summary returns a one-line description of the architecture and the
// detected SIMD extensions, e.g. "amd64 (SSE2 AVX AVX2)".
func (f Features) Summary() string {
	var ext []string
	if f.HasSSE2 {
		ext = append(ext, "SSE2")
	}
	if f.HasAVX {
		ext = append(ext, "AVX")
	}
	if f.HasAVX2 {
		ext = append(ext, "AVX2")
	}
	if f.HasAVX512 {
		ext = append(ext, "AVX-512")
	}
	if f.HasNEON {
		ext = append(ext, "NEON")
	}
	if len(ext) == 0 {
		return f.Architecture + " (no SIMD)"
	}
	return f.Architecture + " (" + strings.Join(ext, " ") + ")"
}
