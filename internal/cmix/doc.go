// Package cmix holds the cgo boundary to the externally compiled SSE mix
// kernel. The crossing performs no bounds checking of its own; callers
// must validate buffer shapes first. Only dsp/mix is expected to import
// this package, through its precondition-checked wrapper.
//
// The package builds only with cgo on amd64.
package cmix
