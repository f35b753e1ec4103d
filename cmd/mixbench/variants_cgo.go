//go:build cgo && amd64

package main

import "github.com/cwbudde/algo-mix/dsp/mix"

func init() {
	flatVariants = append(flatVariants, variant{"cgo", mix.MonoToStereoC})
}
