package generic

import (
	"fmt"
	"testing"
)

func TestMixStereoBlock(t *testing.T) {
	sizes := []int{0, 4, 8, 12, 64, 1024}

	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			src := make([]float32, n)
			dst := make([]float32, 2*n)

			for i := 0; i < n; i++ {
				src[i] = float32(i) - 2.5
			}

			MixStereoBlock(dst, src, 0.5, -2)

			for i := 0; i < n; i++ {
				if dst[2*i] != src[i]*0.5 {
					t.Errorf("left[%d]: got %v, want %v", i, dst[2*i], src[i]*0.5)
				}
				if dst[2*i+1] != src[i]*-2 {
					t.Errorf("right[%d]: got %v, want %v", i, dst[2*i+1], src[i]*-2)
				}
			}
		})
	}
}

func TestMixStereoBlockPanics(t *testing.T) {
	for _, tc := range []struct {
		name     string
		dst, src int
	}{
		{"remainder", 14, 7},
		{"dst-short", 15, 8},
		{"dst-long", 17, 8},
	} {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			MixStereoBlock(make([]float32, tc.dst), make([]float32, tc.src), 1, 1)
		})
	}
}
