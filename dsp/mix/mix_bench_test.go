package mix

import "testing"

// Each mixed sample moves 12 bytes: one float32 read, two float32 writes.
const bytesPerSample = 12

var benchSizes = []struct {
	name string
	size int
}{
	{"64", 64},
	{"1K", 1024},
	{"16K", 16384},
	{"100K", 100000},
}

func benchFlat(b *testing.B, fn func(dst, src []float32, gainL, gainR float32)) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			src := make([]float32, tc.size)
			dst := make([]float32, 2*tc.size)
			fillSignal(src)

			b.SetBytes(int64(tc.size * bytesPerSample))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				fn(dst, src, 0.25, 2.0)
			}
		})
	}
}

func BenchmarkMonoToStereo(b *testing.B) {
	benchFlat(b, MonoToStereo)
}

func BenchmarkMonoToStereoBounded(b *testing.B) {
	benchFlat(b, MonoToStereoBounded)
}

func BenchmarkMonoToStereoSIMD(b *testing.B) {
	benchFlat(b, MonoToStereoSIMD)
}

func BenchmarkMonoToStereoSamples(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			src := make([]MonoSample, tc.size)
			dst := make([]StereoSample, tc.size)
			for i := range src {
				src[i] = MonoSample(i) * 0.001
			}

			b.SetBytes(int64(tc.size * bytesPerSample))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				MonoToStereoSamples(dst, src, 0.25, 2.0)
			}
		})
	}
}
