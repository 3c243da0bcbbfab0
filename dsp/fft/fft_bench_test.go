package fft

import (
	"math/rand"
	"testing"
)

func benchmarkForward(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(1))
	re := make([]float64, n)
	im := make([]float64, n)

	for i := range re {
		re[i] = rng.Float64()*2 - 1
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Forward(re, im)
	}
}

func BenchmarkForward1024(b *testing.B) { benchmarkForward(b, 1024) }
func BenchmarkForward4096(b *testing.B) { benchmarkForward(b, 4096) }
