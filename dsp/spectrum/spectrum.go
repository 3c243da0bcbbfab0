package spectrum

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
//
// This is the zero-allocation fast path for callers that already have real
// and imaginary parts in separate slices, using SIMD-optimized
// implementations when available. All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Magnitude returns |X[k]| for split real/imaginary parts.
func Magnitude(re, im []float64) []float64 {
	if len(re) == 0 {
		return nil
	}

	out := make([]float64, len(re))
	MagnitudeFromParts(out, re, im)

	return out
}

// PhaseFromParts computes arg(X[k]) in (-pi, pi] into dst.
func PhaseFromParts(dst, re, im []float64) {
	for i := range dst {
		dst[i] = math.Atan2(im[i], re[i])
	}
}

// Phase returns arg(X[k]) for split real/imaginary parts.
func Phase(re, im []float64) []float64 {
	if len(re) == 0 {
		return nil
	}

	out := make([]float64, len(re))
	PhaseFromParts(out, re, im)

	return out
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// PeakBin returns the index of the largest magnitude value.
// Returns -1 for an empty slice.
func PeakBin(mag []float64) int {
	peak := -1
	best := math.Inf(-1)

	for i, v := range mag {
		if v > best {
			best = v
			peak = i
		}
	}

	return peak
}
