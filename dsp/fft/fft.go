package fft

import (
	"fmt"
	"math"
)

// Forward computes the in-place forward FFT of the complex sequence held in
// split real/imaginary slices. Both slices must have the same power-of-two
// length. A length of 1 is the identity.
func Forward(re, im []float64) error {
	n, err := validate(re, im)
	if err != nil {
		return err
	}

	if n == 1 {
		return nil
	}

	bitReverse(re, im)

	for length := 2; length <= n; length <<= 1 {
		// Twiddle step exp(-2*pi*i/length), advanced by complex rotation
		// instead of a trig call per butterfly.
		ang := -2 * math.Pi / float64(length)
		stepRe := math.Cos(ang)
		stepIm := math.Sin(ang)
		half := length >> 1

		for start := 0; start < n; start += length {
			wRe := 1.0
			wIm := 0.0

			for k := range half {
				i := start + k
				j := i + half

				tRe := re[j]*wRe - im[j]*wIm
				tIm := re[j]*wIm + im[j]*wRe

				re[j] = re[i] - tRe
				im[j] = im[i] - tIm
				re[i] += tRe
				im[i] += tIm

				wRe, wIm = wRe*stepRe-wIm*stepIm, wRe*stepIm+wIm*stepRe
			}
		}
	}

	return nil
}

// Inverse computes the in-place inverse FFT of the complex sequence held in
// split real/imaginary slices. It is implemented as conjugate, forward
// transform, conjugate, scale by 1/N, so Inverse(Forward(x)) reproduces x to
// floating-point precision.
func Inverse(re, im []float64) error {
	n, err := validate(re, im)
	if err != nil {
		return err
	}

	for i := range im {
		im[i] = -im[i]
	}

	err = Forward(re, im)
	if err != nil {
		return err
	}

	scale := 1.0 / float64(n)
	for i := range re {
		re[i] *= scale
		im[i] *= -scale
	}

	return nil
}

func validate(re, im []float64) (int, error) {
	n := len(re)
	if len(im) != n {
		return 0, fmt.Errorf("fft: real/imag length mismatch: %d vs %d", n, len(im))
	}

	if n < 1 || n&(n-1) != 0 {
		return 0, fmt.Errorf("fft: length must be a power of two: %d", n)
	}

	return n, nil
}

// bitReverse permutes both slices into bit-reversed index order.
func bitReverse(re, im []float64) {
	n := len(re)
	j := 0

	for i := 1; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}

		j |= bit

		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
}
