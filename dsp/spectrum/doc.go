// Package spectrum converts split real/imaginary FFT output into
// magnitude, phase, and power representations.
package spectrum
