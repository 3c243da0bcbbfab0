// Package fft provides an in-place radix-2 decimation-in-time FFT over
// split real/imaginary slices.
//
// The kernel is self-contained so that callers control buffer layout and
// allocation; both transforms operate destructively on their arguments.
package fft
