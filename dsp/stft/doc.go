// Package stft performs short-time Fourier analysis: overlapping
// Hann-windowed framing of a signal into half-spectrum magnitude/phase
// frames.
package stft
