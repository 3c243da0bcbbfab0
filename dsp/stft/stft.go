package stft

import (
	"fmt"

	"github.com/cwbudde/algo-morph/dsp/fft"
	"github.com/cwbudde/algo-morph/dsp/spectrum"
	"github.com/cwbudde/algo-morph/dsp/window"
)

// Frame is one analyzed half-spectrum: magnitude and phase for the
// non-negative-frequency bins of a real-valued frame. Both slices have
// length frameSize/2 and are immutable after Analyze returns them.
type Frame struct {
	Magnitude []float64
	Phase     []float64
}

// HopSize returns the analysis hop in samples:
// floor(frameSize * (1 - overlapPercent/100)).
func HopSize(frameSize, overlapPercent int) int {
	return frameSize * (100 - overlapPercent) / 100
}

// NumFrames returns the number of full frames that fit into a signal of the
// given length. Trailing samples beyond the last full frame are dropped.
func NumFrames(signalLen, frameSize, overlapPercent int) int {
	if signalLen < frameSize {
		return 0
	}

	hop := HopSize(frameSize, overlapPercent)
	if hop < 1 {
		return 0
	}

	return (signalLen-frameSize)/hop + 1
}

// Analyze slices a signal into overlapping Hann-windowed frames and returns
// one half-spectrum Frame per full analysis frame. frameSize must be a
// power of two >= 2; overlapPercent must be in [0, 100) and leave a hop of
// at least one sample.
func Analyze(signal []float64, frameSize, overlapPercent int) ([]Frame, error) {
	if frameSize < 2 || frameSize&(frameSize-1) != 0 {
		return nil, fmt.Errorf("stft: frame size must be a power of two >= 2: %d", frameSize)
	}

	if overlapPercent < 0 || overlapPercent >= 100 {
		return nil, fmt.Errorf("stft: overlap percent must be in [0, 100): %d", overlapPercent)
	}

	hop := HopSize(frameSize, overlapPercent)
	if hop < 1 {
		return nil, fmt.Errorf("stft: hop size must be >= 1 sample: frame size %d, overlap %d%%",
			frameSize, overlapPercent)
	}

	count := NumFrames(len(signal), frameSize, overlapPercent)
	if count == 0 {
		return nil, nil
	}

	coeffs := window.Generate(window.TypeHann, frameSize, window.WithPeriodic())
	half := frameSize / 2

	re := make([]float64, frameSize)
	im := make([]float64, frameSize)
	frames := make([]Frame, count)

	for i := range count {
		pos := i * hop

		copy(re, signal[pos:pos+frameSize])
		for k := range im {
			im[k] = 0
		}

		if err := window.ApplyCoefficientsInPlace(re, coeffs); err != nil {
			return nil, fmt.Errorf("stft: windowing frame %d: %w", i, err)
		}

		if err := fft.Forward(re, im); err != nil {
			return nil, fmt.Errorf("stft: transform of frame %d: %w", i, err)
		}

		mag := make([]float64, half)
		phase := make([]float64, half)
		spectrum.MagnitudeFromParts(mag, re[:half], im[:half])
		spectrum.PhaseFromParts(phase, re[:half], im[:half])

		frames[i] = Frame{Magnitude: mag, Phase: phase}
	}

	return frames, nil
}
