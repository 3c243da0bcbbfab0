package morph

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-morph/dsp/fft"
	"github.com/cwbudde/algo-morph/dsp/signal"
	"github.com/cwbudde/algo-morph/dsp/stft"
	"github.com/cwbudde/algo-morph/dsp/window"
)

const (
	// windowSumFloor guards the overlap-add normalization division.
	windowSumFloor = 0.001
	// outputPeak is the clip-safe target peak of the resynthesized signal.
	outputPeak = 0.95
)

// Resynthesize reconstructs a time-domain signal from half-spectrum frames.
//
// Each frame's full complex spectrum is rebuilt via Hermitian mirroring,
// inverse-transformed, multiplied by the synthesis window and accumulated at
// its hop offset. The accumulated signal is divided by the summed window
// gain wherever that sum exceeds a small floor, then scaled so the peak
// amplitude is 0.95.
func Resynthesize(frames []stft.Frame, frameSize, overlapPercent int) ([]float64, error) {
	if frameSize < 2 || frameSize&(frameSize-1) != 0 {
		return nil, fmt.Errorf("morph: frame size must be a power of two >= 2: %d", frameSize)
	}

	if overlapPercent < 0 || overlapPercent >= 100 {
		return nil, fmt.Errorf("morph: overlap percent must be in [0, 100): %d", overlapPercent)
	}

	hop := stft.HopSize(frameSize, overlapPercent)
	if hop < 1 {
		return nil, fmt.Errorf("morph: hop size must be >= 1 sample: frame size %d, overlap %d%%",
			frameSize, overlapPercent)
	}

	if len(frames) == 0 {
		return nil, nil
	}

	half := frameSize / 2
	coeffs := window.Generate(window.TypeHann, frameSize, window.WithPeriodic())

	outLen := (len(frames)-1)*hop + frameSize
	out := make([]float64, outLen)
	windowSum := make([]float64, outLen)

	re := make([]float64, frameSize)
	im := make([]float64, frameSize)
	frameOut := make([]float64, frameSize)

	for i, f := range frames {
		if len(f.Magnitude) != half || len(f.Phase) != half {
			return nil, fmt.Errorf("morph: frame %d half-spectrum length %d/%d, want %d",
				i, len(f.Magnitude), len(f.Phase), half)
		}

		for k := range half {
			re[k] = f.Magnitude[k] * math.Cos(f.Phase[k])
			im[k] = f.Magnitude[k] * math.Sin(f.Phase[k])
		}

		re[half] = 0
		im[half] = 0

		for k := 1; k < half; k++ {
			re[frameSize-k] = re[k]
			im[frameSize-k] = -im[k]
		}

		if err := fft.Inverse(re, im); err != nil {
			return nil, fmt.Errorf("morph: inverse transform of frame %d: %w", i, err)
		}

		// Factor 2 compensates for driving the mirror from a half-spectrum.
		vecmath.ScaleBlock(frameOut, re, 2)
		vecmath.MulBlockInPlace(frameOut, coeffs)

		pos := i * hop
		vecmath.AddBlockInPlace(out[pos:pos+frameSize], frameOut)
		vecmath.AddBlockInPlace(windowSum[pos:pos+frameSize], coeffs)
	}

	for i := range out {
		if windowSum[i] > windowSumFloor {
			out[i] /= windowSum[i]
		}
	}

	return signal.Normalize(out, outputPeak)
}
