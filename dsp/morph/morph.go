package morph

import (
	"fmt"

	"github.com/cwbudde/algo-morph/dsp/stft"
)

const (
	minFrameSize = 512
	maxFrameSize = 8192

	// combineProgressStride is how often the combination stage reports
	// progress, in output frames.
	combineProgressStride = 50
)

// Config describes one hybridization run.
type Config struct {
	// FrameSize is the analysis/synthesis transform size. Must be a power
	// of two in [512, 8192].
	FrameSize int
	// OverlapPercent is the analysis frame overlap in [0, 100).
	OverlapPercent int
	// Operation combines the two magnitude spectra per bin.
	Operation Operation
	// PhaseMode selects the phase-combination policy.
	PhaseMode PhaseMode
	// TimeAlign stretches both inputs onto a common timeline instead of
	// truncating to the shorter one.
	TimeAlign bool
}

// DefaultConfig returns the configuration used when callers have no
// specific preference.
func DefaultConfig() Config {
	return Config{
		FrameSize:      2048,
		OverlapPercent: 75,
		Operation:      OpAverage,
		PhaseMode:      PhaseUseA,
		TimeAlign:      true,
	}
}

// Validate checks the fatal preconditions of a configuration. An operation
// outside the closed set is deliberately not fatal; Process substitutes
// OpAverage and reports a diagnostic instead.
func (c Config) Validate() error {
	if c.FrameSize < minFrameSize || c.FrameSize > maxFrameSize ||
		c.FrameSize&(c.FrameSize-1) != 0 {
		return fmt.Errorf("morph: frame size must be a power of two in [%d, %d]: %d",
			minFrameSize, maxFrameSize, c.FrameSize)
	}

	if c.OverlapPercent < 0 || c.OverlapPercent >= 100 {
		return fmt.Errorf("morph: overlap percent must be in [0, 100): %d", c.OverlapPercent)
	}

	if stft.HopSize(c.FrameSize, c.OverlapPercent) < 1 {
		return fmt.Errorf("morph: overlap %d%% leaves no hop at frame size %d",
			c.OverlapPercent, c.FrameSize)
	}

	if !c.PhaseMode.Valid() {
		return fmt.Errorf("morph: invalid phase mode: %d", int(c.PhaseMode))
	}

	return nil
}

// ProgressFunc receives coarse progress checkpoints: a bucketed percentage
// in [0, 100] and a short status message. It is advisory only and is never
// called from the numeric kernels.
type ProgressFunc func(percent int, message string)

// Process hybridizes two signals under cfg and returns the combined signal.
//
// Both inputs are analyzed into half-spectrum frame sequences, aligned onto
// a common timeline, combined frame by frame under the configured operation
// and phase mode, and resynthesized via overlap-add. Inputs are only read;
// the returned signal is owned by the caller. Process holds no state across
// calls, so independent runs may execute concurrently.
func Process(a, b []float64, cfg Config) ([]float64, error) {
	return ProcessWithProgress(a, b, cfg, nil)
}

// ProcessWithProgress is Process with an optional progress sink.
func ProcessWithProgress(a, b []float64, cfg Config, progress ProgressFunc) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(a) == 0 {
		return nil, fmt.Errorf("morph: input A is empty")
	}

	if len(b) == 0 {
		return nil, fmt.Errorf("morph: input B is empty")
	}

	op := cfg.Operation
	if !op.Valid() {
		op = OpAverage
		emit(progress, 0, fmt.Sprintf("unknown operation %d, using average", int(cfg.Operation)))
	}

	emit(progress, 0, "analyzing input A")

	framesA, err := stft.Analyze(a, cfg.FrameSize, cfg.OverlapPercent)
	if err != nil {
		return nil, err
	}

	if len(framesA) == 0 {
		return nil, fmt.Errorf("morph: input A shorter than one analysis frame (%d samples)",
			cfg.FrameSize)
	}

	emit(progress, 25, "analyzing input B")

	framesB, err := stft.Analyze(b, cfg.FrameSize, cfg.OverlapPercent)
	if err != nil {
		return nil, err
	}

	if len(framesB) == 0 {
		return nil, fmt.Errorf("morph: input B shorter than one analysis frame (%d samples)",
			cfg.FrameSize)
	}

	emit(progress, 50, "combining spectra")

	total := AlignedLength(len(framesA), len(framesB), cfg.TimeAlign)
	combined := make([]stft.Frame, total)

	for i := range total {
		idxA, idxB := i, i
		if cfg.TimeAlign {
			idxA = SourceIndex(i, total, len(framesA))
			idxB = SourceIndex(i, total, len(framesB))
		}

		fa := framesA[idxA]
		fb := framesB[idxB]

		mag, err := Apply(op, fa.Magnitude, fb.Magnitude)
		if err != nil {
			return nil, err
		}

		combined[i] = stft.Frame{
			Magnitude: mag,
			Phase:     combinePhases(cfg.PhaseMode, fa.Phase, fb.Phase, fa.Magnitude, fb.Magnitude),
		}

		if progress != nil && i > 0 && i%combineProgressStride == 0 {
			emit(progress, 50+40*i/total, fmt.Sprintf("combined %d/%d frames", i, total))
		}
	}

	emit(progress, 90, "resynthesizing")

	out, err := Resynthesize(combined, cfg.FrameSize, cfg.OverlapPercent)
	if err != nil {
		return nil, err
	}

	emit(progress, 100, "done")

	return out, nil
}

func emit(progress ProgressFunc, percent int, message string) {
	if progress != nil {
		progress(percent, message)
	}
}
