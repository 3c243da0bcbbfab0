package morph

import "fmt"

// PhaseMode selects which input's phase carries into the combined spectrum.
type PhaseMode int

const (
	// PhaseUseA takes input A's phase verbatim.
	PhaseUseA PhaseMode = iota
	// PhaseUseB takes input B's phase verbatim.
	PhaseUseB
	// PhaseWeightedAverage blends both phases per bin, weighted by the
	// corresponding magnitudes.
	PhaseWeightedAverage
)

// Valid reports whether mode is a member of the closed phase-mode set.
func (m PhaseMode) Valid() bool {
	switch m {
	case PhaseUseA, PhaseUseB, PhaseWeightedAverage:
		return true
	default:
		return false
	}
}

// String returns the canonical phase-mode name.
func (m PhaseMode) String() string {
	switch m {
	case PhaseUseA:
		return "a"
	case PhaseUseB:
		return "b"
	case PhaseWeightedAverage:
		return "weighted"
	default:
		return fmt.Sprintf("phase-mode(%d)", int(m))
	}
}

// ParsePhaseMode resolves a canonical phase-mode name.
func ParsePhaseMode(name string) (PhaseMode, error) {
	switch name {
	case "a":
		return PhaseUseA, nil
	case "b":
		return PhaseUseB, nil
	case "weighted":
		return PhaseWeightedAverage, nil
	default:
		return 0, fmt.Errorf("morph: unknown phase mode %q", name)
	}
}

// combinePhases merges two phase arrays into a fresh slice.
//
// Weighted averaging combines raw angles as scalars, without unwrapping
// across the +/-pi boundary. This matches the established behavior of the
// engine; see the phase tests that pin it down.
func combinePhases(mode PhaseMode, phaseA, phaseB, magA, magB []float64) []float64 {
	out := make([]float64, len(phaseA))

	switch mode {
	case PhaseUseB:
		copy(out, phaseB)
	case PhaseWeightedAverage:
		for i := range out {
			sum := magA[i] + magB[i]
			if sum > 0 {
				w := magA[i] / sum
				out[i] = phaseA[i]*w + phaseB[i]*(1-w)
			} else {
				out[i] = (phaseA[i] + phaseB[i]) / 2
			}
		}
	default:
		copy(out, phaseA)
	}

	return out
}
