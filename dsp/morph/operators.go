package morph

import (
	"fmt"
	"math"
)

// Operation selects how two magnitude spectra are combined bin by bin.
type Operation int

const (
	// OpAnd keeps the common content: min(a, b).
	OpAnd Operation = iota
	// OpOr keeps the union of content: max(a, b).
	OpOr
	// OpXor keeps the difference magnitude: |a - b|.
	OpXor
	// OpMultiply emphasizes shared energy: a * b.
	OpMultiply
	// OpAverage blends both inputs: (a + b) / 2.
	OpAverage
	// OpNotA inverts A against its own peak, anchored to B's floor.
	OpNotA
	// OpNotB inverts B against its own peak, anchored to A's floor.
	OpNotB
	// OpASquared enhances A's harmonics: (a/max(A))^2 * max(A).
	OpASquared
	// OpBSquared enhances B's harmonics: (b/max(B))^2 * max(B).
	OpBSquared
	// OpSubtract keeps A's unique content: max(0, a - b).
	OpSubtract
)

var operationNames = map[Operation]string{
	OpAnd:      "and",
	OpOr:       "or",
	OpXor:      "xor",
	OpMultiply: "multiply",
	OpAverage:  "average",
	OpNotA:     "not-a",
	OpNotB:     "not-b",
	OpASquared: "a-squared",
	OpBSquared: "b-squared",
	OpSubtract: "subtract",
}

// Valid reports whether op is a member of the closed operation set.
func (op Operation) Valid() bool {
	_, ok := operationNames[op]
	return ok
}

// String returns the canonical operation name.
func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}

	return fmt.Sprintf("operation(%d)", int(op))
}

// ParseOperation resolves a canonical operation name.
func ParseOperation(name string) (Operation, error) {
	for op, n := range operationNames {
		if n == name {
			return op, nil
		}
	}

	return 0, fmt.Errorf("morph: unknown operation %q", name)
}

// Apply combines two equal-length magnitude arrays under op and returns the
// combined magnitudes. An operation outside the closed set behaves like
// OpAverage; callers that need to surface the substitution check
// [Operation.Valid] first.
func Apply(op Operation, a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("morph: magnitude length mismatch: %d vs %d", len(a), len(b))
	}

	out := make([]float64, len(a))

	switch op {
	case OpAnd:
		for i := range out {
			out[i] = math.Min(a[i], b[i])
		}
	case OpOr:
		for i := range out {
			out[i] = math.Max(a[i], b[i])
		}
	case OpXor:
		for i := range out {
			out[i] = math.Abs(a[i] - b[i])
		}
	case OpMultiply:
		for i := range out {
			out[i] = a[i] * b[i]
		}
	case OpNotA:
		maxA := maxValue(a)
		minB := minValue(b)

		for i := range out {
			out[i] = maxA - a[i] + minB
		}
	case OpNotB:
		maxB := maxValue(b)
		minA := minValue(a)

		for i := range out {
			out[i] = maxB - b[i] + minA
		}
	case OpASquared:
		squaredNormalized(out, a)
	case OpBSquared:
		squaredNormalized(out, b)
	case OpSubtract:
		for i := range out {
			out[i] = math.Max(0, a[i]-b[i])
		}
	default:
		// OpAverage and the unknown-operation fallback.
		for i := range out {
			out[i] = (a[i] + b[i]) / 2
		}
	}

	return out, nil
}

// squaredNormalized computes (v/max)^2 * max = v^2/max, which squares the
// spectrum without overflowing the original peak level.
func squaredNormalized(out, v []float64) {
	peak := maxValue(v)
	if peak == 0 {
		for i := range out {
			out[i] = 0
		}

		return
	}

	for i := range out {
		out[i] = v[i] * v[i] / peak
	}
}

func maxValue(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	best := v[0]
	for _, x := range v[1:] {
		if x > best {
			best = x
		}
	}

	return best
}

func minValue(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	best := v[0]
	for _, x := range v[1:] {
		if x < best {
			best = x
		}
	}

	return best
}
