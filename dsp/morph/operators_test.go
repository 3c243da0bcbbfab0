package morph

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-morph/internal/testutil"
)

func randomMagnitudes(seed int64, n int) []float64 {
	out := testutil.DeterministicNoise(seed, 1, n)
	for i, v := range out {
		out[i] = math.Abs(v)
	}

	return out
}

func mustApply(t *testing.T, op Operation, a, b []float64) []float64 {
	t.Helper()

	out, err := Apply(op, a, b)
	if err != nil {
		t.Fatalf("Apply(%v) error: %v", op, err)
	}

	return out
}

func TestApplyLengthMismatch(t *testing.T) {
	if _, err := Apply(OpAnd, make([]float64, 4), make([]float64, 5)); err == nil {
		t.Fatal("length mismatch accepted")
	}
}

func TestAndNeverExceedsOr(t *testing.T) {
	a := randomMagnitudes(1, 256)
	b := randomMagnitudes(2, 256)

	and := mustApply(t, OpAnd, a, b)
	or := mustApply(t, OpOr, a, b)

	for i := range and {
		if and[i] > or[i] {
			t.Fatalf("bin %d: and %v > or %v", i, and[i], or[i])
		}

		if and[i] != math.Min(a[i], b[i]) || or[i] != math.Max(a[i], b[i]) {
			t.Fatalf("bin %d: and/or not min/max", i)
		}
	}
}

func TestXorIsAbsoluteDifference(t *testing.T) {
	a := randomMagnitudes(3, 128)
	b := randomMagnitudes(4, 128)

	out := mustApply(t, OpXor, a, b)
	for i := range out {
		if out[i] != math.Abs(a[i]-b[i]) {
			t.Fatalf("bin %d: xor %v, want %v", i, out[i], math.Abs(a[i]-b[i]))
		}
	}
}

func TestSubtractIsNonNegative(t *testing.T) {
	a := randomMagnitudes(5, 128)
	b := randomMagnitudes(6, 128)

	out := mustApply(t, OpSubtract, a, b)
	for i := range out {
		if out[i] < 0 {
			t.Fatalf("bin %d: subtract produced %v", i, out[i])
		}

		if want := math.Max(0, a[i]-b[i]); out[i] != want {
			t.Fatalf("bin %d: subtract %v, want %v", i, out[i], want)
		}
	}
}

func TestCommutativeOperations(t *testing.T) {
	a := randomMagnitudes(7, 128)
	b := randomMagnitudes(8, 128)

	for _, op := range []Operation{OpAverage, OpMultiply, OpAnd, OpOr, OpXor} {
		ab := mustApply(t, op, a, b)
		ba := mustApply(t, op, b, a)

		testutil.RequireSliceNearlyEqual(t, ab, ba, 0)
	}
}

func TestNotAInvertsAgainstPeak(t *testing.T) {
	a := []float64{0, 1, 4, 2}
	b := []float64{3, 5, 7, 6}

	out := mustApply(t, OpNotA, a, b)

	// max(A)=4, min(B)=3: out = 4 - a + 3.
	want := []float64{7, 6, 3, 5}
	testutil.RequireSliceNearlyEqual(t, out, want, 0)

	out = mustApply(t, OpNotB, a, b)

	// max(B)=7, min(A)=0: out = 7 - b + 0.
	want = []float64{4, 2, 0, 1}
	testutil.RequireSliceNearlyEqual(t, out, want, 0)
}

func TestSquaredOperatorsPreservePeak(t *testing.T) {
	a := []float64{0, 2, 8, 4}
	b := []float64{1, 0.5, 0.25, 0}

	out := mustApply(t, OpASquared, a, b)
	want := []float64{0, 0.5, 8, 2} // a^2 / max(A)
	testutil.RequireSliceNearlyEqual(t, out, want, 1e-15)

	out = mustApply(t, OpBSquared, a, b)
	want = []float64{1, 0.25, 0.0625, 0}
	testutil.RequireSliceNearlyEqual(t, out, want, 1e-15)
}

func TestSquaredOperatorOnSilence(t *testing.T) {
	a := make([]float64, 8)
	b := randomMagnitudes(9, 8)

	out := mustApply(t, OpASquared, a, b)
	for i, v := range out {
		if v != 0 {
			t.Fatalf("bin %d: silent aSquared produced %v", i, v)
		}
	}
}

func TestUnknownOperationFallsBackToAverage(t *testing.T) {
	a := randomMagnitudes(10, 64)
	b := randomMagnitudes(11, 64)

	unknown := Operation(42)
	if unknown.Valid() {
		t.Fatal("Operation(42) reported valid")
	}

	out := mustApply(t, unknown, a, b)
	avg := mustApply(t, OpAverage, a, b)

	testutil.RequireSliceNearlyEqual(t, out, avg, 0)
}

func TestParseOperationRoundTrip(t *testing.T) {
	ops := []Operation{
		OpAnd, OpOr, OpXor, OpMultiply, OpAverage,
		OpNotA, OpNotB, OpASquared, OpBSquared, OpSubtract,
	}

	for _, op := range ops {
		got, err := ParseOperation(op.String())
		if err != nil {
			t.Fatalf("ParseOperation(%q) error: %v", op.String(), err)
		}

		if got != op {
			t.Fatalf("ParseOperation(%q) = %v, want %v", op.String(), got, op)
		}
	}

	if _, err := ParseOperation("nand"); err == nil {
		t.Fatal("unknown name accepted")
	}
}
