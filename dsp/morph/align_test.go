package morph

import "testing"

func TestAlignedLengthTruncating(t *testing.T) {
	if got := AlignedLength(100, 80, false); got != 80 {
		t.Fatalf("AlignedLength(100, 80, false) = %d, want 80", got)
	}

	if got := AlignedLength(80, 100, false); got != 80 {
		t.Fatalf("AlignedLength(80, 100, false) = %d, want 80", got)
	}

	if got := AlignedLength(0, 80, false); got != 0 {
		t.Fatalf("empty input produced %d output frames", got)
	}
}

func TestAlignedLengthStretching(t *testing.T) {
	if got := AlignedLength(100, 80, true); got != 90 {
		t.Fatalf("AlignedLength(100, 80, true) = %d, want 90", got)
	}

	// Odd sum rounds up.
	if got := AlignedLength(100, 81, true); got != 91 {
		t.Fatalf("AlignedLength(100, 81, true) = %d, want 91", got)
	}

	if got := AlignedLength(50, 50, true); got != 50 {
		t.Fatalf("AlignedLength(50, 50, true) = %d, want 50", got)
	}
}

func TestSourceIndexMonotoneAndBounded(t *testing.T) {
	const (
		lenA = 100
		lenB = 80
	)

	total := AlignedLength(lenA, lenB, true)

	prevA, prevB := -1, -1

	for i := range total {
		idxA := SourceIndex(i, total, lenA)
		idxB := SourceIndex(i, total, lenB)

		if idxA < 0 || idxA >= lenA {
			t.Fatalf("i=%d: idxA %d out of [0, %d)", i, idxA, lenA)
		}

		if idxB < 0 || idxB >= lenB {
			t.Fatalf("i=%d: idxB %d out of [0, %d)", i, idxB, lenB)
		}

		if idxA < prevA || idxB < prevB {
			t.Fatalf("i=%d: indices decreased: A %d->%d, B %d->%d", i, prevA, idxA, prevB, idxB)
		}

		prevA, prevB = idxA, idxB
	}

	// Nearest-neighbor selection: floor(89*100/90) and floor(89*80/90).
	if last := SourceIndex(total-1, total, lenA); last != 98 {
		t.Fatalf("last idxA = %d, want 98", last)
	}

	if last := SourceIndex(total-1, total, lenB); last != lenB-1 {
		t.Fatalf("last idxB = %d, want %d", last, lenB-1)
	}
}

func TestSourceIndexIdentityForEqualLengths(t *testing.T) {
	for i := range 64 {
		if got := SourceIndex(i, 64, 64); got != i {
			t.Fatalf("SourceIndex(%d, 64, 64) = %d, want identity", i, got)
		}
	}
}
