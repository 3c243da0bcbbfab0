package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{0.5, -1, 1, 0.5},
		{2, -1, 1, 1},
		{-2, -1, 1, -1},
		{0.5, 1, -1, 0.5}, // swapped bounds
	}

	for _, c := range cases {
		if got := Clamp(c.value, c.min, c.max); got != c.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.value, c.min, c.max, got, c.want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("close values reported unequal")
	}

	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Fatal("distant values reported equal")
	}

	if !NearlyEqual(0, 0, 0) {
		t.Fatal("zero not equal to itself")
	}
}

func TestDBConversions(t *testing.T) {
	if got := LinearToDB(1); got != 0 {
		t.Fatalf("LinearToDB(1) = %v, want 0", got)
	}

	if got := LinearToDB(0); !math.IsInf(got, -1) {
		t.Fatalf("LinearToDB(0) = %v, want -Inf", got)
	}

	if got := LinearToDB(-1); !math.IsNaN(got) {
		t.Fatalf("LinearToDB(-1) = %v, want NaN", got)
	}

	if got := DBToLinear(20); math.Abs(got-10) > 1e-12 {
		t.Fatalf("DBToLinear(20) = %v, want 10", got)
	}

	// Round trip.
	if got := LinearToDB(DBToLinear(-6)); math.Abs(got+6) > 1e-12 {
		t.Fatalf("round trip = %v, want -6", got)
	}
}
