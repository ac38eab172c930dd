package channel

import (
	"math"
	"testing"
)

func TestNoiselessExactMatch(t *testing.T) {
	ch := NewNoiseless[float64, float64]()

	for _, v := range []float64{-3.5, 0, 1, 42.25} {
		if got := ch.Likelihood(v, v); got != 1 {
			t.Fatalf("Likelihood(%v, %v) = %v, want 1", v, v, got)
		}

		if got := ch.Likelihood(v+1e-9, v); got != 0 {
			t.Fatalf("Likelihood(%v, %v) = %v, want 0", v+1e-9, v, got)
		}
	}
}

func TestNoiselessConvertsInputType(t *testing.T) {
	ch := NewNoiseless[int, float64]()

	if got := ch.Likelihood(3.0, 3); got != 1 {
		t.Fatalf("Likelihood(3.0, 3) = %v, want 1", got)
	}

	if got := ch.Likelihood(3.5, 3); got != 0 {
		t.Fatalf("Likelihood(3.5, 3) = %v, want 0", got)
	}
}

func TestShiftMatchesOffsetOutput(t *testing.T) {
	ch, err := NewShift[float64, float64](0.25)
	if err != nil {
		t.Fatalf("NewShift: %v", err)
	}

	for _, in := range []float64{-2, 0, 1.5, 10} {
		if got := ch.Likelihood(in-0.25, in); got != 1 {
			t.Fatalf("Likelihood(%v, %v) = %v, want 1", in-0.25, in, got)
		}

		if got := ch.Likelihood(in, in); got != 0 {
			t.Fatalf("Likelihood(%v, %v) = %v, want 0", in, in, got)
		}
	}
}

func TestShiftIntegerSymbols(t *testing.T) {
	ch, err := NewShift[int, int](2)
	if err != nil {
		t.Fatalf("NewShift: %v", err)
	}

	if got := ch.Likelihood(1, 3); got != 1 {
		t.Fatalf("Likelihood(1, 3) = %v, want 1", got)
	}

	if got := ch.Likelihood(3, 3); got != 0 {
		t.Fatalf("Likelihood(3, 3) = %v, want 0", got)
	}
}

func TestShiftFractionalOffsetNeverMatchesInts(t *testing.T) {
	ch, err := NewShift[int, int](0.5)
	if err != nil {
		t.Fatalf("NewShift: %v", err)
	}

	for out := -4; out <= 4; out++ {
		if got := ch.Likelihood(out, 2); got != 0 {
			t.Fatalf("Likelihood(%d, 2) = %v, want 0", out, got)
		}
	}
}

func TestShiftRejectsNonFiniteOffset(t *testing.T) {
	for _, offset := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewShift[float64, float64](offset)
		if err == nil {
			t.Fatalf("NewShift(%v): expected error", offset)
		}
	}
}

func TestShiftOffsetAccessor(t *testing.T) {
	ch, err := NewShift[float64, float64](-1.5)
	if err != nil {
		t.Fatalf("NewShift: %v", err)
	}

	if got := ch.Offset(); got != -1.5 {
		t.Fatalf("Offset() = %v, want -1.5", got)
	}
}
