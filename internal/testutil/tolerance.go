package testutil

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ by more than eps
// (absolute tolerance) or if their difference is NaN.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()
	diff := math.Abs(got - want)
	if diff > eps || math.IsNaN(diff) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps || math.IsNaN(diff) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireMass fails t if any element lies outside [0, 1] or if the elements
// do not sum to 1 within eps. It guards probability-mass outputs.
func RequireMass(t *testing.T, masses []float64, eps float64) {
	t.Helper()
	sum := 0.0
	for i, v := range masses {
		if v < 0 || v > 1 || math.IsNaN(v) {
			t.Fatalf("index %d: not a probability: %v", i, v)
		}
		sum += v
	}
	if math.Abs(sum-1) > eps {
		t.Fatalf("masses sum to %v, want 1 (eps %v)", sum, eps)
	}
}
