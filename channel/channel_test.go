package channel

import (
	"math"
	"testing"
)

// Compile-time interface compliance for every model.
var (
	_ Channel[float64, float64]    = (*Noiseless[float64, float64])(nil)
	_ Channel[int, int]            = (*Shift[int, int])(nil)
	_ Channel[float64, float64]    = (*AWGN[float64, float64])(nil)
	_ Channel[int, float64]        = (*AGN[int, float64])(nil)
	_ Channel[float64, float64]    = (*AGGN[float64, float64])(nil)
	_ Channel[float64, float64]    = (*Multi[float64, float64])(nil)
	_ Channel[bool, bool]          = (*BinarySymmetric)(nil)
	_ Channel[bool, ErasureSymbol] = (*BinaryErasure)(nil)
)

func TestSatExpMatchesExp(t *testing.T) {
	for _, x := range []float64{0, -1e-12, -0.5, -10, -100, -700} {
		got := satExp(x)
		want := math.Exp(x)
		if math.Abs(got-want) > 1e-15*want {
			t.Fatalf("satExp(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestSatExpSaturates(t *testing.T) {
	cases := []float64{-746, -1e6, math.Inf(-1), math.NaN()}
	for _, x := range cases {
		if got := satExp(x); got != 0 {
			t.Fatalf("satExp(%v) = %v, want exact 0", x, got)
		}
	}
}
