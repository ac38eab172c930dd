package llr

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-comm/channel"
	"github.com/cwbudde/algo-comm/internal/testutil"
)

func TestBPSKSymbols(t *testing.T) {
	mod, err := NewBPSK(0.8)
	if err != nil {
		t.Fatalf("NewBPSK: %v", err)
	}

	if got := mod.Symbol(false); got != 0.8 {
		t.Fatalf("Symbol(false) = %v, want 0.8", got)
	}

	if got := mod.Symbol(true); got != -0.8 {
		t.Fatalf("Symbol(true) = %v, want -0.8", got)
	}

	if got := mod.Amplitude(); got != 0.8 {
		t.Fatalf("Amplitude() = %v, want 0.8", got)
	}
}

func TestNewBPSKRejectsInvalidAmplitude(t *testing.T) {
	for _, a := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewBPSK(a); !errors.Is(err, ErrInvalidAmplitude) {
			t.Fatalf("NewBPSK(%v) error = %v, want ErrInvalidAmplitude", a, err)
		}
	}
}

func newUnitComputer(t *testing.T, variance float64, opts ...Option) *Computer {
	t.Helper()

	ch, err := channel.NewAWGN[float64, float64](variance)
	if err != nil {
		t.Fatalf("NewAWGN: %v", err)
	}

	mod, err := NewBPSK(1)
	if err != nil {
		t.Fatalf("NewBPSK: %v", err)
	}

	c, err := NewComputer(ch, mod, opts...)
	if err != nil {
		t.Fatalf("NewComputer: %v", err)
	}

	return c
}

func TestComputerMatchesClosedForm(t *testing.T) {
	const variance = 0.5

	c := newUnitComputer(t, variance)

	fast, err := NewAWGNComputer(BPSK{amplitude: 1}, variance)
	if err != nil {
		t.Fatalf("NewAWGNComputer: %v", err)
	}

	for _, y := range testutil.Linspace(-2, 2, 41) {
		testutil.RequireNearlyEqual(t, c.Ratio(y), fast.Ratio(y), 1e-12)
	}
}

func TestComputerSignConvention(t *testing.T) {
	c := newUnitComputer(t, 1)

	if got := c.Ratio(0.5); got <= 0 {
		t.Fatalf("Ratio(0.5) = %v, want positive (favors bit 0)", got)
	}

	if got := c.Ratio(-0.5); got >= 0 {
		t.Fatalf("Ratio(-0.5) = %v, want negative (favors bit 1)", got)
	}

	if got := c.Ratio(0); got != 0 {
		t.Fatalf("Ratio(0) = %v, want 0", got)
	}
}

func TestComputerSaturatesOnUnderflow(t *testing.T) {
	c := newUnitComputer(t, 0.01)

	// At y=3 the bit-1 likelihood exp(-800) underflows while the bit-0
	// likelihood is still positive.
	if got := c.Ratio(3); got != defaultSaturation {
		t.Fatalf("Ratio(3) = %v, want %v", got, defaultSaturation)
	}

	if got := c.Ratio(-3); got != -defaultSaturation {
		t.Fatalf("Ratio(-3) = %v, want %v", got, -defaultSaturation)
	}

	// Far from both symbols everything underflows; no information.
	if got := c.Ratio(1e6); got != 0 {
		t.Fatalf("Ratio(1e6) = %v, want 0", got)
	}
}

func TestComputerClampsFiniteRatios(t *testing.T) {
	c := newUnitComputer(t, 0.5, WithSaturation(2))

	// The unclamped ratio at y=1 is 4.
	if got := c.Ratio(1); got != 2 {
		t.Fatalf("Ratio(1) = %v, want 2", got)
	}

	if got := c.Ratio(-1); got != -2 {
		t.Fatalf("Ratio(-1) = %v, want -2", got)
	}

	if got := c.Saturation(); got != 2 {
		t.Fatalf("Saturation() = %v, want 2", got)
	}
}

func TestComputerBlock(t *testing.T) {
	c := newUnitComputer(t, 0.7)

	outputs := testutil.Linspace(-3, 3, 25)
	dst := make([]float64, len(outputs))
	c.Block(dst, outputs)

	for i, y := range outputs {
		if dst[i] != c.Ratio(y) {
			t.Fatalf("Block[%d] = %v, want %v", i, dst[i], c.Ratio(y))
		}
	}
}

func TestComputerBlockLengthMismatchPanics(t *testing.T) {
	c := newUnitComputer(t, 1)

	defer func() {
		if recover() == nil {
			t.Fatal("Block with mismatched lengths: expected panic")
		}
	}()

	c.Block(make([]float64, 3), make([]float64, 4))
}

func TestNewComputerRejectsBadArguments(t *testing.T) {
	mod, err := NewBPSK(1)
	if err != nil {
		t.Fatalf("NewBPSK: %v", err)
	}

	if _, err := NewComputer(nil, mod); !errors.Is(err, ErrNilChannel) {
		t.Fatalf("NewComputer(nil) error = %v, want ErrNilChannel", err)
	}

	ch, err := channel.NewAWGN[float64, float64](1)
	if err != nil {
		t.Fatalf("NewAWGN: %v", err)
	}

	if _, err := NewComputer(ch, BPSK{}); !errors.Is(err, ErrInvalidAmplitude) {
		t.Fatalf("NewComputer(zero BPSK) error = %v, want ErrInvalidAmplitude", err)
	}

	if _, err := NewComputer(ch, mod, WithSaturation(0)); !errors.Is(err, ErrInvalidSaturation) {
		t.Fatalf("WithSaturation(0) error = %v, want ErrInvalidSaturation", err)
	}
}

func TestAWGNComputerSlope(t *testing.T) {
	mod, err := NewBPSK(0.5)
	if err != nil {
		t.Fatalf("NewBPSK: %v", err)
	}

	c, err := NewAWGNComputer(mod, 0.25)
	if err != nil {
		t.Fatalf("NewAWGNComputer: %v", err)
	}

	// slope = 2*0.5/0.25 = 4
	testutil.RequireNearlyEqual(t, c.Ratio(1), 4, 1e-15)
	testutil.RequireNearlyEqual(t, c.Ratio(-0.5), -2, 1e-15)

	if got := c.Variance(); got != 0.25 {
		t.Fatalf("Variance() = %v, want 0.25", got)
	}

	if got := c.Amplitude(); got != 0.5 {
		t.Fatalf("Amplitude() = %v, want 0.5", got)
	}
}

func TestAWGNComputerBlock(t *testing.T) {
	mod, err := NewBPSK(1)
	if err != nil {
		t.Fatalf("NewBPSK: %v", err)
	}

	c, err := NewAWGNComputer(mod, 2)
	if err != nil {
		t.Fatalf("NewAWGNComputer: %v", err)
	}

	outputs := []float64{-1, -0.5, 0, 0.5, 1}
	dst := make([]float64, len(outputs))
	c.Block(dst, outputs)

	want := []float64{-1, -0.5, 0, 0.5, 1}
	testutil.RequireSliceNearlyEqual(t, dst, want, 1e-15)
}

func TestNewAWGNComputerRejectsInvalidVariance(t *testing.T) {
	mod, err := NewBPSK(1)
	if err != nil {
		t.Fatalf("NewBPSK: %v", err)
	}

	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewAWGNComputer(mod, v); !errors.Is(err, ErrInvalidVariance) {
			t.Fatalf("NewAWGNComputer(%v) error = %v, want ErrInvalidVariance", v, err)
		}
	}
}
