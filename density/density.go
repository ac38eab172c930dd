package density

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-comm/channel"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate"
)

// Grid is a density sampled on evenly spaced points: point i sits at
// origin + i·step. Moment and entropy results assume the grid
// integrates to one; call Normalize first when sampling covers only
// part of the support.
type Grid struct {
	origin float64
	step   float64
	x      []float64
	p      []float64
}

// New creates a grid from explicit values. The slice is copied.
func New(origin, step float64, values []float64) (*Grid, error) {
	if math.IsNaN(origin) || math.IsInf(origin, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadOrigin, origin)
	}

	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadStep, step)
	}

	if len(values) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooShort, len(values))
	}

	for i, v := range values {
		if v < 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: value %v at %d", ErrNegative, v, i)
		}
	}

	g := newGrid(origin, step, len(values))
	copy(g.p, values)

	return g, nil
}

// Sample evaluates a channel model's conditional density for one input
// on n evenly spaced output points covering [lo, hi].
func Sample[In channel.Number](ch channel.Channel[In, float64], input In, lo, hi float64, n int) (*Grid, error) {
	if ch == nil {
		return nil, ErrNilChannel
	}

	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrBadRange, lo, hi)
	}

	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooShort, n)
	}

	g := newGrid(lo, (hi-lo)/float64(n-1), n)
	for i, x := range g.x {
		g.p[i] = ch.Likelihood(x, input)
	}

	return g, nil
}

// newGrid allocates a grid with its point locations filled in.
func newGrid(origin, step float64, n int) *Grid {
	g := &Grid{
		origin: origin,
		step:   step,
		x:      make([]float64, n),
		p:      make([]float64, n),
	}

	for i := range g.x {
		g.x[i] = origin + float64(i)*step
	}

	return g
}

// Len returns the number of grid points.
func (g *Grid) Len() int {
	return len(g.p)
}

// Min returns the location of the first grid point.
func (g *Grid) Min() float64 {
	return g.origin
}

// Step returns the spacing between adjacent points.
func (g *Grid) Step() float64 {
	return g.step
}

// X returns the location of point i.
func (g *Grid) X(i int) float64 {
	return g.x[i]
}

// At returns the density value at point i.
func (g *Grid) At(i int) float64 {
	return g.p[i]
}

// Values returns a copy of the density values.
func (g *Grid) Values() []float64 {
	out := make([]float64, len(g.p))
	copy(out, g.p)

	return out
}

// Integral returns the trapezoidal integral of the density over the
// grid range.
func (g *Grid) Integral() float64 {
	return integrate.Trapezoidal(g.x, g.p)
}

// Normalize scales the values in place so the grid integrates to one.
func (g *Grid) Normalize() error {
	mass := g.Integral()
	if !(mass > 0) || math.IsInf(mass, 0) {
		return fmt.Errorf("%w: integral %v", ErrZeroMass, mass)
	}

	vecmath.ScaleBlockInPlace(g.p, 1/mass)

	return nil
}

// Mean returns the first moment of the density.
func (g *Grid) Mean() float64 {
	t := make([]float64, len(g.p))
	for i, p := range g.p {
		t[i] = g.x[i] * p
	}

	return integrate.Trapezoidal(g.x, t)
}

// Variance returns the second central moment of the density.
func (g *Grid) Variance() float64 {
	mean := g.Mean()

	t := make([]float64, len(g.p))
	for i, p := range g.p {
		d := g.x[i] - mean
		t[i] = d * d * p
	}

	return integrate.Trapezoidal(g.x, t)
}

// Entropy returns the differential entropy of the density in nats.
// Zero-density points contribute nothing.
func (g *Grid) Entropy() float64 {
	t := make([]float64, len(g.p))
	for i, p := range g.p {
		if p > 0 {
			t[i] = -p * math.Log(p)
		}
	}

	return integrate.Trapezoidal(g.x, t)
}
