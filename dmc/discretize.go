package dmc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-comm/channel"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"
)

// defaultQuadraturePoints is the Gauss-Legendre order used per output
// cell. Conditional densities are smooth within a cell, so a moderate
// fixed order integrates them to well below the stochastic tolerance.
const defaultQuadraturePoints = 32

// Option configures discretization.
type Option func(*config) error

type config struct {
	points       int
	captureTails bool
}

// WithQuadraturePoints sets the Gauss-Legendre order used for each
// output cell integral.
func WithQuadraturePoints(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: got %d", ErrBadQuadrature, n)
		}

		cfg.points = n

		return nil
	}
}

// WithTailCapture also integrates the density mass outside the edge
// range and adds it to the outermost cells, treating them as half-open
// intervals extending to ±infinity. Without it the tails are discarded
// and each row is renormalized over the covered range only.
func WithTailCapture() Option {
	return func(cfg *config) error {
		cfg.captureTails = true
		return nil
	}
}

// FromChannel quantizes a continuous-output channel model into a DMC.
// Row i holds the probability of landing in each output cell
// [edges[j], edges[j+1]) given input symbol inputs[i], computed by
// Gauss-Legendre quadrature of the conditional density. Each row is
// renormalized to sum to one.
func FromChannel[In channel.Number](ch channel.Channel[In, float64], inputs []In, edges []float64, opts ...Option) (*DMC, error) {
	if ch == nil {
		return nil, ErrNilChannel
	}

	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	if err := validateEdges(edges); err != nil {
		return nil, err
	}

	cfg := config{points: defaultQuadraturePoints}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	cells := len(edges) - 1
	w := mat.NewDense(len(inputs), cells, nil)
	row := make([]float64, cells)

	for i, x := range inputs {
		sum := 0.0

		for j := range cells {
			p := quad.Fixed(func(y float64) float64 {
				return ch.Likelihood(y, x)
			}, edges[j], edges[j+1], cfg.points, nil, 0)

			row[j] = p
			sum += p
		}

		if cfg.captureTails {
			left := tailMass(ch, x, edges[0], -1, cfg.points)
			right := tailMass(ch, x, edges[cells], +1, cfg.points)
			row[0] += left
			row[cells-1] += right
			sum += left + right
		}

		if !(sum > 0) || math.IsInf(sum, 0) {
			return nil, fmt.Errorf("%w: input %v", ErrZeroMass, x)
		}

		vecmath.ScaleBlockInPlace(row, 1/sum)
		w.SetRow(i, row)
	}

	return New(w)
}

// UniformEdges returns cells+1 equally spaced edges spanning
// [min, max].
func UniformEdges(min, max float64, cells int) ([]float64, error) {
	if cells < 1 {
		return nil, fmt.Errorf("%w: need at least one cell, got %d", ErrBadEdges, cells)
	}

	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%w: range [%v, %v]", ErrBadEdges, min, max)
	}

	edges := make([]float64, cells+1)
	step := (max - min) / float64(cells)

	for i := range edges {
		edges[i] = min + float64(i)*step
	}

	edges[cells] = max

	return edges, nil
}

func validateEdges(edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("%w: need at least two edges, got %d", ErrBadEdges, len(edges))
	}

	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return fmt.Errorf("%w: edge %d = %v", ErrBadEdges, i, e)
		}

		if i > 0 && e <= edges[i-1] {
			return fmt.Errorf("%w: edge %d = %v after %v", ErrBadEdges, i, e, edges[i-1])
		}
	}

	return nil
}

// tailMass integrates the conditional density over the half-line
// beyond edge in direction dir using the substitution y = edge ± t/(1-t),
// which maps (0,1) onto the tail with all quadrature nodes interior.
func tailMass[In channel.Number](ch channel.Channel[In, float64], x In, edge, dir float64, points int) float64 {
	return quad.Fixed(func(t float64) float64 {
		m := 1 - t
		return ch.Likelihood(edge+dir*t/m, x) / (m * m)
	}, 0, 1, points, nil, 0)
}
