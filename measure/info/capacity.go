package info

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-comm/dmc"
	"gonum.org/v1/gonum/mat"
)

const (
	defaultTolerance     = 1e-9
	defaultMaxIterations = 1000
)

// Option configures the capacity iteration.
type Option func(*config) error

type config struct {
	tol     float64
	maxIter int
}

// WithTolerance sets the convergence tolerance in bits: iteration
// stops once the capacity upper and lower bounds agree within it.
func WithTolerance(tol float64) Option {
	return func(cfg *config) error {
		if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			return fmt.Errorf("%w: got %v", ErrBadTolerance, tol)
		}

		cfg.tol = tol

		return nil
	}
}

// WithMaxIterations bounds the number of capacity iterations.
func WithMaxIterations(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: got %d", ErrBadIterations, n)
		}

		cfg.maxIter = n

		return nil
	}
}

// MutualInformation returns I(X;Y) in bits for a discretized channel
// under the given input distribution.
func MutualInformation(d *dmc.DMC, px []float64) (float64, error) {
	if d == nil {
		return 0, ErrNilChannel
	}

	if len(px) != d.NumInputs() {
		return 0, fmt.Errorf("%w: got %d, channel has %d inputs", ErrSizeMismatch, len(px), d.NumInputs())
	}

	if err := validateDistribution(px); err != nil {
		return 0, err
	}

	w := d.Transition()
	inputs, outputs := d.NumInputs(), d.NumOutputs()

	q := make([]float64, outputs)
	outputMarginal(q, w, px)

	nats := 0.0

	for i := range inputs {
		pi := px[i]
		if pi == 0 {
			continue
		}

		for j := range outputs {
			if wij := w.At(i, j); wij > 0 {
				nats += pi * wij * math.Log(wij/q[j])
			}
		}
	}

	return nats / math.Ln2, nil
}

// Capacity returns the capacity of a discretized channel in bits along
// with the achieving input distribution, computed by the
// Blahut-Arimoto iteration. Each pass tightens a lower and an upper
// bound on the capacity; iteration stops when they agree within the
// tolerance.
func Capacity(d *dmc.DMC, opts ...Option) (float64, []float64, error) {
	if d == nil {
		return 0, nil, ErrNilChannel
	}

	cfg := config{tol: defaultTolerance, maxIter: defaultMaxIterations}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return 0, nil, err
		}
	}

	w := d.Transition()
	inputs, outputs := d.NumInputs(), d.NumOutputs()

	px := make([]float64, inputs)
	for i := range px {
		px[i] = 1 / float64(inputs)
	}

	q := make([]float64, outputs)
	div := make([]float64, inputs)
	tolNats := cfg.tol * math.Ln2

	for range cfg.maxIter {
		outputMarginal(q, w, px)

		// Per-input divergence D(W(·|i) || q) in nats. Its average under
		// px is a lower bound on capacity, its maximum an upper bound.
		lower, upper := 0.0, math.Inf(-1)

		for i := range inputs {
			di := 0.0

			for j := range outputs {
				if wij := w.At(i, j); wij > 0 {
					di += wij * math.Log(wij/q[j])
				}
			}

			div[i] = di
			lower += px[i] * di

			if di > upper {
				upper = di
			}
		}

		if upper-lower <= tolNats {
			return lower / math.Ln2, px, nil
		}

		// Multiplicative update, shifted by the largest divergence so
		// the exponentials stay bounded.
		sum := 0.0
		for i := range px {
			px[i] *= math.Exp(div[i] - upper)
			sum += px[i]
		}

		for i := range px {
			px[i] /= sum
		}
	}

	return 0, nil, fmt.Errorf("%w: %d iterations, tolerance %v bits", ErrNoConvergence, cfg.maxIter, cfg.tol)
}

// outputMarginal fills q with the output distribution induced by px.
func outputMarginal(q []float64, w *mat.Dense, px []float64) {
	for j := range q {
		q[j] = 0
	}

	for i, pi := range px {
		if pi == 0 {
			continue
		}

		for j := range q {
			q[j] += pi * w.At(i, j)
		}
	}
}
