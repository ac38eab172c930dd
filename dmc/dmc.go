package dmc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// stochasticTol bounds the acceptable deviation of a row sum from one.
const stochasticTol = 1e-9

// DMC is a discrete memoryless channel: a frozen row-stochastic
// transition matrix W with W[i][j] = P(output j | input i). It is
// immutable after construction and safe for concurrent use.
type DMC struct {
	w *mat.Dense
}

// New wraps an explicit transition matrix. The matrix is copied and
// validated: every entry must be non-negative and every row must sum
// to one within a small tolerance.
func New(w *mat.Dense) (*DMC, error) {
	if w == nil {
		return nil, ErrNilMatrix
	}

	rows, cols := w.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: dims %dx%d", ErrEmptyMatrix, rows, cols)
	}

	for i := range rows {
		sum := 0.0

		for j := range cols {
			v := w.At(i, j)
			if v < 0 || math.IsNaN(v) {
				return nil, fmt.Errorf("%w: entry (%d,%d) = %v", ErrNotStochastic, i, j, v)
			}

			sum += v
		}

		if math.Abs(sum-1) > stochasticTol {
			return nil, fmt.Errorf("%w: row %d sums to %v", ErrNotStochastic, i, sum)
		}
	}

	return &DMC{w: mat.DenseCopyOf(w)}, nil
}

// NumInputs returns the size of the input alphabet.
func (d *DMC) NumInputs() int {
	rows, _ := d.w.Dims()
	return rows
}

// NumOutputs returns the number of output cells.
func (d *DMC) NumOutputs() int {
	_, cols := d.w.Dims()
	return cols
}

// Prob returns the transition probability P(output | input) by index.
func (d *DMC) Prob(input, output int) float64 {
	return d.w.At(input, output)
}

// Row returns a copy of the transition row for one input symbol.
func (d *DMC) Row(input int) []float64 {
	return mat.Row(nil, input, d.w)
}

// Transition returns a copy of the full transition matrix.
func (d *DMC) Transition() *mat.Dense {
	return mat.DenseCopyOf(d.w)
}

// Likelihood returns the transition probability for the given symbol
// indices. Indices outside the alphabet have zero likelihood, so a DMC
// satisfies the channel model contract over all of int×int.
func (d *DMC) Likelihood(output, input int) float64 {
	rows, cols := d.w.Dims()
	if input < 0 || input >= rows || output < 0 || output >= cols {
		return 0
	}

	return d.w.At(input, output)
}
