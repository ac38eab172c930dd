package dmc

import "errors"

// Errors returned by DMC constructors and discretization.
var (
	ErrNilMatrix     = errors.New("dmc: transition matrix must not be nil")
	ErrEmptyMatrix   = errors.New("dmc: transition matrix must not be empty")
	ErrNotStochastic = errors.New("dmc: transition rows must be non-negative and sum to one")
	ErrNilChannel    = errors.New("dmc: channel must not be nil")
	ErrNoInputs      = errors.New("dmc: at least one input symbol required")
	ErrBadEdges      = errors.New("dmc: edges must be finite and strictly increasing")
	ErrBadQuadrature = errors.New("dmc: quadrature points must be positive")
	ErrZeroMass      = errors.New("dmc: conditional density has zero mass over the output cells")
)
