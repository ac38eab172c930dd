package density

import "errors"

// Errors returned by grid constructors and operations.
var (
	ErrNilChannel   = errors.New("density: channel must not be nil")
	ErrBadRange     = errors.New("density: range must be finite with lo < hi")
	ErrBadStep      = errors.New("density: step must be positive and finite")
	ErrBadOrigin    = errors.New("density: origin must be finite")
	ErrTooShort     = errors.New("density: at least two grid points required")
	ErrNegative     = errors.New("density: values must be non-negative and not NaN")
	ErrZeroMass     = errors.New("density: grid has no mass to normalize")
	ErrStepMismatch = errors.New("density: grids must share the same step")
)
