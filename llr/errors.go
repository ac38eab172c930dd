package llr

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by ratio computer constructors.
var (
	ErrNilChannel        = errors.New("llr: channel must not be nil")
	ErrInvalidAmplitude  = errors.New("llr: amplitude must be positive and finite")
	ErrInvalidSaturation = errors.New("llr: saturation must be positive and finite")
	ErrInvalidVariance   = errors.New("llr: variance must be positive and finite")
)

func validateAmplitude(a float64) error {
	if a <= 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidAmplitude, a)
	}

	return nil
}

func validateSaturation(s float64) error {
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSaturation, s)
	}

	return nil
}

func validateVariance(v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidVariance, v)
	}

	return nil
}
