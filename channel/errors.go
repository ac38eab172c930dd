package channel

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by channel constructors and lookups.
var (
	ErrUnmappedInput      = errors.New("channel: unmapped input")
	ErrEmptyTable         = errors.New("channel: dispatch table must not be empty")
	ErrNilSubChannel      = errors.New("channel: sub-channel must not be nil")
	ErrInvalidVariance    = errors.New("channel: variance must be positive and finite")
	ErrInvalidMean        = errors.New("channel: mean must be finite")
	ErrInvalidShape       = errors.New("channel: shape must be positive and finite")
	ErrInvalidOffset      = errors.New("channel: offset must be finite")
	ErrInvalidProbability = errors.New("channel: probability must be in [0, 1]")
)

func validateVariance(variance float64) error {
	if variance <= 0 || math.IsNaN(variance) || math.IsInf(variance, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidVariance, variance)
	}

	return nil
}

func validateMean(mean float64) error {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidMean, mean)
	}

	return nil
}

func validateShape(shape float64) error {
	if shape <= 0 || math.IsNaN(shape) || math.IsInf(shape, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidShape, shape)
	}

	return nil
}

func validateOffset(offset float64) error {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidOffset, offset)
	}

	return nil
}

func validateProbability(name string, p float64) error {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return fmt.Errorf("%w: %s = %v", ErrInvalidProbability, name, p)
	}

	return nil
}
