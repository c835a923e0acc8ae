package bigmath

import (
	"github.com/go-errors/errors"
	"github.com/privacybydesign/bigmath/calculator"
)

var (
	// ErrInvalidFormat is returned when a string does not represent an integer.
	ErrInvalidFormat = errors.New("invalid integer format")
	// ErrInvalidArgument is returned for out of range arguments such as negative shift counts.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDivisionByZero is returned by every division, modulo and remainder operation
	// whose divisor is zero.
	ErrDivisionByZero = calculator.ErrDivisionByZero
	// ErrRoundingNecessary is returned by DividedBy with RoundingUnnecessary when the
	// division is not exact.
	ErrRoundingNecessary = errors.New("rounding necessary: division is not exact")
	ErrIntegerOverflow   = errors.New("integer does not fit in the requested type")
	ErrNegativeNumber    = errors.New("operation is undefined for negative numbers")
)
