package bigmath

import (
	"strconv"
	"strings"
)

// RoundingMode selects how DividedBy rounds an inexact quotient.
type RoundingMode int

const (
	// RoundingUnnecessary requires the division to be exact.
	RoundingUnnecessary RoundingMode = iota
	// RoundingUp rounds away from zero.
	RoundingUp
	// RoundingDown rounds towards zero.
	RoundingDown
	// RoundingCeiling rounds towards positive infinity.
	RoundingCeiling
	// RoundingFloor rounds towards negative infinity.
	RoundingFloor
	// RoundingHalfUp rounds to the nearest neighbour, ties away from zero.
	RoundingHalfUp
	// RoundingHalfDown rounds to the nearest neighbour, ties towards zero.
	RoundingHalfDown
	// RoundingHalfCeiling rounds to the nearest neighbour, ties towards positive infinity.
	RoundingHalfCeiling
	// RoundingHalfFloor rounds to the nearest neighbour, ties towards negative infinity.
	RoundingHalfFloor
	// RoundingHalfEven rounds to the nearest neighbour, ties to the even neighbour.
	RoundingHalfEven
)

var roundingNames = [...]string{
	RoundingUnnecessary: "unnecessary",
	RoundingUp:          "up",
	RoundingDown:        "down",
	RoundingCeiling:     "ceiling",
	RoundingFloor:       "floor",
	RoundingHalfUp:      "half-up",
	RoundingHalfDown:    "half-down",
	RoundingHalfCeiling: "half-ceiling",
	RoundingHalfFloor:   "half-floor",
	RoundingHalfEven:    "half-even",
}

func (mode RoundingMode) String() string {
	if mode < 0 || int(mode) >= len(roundingNames) {
		return "RoundingMode(" + strconv.Itoa(int(mode)) + ")"
	}
	return roundingNames[mode]
}

// ParseRoundingMode returns the mode named s, as printed by RoundingMode.String.
// Underscores may be used instead of dashes.
func ParseRoundingMode(s string) (RoundingMode, error) {
	s = strings.ReplaceAll(strings.ToLower(s), "_", "-")
	for mode, name := range roundingNames {
		if name == s {
			return RoundingMode(mode), nil
		}
	}
	return 0, ErrInvalidArgument
}

// roundsUp reports whether a truncated quotient with a non-zero remainder must have its
// magnitude incremented. sign is the sign of the exact quotient, half compares twice the
// remainder with the divisor, and odd tells whether the truncated quotient is odd.
func (mode RoundingMode) roundsUp(sign, half int, odd bool) (bool, error) {
	if mode < 0 || int(mode) >= len(roundingNames) {
		return false, ErrInvalidArgument
	}
	switch mode {
	case RoundingUnnecessary:
		return false, ErrRoundingNecessary
	case RoundingUp:
		return true, nil
	case RoundingDown:
		return false, nil
	case RoundingCeiling:
		return sign > 0, nil
	case RoundingFloor:
		return sign < 0, nil
	}

	if half != 0 {
		return half > 0, nil
	}
	switch mode {
	case RoundingHalfUp:
		return true, nil
	case RoundingHalfDown:
		return false, nil
	case RoundingHalfCeiling:
		return sign > 0, nil
	case RoundingHalfFloor:
		return sign < 0, nil
	}
	// RoundingHalfEven
	return odd, nil
}
