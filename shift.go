package bigmath

import (
	"fortio.org/safecast"
)

// ShiftedLeft returns x * 2^n. It returns ErrInvalidArgument if n is negative.
func (x *Int) ShiftedLeft(n int) (*Int, error) {
	bits, err := safecast.Conv[uint](n)
	if err != nil {
		return nil, ErrInvalidArgument
	}
	return x.wrap(x.sign, x.calculator().Lsh(x.magnitude(), bits)), nil
}

// ShiftedRight returns floor(x / 2^n), i.e. the quotient is rounded towards negative
// infinity as in a two's complement arithmetic shift: -3640 >> 4 is -228, not -227, and
// any negative x shifted by at least its bit length gives -1. It returns
// ErrInvalidArgument if n is negative.
func (x *Int) ShiftedRight(n int) (*Int, error) {
	bits, err := safecast.Conv[uint](n)
	if err != nil {
		return nil, ErrInvalidArgument
	}
	c := x.calculator()
	if x.sign >= 0 {
		return x.wrap(x.sign, c.Rsh(x.magnitude(), bits)), nil
	}
	if bits == 0 {
		return x.wrap(x.sign, x.mag), nil
	}
	// floor(-m / 2^n) = -(floor((m-1) / 2^n) + 1) for m >= 1
	m := sub(c, x.mag, "1")
	return x.wrap(-1, c.Add(c.Rsh(m, bits), "1")), nil
}
