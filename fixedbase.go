package bigmath

import (
	"math/big"

	"github.com/bwesterb/go-exptable"
)

// FixedBase computes powers of one base modulo one modulus, using a precomputed window
// table when the modulus is odd. Useful when many exponents are raised against the same
// base, e.g. a group generator.
type FixedBase struct {
	base    *Int // reduced modulo modulus
	modulus *Int

	table    exptable.Table
	hasTable bool
	maxBits  int // exponents must be shorter than the modulus
}

// windowBits is the window size of the precomputed table.
const windowBits = 7

// NewFixedBase prepares exponentiation of base modulo modulus. The modulus must be positive.
func NewFixedBase(base, modulus *Int) (*FixedBase, error) {
	switch modulus.Sign() {
	case 0:
		return nil, ErrDivisionByZero
	case -1:
		return nil, ErrNegativeNumber
	}
	b, err := base.Mod(modulus)
	if err != nil {
		return nil, err
	}

	f := &FixedBase{base: b, modulus: modulus}
	m := modulus.Big()
	if m.Bit(0) == 1 && m.BitLen() > 1 && b.Sign() != 0 {
		f.table.Compute(b.Big(), m, windowBits)
		f.hasTable = true
		f.maxBits = m.BitLen()
	}
	return f, nil
}

// Exp returns base^e mod modulus for e >= 0.
func (f *FixedBase) Exp(e *Int) (*Int, error) {
	if e.Sign() < 0 {
		return nil, ErrNegativeNumber
	}
	x := e.Big()
	if !f.hasTable || x.Sign() == 0 || x.BitLen() >= f.maxBits {
		Logger.Tracef("FixedBase: computing %s^%s mod %s without table", f.base, e, f.modulus)
		return f.base.ModPow(e, f.modulus)
	}
	ret := new(big.Int)
	f.table.Exp(ret, x)
	return f.base.math().OfBig(ret), nil
}
