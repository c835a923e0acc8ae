package calculator

import (
	"math/big"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/bigmath/internal/common"
)

func init() {
	Register("native", 20, func() (Calculator, error) { return Native{}, nil })
}

// Native delegates to math/big, whose assembly-backed limb arithmetic is always available
// to Go programs.
type Native struct{}

func nat(s string) *big.Int {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok || x.Sign() < 0 {
		panic(errors.Errorf("calculator: malformed magnitude %q", s))
	}
	return x
}

func (Native) Name() string { return "native" }

func (Native) Add(a, b string) string {
	return new(big.Int).Add(nat(a), nat(b)).String()
}

func (Native) Sub(a, b string) (string, error) {
	x, y := nat(a), nat(b)
	if x.Cmp(y) < 0 {
		return "", ErrNegativeResult
	}
	return x.Sub(x, y).String(), nil
}

func (Native) Mul(a, b string) string {
	return new(big.Int).Mul(nat(a), nat(b)).String()
}

func (Native) DivQR(a, b string) (string, string, error) {
	y := nat(b)
	if y.Sign() == 0 {
		return "", "", ErrDivisionByZero
	}
	q, r := new(big.Int).QuoRem(nat(a), y, new(big.Int))
	return q.String(), r.String(), nil
}

func (Native) Pow(a string, e uint) string {
	return new(big.Int).Exp(nat(a), new(big.Int).SetUint64(uint64(e)), nil).String()
}

func (Native) Gcd(a, b string) string {
	return new(big.Int).GCD(nil, nil, nat(a), nat(b)).String()
}

func (Native) Lsh(a string, n uint) string {
	return new(big.Int).Lsh(nat(a), n).String()
}

func (Native) Rsh(a string, n uint) string {
	return new(big.Int).Rsh(nat(a), n).String()
}

func (Native) Sqrt(a string) string {
	return new(big.Int).Sqrt(nat(a)).String()
}

func (Native) Cmp(a, b string) int {
	return common.CmpDigits(a, b)
}
