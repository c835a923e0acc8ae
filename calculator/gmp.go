//go:build gmp

package calculator

import (
	"github.com/go-errors/errors"
	"github.com/ncw/gmp"
	"github.com/privacybydesign/bigmath/internal/common"
)

// Built only with -tags gmp; requires libgmp at link time.

func init() {
	Register("gmp", 30, func() (Calculator, error) { return GMP{}, nil })
}

// GMP delegates to libgmp through github.com/ncw/gmp. It outperforms math/big on very large
// operands; on small ones the cgo call overhead dominates.
type GMP struct{}

func mpz(s string) *gmp.Int {
	x, ok := new(gmp.Int).SetString(s, 10)
	if !ok || x.Sign() < 0 {
		panic(errors.Errorf("calculator: malformed magnitude %q", s))
	}
	return x
}

func (GMP) Name() string { return "gmp" }

func (GMP) Add(a, b string) string {
	return new(gmp.Int).Add(mpz(a), mpz(b)).String()
}

func (GMP) Sub(a, b string) (string, error) {
	if common.CmpDigits(a, b) < 0 {
		return "", ErrNegativeResult
	}
	return new(gmp.Int).Sub(mpz(a), mpz(b)).String(), nil
}

func (GMP) Mul(a, b string) string {
	return new(gmp.Int).Mul(mpz(a), mpz(b)).String()
}

func (GMP) DivQR(a, b string) (string, string, error) {
	if b == "0" {
		return "", "", ErrDivisionByZero
	}
	q, r := new(gmp.Int).QuoRem(mpz(a), mpz(b), new(gmp.Int))
	return q.String(), r.String(), nil
}

func (c GMP) Pow(a string, e uint) string {
	return powBySquaring(c, a, e)
}

func (c GMP) Gcd(a, b string) string {
	if a == "0" {
		return b
	}
	if b == "0" {
		return a
	}
	return new(gmp.Int).GCD(nil, nil, mpz(a), mpz(b)).String()
}

func (GMP) Lsh(a string, n uint) string {
	return new(gmp.Int).Lsh(mpz(a), n).String()
}

func (GMP) Rsh(a string, n uint) string {
	return new(gmp.Int).Rsh(mpz(a), n).String()
}

func (c GMP) Sqrt(a string) string {
	return newtonSqrt(c, a)
}

func (GMP) Cmp(a, b string) int {
	return common.CmpDigits(a, b)
}
