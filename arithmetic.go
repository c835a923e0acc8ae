package bigmath

import (
	"fortio.org/safecast"
	"github.com/go-errors/errors"
	"github.com/privacybydesign/bigmath/calculator"
	"github.com/privacybydesign/bigmath/internal/common"
)

// sub returns a - b for a >= b.
func sub(c calculator.Calculator, a, b string) string {
	d, err := c.Sub(a, b)
	if err != nil {
		panic(errors.WrapPrefix(err, "magnitude subtraction", 0))
	}
	return d
}

// Plus returns x + y.
func (x *Int) Plus(y *Int) *Int {
	c := x.calculator()
	a, b := x.magnitude(), y.magnitude()
	switch {
	case y.sign == 0:
		return x.wrap(x.sign, a)
	case x.sign == 0:
		return x.wrap(y.sign, b)
	case x.sign == y.sign:
		return x.wrap(x.sign, c.Add(a, b))
	}
	switch c.Cmp(a, b) {
	case 0:
		return x.wrap(0, "0")
	case 1:
		return x.wrap(x.sign, sub(c, a, b))
	default:
		return x.wrap(y.sign, sub(c, b, a))
	}
}

// Minus returns x - y.
func (x *Int) Minus(y *Int) *Int {
	return x.Plus(y.Negated())
}

// MultipliedBy returns x * y.
func (x *Int) MultipliedBy(y *Int) *Int {
	if x.sign == 0 || y.sign == 0 {
		return x.wrap(0, "0")
	}
	return x.wrap(x.sign*y.sign, x.calculator().Mul(x.magnitude(), y.magnitude()))
}

// QuotientAndRemainder returns the quotient of x / y truncated towards zero, and the
// remainder, which has the sign of x.
func (x *Int) QuotientAndRemainder(y *Int) (*Int, *Int, error) {
	q, r, err := x.calculator().DivQR(x.magnitude(), y.magnitude())
	if err != nil {
		return nil, nil, err
	}
	return x.wrap(x.sign*y.sign, q), x.wrap(x.sign, r), nil
}

// Quotient returns x / y truncated towards zero.
func (x *Int) Quotient(y *Int) (*Int, error) {
	q, _, err := x.QuotientAndRemainder(y)
	return q, err
}

// Remainder returns x - y*x.Quotient(y); it has the sign of x.
func (x *Int) Remainder(y *Int) (*Int, error) {
	_, r, err := x.QuotientAndRemainder(y)
	return r, err
}

// Mod returns x modulo m, floored: the result has the sign of m, and is zero or
// smaller than m in absolute value.
func (x *Int) Mod(m *Int) (*Int, error) {
	r, err := x.Remainder(m)
	if err != nil {
		return nil, err
	}
	if r.sign != 0 && r.sign != m.sign {
		return r.Plus(m), nil
	}
	return r, nil
}

// DividedBy returns x / y rounded according to mode. With RoundingUnnecessary it returns
// ErrRoundingNecessary if y does not divide x.
func (x *Int) DividedBy(y *Int, mode RoundingMode) (*Int, error) {
	c := x.calculator()
	b := y.magnitude()
	q, r, err := c.DivQR(x.magnitude(), b)
	if err != nil {
		return nil, err
	}
	sign := x.sign * y.sign
	if r == "0" {
		return x.wrap(sign, q), nil
	}
	up, err := mode.roundsUp(sign, c.Cmp(c.Lsh(r, 1), b), !common.IsEven(q))
	if err != nil {
		return nil, err
	}
	if up {
		q = c.Add(q, "1")
	}
	return x.wrap(sign, q), nil
}

// Power returns x^e. x^0 is 1 for every x, including 0.
func (x *Int) Power(e int) (*Int, error) {
	n, err := safecast.Conv[uint](e)
	if err != nil {
		return nil, ErrInvalidArgument
	}
	sign := 1
	if x.sign < 0 && n&1 == 1 {
		sign = -1
	}
	return x.wrap(sign, x.calculator().Pow(x.magnitude(), n)), nil
}

// ModPow returns x^e mod m, for e >= 0 and m > 0. The result is in [0, m).
func (x *Int) ModPow(e, m *Int) (*Int, error) {
	switch {
	case m.sign == 0:
		return nil, ErrDivisionByZero
	case m.sign < 0, e.sign < 0:
		return nil, ErrNegativeNumber
	}
	base, err := x.Mod(m)
	if err != nil {
		return nil, err
	}

	c := x.calculator()
	mod := m.magnitude()
	mulMod := func(a, b string) string {
		_, r, err := c.DivQR(c.Mul(a, b), mod)
		if err != nil {
			panic(errors.WrapPrefix(err, "modpow", 0))
		}
		return r
	}

	_, result, _ := c.DivQR("1", mod)
	b, exp := base.magnitude(), e.magnitude()
	for exp != "0" {
		if !common.IsEven(exp) {
			result = mulMod(result, b)
		}
		exp = c.Rsh(exp, 1)
		if exp != "0" {
			b = mulMod(b, b)
		}
	}
	return x.wrap(1, result), nil
}

// Sqrt returns the largest integer whose square does not exceed x.
func (x *Int) Sqrt() (*Int, error) {
	if x.sign < 0 {
		return nil, ErrNegativeNumber
	}
	return x.wrap(1, x.calculator().Sqrt(x.magnitude())), nil
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	if x.sign < 0 {
		return x.wrap(1, x.mag)
	}
	return x.wrap(x.sign, x.magnitude())
}

// Negated returns -x.
func (x *Int) Negated() *Int {
	return x.wrap(-x.sign, x.magnitude())
}

// Gcd returns the greatest common divisor of x and y, which is never negative.
// The gcd of 0 and 0 is 0.
func (x *Int) Gcd(y *Int) *Int {
	return x.wrap(1, x.calculator().Gcd(x.magnitude(), y.magnitude()))
}

// Min returns the smallest of the given values.
func Min(first *Int, rest ...*Int) *Int {
	smallest := first
	for _, v := range rest {
		if v.IsLessThan(smallest) {
			smallest = v
		}
	}
	return smallest
}

// Max returns the largest of the given values.
func Max(first *Int, rest ...*Int) *Int {
	largest := first
	for _, v := range rest {
		if v.IsGreaterThan(largest) {
			largest = v
		}
	}
	return largest
}

// Sum returns the sum of the given values, computed with the calculator of first.
func Sum(first *Int, rest ...*Int) *Int {
	sum := first.Plus(first.math().Zero())
	for _, v := range rest {
		sum = sum.Plus(v)
	}
	return sum
}
