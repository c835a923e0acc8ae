package calculator

import (
	"fortio.org/safecast"
	"github.com/cockroachdb/apd"
	"github.com/go-errors/errors"
	"github.com/privacybydesign/bigmath/internal/common"
)

func init() {
	Register("decimal", 10, func() (Calculator, error) { return Decimal{}, nil })
}

// Decimal runs the primitives on apd decimals with a zero exponent. Every operation gets a
// context whose precision covers the largest possible result, so nothing is ever rounded.
//
// apd bounds adjusted exponents by apd.MaxExponent. Operations whose operands or result may
// have more digits than that are computed by Native instead.
type Decimal struct{}

// wide reports whether a result of up to digits digits is beyond what apd can represent.
func wide(digits int) bool {
	return digits > apd.MaxExponent
}

func (Decimal) Name() string { return "decimal" }

// context returns an exact context for results of at most digits digits.
func (Decimal) context(digits int) *apd.Context {
	p, err := safecast.Conv[uint32](digits)
	if err != nil {
		panic(errors.WrapPrefix(err, "decimal precision", 0))
	}
	return apd.BaseContext.WithPrecision(p)
}

func dec(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(errors.WrapPrefix(err, "calculator: malformed magnitude "+s, 0))
	}
	return d
}

func decText(d *apd.Decimal) string {
	if d.Exponent == 0 {
		return d.Coeff.String()
	}
	return common.TrimZeros(d.Text('f'))
}

func check(op string, err error) {
	if err != nil {
		panic(errors.WrapPrefix(err, "decimal "+op, 0))
	}
}

func (c Decimal) Add(a, b string) string {
	n := maxLen(a, b) + 1
	if wide(n) {
		return Native{}.Add(a, b)
	}
	z := new(apd.Decimal)
	_, err := c.context(n).Add(z, dec(a), dec(b))
	check("add", err)
	return decText(z)
}

func (c Decimal) Sub(a, b string) (string, error) {
	if common.CmpDigits(a, b) < 0 {
		return "", ErrNegativeResult
	}
	n := maxLen(a, b)
	if wide(n) {
		return Native{}.Sub(a, b)
	}
	z := new(apd.Decimal)
	_, err := c.context(n).Sub(z, dec(a), dec(b))
	check("sub", err)
	return decText(z), nil
}

func (c Decimal) Mul(a, b string) string {
	n := len(a) + len(b)
	if wide(n) {
		return Native{}.Mul(a, b)
	}
	z := new(apd.Decimal)
	_, err := c.context(n).Mul(z, dec(a), dec(b))
	check("mul", err)
	return decText(z)
}

func (c Decimal) DivQR(a, b string) (string, string, error) {
	if b == "0" {
		return "", "", ErrDivisionByZero
	}
	if common.CmpDigits(a, b) < 0 {
		return "0", a, nil
	}
	if wide(len(a) + 1) {
		return Native{}.DivQR(a, b)
	}
	ctx := c.context(len(a) + 1)
	x, y := dec(a), dec(b)
	q, r := new(apd.Decimal), new(apd.Decimal)
	_, err := ctx.QuoInteger(q, x, y)
	check("quo", err)
	_, err = ctx.Rem(r, x, y)
	check("rem", err)
	return decText(q), decText(r), nil
}

func (c Decimal) Pow(a string, e uint) string {
	return powBySquaring(c, a, e)
}

func (c Decimal) Gcd(a, b string) string {
	return euclid(c, a, b)
}

func (c Decimal) Lsh(a string, n uint) string {
	if n == 0 || a == "0" {
		return a
	}
	return c.Mul(a, c.Pow("2", n))
}

func (c Decimal) Rsh(a string, n uint) string {
	if n == 0 || a == "0" {
		return a
	}
	if rshExceeds(a, n) {
		return "0"
	}
	q, _, err := c.DivQR(a, c.Pow("2", n))
	check("rsh", err)
	return q
}

func (c Decimal) Sqrt(a string) string {
	return newtonSqrt(c, a)
}

func (Decimal) Cmp(a, b string) int {
	if wide(maxLen(a, b)) {
		return common.CmpDigits(a, b)
	}
	return dec(a).Cmp(dec(b))
}

func maxLen(a, b string) int {
	if len(a) > len(b) {
		return len(a)
	}
	return len(b)
}
