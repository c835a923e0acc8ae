package calculator

import (
	"github.com/privacybydesign/bigmath/internal/common"
)

func init() {
	Register("portable", 0, func() (Calculator, error) { return Portable{}, nil })
}

// Portable is a pure Go calculator doing schoolbook arithmetic directly on the decimal
// digits. It is slow for large operands but has no dependencies and behaves identically
// on every platform, which makes it the reference implementation in tests.
type Portable struct{}

func (Portable) Name() string { return "portable" }

func (Portable) Add(a, b string) string {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]byte, len(a)+1)
	var carry byte
	i, j := len(a)-1, len(b)-1
	for k := len(out) - 1; k > 0; k-- {
		d := a[i] - '0' + carry
		if j >= 0 {
			d += b[j] - '0'
			j--
		}
		i--
		carry = d / 10
		out[k] = d%10 + '0'
	}
	out[0] = carry + '0'
	return common.TrimZeros(string(out))
}

func (Portable) Sub(a, b string) (string, error) {
	if common.CmpDigits(a, b) < 0 {
		return "", ErrNegativeResult
	}
	return sub(a, b), nil
}

// sub requires a >= b.
func sub(a, b string) string {
	out := make([]byte, len(a))
	borrow := 0
	j := len(b) - 1
	for i := len(a) - 1; i >= 0; i-- {
		d := int(a[i]-'0') - borrow
		if j >= 0 {
			d -= int(b[j] - '0')
			j--
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = byte(d) + '0'
	}
	return common.TrimZeros(string(out))
}

func (Portable) Mul(a, b string) string {
	if a == "0" || b == "0" {
		return "0"
	}
	acc := make([]int, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		da := int(a[i] - '0')
		if da == 0 {
			continue
		}
		for j := len(b) - 1; j >= 0; j-- {
			acc[i+j+1] += da * int(b[j]-'0')
		}
	}
	for k := len(acc) - 1; k > 0; k-- {
		acc[k-1] += acc[k] / 10
		acc[k] %= 10
	}
	out := make([]byte, len(acc))
	for k, d := range acc {
		out[k] = byte(d) + '0'
	}
	return common.TrimZeros(string(out))
}

func (p Portable) DivQR(a, b string) (string, string, error) {
	if b == "0" {
		return "", "", ErrDivisionByZero
	}
	if common.CmpDigits(a, b) < 0 {
		return "0", a, nil
	}
	if len(b) == 1 {
		q, r := shortDiv(a, int(b[0]-'0'))
		return q, r, nil
	}

	q := make([]byte, 0, len(a))
	r := "0"
	for i := 0; i < len(a); i++ {
		if r == "0" {
			r = a[i : i+1]
		} else {
			r += a[i : i+1]
		}
		d := byte('0')
		for common.CmpDigits(r, b) >= 0 {
			r = sub(r, b)
			d++
		}
		q = append(q, d)
	}
	return common.TrimZeros(string(q)), r, nil
}

// shortDiv divides by a single non-zero digit.
func shortDiv(a string, d int) (string, string) {
	q := make([]byte, len(a))
	r := 0
	for i := 0; i < len(a); i++ {
		r = r*10 + int(a[i]-'0')
		q[i] = byte(r/d) + '0'
		r %= d
	}
	return common.TrimZeros(string(q)), string(rune('0' + r))
}

func (p Portable) Pow(a string, e uint) string {
	return powBySquaring(p, a, e)
}

func (p Portable) Gcd(a, b string) string {
	return euclid(p, a, b)
}

func (p Portable) Lsh(a string, n uint) string {
	if n == 0 || a == "0" {
		return a
	}
	return p.Mul(a, p.Pow("2", n))
}

func (p Portable) Rsh(a string, n uint) string {
	if n == 0 || a == "0" {
		return a
	}
	if rshExceeds(a, n) {
		return "0"
	}
	if n == 1 {
		q, _ := shortDiv(a, 2)
		return q
	}
	q, _, _ := p.DivQR(a, p.Pow("2", n))
	return q
}

func (p Portable) Sqrt(a string) string {
	return newtonSqrt(p, a)
}

func (Portable) Cmp(a, b string) int {
	return common.CmpDigits(a, b)
}
