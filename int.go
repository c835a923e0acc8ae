package bigmath

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/privacybydesign/bigmath/calculator"
	"github.com/privacybydesign/bigmath/internal/common"
)

// Int is an immutable arbitrary-precision signed integer. The zero value is 0.
type Int struct {
	sign int    // -1, 0 or 1; 0 iff mag is "0" or empty
	mag  string // canonical magnitude, "" in the zero value
	calc calculator.Calculator
}

// Math creates Ints bound to one calculator.
type Math struct {
	calc calculator.Calculator
}

// New returns a Math creating Ints that compute with calc. A nil calc selects
// calculator.Detect().
func New(calc calculator.Calculator) *Math {
	if calc == nil {
		calc = calculator.Detect()
	}
	return &Math{calc: calc}
}

// Default returns a Math using the auto-detected calculator.
func Default() *Math {
	return New(nil)
}

// Calculator returns the calculator of m.
func (m *Math) Calculator() calculator.Calculator {
	return m.calc
}

func (m *Math) newInt(sign int, mag string) *Int {
	if mag == "0" {
		sign = 0
	}
	return &Int{sign: sign, mag: mag, calc: m.calc}
}

// Of parses the canonical decimal representation of an integer: an optional sign followed
// by "0" or a non-zero digit and further digits.
func (m *Math) Of(s string) (*Int, error) {
	sign := 1
	switch {
	case strings.HasPrefix(s, "-"):
		sign, s = -1, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if !common.IsCanonical(s) {
		return nil, ErrInvalidFormat
	}
	return m.newInt(sign, s), nil
}

// MustOf is like Of but panics on malformed input. Intended for constants.
func (m *Math) MustOf(s string) *Int {
	x, err := m.Of(s)
	if err != nil {
		panic("bigmath: MustOf(" + strconv.Quote(s) + "): " + err.Error())
	}
	return x
}

// OfInt64 returns x as an Int.
func (m *Math) OfInt64(x int64) *Int {
	s := strconv.FormatInt(x, 10)
	if x < 0 {
		return m.newInt(-1, s[1:])
	}
	return m.newInt(1, s)
}

// OfUint64 returns x as an Int.
func (m *Math) OfUint64(x uint64) *Int {
	return m.newInt(1, strconv.FormatUint(x, 10))
}

// OfBig converts a math/big integer. A nil x is treated as zero.
func (m *Math) OfBig(x *big.Int) *Int {
	if x == nil {
		return m.Zero()
	}
	s := x.String()
	if x.Sign() < 0 {
		return m.newInt(-1, s[1:])
	}
	return m.newInt(1, s)
}

// Parse parses s in the given base (2 to 36). Digits above 9 are letters of either case.
// Unlike Of, leading zeros are accepted.
func (m *Math) Parse(s string, base int) (*Int, error) {
	if base < 2 || base > 36 {
		return nil, ErrInvalidArgument
	}
	sign := 1
	switch {
	case strings.HasPrefix(s, "-"):
		sign, s = -1, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" {
		return nil, ErrInvalidFormat
	}

	var (
		c     = m.calc
		b     = uint64(base)
		mag   = "0"
		chunk = uint64(0)
		scale = uint64(1)
	)
	flush := func() {
		mag = c.Add(c.Mul(mag, strconv.FormatUint(scale, 10)), strconv.FormatUint(chunk, 10))
		chunk, scale = 0, 1
	}
	for i := 0; i < len(s); i++ {
		d, ok := digitValue(s[i])
		if !ok || d >= b {
			return nil, ErrInvalidFormat
		}
		if scale > math.MaxUint64/b {
			flush()
		}
		chunk = chunk*b + d
		scale *= b
	}
	flush()
	return m.newInt(sign, mag), nil
}

func digitValue(ch byte) (uint64, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return uint64(ch - '0'), true
	case ch >= 'a' && ch <= 'z':
		return uint64(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'Z':
		return uint64(ch-'A') + 10, true
	}
	return 0, false
}

// Zero returns 0.
func (m *Math) Zero() *Int { return m.newInt(0, "0") }

// One returns 1.
func (m *Math) One() *Int { return m.newInt(1, "1") }

// Ten returns 10.
func (m *Math) Ten() *Int { return m.newInt(1, "10") }

// Of is Default().Of.
func Of(s string) (*Int, error) { return Default().Of(s) }

// MustOf is Default().MustOf.
func MustOf(s string) *Int { return Default().MustOf(s) }

// OfInt64 is Default().OfInt64.
func OfInt64(x int64) *Int { return Default().OfInt64(x) }

// OfUint64 is Default().OfUint64.
func OfUint64(x uint64) *Int { return Default().OfUint64(x) }

// OfBig is Default().OfBig.
func OfBig(x *big.Int) *Int { return Default().OfBig(x) }

// Parse is Default().Parse.
func Parse(s string, base int) (*Int, error) { return Default().Parse(s, base) }

func (x *Int) calculator() calculator.Calculator {
	if x.calc == nil {
		return calculator.Detect()
	}
	return x.calc
}

func (x *Int) math() *Math {
	return &Math{calc: x.calculator()}
}

func (x *Int) magnitude() string {
	if x.mag == "" {
		return "0"
	}
	return x.mag
}

func (x *Int) wrap(sign int, mag string) *Int {
	return x.math().newInt(sign, mag)
}

// Calculator returns the calculator x computes with.
func (x *Int) Calculator() calculator.Calculator {
	return x.calculator()
}

// Sign returns -1, 0 or 1.
func (x *Int) Sign() int        { return x.sign }
func (x *Int) IsZero() bool     { return x.sign == 0 }
func (x *Int) IsNegative() bool { return x.sign < 0 }
func (x *Int) IsPositive() bool { return x.sign > 0 }

// Cmp returns -1, 0 or 1 depending on whether x is less than, equal to or greater than y.
func (x *Int) Cmp(y *Int) int {
	if x.sign != y.sign {
		if x.sign < y.sign {
			return -1
		}
		return 1
	}
	c := x.calculator().Cmp(x.magnitude(), y.magnitude())
	if x.sign < 0 {
		return -c
	}
	return c
}

func (x *Int) IsEqualTo(y *Int) bool              { return x.Cmp(y) == 0 }
func (x *Int) IsLessThan(y *Int) bool             { return x.Cmp(y) < 0 }
func (x *Int) IsLessThanOrEqualTo(y *Int) bool    { return x.Cmp(y) <= 0 }
func (x *Int) IsGreaterThan(y *Int) bool          { return x.Cmp(y) > 0 }
func (x *Int) IsGreaterThanOrEqualTo(y *Int) bool { return x.Cmp(y) >= 0 }

// String returns the canonical decimal representation of x.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	if x.sign < 0 {
		return "-" + x.mag
	}
	return x.magnitude()
}

// Text returns the representation of x in the given base (2 to 36), using lower-case letters
// for digits above 9.
func (x *Int) Text(base int) (string, error) {
	if base < 2 || base > 36 {
		return "", ErrInvalidArgument
	}
	if base == 10 || x.sign == 0 {
		return x.String(), nil
	}

	// Peel off chunks of k digits, base^k being the largest power that fits in a uint64.
	var (
		c     = x.calculator()
		b     = uint64(base)
		k     = 1
		chunk = b
	)
	for chunk <= math.MaxUint64/b {
		chunk *= b
		k++
	}
	divisor := strconv.FormatUint(chunk, 10)

	var parts []string
	mag := x.magnitude()
	for mag != "0" {
		q, r, err := c.DivQR(mag, divisor)
		if err != nil {
			return "", err
		}
		v, err := strconv.ParseUint(r, 10, 64)
		if err != nil {
			return "", err
		}
		parts = append(parts, strconv.FormatUint(v, base))
		mag = q
	}

	var sb strings.Builder
	if x.sign < 0 {
		sb.WriteByte('-')
	}
	for i := len(parts) - 1; i >= 0; i-- {
		if i != len(parts)-1 {
			sb.WriteString(strings.Repeat("0", k-len(parts[i])))
		}
		sb.WriteString(parts[i])
	}
	return sb.String(), nil
}

// Int64 returns x as an int64, or ErrIntegerOverflow if it does not fit.
func (x *Int) Int64() (int64, error) {
	u, err := strconv.ParseUint(x.magnitude(), 10, 64)
	if err != nil {
		return 0, ErrIntegerOverflow
	}
	if x.sign < 0 {
		if u == 1<<63 {
			return math.MinInt64, nil
		}
		v, err := safecast.Conv[int64](u)
		if err != nil {
			return 0, ErrIntegerOverflow
		}
		return -v, nil
	}
	v, err := safecast.Conv[int64](u)
	if err != nil {
		return 0, ErrIntegerOverflow
	}
	return v, nil
}

// Big returns x as a newly allocated math/big integer.
func (x *Int) Big() *big.Int {
	z, _ := new(big.Int).SetString(x.String(), 10)
	return z
}
