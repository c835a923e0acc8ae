package bigmath

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/privacybydesign/bigmath/calculator"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rnd = rand.New(rand.NewSource(37))

func init() {
	Logger.SetLevel(logrus.FatalLevel)
}

// forEachMath runs f with a Math for every registered calculator.
func forEachMath(t *testing.T, f func(t *testing.T, m *Math)) {
	for _, name := range calculator.Names() {
		c, err := calculator.Get(name)
		require.NoError(t, err)
		t.Run(name, func(t *testing.T) { f(t, New(c)) })
	}
}

// randomInt returns a random signed integer of at most digits decimal digits.
func randomInt(m *Math, digits int) *Int {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	x := new(big.Int).Rand(rnd, limit)
	if rnd.Intn(2) == 0 {
		x.Neg(x)
	}
	return m.OfBig(x)
}

func TestOf(t *testing.T) {
	forEachMath(t, func(t *testing.T, m *Math) {
		for in, out := range map[string]string{
			"0":   "0",
			"-0":  "0",
			"+0":  "0",
			"7":   "7",
			"+42": "42",
			"-42": "-42",

			"1234567890123456789012345678901234567890": "1234567890123456789012345678901234567890",
		} {
			x, err := m.Of(in)
			require.NoError(t, err, in)
			require.Equal(t, out, x.String())
			require.Equal(t, m.Calculator().Name(), x.Calculator().Name())
		}

		for _, in := range []string{"", "-", "+", "00", "-01", "1.5", "1e3", " 1", "1 ", "--1", "0x10", "١٢"} {
			_, err := m.Of(in)
			require.ErrorIs(t, err, ErrInvalidFormat, "%q", in)
		}
	})
}

func TestMustOfPanics(t *testing.T) {
	require.Panics(t, func() { MustOf("abc") })
	require.NotPanics(t, func() { MustOf("-123") })
}

func TestZeroValue(t *testing.T) {
	var x Int
	require.True(t, x.IsZero())
	require.Equal(t, "0", x.String())
	require.Equal(t, 0, x.Cmp(OfInt64(0)))
	require.Equal(t, "5", x.Plus(OfInt64(5)).String())
	require.NotNil(t, x.Calculator())
}

func TestOfInt64(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -3640, math.MaxInt64, math.MinInt64} {
		x := OfInt64(v)
		require.Equal(t, big.NewInt(v).String(), x.String())
		back, err := x.Int64()
		require.NoError(t, err)
		require.Equal(t, v, back)
	}
	require.Equal(t, "18446744073709551615", OfUint64(math.MaxUint64).String())
}

func TestInt64Overflow(t *testing.T) {
	for _, s := range []string{"9223372036854775808", "-9223372036854775809", "18446744073709551616"} {
		_, err := MustOf(s).Int64()
		require.ErrorIs(t, err, ErrIntegerOverflow, s)
	}
}

func TestBig(t *testing.T) {
	s := "-8931748931759284679376938475395713602744853768923750102"
	x := MustOf(s)
	require.Equal(t, s, x.Big().String())
	require.Equal(t, s, OfBig(x.Big()).String())
	require.True(t, OfBig(nil).IsZero())
}

func TestParse(t *testing.T) {
	forEachMath(t, func(t *testing.T, m *Math) {
		x, err := m.Parse("ff", 16)
		require.NoError(t, err)
		require.Equal(t, "255", x.String())

		x, err = m.Parse("-101010", 2)
		require.NoError(t, err)
		require.Equal(t, "-42", x.String())

		x, err = m.Parse("000Zz", 36)
		require.NoError(t, err)
		require.Equal(t, "1295", x.String())

		x, err = m.Parse("123456789abcdefghijklmnopqrstuvwxyz", 36)
		require.NoError(t, err)
		want, _ := new(big.Int).SetString("123456789abcdefghijklmnopqrstuvwxyz", 36)
		require.Equal(t, want.String(), x.String())

		_, err = m.Parse("12", 1)
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = m.Parse("12", 37)
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = m.Parse("2", 2)
		require.ErrorIs(t, err, ErrInvalidFormat)
		_, err = m.Parse("-", 10)
		require.ErrorIs(t, err, ErrInvalidFormat)
	})
}

func TestText(t *testing.T) {
	forEachMath(t, func(t *testing.T, m *Math) {
		for i := 0; i < 20; i++ {
			x := randomInt(m, 1+rnd.Intn(50))
			for _, base := range []int{2, 8, 10, 16, 36} {
				s, err := x.Text(base)
				require.NoError(t, err)
				require.Equal(t, x.Big().Text(base), s)

				y, err := m.Parse(s, base)
				require.NoError(t, err)
				require.True(t, x.IsEqualTo(y))
			}
		}
		_, err := m.One().Text(37)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestRoundTrip(t *testing.T) {
	forEachMath(t, func(t *testing.T, m *Math) {
		for i := 0; i < 30; i++ {
			s := randomInt(m, 1+rnd.Intn(80)).String()
			x, err := m.Of(s)
			require.NoError(t, err)
			require.Equal(t, s, x.String())
		}
	})
}

func TestCompare(t *testing.T) {
	forEachMath(t, func(t *testing.T, m *Math) {
		values := []string{"-1000", "-999", "-1", "0", "1", "2", "999", "1000"}
		for i, a := range values {
			for j, b := range values {
				x, y := m.MustOf(a), m.MustOf(b)
				want := 0
				if i < j {
					want = -1
				} else if i > j {
					want = 1
				}
				assert.Equal(t, want, x.Cmp(y), "%s <=> %s", a, b)
				assert.Equal(t, want == 0, x.IsEqualTo(y))
				assert.Equal(t, want < 0, x.IsLessThan(y))
				assert.Equal(t, want <= 0, x.IsLessThanOrEqualTo(y))
				assert.Equal(t, want > 0, x.IsGreaterThan(y))
				assert.Equal(t, want >= 0, x.IsGreaterThanOrEqualTo(y))
			}
		}

		require.Equal(t, -1, m.MustOf("-5").Sign())
		require.True(t, m.MustOf("-5").IsNegative())
		require.True(t, m.MustOf("5").IsPositive())
		require.True(t, m.Zero().IsZero())
		require.Equal(t, "10", m.Ten().String())
	})
}
