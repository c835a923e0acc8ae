package bigmath

import (
	"context"
	"math/big"
	"testing"

	"github.com/privacybydesign/bigmath/calculator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestArithmetic(t *testing.T) {
	forEachMath(t, func(t *testing.T, m *Math) {
		a := m.MustOf("123456789123456789123456789")
		b := m.MustOf("-987654321987654321")

		require.Equal(t, "123456788135802467135802468", a.Plus(b).String())
		require.Equal(t, "123456790111111111111111110", a.Minus(b).String())
		require.Equal(t, "-121932631356500531469135800347203169112635269", a.MultipliedBy(b).String())
		require.Equal(t, "0", a.Minus(a).String())
		require.Equal(t, "0", b.Plus(b.Negated()).String())
		require.Equal(t, "0", a.MultipliedBy(m.Zero()).String())
		require.Equal(t, a.String(), a.Plus(m.Zero()).String())
		require.Equal(t, b.String(), m.Zero().Plus(b).String())

		require.Equal(t, "987654321987654321", b.Abs().String())
		require.Equal(t, "987654321987654321", b.Negated().String())
		require.Equal(t, "0", m.Zero().Negated().String())
	})
}

func TestAgainstMathBig(t *testing.T) {
	forEachMath(t, func(t *testing.T, m *Math) {
		for i := 0; i < 40; i++ {
			x := randomInt(m, 1+rnd.Intn(50))
			y := randomInt(m, 1+rnd.Intn(30))
			bx, by := x.Big(), y.Big()

			assert.Equal(t, new(big.Int).Add(bx, by).String(), x.Plus(y).String())
			assert.Equal(t, new(big.Int).Sub(bx, by).String(), x.Minus(y).String())
			assert.Equal(t, new(big.Int).Mul(bx, by).String(), x.MultipliedBy(y).String())
			assert.Equal(t, bx.Cmp(by), x.Cmp(y))
			assert.Equal(t, new(big.Int).GCD(nil, nil, new(big.Int).Abs(bx), new(big.Int).Abs(by)).String(), x.Gcd(y).String())

			if y.IsZero() {
				continue
			}
			q, r, err := x.QuotientAndRemainder(y)
			require.NoError(t, err)
			wq, wr := new(big.Int).QuoRem(bx, by, new(big.Int))
			assert.Equal(t, wq.String(), q.String())
			assert.Equal(t, wr.String(), r.String())

			floor, err := x.DividedBy(y, RoundingFloor)
			require.NoError(t, err)
			mod, err := x.Mod(y)
			require.NoError(t, err)
			// x = floor(x/y)*y + mod, with mod taking the sign of y
			assert.True(t, floor.MultipliedBy(y).Plus(mod).IsEqualTo(x))
			assert.True(t, mod.IsZero() || mod.Sign() == y.Sign())
			assert.True(t, mod.Abs().IsLessThan(y.Abs()))
		}
	})
}

func TestDivisionByZero(t *testing.T) {
	forEachMath(t, func(t *testing.T, m *Math) {
		zero := m.Zero()
		for _, s := range []string{"0", "1", "-1", "123456789123456789123456789"} {
			x := m.MustOf(s)
			_, _, err := x.QuotientAndRemainder(zero)
			require.ErrorIs(t, err, ErrDivisionByZero)
			_, err = x.Quotient(zero)
			require.ErrorIs(t, err, ErrDivisionByZero)
			_, err = x.Remainder(zero)
			require.ErrorIs(t, err, ErrDivisionByZero)
			_, err = x.Mod(zero)
			require.ErrorIs(t, err, ErrDivisionByZero)
			_, err = x.DividedBy(zero, RoundingDown)
			require.ErrorIs(t, err, ErrDivisionByZero)
			_, err = x.ModPow(m.One(), zero)
			require.ErrorIs(t, err, ErrDivisionByZero)
		}
	})
}

func TestDividedBy(t *testing.T) {
	modes := []RoundingMode{
		RoundingUp, RoundingDown, RoundingCeiling, RoundingFloor,
		RoundingHalfUp, RoundingHalfDown, RoundingHalfCeiling, RoundingHalfFloor, RoundingHalfEven,
	}
	tests := []struct {
		x, y     string
		expected [9]string
	}{
		{"7", "2", [9]string{"4", "3", "4", "3", "4", "3", "4", "3", "4"}},
		{"-7", "2", [9]string{"-4", "-3", "-3", "-4", "-4", "-3", "-3", "-4", "-4"}},
		{"7", "-2", [9]string{"-4", "-3", "-3", "-4", "-4", "-3", "-3", "-4", "-4"}},
		{"5", "2", [9]string{"3", "2", "3", "2", "3", "2", "3", "2", "2"}},
		{"-5", "2", [9]string{"-3", "-2", "-2", "-3", "-3", "-2", "-2", "-3", "-2"}},
		{"7", "3", [9]string{"3", "2", "3", "2", "2", "2", "2", "2", "2"}},
		{"-7", "3", [9]string{"-3", "-2", "-2", "-3", "-2", "-2", "-2", "-2", "-2"}},
		{"8", "3", [9]string{"3", "2", "3", "2", "3", "3", "3", "3", "3"}},
		{"-8", "-3", [9]string{"3", "2", "3", "2", "3", "3", "3", "3", "3"}},
		{"-8", "3", [9]string{"-3", "-2", "-2", "-3", "-3", "-3", "-3", "-3", "-3"}},
		{"-1", "3", [9]string{"-1", "0", "0", "-1", "0", "0", "0", "0", "0"}},
		{"6", "3", [9]string{"2", "2", "2", "2", "2", "2", "2", "2", "2"}},
	}

	forEachMath(t, func(t *testing.T, m *Math) {
		for _, tt := range tests {
			x, y := m.MustOf(tt.x), m.MustOf(tt.y)
			for i, mode := range modes {
				q, err := x.DividedBy(y, mode)
				require.NoError(t, err)
				require.Equal(t, tt.expected[i], q.String(), "%s / %s, %s", tt.x, tt.y, mode)
			}
		}

		q, err := m.MustOf("-3640").DividedBy(m.MustOf("16"), RoundingUnnecessary)
		require.ErrorIs(t, err, ErrRoundingNecessary)
		require.Nil(t, q)

		q, err = m.MustOf("-3648").DividedBy(m.MustOf("16"), RoundingUnnecessary)
		require.NoError(t, err)
		require.Equal(t, "-228", q.String())

		_, err = m.MustOf("7").DividedBy(m.MustOf("2"), RoundingMode(42))
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestRoundingModeNames(t *testing.T) {
	for _, name := range []string{"unnecessary", "up", "down", "ceiling", "floor", "half-up", "half-down", "half-ceiling", "half-floor", "half-even"} {
		mode, err := ParseRoundingMode(name)
		require.NoError(t, err)
		require.Equal(t, name, mode.String())
	}
	mode, err := ParseRoundingMode("HALF_EVEN")
	require.NoError(t, err)
	require.Equal(t, RoundingHalfEven, mode)
	_, err = ParseRoundingMode("sideways")
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Equal(t, "RoundingMode(42)", RoundingMode(42).String())
}

func TestPower(t *testing.T) {
	forEachMath(t, func(t *testing.T, m *Math) {
		for _, tt := range []struct {
			x        string
			e        int
			expected string
		}{
			{"0", 0, "1"},
			{"0", 3, "0"},
			{"-2", 0, "1"},
			{"-2", 3, "-8"},
			{"-2", 4, "16"},
			{"2", 64, "18446744073709551616"},
			{"-3", 127, "-" + new(big.Int).Exp(big.NewInt(3), big.NewInt(127), nil).String()},
		} {
			p, err := m.MustOf(tt.x).Power(tt.e)
			require.NoError(t, err)
			require.Equal(t, tt.expected, p.String(), "%s^%d", tt.x, tt.e)
		}
		_, err := m.MustOf("2").Power(-1)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestModPow(t *testing.T) {
	forEachMath(t, func(t *testing.T, m *Math) {
		r, err := m.MustOf("4").ModPow(m.MustOf("13"), m.MustOf("497"))
		require.NoError(t, err)
		require.Equal(t, "445", r.String())

		r, err = m.MustOf("-3").ModPow(m.MustOf("3"), m.MustOf("7"))
		require.NoError(t, err)
		require.Equal(t, "1", r.String())

		e := m.MustOf("1180591620717411303427") // 2^70 + 3
		r, err = m.MustOf("7").ModPow(e, m.MustOf("1000000007"))
		require.NoError(t, err)
		require.Equal(t, "114703457", r.String())

		r, err = m.MustOf("5").ModPow(m.Zero(), m.One())
		require.NoError(t, err)
		require.Equal(t, "0", r.String())

		_, err = m.MustOf("5").ModPow(m.MustOf("-1"), m.MustOf("7"))
		require.ErrorIs(t, err, ErrNegativeNumber)
		_, err = m.MustOf("5").ModPow(m.One(), m.MustOf("-7"))
		require.ErrorIs(t, err, ErrNegativeNumber)
	})
}

func TestSqrt(t *testing.T) {
	forEachMath(t, func(t *testing.T, m *Math) {
		r, err := m.MustOf("10000000000000000000000000000000000012345").Sqrt()
		require.NoError(t, err)
		require.Equal(t, "100000000000000000000", r.String())

		r, err = m.Zero().Sqrt()
		require.NoError(t, err)
		require.True(t, r.IsZero())

		_, err = m.MustOf("-4").Sqrt()
		require.ErrorIs(t, err, ErrNegativeNumber)
	})
}

func TestGcdSign(t *testing.T) {
	m := New(calculator.Portable{})
	require.Equal(t, "14", m.MustOf("-42").Gcd(m.MustOf("-3640")).String())
	require.Equal(t, "42", m.MustOf("-42").Gcd(m.Zero()).String())
	require.Equal(t, "0", m.Zero().Gcd(m.Zero()).String())
}

func TestMinMaxSum(t *testing.T) {
	m := New(calculator.Portable{})
	a, b, c := m.MustOf("-42"), m.MustOf("3640"), m.MustOf("7")
	require.Same(t, a, Min(b, a, c))
	require.Same(t, b, Max(a, b, c))
	require.Same(t, c, Min(c))
	require.Equal(t, "3605", Sum(a, b, c).String())
	require.Equal(t, "-42", Sum(a).String())
}

func TestCalculatorPropagation(t *testing.T) {
	portable := New(calculator.Portable{})
	native := New(calculator.Native{})
	x := portable.MustOf("12")
	y := native.MustOf("30")
	require.Equal(t, "portable", x.Plus(y).Calculator().Name())
	require.Equal(t, "native", y.Plus(x).Calculator().Name())
	require.Equal(t, "native", native.Calculator().Name())
}

func TestConcurrentSharing(t *testing.T) {
	m := Default()
	x := m.MustOf("-123456789123456789123456789")
	want, err := x.ShiftedRight(87)
	require.NoError(t, err)

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				y, err := x.ShiftedRight(87)
				if err != nil {
					return err
				}
				if !y.IsEqualTo(want) {
					return ErrInvalidArgument
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, "-123456789123456789123456789", x.String())
	require.Equal(t, "-1", want.String())
}
