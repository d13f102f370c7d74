package arith_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LiYongSheng6/arith"
)

func TestNewRational(t *testing.T) {
	cases := []struct {
		num, den int64
		want     string
	}{
		{0, 5, "0"},
		{4, 6, "2/3"},
		{6, 3, "2"},
		{3, 2, "1'1/2"},
		{-3, 2, "-1'1/2"},
		{3, -4, "-3/4"},
		{1, 1, "1"},
		{19, 8, "2'3/8"},
	}
	for _, c := range cases {
		r, err := arith.NewRational(c.num, c.den)
		require.NoError(t, err)
		assert.Equal(t, c.want, r.String(), "%d/%d", c.num, c.den)
		assert.Equal(t, 1, r.Denom().Sign(), "denominator of %d/%d", c.num, c.den)
	}
	_, err := arith.NewRational(1, 0)
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)
}

func TestZeroRational(t *testing.T) {
	var z arith.Rational
	assert.Equal(t, "0", z.String())
	assert.Equal(t, 0, z.Sign())
	assert.True(t, z.IsInt())
	assert.True(t, z.Equal(arith.Int(0)))
	assert.True(t, z.Add(arith.Int(2)).Equal(arith.Int(2)))
	_, err := arith.Int(1).Div(z)
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)
}

func TestParseRational(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"7", "7"},
		{"0", "0"},
		{"3/4", "3/4"},
		{"6/8", "3/4"},
		{"9/3", "3"},
		{"5/4", "1'1/4"},
		{"2'3/8", "2'3/8"},
		{"1'4/2", "3"},
		{"-2", "-2"},
		{"-1'1/2", "-1'1/2"},
		{" 5/6 ", "5/6"},
	}
	for _, c := range cases {
		r, err := arith.ParseRational(c.src)
		if assert.NoError(t, err, c.src) {
			assert.Equal(t, c.want, r.String(), c.src)
		}
	}
}

func TestParseRationalErrors(t *testing.T) {
	cases := []struct {
		src string
		cat error
	}{
		{"", arith.ErrMalformedExpression},
		{"x", arith.ErrMalformedExpression},
		{"1.5", arith.ErrMalformedExpression},
		{"1'2", arith.ErrMalformedExpression},
		{"'1/2", arith.ErrMalformedExpression},
		{"1/", arith.ErrMalformedExpression},
		{"/2", arith.ErrMalformedExpression},
		{"1/2/3", arith.ErrMalformedExpression},
		{"--1", arith.ErrMalformedExpression},
		{"1/0", arith.ErrDivisionByZero},
		{"2'1/0", arith.ErrDivisionByZero},
	}
	for _, c := range cases {
		_, err := arith.ParseRational(c.src)
		assert.ErrorIs(t, err, c.cat, "%q", c.src)
		var ne *arith.NumberError
		if errors.Is(c.cat, arith.ErrMalformedExpression) {
			assert.ErrorAs(t, err, &ne, "%q", c.src)
		}
	}
}

func TestRationalRoundTrip(t *testing.T) {
	for num := int64(-30); num <= 30; num++ {
		for den := int64(1); den <= 12; den++ {
			r, err := arith.NewRational(num, den)
			require.NoError(t, err)
			s, err := arith.ParseRational(r.String())
			require.NoError(t, err, "%d/%d rendered as %q", num, den, r)
			assert.True(t, s.Equal(r), "%d/%d rendered as %q parsed as %v", num, den, r, s)
		}
	}
}

func TestRationalArithmetic(t *testing.T) {
	half, _ := arith.NewRational(1, 2)
	third, _ := arith.NewRational(1, 3)
	assert.Equal(t, "5/6", half.Add(third).String())
	assert.Equal(t, "1/6", half.Sub(third).String())
	assert.Equal(t, "-1/6", third.Sub(half).String())
	assert.Equal(t, "1/6", half.Mul(third).String())
	q, err := half.Div(third)
	require.NoError(t, err)
	assert.Equal(t, "1'1/2", q.String())
	// Operations do not modify their operands.
	assert.Equal(t, "1/2", half.String())
	assert.Equal(t, "1/3", third.String())

	for num := int64(1); num <= 9; num++ {
		for den := int64(1); den <= 9; den++ {
			x, _ := arith.NewRational(num, den)
			y, _ := arith.NewRational(den+1, num)
			p, err := x.Mul(y).Div(y)
			require.NoError(t, err)
			assert.True(t, p.Equal(x), "(%v × %v) ÷ %v = %v", x, y, y, p)
		}
	}
}

func TestRationalCompare(t *testing.T) {
	half, _ := arith.NewRational(1, 2)
	two := arith.Int(2)
	assert.Equal(t, -1, half.Cmp(two))
	assert.Equal(t, 1, two.Cmp(half))
	assert.Equal(t, 0, half.Cmp(half))
	assert.True(t, half.IsProper())
	assert.False(t, half.IsInt())
	assert.False(t, two.IsProper())
	assert.True(t, two.IsInt())
	neg, _ := arith.NewRational(-1, 3)
	assert.True(t, neg.IsProper())
	assert.Equal(t, -1, neg.Sign())
	assert.Equal(t, "-1", neg.Num().String())
	assert.Equal(t, "3", neg.Denom().String())
	assert.Equal(t, "-1/3", neg.Rat().RatString())
}
