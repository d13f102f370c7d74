package arith

import (
	"fmt"
	"math/big"
	"strings"
)

// Rational is an exact fraction. It is always in lowest terms with the sign
// carried by the numerator. The zero value is 0. Rationals are immutable:
// every operation returns a new value.
type Rational struct {
	r *big.Rat
}

var ratZero big.Rat

// rat returns the underlying value. The result must not be modified.
func (x Rational) rat() *big.Rat {
	if x.r == nil {
		return &ratZero
	}
	return x.r
}

// NewRational creates num/den in lowest terms. The result is an error
// wrapping ErrDivisionByZero if den is zero.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%d/0: %w", num, ErrDivisionByZero)
	}
	return Rational{big.NewRat(num, den)}, nil
}

// Int returns the Rational with integer value n.
func Int(n int64) Rational {
	return Rational{new(big.Rat).SetInt64(n)}
}

// ParseRational parses the written form of a Rational: an integer "7", a
// fraction "3/4", or a mixed number "2'3/8". A leading minus sign is
// accepted so that every String result parses back to the same value.
// Fractions need not be proper or reduced.
func ParseRational(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, mixed := strings.Cut(s, "'")
	if !mixed {
		whole, frac = "", s
	}
	num, den, isFrac := strings.Cut(frac, "/")
	if !isFrac {
		if mixed {
			// 2'3 has a whole part but no fraction bar.
			return Rational{}, &NumberError{Text: s}
		}
		den = "1"
	}
	if mixed && !digits(whole) || !digits(num) || !digits(den) {
		return Rational{}, &NumberError{Text: s}
	}
	var n, d, w big.Int
	n.SetString(num, 10)
	d.SetString(den, 10)
	if d.Sign() == 0 {
		return Rational{}, fmt.Errorf("%s: %w", s, ErrDivisionByZero)
	}
	r := new(big.Rat).SetFrac(&n, &d)
	if mixed {
		w.SetString(whole, 10)
		r.Add(r, new(big.Rat).SetInt(&w))
	}
	if neg {
		r.Neg(r)
	}
	return Rational{r}, nil
}

// digits reports whether s is a non-empty run of ASCII digits.
func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Add returns x + y.
func (x Rational) Add(y Rational) Rational {
	return Rational{new(big.Rat).Add(x.rat(), y.rat())}
}

// Sub returns x - y.
func (x Rational) Sub(y Rational) Rational {
	return Rational{new(big.Rat).Sub(x.rat(), y.rat())}
}

// Mul returns x × y.
func (x Rational) Mul(y Rational) Rational {
	return Rational{new(big.Rat).Mul(x.rat(), y.rat())}
}

// Div returns x ÷ y. The error wraps ErrDivisionByZero if y is zero.
func (x Rational) Div(y Rational) (Rational, error) {
	if y.Sign() == 0 {
		return Rational{}, fmt.Errorf("%v ÷ 0: %w", x, ErrDivisionByZero)
	}
	return Rational{new(big.Rat).Quo(x.rat(), y.rat())}, nil
}

// Cmp compares x and y, returning -1, 0, or +1.
func (x Rational) Cmp(y Rational) int {
	return x.rat().Cmp(y.rat())
}

// Equal reports whether x and y have the same value.
func (x Rational) Equal(y Rational) bool {
	return x.Cmp(y) == 0
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x Rational) Sign() int {
	return x.rat().Sign()
}

// IsInt reports whether the denominator of x is 1.
func (x Rational) IsInt() bool {
	return x.rat().IsInt()
}

// IsProper reports whether |numerator| < denominator.
func (x Rational) IsProper() bool {
	r := x.rat()
	return new(big.Int).Abs(r.Num()).Cmp(r.Denom()) < 0
}

// Num returns a copy of the numerator of x.
func (x Rational) Num() *big.Int {
	return new(big.Int).Set(x.rat().Num())
}

// Denom returns a copy of the denominator of x, which is always positive.
func (x Rational) Denom() *big.Int {
	return new(big.Int).Set(x.rat().Denom())
}

// Rat returns a copy of x as a big.Rat.
func (x Rational) Rat() *big.Rat {
	return new(big.Rat).Set(x.rat())
}

// String formats x as an integer if it is one, as a mixed number
// "whole'num/den" if its magnitude exceeds 1, and as "num/den" otherwise.
func (x Rational) String() string {
	r := x.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	num, den := r.Num(), r.Denom()
	if new(big.Int).Abs(num).Cmp(den) <= 0 {
		return num.String() + "/" + den.String()
	}
	var whole, rem big.Int
	whole.QuoRem(num, den, &rem)
	rem.Abs(&rem)
	return whole.String() + "'" + rem.String() + "/" + den.String()
}
