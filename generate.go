package arith

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"
)

// Exercise is a generated exercise in canonical form with its exact answer.
type Exercise struct {
	Text   string
	Answer Rational
}

// Config controls exercise generation. Zero fields take the defaults
// documented on each field.
type Config struct {
	// Range is the exclusive upper bound on the integers that make up
	// operands. Integers and the numerators and denominators of fractions
	// are drawn from [1, Range-1]. It must be at least 2.
	Range int
	// MinOperators and MaxOperators bound the number of operators in an
	// exercise. The defaults are 1 and 3.
	MinOperators, MaxOperators int
	// MaxRepeat is the most times one operator may appear in an exercise.
	// The default is 2.
	MaxRepeat int
	// LocalRetries is the number of operator and operand draws tried for
	// each position before the exercise is restarted with one fewer
	// operator. The default is 10.
	LocalRetries int
	// MaxAttempts is the number of consecutive attempts that produce
	// nothing new before generation fails with ErrGenerationExhausted.
	// The default is 1000.
	MaxAttempts int
	// MinDifference is the smallest result a subtraction may have. The
	// zero value allows any positive difference.
	MinDifference Rational
	// MaxDenominator bounds the denominator of a quotient. The default is
	// Range².
	MaxDenominator int64
	// BracketChance is the probability of bracketing an addition or
	// subtraction in an exercise with at least two operators, when that
	// does not change the answer. The default is 0.5; NoBrackets disables
	// bracketing.
	BracketChance float64
	NoBrackets    bool
}

func (c Config) withDefaults() Config {
	if c.MinOperators <= 0 {
		c.MinOperators = 1
	}
	if c.MaxOperators <= 0 {
		c.MaxOperators = 3
	}
	if c.MaxOperators < c.MinOperators {
		c.MaxOperators = c.MinOperators
	}
	if c.MaxRepeat <= 0 {
		c.MaxRepeat = 2
	}
	if c.LocalRetries <= 0 {
		c.LocalRetries = 10
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 1000
	}
	if c.MaxDenominator <= 0 {
		c.MaxDenominator = int64(c.Range) * int64(c.Range)
	}
	if c.BracketChance == 0 {
		c.BracketChance = 0.5
	}
	if c.NoBrackets {
		c.BracketChance = 0
	}
	return c
}

// Generator produces random exercises. It is not safe to use a Generator
// concurrently.
type Generator struct {
	cfg Config
	rng *rand.Rand
	ctx *Context
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(cfg Config, rng *rand.Rand) (*Generator, error) {
	if cfg.Range < 2 {
		return nil, fmt.Errorf("range %d leaves no operands: %w", cfg.Range, ErrGenerationExhausted)
	}
	return &Generator{cfg: cfg.withDefaults(), rng: rng, ctx: NewContext()}, nil
}

// SeededRand returns a random source determined by a seed string. The same
// seed always produces the same exercises.
func SeededRand(seed string) *rand.Rand {
	h := sha256.Sum256([]byte(seed))
	v := int64(binary.LittleEndian.Uint64(h[:8]))
	return rand.New(rand.NewSource(v))
}

// outcome is the result of one attempt at building an exercise.
type outcome int8

const (
	// accepted means the attempt produced a valid expression.
	accepted outcome = iota
	// retry means the attempt failed and another may succeed.
	retry
	// exhausted means some operator position found no valid operand within
	// the local retry budget.
	exhausted
)

// Generate returns count exercises with pairwise distinct canonical forms.
func (g *Generator) Generate(count int) ([]Exercise, error) {
	seen := make(map[string]bool, count)
	ex := make([]Exercise, 0, count)
	misses := 0
	for len(ex) < count {
		x, err := g.Exercise()
		if err != nil {
			return ex, err
		}
		if seen[x.Text] {
			misses++
			if misses >= g.cfg.MaxAttempts {
				return ex, fmt.Errorf("only %d distinct exercises found after %d repeats: %w", len(ex), misses, ErrGenerationExhausted)
			}
			continue
		}
		misses = 0
		seen[x.Text] = true
		ex = append(ex, x)
	}
	return ex, nil
}

// Exercise returns one valid exercise in canonical form.
func (g *Generator) Exercise() (Exercise, error) {
	c := g.cfg
	ops := c.MinOperators + g.rng.Intn(c.MaxOperators-c.MinOperators+1)
	for try := 0; try < c.MaxAttempts; try++ {
		e, out := g.attempt(ops)
		switch out {
		case accepted:
			e = e.Canonical()
			v := g.ctx.Eval(e)
			if err := g.ctx.Err(); err != nil {
				// Canonical forms evaluate to the same value as their
				// source, so this is a bug.
				panic("arith: canonical form failed to evaluate: " + err.Error())
			}
			return Exercise{Text: e.String(), Answer: v}, nil
		case retry:
		case exhausted:
			if ops > c.MinOperators {
				ops--
			}
		}
	}
	return Exercise{}, fmt.Errorf("no valid exercise in %d attempts: %w", c.MaxAttempts, ErrGenerationExhausted)
}

// attempt builds one candidate with ops operators, one operator and operand
// at a time, checking every operation after each addition.
func (g *Generator) attempt(ops int) (*Expr, outcome) {
	nums := []Rational{g.operand()}
	syms := make([]string, 0, ops)
	var e *Expr
	for len(syms) < ops {
		ok := false
		for try := 0; try < g.cfg.LocalRetries; try++ {
			sym := g.operator(syms)
			x := g.operand()
			cand, err := ParseString(render(append(nums, x), append(syms, sym), -1))
			if err != nil {
				panic("arith: generated unparseable expression: " + err.Error())
			}
			if g.validSteps(cand) {
				nums, syms, e = append(nums, x), append(syms, sym), cand
				ok = true
				break
			}
		}
		if !ok {
			return nil, exhausted
		}
	}
	if len(syms) >= 2 && g.rng.Float64() < g.cfg.BracketChance {
		e = g.bracket(e, nums, syms)
	}
	g.ctx.Eval(e)
	if g.ctx.Err() != nil || !g.validResult(g.ctx.Result()) {
		return nil, retry
	}
	return e, accepted
}

// bracket tries to group one addition or subtraction with its two operands.
// The grouping is kept only if the answer is unchanged and every operation
// is still valid.
func (g *Generator) bracket(e *Expr, nums []Rational, syms []string) *Expr {
	var cands []int
	for i, s := range syms {
		if s == "+" || s == "-" {
			cands = append(cands, i)
		}
	}
	if len(cands) == 0 {
		return e
	}
	i := cands[g.rng.Intn(len(cands))]
	b, err := ParseString(render(nums, syms, i))
	if err != nil {
		panic("arith: generated unparseable expression: " + err.Error())
	}
	want := g.ctx.Eval(e)
	got := g.ctx.Eval(b)
	if g.ctx.Err() != nil || !got.Equal(want) || !g.validSteps(b) {
		return e
	}
	return b
}

// render writes operands and operators alternately. If group is a valid
// operator index, that operator and its two operands are bracketed.
func render(nums []Rational, syms []string, group int) string {
	var b strings.Builder
	for i, x := range nums {
		if i > 0 {
			b.WriteByte(' ')
			b.WriteString(syms[i-1])
			b.WriteByte(' ')
		}
		if i == group {
			b.WriteByte('(')
		}
		b.WriteString(x.String())
		if i == group+1 && group >= 0 {
			b.WriteByte(')')
		}
	}
	return b.String()
}

// operand draws an integer or a fraction. A fraction whose numerator is not
// less than its denominator becomes a mixed number or an integer.
func (g *Generator) operand() Rational {
	n := g.cfg.Range - 1
	if g.rng.Intn(2) == 0 {
		return Int(int64(g.rng.Intn(n) + 1))
	}
	num := int64(g.rng.Intn(n) + 1)
	den := int64(g.rng.Intn(n) + 1)
	r, _ := NewRational(num, den)
	return r
}

// operator draws an operator that has not already been used MaxRepeat times.
func (g *Generator) operator(used []string) string {
	var allowed []string
	for _, op := range []string{"+", "-", "×", "÷"} {
		k := 0
		for _, u := range used {
			if u == op {
				k++
			}
		}
		if k < g.cfg.MaxRepeat {
			allowed = append(allowed, op)
		}
	}
	if len(allowed) == 0 {
		panic("arith: MaxRepeat allows no operator")
	}
	return allowed[g.rng.Intn(len(allowed))]
}

// validSteps checks every operation of e against the constraint for its
// operator:
//
//	-  the difference is positive and at least MinDifference
//	÷  the divisor is nonzero, the quotient is less than 1, and its
//	   denominator is at most MaxDenominator
//	×  the product is at most Range, and not both factors are fractions
//	+  the sum is at most 2×Range
func (g *Generator) validSteps(e *Expr) bool {
	steps, err := e.Steps()
	if err != nil {
		return false
	}
	bound := Int(int64(g.cfg.Range))
	for _, s := range steps {
		switch s.Op {
		case "-":
			if s.Left.Cmp(s.Right) <= 0 || s.Result.Cmp(g.cfg.MinDifference) < 0 {
				return false
			}
		case "÷":
			if s.Right.Sign() == 0 || s.Left.Cmp(s.Right) >= 0 {
				return false
			}
			if !s.Result.Denom().IsInt64() || s.Result.Denom().Int64() > g.cfg.MaxDenominator {
				return false
			}
		case "×":
			if s.Result.Cmp(bound) > 0 || !s.Left.IsInt() && !s.Right.IsInt() {
				return false
			}
		case "+":
			if s.Result.Cmp(bound.Add(bound)) > 0 {
				return false
			}
		}
	}
	return true
}

// validResult reports whether an answer is acceptable: not negative, at most
// Range², and a proper fraction if it is not an integer.
func (g *Generator) validResult(v Rational) bool {
	return ValidResult(v, g.cfg.Range)
}

// ValidResult reports whether v is an acceptable answer for exercises with
// operands under rng: not negative, at most rng², and a proper fraction if
// it is not an integer.
func ValidResult(v Rational, rng int) bool {
	if v.Sign() < 0 {
		return false
	}
	if v.Cmp(Int(int64(rng)*int64(rng))) > 0 {
		return false
	}
	return v.IsInt() || v.IsProper()
}
