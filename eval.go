package arith

import (
	"io"
	"strconv"
	"strings"
)

// Context is a context for evaluating expressions. It keeps its numeral stack
// and parsed numerals between evaluations, so evaluating many expressions with
// one context allocates little. It is not safe to use a Context concurrently.
type Context struct {
	stack []Rational
	nums  map[string]Rational
	done  bool
	err   error
}

// NewContext creates a new evaluation context.
func NewContext() *Context {
	return &Context{nums: make(map[string]Rational)}
}

// Eval evaluates an expression and returns the result. If an error occurs,
// e.g. a division by zero, then the result is the zero Rational and ctx.Err
// returns the error.
//
// The expression is evaluated from its postfix form: a numeral pushes its
// value onto the numeral stack, and an operator pops its right operand, then
// its left, and pushes the result.
func (ctx *Context) Eval(e *Expr) Rational {
	ctx.stack = ctx.stack[:0]
	ctx.done = true
	ctx.err = nil
	for _, tok := range e.rpn {
		if err := ctx.step(tok); err != nil {
			ctx.err = err
			return Rational{}
		}
	}
	switch len(ctx.stack) {
	case 0:
		ctx.err = &EmptyExpressionError{Col: 1}
	case 1:
		return ctx.stack[0]
	default:
		ctx.err = &OperandError{Col: e.rpn[len(e.rpn)-1].Pos}
	}
	return Rational{}
}

// step applies one postfix token to the numeral stack.
func (ctx *Context) step(tok Token) error {
	switch tok.Kind {
	case TokenNum:
		v, err := ctx.num(tok)
		if err != nil {
			return err
		}
		ctx.push(v)
	case TokenOp:
		prec := binop(tok.Text)
		if prec.op == nodeNone {
			return &OperatorError{Col: tok.Pos, Operator: tok.Text}
		}
		if len(ctx.stack) < 2 {
			return &OperandError{Col: tok.Pos, Operator: tok.Text}
		}
		r := ctx.pop()
		l := ctx.pop()
		v, err := apply(prec.op, l, r, tok.Pos)
		if err != nil {
			return err
		}
		ctx.push(v)
	default:
		panic("arith: non-postfix token " + tok.String())
	}
	return nil
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns the zero Rational
// if an error occurred during evaluation.
func (ctx *Context) Result() Rational {
	if !ctx.done {
		panic("arith: Context.Result called before evaluating any expression")
	}
	if ctx.err != nil {
		return Rational{}
	}
	switch len(ctx.stack) {
	case 1:
		return ctx.stack[0]
	default:
		panic("arith: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items")
	}
}

// Err returns the error that occurred during the last evaluation, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

func (ctx *Context) push(v Rational) {
	ctx.stack = append(ctx.stack, v)
}

// pop removes the top from the stack and returns it.
func (ctx *Context) pop() Rational {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// num gets a possibly cached number from its text.
func (ctx *Context) num(tok Token) (Rational, error) {
	if r, ok := ctx.nums[tok.Text]; ok {
		return r, nil
	}
	r, err := ParseRational(tok.Text)
	if err != nil {
		if _, ok := err.(*NumberError); ok {
			return Rational{}, &NumberError{Col: tok.Pos, Text: tok.Text}
		}
		// The only other failure is a zero denominator, as in 1/0.
		return Rational{}, &ZeroDivisionError{Col: tok.Pos}
	}
	if ctx.nums == nil {
		ctx.nums = make(map[string]Rational)
	}
	ctx.nums[tok.Text] = r
	return r, nil
}

// Eval is a shortcut to parse an expression and return its value.
func Eval(src io.RuneScanner, opts ...ParseOption) (Rational, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return Rational{}, err
	}
	ctx := NewContext()
	ctx.Eval(a)
	return ctx.Result(), ctx.Err()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (Rational, error) {
	return Eval(strings.NewReader(src), opts...)
}
