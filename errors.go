package arith

import (
	"errors"
	"strconv"
)

// Error categories. Every error returned by this package for bad input or
// an impossible request wraps exactly one of these, so callers can test
// with errors.Is.
var (
	// ErrDivisionByZero is a zero denominator or a division by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrMalformedExpression is input that is not a well-formed expression:
	// unbalanced brackets, a missing operand, or an unparseable numeral.
	ErrMalformedExpression = errors.New("malformed expression")
	// ErrUnknownOperator is a symbol other than + - × ÷ in operator position.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrGenerationExhausted means the generator hit its attempt ceiling
	// before it produced the requested exercises.
	ErrGenerationExhausted = errors.New("generation exhausted")
)

// OperatorError is an error indicating an operator token that is not
// understood by the parser. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Unwrap() error {
	return ErrUnknownOperator
}

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the opening bracket, if any.
	Left string
	// Right is the closing bracket, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrMalformedExpression
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Unwrap() error {
	return ErrMalformedExpression
}

// NumberError is an error indicating a numeral that is not an integer,
// fraction, or mixed number. Col is 0 when the numeral did not come from
// an expression.
type NumberError struct {
	Col  int
	Text string
}

func (err *NumberError) Error() string {
	msg := "invalid number " + strconv.Quote(err.Text)
	if err.Col == 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() error {
	return ErrMalformedExpression
}

// OperandError is an error indicating an operator without two operands, or
// two operands without an operator between them.
type OperandError struct {
	// Col is the position of the operator, or of the operand that has no
	// operator.
	Col int
	// Operator is the operator missing an operand. It is empty when an
	// operand is missing its operator.
	Operator string
}

func (err *OperandError) Error() string {
	if err.Operator == "" {
		return errpos(err.Col, "operand with no operator")
	}
	return errpos(err.Col, "missing operand for "+strconv.Quote(err.Operator))
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Unwrap() error {
	return ErrMalformedExpression
}

// ZeroDivisionError is an error indicating a division whose divisor
// evaluates to zero.
type ZeroDivisionError struct {
	// Col is the position of the ÷ operator.
	Col int
}

func (err *ZeroDivisionError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *ZeroDivisionError) Pos() int {
	return err.Col
}

func (err *ZeroDivisionError) Unwrap() error {
	return ErrDivisionByZero
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid expression text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*ZeroDivisionError)(nil)
)
