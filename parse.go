package arith

import (
	"io"
	"strings"
)

// Expr = num | Add | Sub | Mul | Div | '(' Expr ')'
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '×' Expr
// Div = Expr '÷' Expr
// num = int | int '/' int | int '\'' int '/' int

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// rpn is the expression in postfix order.
	rpn []Token
	// n is the root node of the expression tree.
	n *node
}

// Parse parses an expression so it can be evaluated with a context. The given
// options are applied in order.
//
// Parsing uses the shunting-yard algorithm: numerals go straight to the
// postfix output, operators wait on a stack until an operator of no higher
// precedence or a close bracket flushes them. All four operators are
// left-associative.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	p := newParsectx(opts)
	scan := lex(src, p.stop)
	var (
		out   []Token
		stack []Token
		// operand is whether the next token must start an operand.
		operand = true
		// last is the previous token, for error positions.
		last Token
	)
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenNum:
			if !operand {
				return nil, &OperandError{Col: tok.Pos}
			}
			out = append(out, tok)
			operand = false
		case TokenOpen:
			if !operand {
				return nil, &OperandError{Col: tok.Pos}
			}
			stack = append(stack, tok)
		case TokenClose:
			if operand {
				return nil, itShouldNotHaveEndedThisWay(tok, last)
			}
			k := len(stack) - 1
			for k >= 0 && stack[k].Kind != TokenOpen {
				out = append(out, stack[k])
				k--
			}
			if k < 0 {
				return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
			}
			// Discard the open bracket.
			stack = stack[:k]
		case TokenOp:
			prec := binop(tok.Text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.Pos, Operator: tok.Text}
			}
			if operand {
				// No unary operators, so this is missing its left operand.
				return nil, &OperandError{Col: tok.Pos, Operator: tok.Text}
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOp || prec.moreBinding(binop(top.Text)) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
			operand = true
		case TokenEOF:
			if operand {
				return nil, itShouldNotHaveEndedThisWay(tok, last)
			}
			for k := len(stack) - 1; k >= 0; k-- {
				if stack[k].Kind == TokenOpen {
					return nil, &BracketError{Col: stack[k].Pos, Left: stack[k].Text}
				}
				out = append(out, stack[k])
			}
			n, err := buildTree(out)
			if err != nil {
				return nil, err
			}
			return &Expr{rpn: out, n: n}, nil
		default:
			panic("arith: unknown token: " + tok.String())
		}
		last = tok
	}
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an expression
// that ends, at a close bracket or EOF, where an operand should start.
func itShouldNotHaveEndedThisWay(tok, last Token) error {
	switch last.Kind {
	case TokenNone:
		if tok.Kind == TokenClose {
			return &BracketError{Col: tok.Pos, Right: tok.Text}
		}
		return &EmptyExpressionError{Col: tok.Pos, End: tok.Text}
	case TokenOpen:
		if tok.Kind == TokenEOF {
			return &BracketError{Col: last.Pos, Left: last.Text}
		}
		return &EmptyExpressionError{Col: tok.Pos, End: tok.Text}
	case TokenOp:
		return &OperandError{Col: last.Pos, Operator: last.Text}
	default:
		panic("arith: it really should not have ended this way: " + tok.String() + " after " + last.String())
	}
}

// Postfix returns the tokens of the expression in postfix order.
func (e *Expr) Postfix() []Token {
	return append(([]Token)(nil), e.rpn...)
}

// String renders the expression in infix form with the fewest brackets that
// keep its structure, e.g. "1 + 2 × (3 - 1/2)".
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

// moreBinding reports whether p binds more tightly than an operator already
// on the stack. All operators are left-associative, so equal precedence is
// not more binding.
func (p operator) moreBinding(than operator) bool {
	return p.prec > than.prec
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, nodeAdd}
	case "-":
		return operator{1, nodeSub}
	case "×":
		return operator{2, nodeMul}
	case "÷":
		return operator{2, nodeDiv}
	default:
		return operator{}
	}
}
