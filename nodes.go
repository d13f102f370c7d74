package arith

import (
	"strconv"
	"strings"
)

// node is a node in the tree of an expression. Numerals are leaves; every
// other node has exactly two children.
type node struct {
	kind nodeKind

	// name is the numeral as written for nodeNum, or the operator glyph.
	name string
	// val is the value of a numeral.
	val Rational
	// pos is the source position of the numeral or operator.
	pos int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push val
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// prec returns the binding strength of an operator node. Leaves bind
// tightest of all.
func (k nodeKind) prec() int8 {
	switch k {
	case nodeAdd, nodeSub:
		return 1
	case nodeMul, nodeDiv:
		return 2
	default:
		return 127
	}
}

// commutes reports whether the operands of k may be swapped.
func (k nodeKind) commutes() bool {
	return k == nodeAdd || k == nodeMul
}

// buildTree builds an expression tree from postfix tokens. An operator pops
// its right operand first, then its left.
func buildTree(rpn []Token) (*node, error) {
	var stack []*node
	for _, tok := range rpn {
		switch tok.Kind {
		case TokenNum:
			v, err := ParseRational(tok.Text)
			if err != nil {
				if _, ok := err.(*NumberError); ok {
					return nil, &NumberError{Col: tok.Pos, Text: tok.Text}
				}
				return nil, &ZeroDivisionError{Col: tok.Pos}
			}
			stack = append(stack, &node{kind: nodeNum, name: tok.Text, val: v, pos: tok.Pos})
		case TokenOp:
			prec := binop(tok.Text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.Pos, Operator: tok.Text}
			}
			if len(stack) < 2 {
				return nil, &OperandError{Col: tok.Pos, Operator: tok.Text}
			}
			n := &node{
				kind:  prec.op,
				name:  tok.Text,
				pos:   tok.Pos,
				left:  stack[len(stack)-2],
				right: stack[len(stack)-1],
			}
			stack = append(stack[:len(stack)-2], n)
		default:
			panic("arith: non-postfix token " + tok.String())
		}
	}
	switch len(stack) {
	case 0:
		return nil, &EmptyExpressionError{Col: 1}
	case 1:
		return stack[0], nil
	default:
		return nil, &OperandError{Col: stack[1].pos}
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes n in infix form. A child is bracketed only when the tree
// would parse differently without the brackets: a looser operator under
// a tighter one, or an operator of equal precedence on the right, since
// every operator is left-associative.
func (n *node) fmt(b *strings.Builder) {
	if n.kind == nodeNum {
		b.WriteString(n.name)
		return
	}
	n.left.fmtUnder(b, n.kind, false)
	b.WriteByte(' ')
	b.WriteString(n.name)
	b.WriteByte(' ')
	n.right.fmtUnder(b, n.kind, true)
}

// fmtUnder writes n as an operand of an operator of kind front.
func (n *node) fmtUnder(b *strings.Builder, front nodeKind, right bool) {
	p, q := n.kind.prec(), front.prec()
	if p < q || right && p == q {
		b.WriteByte('(')
		n.fmt(b)
		b.WriteByte(')')
		return
	}
	n.fmt(b)
}

// clone returns a deep copy of n.
func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	c := *n
	c.left = n.left.clone()
	c.right = n.right.clone()
	return &c
}

// canonicalize rewrites n in place into canonical form. Children are
// canonicalized first; then the operands of + and × are put in order.
// Numerals are rewritten in lowest terms.
func (n *node) canonicalize() {
	if n.kind == nodeNum {
		n.name = n.val.String()
		return
	}
	n.left.canonicalize()
	n.right.canonicalize()
	if n.kind.commutes() && compareNodes(n.left, n.right) > 0 {
		n.left, n.right = n.right, n.left
	}
}

// compareNodes orders canonical subtrees. Two numerals compare by value.
// Anything else compares by rendered text.
func compareNodes(a, b *node) int {
	if a.kind == nodeNum && b.kind == nodeNum {
		if c := a.val.Cmp(b.val); c != 0 {
			return c
		}
	}
	return strings.Compare(a.String(), b.String())
}

// postfix appends the tokens of n in postfix order.
func (n *node) postfix(dst []Token) []Token {
	if n.kind == nodeNum {
		return append(dst, Token{Text: n.name, Kind: TokenNum, Pos: n.pos})
	}
	dst = n.left.postfix(dst)
	dst = n.right.postfix(dst)
	return append(dst, Token{Text: n.name, Kind: TokenOp, Pos: n.pos})
}

// Canonical returns the canonical form of e: operands of + and × ordered at
// every level and numerals in lowest terms. Expressions that differ only by
// the order of commutative operands have the same canonical form. e is not
// modified.
func (e *Expr) Canonical() *Expr {
	n := e.n.clone()
	n.canonicalize()
	return &Expr{rpn: n.postfix(nil), n: n}
}

// Canonicalize is a shortcut to parse an expression and render its
// canonical form.
func Canonicalize(src string, opts ...ParseOption) (string, error) {
	e, err := ParseString(src, opts...)
	if err != nil {
		return "", err
	}
	return e.Canonical().String(), nil
}

// Step is a single operation in an expression, with the exact values of its
// operands.
type Step struct {
	// Op is the operator glyph.
	Op string
	// Left, Right, and Result are the operand and result values.
	Left, Right, Result Rational
}

// Steps evaluates e and returns every operation in the order it is
// performed, ending with the outermost.
func (e *Expr) Steps() ([]Step, error) {
	var steps []Step
	if _, err := e.n.steps(&steps); err != nil {
		return nil, err
	}
	return steps, nil
}

func (n *node) steps(dst *[]Step) (Rational, error) {
	if n.kind == nodeNum {
		return n.val, nil
	}
	l, err := n.left.steps(dst)
	if err != nil {
		return Rational{}, err
	}
	r, err := n.right.steps(dst)
	if err != nil {
		return Rational{}, err
	}
	v, err := apply(n.kind, l, r, n.pos)
	if err != nil {
		return Rational{}, err
	}
	*dst = append(*dst, Step{Op: n.name, Left: l, Right: r, Result: v})
	return v, nil
}

// apply performs one operation. pos locates the operator for errors.
func apply(k nodeKind, l, r Rational, pos int) (Rational, error) {
	switch k {
	case nodeAdd:
		return l.Add(r), nil
	case nodeSub:
		return l.Sub(r), nil
	case nodeMul:
		return l.Mul(r), nil
	case nodeDiv:
		if r.Sign() == 0 {
			return Rational{}, &ZeroDivisionError{Col: pos}
		}
		return l.Div(r)
	default:
		panic("arith: invalid operator node " + k.String())
	}
}
