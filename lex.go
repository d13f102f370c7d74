package arith

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical unit of an expression.
type Token struct {
	// Text is the source text of the token.
	Text string
	// Kind is the kind of token.
	Kind TokenKind
	// Pos is the 1-based rune position of the token in its source.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind classifies tokens.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenEOF indicates the end of the input.
	TokenEOF
	// TokenNum is a numeral: an integer, fraction, or mixed number.
	TokenNum
	// TokenOp is any other single symbol. The parser decides whether it is
	// an operator it understands.
	TokenOp
	// TokenOpen is an open bracket.
	TokenOpen
	// TokenClose is a close bracket.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenEOF:
		return "EOF"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are operators.
const Operators = "+-×÷"

// numeral reports whether r belongs in a numeral token. Mixed numbers and
// fractions are single tokens, so the fraction bar is not an operator.
func numeral(r rune) bool {
	return '0' <= r && r <= '9' || r == '\'' || r == '/'
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	stop string
	rune int
	p    Token
	eof  bool
}

// lex creates a lexer over src. Any rune in stop ends the input as if it
// were EOF.
func lex(src io.RuneScanner, stop string) *lexer {
	return &lexer{
		src:  src,
		stop: stop,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok Token) {
	if l.p.Kind != TokenNone {
		panic("arith: double push")
	}
	l.p = tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time the input ends,
// the result is an EOF token with a nil error. Subsequent times, if the EOF
// token is not pushed, the result is an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	if l.p.Kind != TokenNone {
		tok := l.p
		l.p = Token{}
		return tok, nil
	}
	if l.eof {
		return Token{}, io.EOF
	}
	defer l.buf.Reset()
	tok := Token{Pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.Kind = TokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case strings.ContainsRune(l.stop, r):
			tok.Kind = TokenEOF
			l.eof = true
			return tok, nil
		case unicode.IsSpace(r):
			tok.Pos++
			continue
		case numeral(r):
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.Text = l.buf.String()
			tok.Kind = TokenNum
			return tok, nil
		case r == '(':
			tok.Text = "("
			tok.Kind = TokenOpen
			return tok, nil
		case r == ')':
			tok.Text = ")"
			tok.Kind = TokenClose
			return tok, nil
		default:
			tok.Text = string(r)
			tok.Kind = TokenOp
			return tok, nil
		}
	}
}

// scanNum scans a maximal run of numeral runes into the buffer.
func (l *lexer) scanNum() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !numeral(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// Tokenize splits src into tokens. The EOF token is not included. Tokenize
// does not check that the tokens form an expression.
func Tokenize(src string, opts ...ParseOption) ([]Token, error) {
	p := newParsectx(opts)
	scan := lex(strings.NewReader(src), p.stop)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}
