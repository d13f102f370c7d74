package arith

import (
	"strconv"
	"strings"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds general data for parsing.
type parsectx struct {
	// stop is a string containing the runes that end the expression.
	stop string
}

func newParsectx(opts []ParseOption) parsectx {
	var p parsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return p
}

type stopopt string

// StopOn tells the parser to treat any of a list of runes as ending the
// expression, e.g. StopOn('=') to parse "1 + 2 = 3" as "1 + 2". Digits,
// fraction separators, brackets, and operators cannot be terminators.
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
// With no arguments, StopOn produces the default termination behavior, which
// is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	var b strings.Builder
	for _, r := range chars {
		if numeral(r) || r == '(' || r == ')' || strings.ContainsRune(Operators, r) {
			panic("arith: cannot stop on " + strconv.QuoteRune(r))
		}
		b.WriteRune(r)
	}
	return stopopt(b.String())
}

func (o stopopt) parseOption(p parsectx) parsectx {
	p.stop = string(o)
	return p
}
