package arith

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Labels and markers of exercise and answer files.
const (
	ExerciseLabel = "题目"
	AnswerLabel   = "答案"
	// ErrorMarker replaces the value on an answer line whose exercise could
	// not be evaluated.
	ErrorMarker = "错误"
)

// FormatExercise formats the line for exercise number i (counting from 1),
// e.g. "题目1: 1/2 + 1/3 =".
func FormatExercise(i int, text string) string {
	return ExerciseLabel + strconv.Itoa(i) + ": " + text + " ="
}

// FormatAnswer formats the answer line for exercise number i, e.g.
// "答案1: 5/6".
func FormatAnswer(i int, v Rational) string {
	return AnswerLabel + strconv.Itoa(i) + ": " + v.String()
}

// FormatAnswerError formats the answer line for an exercise that could not
// be evaluated.
func FormatAnswerError(i int) string {
	return AnswerLabel + strconv.Itoa(i) + ": " + ErrorMarker
}

// body returns the part of a line after its label, i.e. after the first
// colon. A line with no colon is all body.
func body(line string) string {
	if k := strings.IndexAny(line, ":："); k >= 0 {
		_, sz := utf8.DecodeRuneInString(line[k:])
		return line[k+sz:]
	}
	return line
}

// ParseExerciseLine parses the expression of an exercise line. Everything
// from the = on is ignored.
func ParseExerciseLine(line string) (*Expr, error) {
	return ParseString(body(line), StopOn('='))
}

// ParseAnswerLine parses the value of an answer line.
func ParseAnswerLine(line string) (Rational, error) {
	v := strings.TrimSpace(body(line))
	if strings.Contains(v, ErrorMarker) {
		return Rational{}, fmt.Errorf("answer is marked %s: %w", ErrorMarker, ErrMalformedExpression)
	}
	return ParseRational(v)
}

// WriteExercises writes one exercise line per exercise, numbered from 1.
func WriteExercises(w io.Writer, ex []Exercise) error {
	bw := bufio.NewWriter(w)
	for i, x := range ex {
		bw.WriteString(FormatExercise(i+1, x.Text))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteAnswers writes one answer line per exercise, numbered from 1. Each
// answer is recomputed from the exercise text; an exercise that does not
// evaluate gets ErrorMarker in place of its value.
func WriteAnswers(w io.Writer, ex []Exercise) error {
	bw := bufio.NewWriter(w)
	ctx := NewContext()
	for i, x := range ex {
		e, err := ParseString(x.Text)
		if err == nil {
			ctx.Eval(e)
			err = ctx.Err()
		}
		if err != nil {
			bw.WriteString(FormatAnswerError(i + 1))
		} else {
			bw.WriteString(FormatAnswer(i+1, ctx.Result()))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadLines reads the lines of r, without line terminators. A leading byte
// order mark and trailing blank lines are dropped.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
