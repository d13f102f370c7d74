package arith

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// GradeReport is the outcome of grading answers against exercises. Indices
// count exercise lines from 1.
type GradeReport struct {
	Correct []int
	Wrong   []int
	// Errs records why each wrong answer that was not simply a different
	// value could not be checked.
	Errs []LineError
}

// LineError is an error grading one line.
type LineError struct {
	Line int
	Err  error
}

func (err LineError) Error() string {
	return "line " + strconv.Itoa(err.Line) + ": " + err.Err.Error()
}

func (err LineError) Unwrap() error {
	return err.Err
}

// Grade pairs each exercise line with the answer line at the same position
// and checks the answer against the recomputed exact value. Lines past the
// end of the shorter list are not graded. An exercise or answer that cannot
// be parsed or evaluated makes that line wrong and does not stop grading.
func Grade(exercises, answers []string) GradeReport {
	var r GradeReport
	n := len(exercises)
	if len(answers) < n {
		n = len(answers)
	}
	ctx := NewContext()
	for i := 0; i < n; i++ {
		ok, err := check(ctx, exercises[i], answers[i])
		switch {
		case ok:
			r.Correct = append(r.Correct, i+1)
		case err != nil:
			r.Errs = append(r.Errs, LineError{Line: i + 1, Err: err})
			fallthrough
		default:
			r.Wrong = append(r.Wrong, i+1)
		}
	}
	return r
}

// GradeReaders reads exercise and answer lines and grades them.
func GradeReaders(exercises, answers io.Reader) (GradeReport, error) {
	ex, err := ReadLines(exercises)
	if err != nil {
		return GradeReport{}, fmt.Errorf("reading exercises: %w", err)
	}
	ans, err := ReadLines(answers)
	if err != nil {
		return GradeReport{}, fmt.Errorf("reading answers: %w", err)
	}
	return Grade(ex, ans), nil
}

// check grades one line pair. The error is non-nil if either line could not
// be parsed or evaluated.
func check(ctx *Context, exercise, answer string) (bool, error) {
	e, err := ParseExerciseLine(exercise)
	if err != nil {
		return false, fmt.Errorf("exercise: %w", err)
	}
	want := ctx.Eval(e)
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("exercise: %w", err)
	}
	got, err := ParseAnswerLine(answer)
	if err != nil {
		return false, fmt.Errorf("answer: %w", err)
	}
	return got.Equal(want), nil
}

// String formats the report as two lines:
//
//	Correct: 2 (1, 3)
//	Wrong: 1 (2)
//
// An empty list is written as just its count, 0.
func (r GradeReport) String() string {
	var b strings.Builder
	fmtIndices(&b, "Correct", r.Correct)
	fmtIndices(&b, "Wrong", r.Wrong)
	return b.String()
}

func fmtIndices(b *strings.Builder, name string, idx []int) {
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(strconv.Itoa(len(idx)))
	if len(idx) > 0 {
		b.WriteString(" (")
		for i, k := range idx {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(k))
		}
		b.WriteByte(')')
	}
	b.WriteByte('\n')
}
