package arith_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LiYongSheng6/arith"
)

func TestGrade(t *testing.T) {
	exercises := []string{
		"题目1: 1/2 + 1/3 =",
		"题目2: 3 ÷ 0 =",
		"题目3: (2 + 3) × 4 =",
		"题目4: 1'1/2 × (1/2 + 1/3) =",
		"题目5: 5 - 2 =",
	}
	answers := []string{
		"答案1: 5/6",
		"答案2: 0",
		"答案3: 20",
		"答案4: 5/4",
		"答案5: 2",
	}
	r := arith.Grade(exercises, answers)
	assert.Equal(t, []int{1, 3, 4}, r.Correct)
	assert.Equal(t, []int{2, 5}, r.Wrong)
	require.Len(t, r.Errs, 1)
	assert.Equal(t, 2, r.Errs[0].Line)
	assert.ErrorIs(t, r.Errs[0], arith.ErrDivisionByZero)
	assert.Equal(t, "Correct: 3 (1, 3, 4)\nWrong: 2 (2, 5)\n", r.String())
}

func TestGradeShortAnswers(t *testing.T) {
	exercises := []string{"题目1: 1 + 1 =", "题目2: 2 + 2 =", "题目3: 3 + 3 ="}
	answers := []string{"答案1: 2"}
	r := arith.Grade(exercises, answers)
	assert.Equal(t, []int{1}, r.Correct)
	assert.Empty(t, r.Wrong)
	assert.Equal(t, "Correct: 1 (1)\nWrong: 0\n", r.String())

	r = arith.Grade(nil, answers)
	assert.Equal(t, "Correct: 0\nWrong: 0\n", r.String())
}

func TestGradeLineErrors(t *testing.T) {
	cases := []struct {
		name     string
		exercise string
		answer   string
		cat      error
	}{
		{"marker", "题目1: 3 ÷ (1 - 1) =", "答案1: 错误", arith.ErrDivisionByZero},
		{"marked-answer", "题目1: 1 + 1 =", "答案1: 错误", arith.ErrMalformedExpression},
		{"bad-answer", "题目1: 1 + 1 =", "答案1: two", arith.ErrMalformedExpression},
		{"bad-exercise", "题目1: 1 + =", "答案1: 1", arith.ErrMalformedExpression},
		{"bad-operator", "题目1: 1 * 2 =", "答案1: 2", arith.ErrUnknownOperator},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := arith.Grade([]string{c.exercise}, []string{c.answer})
			assert.Empty(t, r.Correct)
			assert.Equal(t, []int{1}, r.Wrong)
			require.Len(t, r.Errs, 1)
			assert.ErrorIs(t, r.Errs[0], c.cat)
			assert.Contains(t, r.Errs[0].Error(), "line 1: ")
		})
	}
}

func TestParseLines(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"题目1: 1 + 2 =", "1 + 2"},
		{"题目12：1 + 2 =", "1 + 2"},
		{"1 + 2 =", "1 + 2"},
		{"1 + 2", "1 + 2"},
		{"题目3: (2 + 3) × 4 = 20", "(2 + 3) × 4"},
	}
	for _, c := range cases {
		e, err := arith.ParseExerciseLine(c.line)
		if assert.NoError(t, err, c.line) {
			assert.Equal(t, c.want, e.String(), c.line)
		}
	}
	v, err := arith.ParseAnswerLine("答案7： 1'1/2 ")
	require.NoError(t, err)
	assert.Equal(t, "1'1/2", v.String())
	v, err = arith.ParseAnswerLine("6/8")
	require.NoError(t, err)
	assert.Equal(t, "3/4", v.String())
}

func TestFormatLines(t *testing.T) {
	v, _ := arith.NewRational(5, 6)
	assert.Equal(t, "题目1: 1/2 + 1/3 =", arith.FormatExercise(1, "1/2 + 1/3"))
	assert.Equal(t, "答案1: 5/6", arith.FormatAnswer(1, v))
	assert.Equal(t, "答案2: 错误", arith.FormatAnswerError(2))
}

func TestReadLines(t *testing.T) {
	src := "\uFEFF题目1: 1 + 1 =\r\n题目2: 2 + 2 =\r\n\r\n\n"
	lines, err := arith.ReadLines(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"题目1: 1 + 1 =", "题目2: 2 + 2 ="}, lines)

	lines, err = arith.ReadLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestWriteAndGrade(t *testing.T) {
	g, err := arith.NewGenerator(arith.Config{Range: 10}, arith.SeededRand("round trip"))
	require.NoError(t, err)
	ex, err := g.Generate(30)
	require.NoError(t, err)
	// A hand-written exercise that cannot be evaluated.
	ex = append(ex, arith.Exercise{Text: "1 ÷ (2 - 2)"})

	var exf, ansf strings.Builder
	require.NoError(t, arith.WriteExercises(&exf, ex))
	require.NoError(t, arith.WriteAnswers(&ansf, ex))
	assert.Contains(t, ansf.String(), "答案31: 错误\n")

	r, err := arith.GradeReaders(strings.NewReader(exf.String()), strings.NewReader(ansf.String()))
	require.NoError(t, err)
	assert.Len(t, r.Correct, 30)
	assert.Equal(t, []int{31}, r.Wrong)
	require.Len(t, r.Errs, 1)
	assert.ErrorIs(t, r.Errs[0], arith.ErrDivisionByZero)
}
