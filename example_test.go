package arith_test

import (
	"fmt"
	"strings"

	"github.com/LiYongSheng6/arith"
)

func ExampleCanonicalize() {
	for _, src := range []string{"3 × (1/2 + 1/3)", "(1/3 + 1/2) × 3"} {
		c, err := arith.Canonicalize(src)
		if err != nil {
			panic(err)
		}
		fmt.Println(c)
	}
	// Output:
	// (1/3 + 1/2) × 3
	// (1/3 + 1/2) × 3
}

func ExampleEvalString() {
	r, err := arith.EvalString("1'1/2 × (1/2 + 1/3)")
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 1'1/4
}

func ExampleGrade() {
	exercises := []string{
		"题目1: 1/2 + 1/3 =",
		"题目2: 2 × 3 =",
		"题目3: 3 ÷ 0 =",
	}
	answers := []string{
		"答案1: 5/6",
		"答案2: 5",
		"答案3: 0",
	}
	fmt.Print(arith.Grade(exercises, answers))
	// Output:
	// Correct: 1 (1)
	// Wrong: 2 (2, 3)
}

func ExampleWriteExercises() {
	ex := []arith.Exercise{
		{Text: "1/2 + 1/3"},
		{Text: "(2 + 3) × 4"},
	}
	var b strings.Builder
	if err := arith.WriteExercises(&b, ex); err != nil {
		panic(err)
	}
	if err := arith.WriteAnswers(&b, ex); err != nil {
		panic(err)
	}
	fmt.Print(b.String())
	// Output:
	// 题目1: 1/2 + 1/3 =
	// 题目2: (2 + 3) × 4 =
	// 答案1: 5/6
	// 答案2: 20
}
