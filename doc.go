// Package arith generates, evaluates, and grades elementary arithmetic
// exercises over non-negative integers and fractions.
//
// Values are exact. A Rational is always kept in lowest terms, and written
// the way a pupil would write it: "3", "3/4", or the mixed number "2'3/8".
// Expressions use + - × ÷ and round brackets, e.g. "1/2 × (3 - 1'1/3)".
//
// Two exercises that differ only in the order of the operands of + or ×
// have the same canonical form, so a generated set never contains both
// "2 + 3" and "3 + 2". Regrouping under associativity is not canonicalized:
// "1 + 2 + 3" and "1 + (2 + 3)" are different exercises.
package arith
