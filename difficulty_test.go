package arith_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LiYongSheng6/arith"
)

func TestDifficulty(t *testing.T) {
	e, err := arith.ParseString("1 + 1")
	require.NoError(t, err)
	d, _ := e.Difficulty().Float64()
	assert.InDelta(t, 1+2*math.Log(3), d, 1e-9)

	cases := []struct {
		easy, hard string
	}{
		{"1 + 1", "1 × 1"},
		{"1 × 1", "1 ÷ 2"},
		{"1 + 2", "1 + 2/3"},
		{"2 + 3", "2 + 3 + 4"},
		{"1/2 + 1/3", "7/8 + 5/9"},
	}
	for _, c := range cases {
		a, err := arith.ParseString(c.easy)
		require.NoError(t, err)
		b, err := arith.ParseString(c.hard)
		require.NoError(t, err)
		assert.Equal(t, -1, a.Difficulty().Cmp(b.Difficulty()), "%q should be easier than %q", c.easy, c.hard)
	}
}

func TestSortByDifficulty(t *testing.T) {
	ex := []arith.Exercise{
		{Text: "9 ÷ 7"},
		{Text: "1 +"},
		{Text: "1/2 + 1/3"},
		{Text: "1 + 1"},
		{Text: "1 + 1"},
	}
	arith.SortByDifficulty(ex)
	var got []string
	for _, x := range ex {
		got = append(got, x.Text)
	}
	assert.Equal(t, []string{"1 + 1", "1 + 1", "1/2 + 1/3", "9 ÷ 7", "1 +"}, got)
}
