package arith

import (
	"math/big"
	"sort"

	"github.com/zephyrtronium/bigfloat"
)

// difficultyPrec is the precision of difficulty estimates.
const difficultyPrec = 64

// opWeight is the difficulty each operator adds on top of its operands.
var opWeight = [...]int64{
	nodeAdd: 1,
	nodeSub: 1,
	nodeMul: 2,
	nodeDiv: 3,
}

// Difficulty estimates how much work e is by hand. Each numeral n/d adds
// ln(1 + n + d), so larger and fractional operands weigh more, and each
// operator adds a fixed weight: 1 for + and -, 2 for ×, 3 for ÷.
func (e *Expr) Difficulty() *big.Float {
	sum := new(big.Float).SetPrec(difficultyPrec)
	e.n.difficulty(sum)
	return sum
}

func (n *node) difficulty(sum *big.Float) {
	if n.kind != nodeNum {
		sum.Add(sum, new(big.Float).SetInt64(opWeight[n.kind]))
		n.left.difficulty(sum)
		n.right.difficulty(sum)
		return
	}
	r := n.val.rat()
	x := new(big.Int).Abs(r.Num())
	x.Add(x, r.Denom())
	x.Add(x, big.NewInt(1))
	f := new(big.Float).SetPrec(difficultyPrec).SetInt(x)
	sum.Add(sum, bigfloat.Log(f, f))
}

// SortByDifficulty sorts exercises from easiest to hardest, keeping the
// relative order of exercises of equal difficulty. Exercises whose text does
// not parse sort last.
func SortByDifficulty(ex []Exercise) {
	keys := make(map[string]*big.Float, len(ex))
	for _, x := range ex {
		if e, err := ParseString(x.Text); err == nil {
			keys[x.Text] = e.Difficulty()
		}
	}
	sort.SliceStable(ex, func(i, j int) bool {
		a, b := keys[ex[i].Text], keys[ex[j].Text]
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Cmp(b) < 0
		}
	})
}
