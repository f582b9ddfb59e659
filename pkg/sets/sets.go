// Package sets evaluates formulas under the set-theoretic reading of
// the connectives: And is intersection, Or is union, Not is complement
// in the universe of all values bound to the variables. Complements are
// never enumerated eagerly; each intermediate result is a signed finite
// description, either "this set" or "everything but this set".
package sets

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/formula-tools/boolkit/pkg/expr"
)

// signed is a finite description of a possibly co-finite set.
type signed struct {
	neg bool
	set mapset.Set[int]
}

func positive(values ...int) signed {
	return signed{set: mapset.NewThreadUnsafeSet(values...)}
}

// universe as a description: the complement of nothing.
func everything() signed {
	return signed{neg: true, set: mapset.NewThreadUnsafeSet[int]()}
}

func (s signed) complement() signed {
	s.neg = !s.neg
	return s
}

func (a signed) union(b signed) signed {
	switch {
	case !a.neg && !b.neg:
		return signed{set: a.set.Union(b.set)}
	case a.neg && b.neg:
		// ¬X ∪ ¬Y = ¬(X ∩ Y)
		return signed{neg: true, set: a.set.Intersect(b.set)}
	case a.neg:
		// ¬X ∪ Y = ¬(X − Y)
		return signed{neg: true, set: a.set.Difference(b.set)}
	default:
		return signed{neg: true, set: b.set.Difference(a.set)}
	}
}

func (a signed) intersect(b signed) signed {
	switch {
	case !a.neg && !b.neg:
		return signed{set: a.set.Intersect(b.set)}
	case a.neg && b.neg:
		// ¬X ∩ ¬Y = ¬(X ∪ Y)
		return signed{neg: true, set: a.set.Union(b.set)}
	case a.neg:
		// ¬X ∩ Y = Y − X
		return signed{set: b.set.Difference(a.set)}
	default:
		return signed{set: a.set.Difference(b.set)}
	}
}

func (a signed) xor(b signed) signed {
	// A ⊕ B = (A ∪ B) − (A ∩ B)
	return a.union(b).intersect(a.intersect(b).complement())
}

func (a signed) impl(b signed) signed {
	return a.complement().union(b)
}

func (a signed) leq(b signed) signed {
	return a.intersect(b).union(a.complement().intersect(b.complement()))
}

// Eval interprets the tree over the sets currently bound to its cells.
// Unbound variables read as the empty set. The result is materialized
// against the universe and returned as a sorted enumeration.
func Eval(t *expr.Tree) []int {
	universe := mapset.NewThreadUnsafeSet[int]()
	for _, letter := range t.Letters() {
		universe.Append(t.SetOf(letter)...)
	}
	res := eval(t, t.Root)
	var out []int
	if res.neg {
		out = universe.Difference(res.set).ToSlice()
	} else {
		out = res.set.ToSlice()
	}
	sort.Ints(out)
	return out
}

func eval(t *expr.Tree, n expr.Node) signed {
	var res signed
	switch lit := n.Lit.(type) {
	case expr.Const:
		if lit {
			res = everything()
		} else {
			res = positive()
		}
	case expr.Var:
		res = positive(t.SetOf(lit.Letter())...)
	case expr.Binary:
		res = eval(t, lit.Children[0])
		for _, c := range lit.Children[1:] {
			rhs := eval(t, c)
			switch lit.Op {
			case expr.OpAnd:
				res = res.intersect(rhs)
			case expr.OpOr:
				res = res.union(rhs)
			case expr.OpXor:
				res = res.xor(rhs)
			case expr.OpImpl:
				res = res.impl(rhs)
			case expr.OpLeq:
				res = res.leq(rhs)
			}
		}
	}
	if n.Negated() {
		res = res.complement()
	}
	return res
}
