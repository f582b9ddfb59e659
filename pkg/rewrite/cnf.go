package rewrite

import (
	"github.com/formula-tools/boolkit/pkg/expr"
)

// CNF rewrites a tree into conjunctive normal form along the algebraic
// path: negation normal form first, then distribution of Or over And.
// The result is a conjunction whose conjuncts are disjunctions of
// literals; no minimization is attempted (see pkg/qm for that).
func CNF(t *expr.Tree) *expr.Tree {
	return expr.New(distribute(nnf(t.Root)))
}

// distribute assumes its input is in negation normal form.
func distribute(n expr.Node) expr.Node {
	lit, ok := n.Lit.(expr.Binary)
	if !ok {
		return n
	}
	if lit.Op == expr.OpAnd {
		children := make([]expr.Node, len(lit.Children))
		for i, c := range lit.Children {
			children[i] = distribute(c)
		}
		return expr.NewBinary(expr.OpAnd, children...)
	}
	// Or: Simplify flattens disjunctions past two operands, so fold
	// left-associatively, distributing over any And that bubbled up.
	acc := distribute(lit.Children[0])
	for _, c := range lit.Children[1:] {
		acc = disjoin(acc, distribute(c))
	}
	return acc
}

// disjoin joins two already-distributed operands with Or.
func disjoin(l, r expr.Node) expr.Node {
	if land, ok := l.Lit.(expr.Binary); ok && land.Op == expr.OpAnd && !l.Negated() {
		// (A ∧ B) ∨ C → (A ∨ C) ∧ (B ∨ C)
		conjuncts := make([]expr.Node, len(land.Children))
		for i, c := range land.Children {
			conjuncts[i] = disjoin(c, r)
		}
		return expr.NewBinary(expr.OpAnd, conjuncts...)
	}
	if rand, ok := r.Lit.(expr.Binary); ok && rand.Op == expr.OpAnd && !r.Negated() {
		// A ∨ (B ∧ C) → (A ∨ B) ∧ (A ∨ C)
		conjuncts := make([]expr.Node, len(rand.Children))
		for i, c := range rand.Children {
			conjuncts[i] = disjoin(l, c)
		}
		return expr.NewBinary(expr.OpAnd, conjuncts...)
	}
	return expr.Or(l, r)
}

// IsCNF reports whether a tree is syntactically a conjunction of
// disjunctions of literals. A lone literal or clause also qualifies.
func IsCNF(t *expr.Tree) bool {
	return isConjunction(t.Root)
}

func isConjunction(n expr.Node) bool {
	if n.IsLeaf() {
		return true
	}
	lit, ok := n.Lit.(expr.Binary)
	if !ok || n.Negated() {
		return false
	}
	if lit.Op == expr.OpAnd {
		// Nested conjunctions are fine; distribution nests them binarily.
		for _, c := range lit.Children {
			if !isConjunction(c) {
				return false
			}
		}
		return true
	}
	return isClause(n)
}

func isClause(n expr.Node) bool {
	if n.IsLeaf() {
		return true
	}
	lit, ok := n.Lit.(expr.Binary)
	if !ok || n.Negated() || lit.Op != expr.OpOr {
		return false
	}
	for _, c := range lit.Children {
		if !isClause(c) {
			return false
		}
	}
	return true
}
