package rewrite

import (
	"github.com/formula-tools/boolkit/pkg/expr"
)

// NNF rewrites a tree into negation normal form: only And, Or and
// leaves remain, with negations pushed onto variables and constants.
func NNF(t *expr.Tree) *expr.Tree {
	return expr.New(nnf(t.Root))
}

func nnf(n expr.Node) expr.Node {
	neg := n.Negated()
	n.Not = 0
	switch lit := n.Lit.(type) {
	case expr.Const:
		return expr.NewConst(bool(lit) != neg)
	case expr.Var:
		if neg {
			return expr.Not(n)
		}
		return n
	case expr.Binary:
		l, r := lit.Children[0], lit.Children[1]
		if !neg {
			switch lit.Op {
			case expr.OpXor:
				// A ⊕ B → (A ∧ ¬B) ∨ (¬A ∧ B)
				return nnf(expr.Or(expr.And(l, expr.Not(r)), expr.And(expr.Not(l), r)))
			case expr.OpImpl:
				// A ⇒ B → ¬A ∨ B
				return nnf(expr.Or(expr.Not(l), r))
			case expr.OpLeq:
				// A ⇔ B → (A ∧ B) ∨ (¬A ∧ ¬B)
				return nnf(expr.Or(expr.And(l, r), expr.And(expr.Not(l), expr.Not(r))))
			default:
				children := make([]expr.Node, len(lit.Children))
				for i, c := range lit.Children {
					children[i] = nnf(c)
				}
				return expr.NewBinary(lit.Op, children...)
			}
		}
		switch lit.Op {
		case expr.OpAnd:
			// ¬(A ∧ B) → ¬A ∨ ¬B
			children := make([]expr.Node, len(lit.Children))
			for i, c := range lit.Children {
				children[i] = nnf(expr.Not(c))
			}
			return expr.NewBinary(expr.OpOr, children...)
		case expr.OpOr:
			// ¬(A ∨ B) → ¬A ∧ ¬B
			children := make([]expr.Node, len(lit.Children))
			for i, c := range lit.Children {
				children[i] = nnf(expr.Not(c))
			}
			return expr.NewBinary(expr.OpAnd, children...)
		case expr.OpXor:
			// ¬(A ⊕ B) → A ⇔ B
			return nnf(expr.Leq(l, r))
		case expr.OpImpl:
			// ¬(A ⇒ B) → A ∧ ¬B
			return nnf(expr.And(l, expr.Not(r)))
		default: // OpLeq
			// ¬(A ⇔ B) → A ⊕ B
			return nnf(expr.Xor(l, r))
		}
	}
	return n
}
