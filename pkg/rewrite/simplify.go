package rewrite

import (
	"github.com/formula-tools/boolkit/pkg/expr"
)

// Simplify folds constants, collapses structurally equal operands,
// detects contradictions and tautologies, and flattens nested
// same-operator And/Or nodes into one n-ary node. The rules are applied
// bottom-up once; the output of one pass is a fixed point.
func Simplify(t *expr.Tree) *expr.Tree {
	return expr.New(simplify(t.Root))
}

func simplify(n expr.Node) expr.Node {
	neg := n.Negated()
	n.Not = 0
	var res expr.Node
	switch lit := n.Lit.(type) {
	case expr.Const:
		return expr.NewConst(bool(lit) != neg)
	case expr.Var:
		res = n
	case expr.Binary:
		switch lit.Op {
		case expr.OpAnd, expr.OpOr:
			res = simplifyNary(lit)
		default:
			res = simplifyBinary(lit.Op, simplify(lit.Children[0]), simplify(lit.Children[1]))
		}
	}
	if neg {
		if c, ok := res.Lit.(expr.Const); ok && !res.Negated() {
			return expr.NewConst(!bool(c))
		}
		res = expr.Not(res)
		res.Not &= 1
	}
	return res
}

// simplifyNary handles And and Or: associative flattening, neutral and
// absorbing constants, x∧x=x / x∨x=x, and x∧¬x=0 / x∨¬x=1.
func simplifyNary(lit expr.Binary) expr.Node {
	op := lit.Op
	absorbing := op == expr.OpOr // the constant that decides the node
	var children []expr.Node
	for _, c := range lit.Children {
		s := simplify(c)
		if sublit, ok := s.Lit.(expr.Binary); ok && sublit.Op == op && !s.Negated() {
			children = append(children, sublit.Children...)
			continue
		}
		children = append(children, s)
	}
	kept := children[:0]
	for _, c := range children {
		if cst, ok := c.Lit.(expr.Const); ok {
			if bool(cst) == absorbing {
				return expr.NewConst(absorbing)
			}
			continue // neutral element
		}
		dup := false
		for _, k := range kept {
			if expr.Equal(k, c) {
				dup = true
				break
			}
			if expr.Complementary(k, c) {
				return expr.NewConst(absorbing)
			}
		}
		if !dup {
			kept = append(kept, c)
		}
	}
	switch len(kept) {
	case 0:
		return expr.NewConst(!absorbing)
	case 1:
		return kept[0]
	default:
		return expr.NewBinary(op, kept...)
	}
}

// simplifyBinary handles Xor, Impl and Leq, which stay binary (NNF
// removes them before anything ever widens a node).
func simplifyBinary(op expr.Op, l, r expr.Node) expr.Node {
	lc, lok := constOf(l)
	rc, rok := constOf(r)
	switch op {
	case expr.OpXor:
		switch {
		case lok && rok:
			return expr.NewConst(lc != rc)
		case rok && !rc:
			return l
		case lok && !lc:
			return r
		case rok && rc:
			return negate(l)
		case lok && lc:
			return negate(r)
		case expr.Equal(l, r):
			return expr.NewConst(false)
		}
	case expr.OpLeq:
		switch {
		case lok && rok:
			return expr.NewConst(lc == rc)
		case rok && rc:
			return l
		case lok && lc:
			return r
		case rok && !rc:
			return negate(l)
		case lok && !lc:
			return negate(r)
		case expr.Equal(l, r):
			return expr.NewConst(true)
		}
	case expr.OpImpl:
		switch {
		case lok && !lc:
			return expr.NewConst(true)
		case rok && rc:
			return expr.NewConst(true)
		case lok && lc:
			return r
		case rok && !rc:
			return negate(l)
		case expr.Equal(l, r):
			return expr.NewConst(true)
		}
	}
	return expr.NewBinary(op, l, r)
}

func constOf(n expr.Node) (bool, bool) {
	c, ok := n.Lit.(expr.Const)
	if !ok {
		return false, false
	}
	return bool(c) != n.Negated(), true
}

func negate(n expr.Node) expr.Node {
	if c, ok := constOf(n); ok {
		return expr.NewConst(!c)
	}
	n = expr.Not(n)
	n.Not &= 1
	return n
}
