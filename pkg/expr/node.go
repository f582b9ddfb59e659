package expr

import (
	"sort"
	"strings"
)

// A Literal is the payload of a Node: a constant, a reference to one of
// the 26 variable cells, or an operator with its ordered children.
type Literal interface {
	literal()
}

// Const is a fixed truth value.
type Const bool

// Var indexes a variable cell in the owning Tree ('A' is 0, 'Z' is 25).
type Var uint8

// Binary is an operator node. The parser always produces two children;
// simplification may flatten nested same-operator nodes into wider ones.
type Binary struct {
	Op       Op
	Children []Node
}

func (Const) literal()  {}
func (Var) literal()    {}
func (Binary) literal() {}

// Letter returns the upper-case letter naming the variable.
func (v Var) Letter() byte {
	return 'A' + byte(v)
}

// A Node pairs a literal with a count of pending negations. Only the
// parity of Not is semantically meaningful; keeping the count makes the
// parser a plain stack machine and lets the printer round-trip "A!!!".
type Node struct {
	Not int
	Lit Literal
}

// NewConst builds an unnegated constant node.
func NewConst(b bool) Node {
	return Node{Lit: Const(b)}
}

// NewVar builds an unnegated variable node for an upper-case letter.
func NewVar(letter byte) Node {
	return Node{Lit: Var(letter - 'A')}
}

// NewBinary builds an operator node over the given children.
func NewBinary(op Op, children ...Node) Node {
	return Node{Lit: Binary{Op: op, Children: children}}
}

// Builder helpers used by the rewriters; they keep rewrite rules close
// to their algebraic statement.

func And(l, r Node) Node  { return NewBinary(OpAnd, l, r) }
func Or(l, r Node) Node   { return NewBinary(OpOr, l, r) }
func Xor(l, r Node) Node  { return NewBinary(OpXor, l, r) }
func Impl(l, r Node) Node { return NewBinary(OpImpl, l, r) }
func Leq(l, r Node) Node  { return NewBinary(OpLeq, l, r) }

// Not adds one pending negation to a copy of the node.
func Not(n Node) Node {
	n.Not++
	return n
}

// Negated reports whether the node's pending negations flip its value.
func (n Node) Negated() bool {
	return n.Not&1 == 1
}

// IsLeaf reports whether the node is a possibly-negated constant or
// variable.
func (n Node) IsLeaf() bool {
	switch n.Lit.(type) {
	case Const, Var:
		return true
	default:
		return false
	}
}

// String prints the node in canonical RPN: children concatenated,
// followed by len(children)-1 operator characters, followed by one '!'
// per pending negation.
func (n Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n Node) write(sb *strings.Builder) {
	switch lit := n.Lit.(type) {
	case Const:
		if lit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	case Var:
		sb.WriteByte(lit.Letter())
	case Binary:
		for _, c := range lit.Children {
			c.write(sb)
		}
		for i := 1; i < len(lit.Children); i++ {
			sb.WriteByte(lit.Op.Byte())
		}
	}
	for i := 0; i < n.Not; i++ {
		sb.WriteByte('!')
	}
}

// key is a canonical form used for structural comparison: children of
// commutative operators are sorted, and negation is reduced to parity.
func (n Node) key() string {
	var sb strings.Builder
	n.writeKey(&sb)
	return sb.String()
}

func (n Node) writeKey(sb *strings.Builder) {
	switch lit := n.Lit.(type) {
	case Const:
		if lit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	case Var:
		sb.WriteByte(lit.Letter())
	case Binary:
		keys := make([]string, len(lit.Children))
		for i, c := range lit.Children {
			keys[i] = c.key()
		}
		if lit.Op.commutative() {
			sort.Strings(keys)
		}
		sb.WriteByte('(')
		for _, k := range keys {
			sb.WriteString(k)
		}
		sb.WriteByte(lit.Op.Byte())
		sb.WriteByte(')')
	}
	if n.Negated() {
		sb.WriteByte('!')
	}
}

// Equal reports structural equality up to negation parity and operand
// order of commutative operators.
func Equal(a, b Node) bool {
	return a.key() == b.key()
}

// Complementary reports that a and b are the same expression with
// opposite negation parity, e.g. A and A!.
func Complementary(a, b Node) bool {
	if a.Negated() == b.Negated() {
		return false
	}
	a.Not = 0
	b.Not = 0
	return a.key() == b.key()
}
