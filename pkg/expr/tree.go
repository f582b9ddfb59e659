package expr

// cell is the mutable binding storage shared by every occurrence of one
// letter in a tree. Boolean evaluation reads value; set evaluation
// reads set.
type cell struct {
	value bool
	set   []int
}

// A Tree owns a root node and one binding cell per letter. Cells for
// letters that do not occur in the formula stay dormant.
type Tree struct {
	Root  Node
	cells [26]cell
}

// New wraps a root node in a fresh tree with unbound cells.
func New(root Node) *Tree {
	return &Tree{Root: root}
}

// String prints the tree in canonical RPN.
func (t *Tree) String() string {
	return t.Root.String()
}

// Bind sets the Boolean value of a letter's cell.
func (t *Tree) Bind(letter byte, value bool) {
	t.cells[letter-'A'].value = value
}

// BindSet sets the set payload of a letter's cell.
func (t *Tree) BindSet(letter byte, values []int) {
	t.cells[letter-'A'].set = values
}

// SetOf returns the set payload bound to a letter; nil if unbound.
func (t *Tree) SetOf(letter byte) []int {
	return t.cells[letter-'A'].set
}

// Letters returns the distinct letters occurring in the formula, in
// alphabetical order. This is the canonical variable order used by the
// truth table, the minimizer and the set evaluator.
func (t *Tree) Letters() []byte {
	var seen [26]bool
	markVars(t.Root, &seen)
	letters := make([]byte, 0, 26)
	for i, ok := range seen {
		if ok {
			letters = append(letters, 'A'+byte(i))
		}
	}
	return letters
}

func markVars(n Node, seen *[26]bool) {
	switch lit := n.Lit.(type) {
	case Var:
		seen[lit] = true
	case Binary:
		for _, c := range lit.Children {
			markVars(c, seen)
		}
	}
}

// Eval computes the Boolean value of the tree under the current cell
// bindings. Operators with more than two children (produced by
// simplification) are folded left to right.
func (t *Tree) Eval() bool {
	return t.eval(t.Root)
}

func (t *Tree) eval(n Node) bool {
	var v bool
	switch lit := n.Lit.(type) {
	case Const:
		v = bool(lit)
	case Var:
		v = t.cells[lit].value
	case Binary:
		v = t.eval(lit.Children[0])
		for _, c := range lit.Children[1:] {
			v = lit.Op.apply(v, t.eval(c))
		}
	}
	if n.Negated() {
		v = !v
	}
	return v
}
