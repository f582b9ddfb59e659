package truthtable

import (
	"github.com/formula-tools/boolkit/pkg/expr"
)

// bind sets the tree's cells to the assignment encoded by row index i.
func bind(t *expr.Tree, letters []byte, i int) {
	n := len(letters)
	for j, letter := range letters {
		t.Bind(letter, (i>>(n-j-1))&1 == 1)
	}
}

// Build returns the result vector of the formula over all 2^n
// assignments in canonical order. A formula without variables yields a
// single row.
func Build(t *expr.Tree) []bool {
	letters := t.Letters()
	rows := 1 << len(letters)
	out := make([]bool, rows)
	for i := 0; i < rows; i++ {
		bind(t, letters, i)
		out[i] = t.Eval()
	}
	return out
}

// Satisfiable scans assignments in canonical order and reports whether
// any of them makes the formula true. Plain exhaustive search, no
// pruning.
func Satisfiable(t *expr.Tree) bool {
	letters := t.Letters()
	rows := 1 << len(letters)
	for i := 0; i < rows; i++ {
		bind(t, letters, i)
		if t.Eval() {
			return true
		}
	}
	return false
}
