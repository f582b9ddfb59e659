package qm

import (
	"sort"

	"github.com/formula-tools/boolkit/pkg/expr"
	"github.com/formula-tools/boolkit/pkg/truthtable"
)

// Minimize returns a minimum-size CNF equivalent of the formula. The
// input tree is only read; the result is freshly constructed.
//
// Because the implicants cover the zero-rows, emission inverts each
// bit: a 0 contributes the positive literal, a 1 the negated one, and a
// dash contributes nothing.
func Minimize(t *expr.Tree) *expr.Tree {
	letters := t.Letters()
	table := truthtable.Build(t)

	var seeds []row
	for i, v := range table {
		if !v {
			seeds = append(seeds, newRow(i, len(letters)))
		}
	}
	switch len(seeds) {
	case 0:
		return expr.New(expr.NewConst(true))
	case len(table):
		return expr.New(expr.NewConst(false))
	}

	cover := selectCover(seeds, primeImplicants(seeds), len(table))

	clauses := make([]expr.Node, 0, len(cover))
	for _, implicant := range cover {
		clauses = append(clauses, clauseOf(implicant, letters))
	}
	sort.Slice(clauses, func(i, j int) bool {
		return clauses[i].String() < clauses[j].String()
	})

	root := clauses[0]
	for _, c := range clauses[1:] {
		root = expr.And(root, c)
	}
	return expr.New(root)
}

// clauseOf turns one implicant into a disjunction of literals, in
// variable order, folded left-associatively.
func clauseOf(implicant row, letters []byte) expr.Node {
	var lits []expr.Node
	for j, v := range implicant.values {
		switch v {
		case zero:
			lits = append(lits, expr.NewVar(letters[j]))
		case one:
			lits = append(lits, expr.Not(expr.NewVar(letters[j])))
		}
	}
	clause := lits[0]
	for _, l := range lits[1:] {
		clause = expr.Or(clause, l)
	}
	return clause
}
